package domain

// ordered is a name-keyed collection that iterates in insertion order.
// Entries are never removed, so the index stays valid for the lifetime of
// the collection.
type ordered[T any] struct {
	items []T
	index map[string]int
}

func newOrdered[T any]() ordered[T] {
	return ordered[T]{index: make(map[string]int)}
}

func (o *ordered[T]) get(name string) (T, bool) {
	i, ok := o.index[name]
	if !ok {
		var zero T
		return zero, false
	}
	return o.items[i], true
}

func (o *ordered[T]) has(name string) bool {
	_, ok := o.index[name]
	return ok
}

// put appends item under name. Callers check has() first.
func (o *ordered[T]) put(name string, item T) {
	o.index[name] = len(o.items)
	o.items = append(o.items, item)
}

func (o *ordered[T]) len() int {
	return len(o.items)
}

// list returns a copy so callers cannot reorder the collection.
func (o *ordered[T]) list() []T {
	out := make([]T, len(o.items))
	copy(out, o.items)
	return out
}
