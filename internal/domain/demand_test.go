package domain

import (
	"errors"
	"math"
	"testing"
)

func newAliceBob(t *testing.T) *Network {
	t.Helper()
	n := NewNetwork()
	for _, name := range []string{"alice", "bob"} {
		if _, err := n.AddRouter(name); err != nil {
			t.Fatalf("AddRouter(%s): %v", name, err)
		}
	}
	if _, err := n.AddLink("alice", "bob", 10); err != nil {
		t.Fatalf("AddLink: %v", err)
	}
	return n
}

func TestNewDemand(t *testing.T) {
	n := newAliceBob(t)
	d := NewDemand(n)

	if d.Network() != n {
		t.Error("expected demand bound to network")
	}
	if d.NumPaths() != 0 {
		t.Errorf("expected no paths, got %d", d.NumPaths())
	}

	t.Run("nil network panics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic")
			}
		}()
		NewDemand(nil)
	})
}

func TestDemandAddPath(t *testing.T) {
	t.Run("creates path", func(t *testing.T) {
		n := newAliceBob(t)
		d := NewDemand(n)
		alice, _ := n.Router("alice")
		bob, _ := n.Router("bob")

		p, err := d.AddPath("alice-to-bob", "alice", "bob", 100, 0.95)
		if err != nil {
			t.Fatalf("AddPath: %v", err)
		}
		if p.Name() != "alice-to-bob" {
			t.Errorf("expected name alice-to-bob, got %s", p.Name())
		}
		if p.EndPoint1() != alice || p.EndPoint2() != bob {
			t.Error("expected end-points resolved to network routers")
		}
		if p.Bandwidth() != 100 {
			t.Errorf("expected bandwidth 100, got %d", p.Bandwidth())
		}
		if p.Fidelity() != 0.95 {
			t.Errorf("expected fidelity 0.95, got %g", p.Fidelity())
		}
		if got, ok := d.Path("alice-to-bob"); !ok || got != p {
			t.Error("expected lookup to return the path")
		}
	})

	t.Run("preserves insertion order", func(t *testing.T) {
		d := NewDemand(newAliceBob(t))
		d.AddPath("second", "bob", "alice", 1, 1)
		d.AddPath("first", "alice", "bob", 1, 1)
		paths := d.Paths()
		if len(paths) != 2 || paths[0].Name() != "second" || paths[1].Name() != "first" {
			t.Errorf("unexpected order: %v", paths)
		}
	})

	t.Run("fidelity above one is accepted", func(t *testing.T) {
		d := NewDemand(newAliceBob(t))
		if _, err := d.AddPath("p", "alice", "bob", 1, 1.5); err != nil {
			t.Errorf("expected fidelity 1.5 to be accepted, got %v", err)
		}
	})

	t.Run("duplicate name fails", func(t *testing.T) {
		d := NewDemand(newAliceBob(t))
		original, _ := d.AddPath("p", "alice", "bob", 100, 0.9)

		_, err := d.AddPath("p", "bob", "alice", 5, 0.5)
		if !errors.Is(err, ErrDuplicateName) {
			t.Fatalf("expected ErrDuplicateName, got %v", err)
		}
		if got, _ := d.Path("p"); got != original {
			t.Error("expected original path intact")
		}
		if d.NumPaths() != 1 {
			t.Errorf("expected 1 path, got %d", d.NumPaths())
		}
	})

	t.Run("unknown end-point fails", func(t *testing.T) {
		d := NewDemand(newAliceBob(t))

		for _, tc := range []struct{ ep1, ep2, role string }{
			{"non-existing-router", "bob", "end-point-1"},
			{"alice", "non-existing-router", "end-point-2"},
		} {
			_, err := d.AddPath("p", tc.ep1, tc.ep2, 100, 0.95)
			var unknown *UnknownRouterError
			if !errors.As(err, &unknown) {
				t.Fatalf("expected UnknownRouterError, got %v", err)
			}
			if unknown.Role != tc.role {
				t.Errorf("expected role %s, got %s", tc.role, unknown.Role)
			}
		}
		if d.NumPaths() != 0 {
			t.Errorf("expected no paths, got %d", d.NumPaths())
		}
	})

	t.Run("non-positive bandwidth fails", func(t *testing.T) {
		d := NewDemand(newAliceBob(t))
		for _, bw := range []int{-10, 0} {
			_, err := d.AddPath("p", "alice", "bob", bw, 0.95)
			if !errors.Is(err, ErrInvalidBandwidth) {
				t.Errorf("bandwidth %d: expected ErrInvalidBandwidth, got %v", bw, err)
			}
		}
		if d.NumPaths() != 0 {
			t.Errorf("expected no paths, got %d", d.NumPaths())
		}
	})

	t.Run("invalid fidelity fails", func(t *testing.T) {
		d := NewDemand(newAliceBob(t))
		for _, f := range []float64{-0.1, 0.0, math.NaN(), math.Inf(1)} {
			_, err := d.AddPath("p", "alice", "bob", 100, f)
			if !errors.Is(err, ErrInvalidFidelity) {
				t.Errorf("fidelity %g: expected ErrInvalidFidelity, got %v", f, err)
			}
		}
		if d.NumPaths() != 0 {
			t.Errorf("expected no paths, got %d", d.NumPaths())
		}
	})
}

func TestDemandRequest(t *testing.T) {
	t.Run("accepts member handles", func(t *testing.T) {
		n := newAliceBob(t)
		d := NewDemand(n)
		alice, _ := n.Router("alice")
		bob, _ := n.Router("bob")

		if _, err := d.Request("p", alice, bob, 10, 0.9); err != nil {
			t.Fatalf("Request: %v", err)
		}
	})

	t.Run("rejects same-named router of another network", func(t *testing.T) {
		n := newAliceBob(t)
		other := newAliceBob(t)
		d := NewDemand(n)
		alice, _ := n.Router("alice")
		foreignBob, _ := other.Router("bob")

		_, err := d.Request("p", alice, foreignBob, 10, 0.9)
		if !errors.Is(err, ErrUnknownRouter) {
			t.Fatalf("expected ErrUnknownRouter, got %v", err)
		}
		if d.NumPaths() != 0 {
			t.Errorf("expected path collection unchanged, got %d", d.NumPaths())
		}
	})

	t.Run("rejects nil handle", func(t *testing.T) {
		n := newAliceBob(t)
		d := NewDemand(n)
		bob, _ := n.Router("bob")
		if _, err := d.Request("p", nil, bob, 10, 0.9); !errors.Is(err, ErrUnknownRouter) {
			t.Errorf("expected ErrUnknownRouter, got %v", err)
		}
	})
}
