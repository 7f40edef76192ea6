package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// Network is a quantum network topology: routers keyed by name, in insertion
// order, and the links between them.
type Network struct {
	// ID distinguishes independently built instances in logs and output.
	ID uuid.UUID

	routers ordered[*Router]
	links   []*Link
}

// NewNetwork creates an empty network.
func NewNetwork() *Network {
	return &Network{
		ID:      uuid.New(),
		routers: newOrdered[*Router](),
	}
}

// AddRouter creates a router named name and registers it in the network.
func (n *Network) AddRouter(name string) (*Router, error) {
	if n.routers.has(name) {
		return nil, &DuplicateNameError{Kind: "router", Name: name}
	}
	r := &Router{name: name, network: n}
	n.routers.put(name, r)
	return r, nil
}

// Router returns the router with the given name.
func (n *Network) Router(name string) (*Router, bool) {
	return n.routers.get(name)
}

// Routers returns the routers in insertion order.
func (n *Network) Routers() []*Router {
	return n.routers.list()
}

// RouterNames returns the router names in insertion order.
func (n *Network) RouterNames() []string {
	names := make([]string, 0, n.routers.len())
	for _, r := range n.routers.items {
		names = append(names, r.name)
	}
	return names
}

// NumRouters returns the number of routers in the network.
func (n *Network) NumRouters() int {
	return n.routers.len()
}

// Links returns the links in creation order.
func (n *Network) Links() []*Link {
	out := make([]*Link, len(n.links))
	copy(out, n.links)
	return out
}

// NumLinks returns the number of links in the network.
func (n *Network) NumLinks() int {
	return len(n.links)
}

// Contains reports whether r is a member of this network instance. A router
// of another network with the same name is not a member.
func (n *Network) Contains(r *Router) bool {
	if r == nil || r.network != n {
		return false
	}
	registered, ok := n.routers.get(r.name)
	return ok && registered == r
}

// AddLink creates a link between the routers named router1 and router2.
// The two names may be equal, which creates a loop on a single router.
//
// Nothing is attached unless every check passes.
func (n *Network) AddLink(router1, router2 string, length int) (*Link, error) {
	r1, err := n.resolve("router-1", router1)
	if err != nil {
		return nil, err
	}
	r2, err := n.resolve("router-2", router2)
	if err != nil {
		return nil, err
	}
	if length <= 0 {
		return nil, &InvalidLengthError{Length: length}
	}
	return n.connect(r1, r2, length), nil
}

// Connect creates a link between two router handles. Both handles must be
// members of n; passing a router of another network is a programming error
// and panics.
func (n *Network) Connect(r1, r2 *Router, length int) (*Link, error) {
	if !n.Contains(r1) || !n.Contains(r2) {
		panic(fmt.Sprintf("domain: routers %q and %q are not both members of network %s",
			r1.Name(), r2.Name(), n.ID))
	}
	if length <= 0 {
		return nil, &InvalidLengthError{Length: length}
	}
	return n.connect(r1, r2, length), nil
}

func (n *Network) connect(r1, r2 *Router, length int) *Link {
	link := &Link{router1: r1, router2: r2, length: length}
	link.port1 = r1.attach(link)
	link.port2 = r2.attach(link)
	n.links = append(n.links, link)
	return link
}

// resolve maps a router name to the router registered in this network.
func (n *Network) resolve(role, name string) (*Router, error) {
	r, ok := n.routers.get(name)
	if !ok || r.network != n {
		return nil, &UnknownRouterError{Role: role, Name: name}
	}
	return r, nil
}
