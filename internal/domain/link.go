package domain

// Link is a bidirectional physical link between two routers of the same
// network. It is both a quantum and a classical link. router1 and router2 may
// be the same router, in which case the link occupies two of its ports.
type Link struct {
	router1 *Router
	port1   int
	router2 *Router
	port2   int
	length  int // meters
}

// Router1 returns the first endpoint.
func (l *Link) Router1() *Router { return l.router1 }

// Port1 returns the port the link occupies on the first endpoint.
func (l *Link) Port1() int { return l.port1 }

// Router2 returns the second endpoint.
func (l *Link) Router2() *Router { return l.router2 }

// Port2 returns the port the link occupies on the second endpoint.
func (l *Link) Port2() int { return l.port2 }

// Length returns the link length in meters.
func (l *Link) Length() int { return l.length }

// IsLoop reports whether both ends attach to the same router.
func (l *Link) IsLoop() bool {
	return l.router1 == l.router2
}

// Involves checks if r is an endpoint of the link.
func (l *Link) Involves(r *Router) bool {
	return l.router1 == r || l.router2 == r
}

// OtherEnd returns the endpoint opposite r. For a loop it returns r.
func (l *Link) OtherEnd(r *Router) (*Router, bool) {
	switch r {
	case l.router1:
		return l.router2, true
	case l.router2:
		return l.router1, true
	}
	return nil, false
}

// PortsOn returns the ports the link occupies on r: none if r is not an
// endpoint, two for a loop.
func (l *Link) PortsOn(r *Router) []int {
	var ports []int
	if l.router1 == r {
		ports = append(ports, l.port1)
	}
	if l.router2 == r {
		ports = append(ports, l.port2)
	}
	return ports
}
