package domain

// Router is a node of a quantum network. Links attach to it on ports numbered
// from 0, one port per link end, in attachment order.
type Router struct {
	name    string
	network *Network
	ports   []*Link // index is the port number
}

// Name returns the router name, unique within its network.
func (r *Router) Name() string {
	if r == nil {
		return ""
	}
	return r.name
}

// Network returns the network the router belongs to.
func (r *Router) Network() *Network {
	return r.network
}

// Link returns the link attached on port.
func (r *Router) Link(port int) (*Link, bool) {
	if port < 0 || port >= len(r.ports) {
		return nil, false
	}
	return r.ports[port], true
}

// Links returns the attached links in port order. A loop link appears twice.
func (r *Router) Links() []*Link {
	out := make([]*Link, len(r.ports))
	copy(out, r.ports)
	return out
}

// Degree returns the number of occupied ports. Ports are allocated densely
// from 0, so it is also the port the next attached link will occupy.
func (r *Router) Degree() int {
	return len(r.ports)
}

// attach puts link on the next free port and returns that port.
func (r *Router) attach(link *Link) int {
	port := len(r.ports)
	r.ports = append(r.ports, link)
	return port
}
