package domain

// Path is a requested association between two router end-points over which
// qubits are teleported. It asks for end-to-end Bell pairs at a given rate
// and fidelity. Paths only exist inside a Demand.
type Path struct {
	name      string
	endPoint1 *Router
	endPoint2 *Router
	bandwidth int     // Bell pairs per second
	fidelity  float64 // (0, +Inf), no implied ceiling
}

// Name returns the path name, unique within its demand.
func (p *Path) Name() string { return p.name }

// EndPoint1 returns the first end-point router.
func (p *Path) EndPoint1() *Router { return p.endPoint1 }

// EndPoint2 returns the second end-point router.
func (p *Path) EndPoint2() *Router { return p.endPoint2 }

// Bandwidth returns the requested end-to-end Bell pair rate.
func (p *Path) Bandwidth() int { return p.bandwidth }

// Fidelity returns the requested fidelity of the end-to-end Bell pairs.
func (p *Path) Fidelity() float64 { return p.fidelity }
