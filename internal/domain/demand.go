package domain

import (
	"math"

	"github.com/google/uuid"
)

// Demand is the set of end-to-end paths requested by applications, bound to
// the network the paths run over. The network is shared, not owned.
type Demand struct {
	ID uuid.UUID

	network *Network
	paths   ordered[*Path]
}

// NewDemand creates an empty demand bound to network.
func NewDemand(network *Network) *Demand {
	if network == nil {
		panic("domain: demand requires a network")
	}
	return &Demand{
		ID:      uuid.New(),
		network: network,
		paths:   newOrdered[*Path](),
	}
}

// Network returns the network the demand applies to.
func (d *Demand) Network() *Network {
	return d.network
}

// AddPath requests a path named name between the routers named endPoint1 and
// endPoint2 of the demand's network.
func (d *Demand) AddPath(name, endPoint1, endPoint2 string, bandwidth int, fidelity float64) (*Path, error) {
	if d.paths.has(name) {
		return nil, &DuplicateNameError{Kind: "path", Name: name}
	}
	ep1, err := d.network.resolve("end-point-1", endPoint1)
	if err != nil {
		return nil, err
	}
	ep2, err := d.network.resolve("end-point-2", endPoint2)
	if err != nil {
		return nil, err
	}
	return d.request(name, ep1, ep2, bandwidth, fidelity)
}

// Request is AddPath for callers holding router handles. A handle that is not
// a member of the demand's network, including a same-named router of another
// network, is rejected with an UnknownRouterError.
func (d *Demand) Request(name string, endPoint1, endPoint2 *Router, bandwidth int, fidelity float64) (*Path, error) {
	if d.paths.has(name) {
		return nil, &DuplicateNameError{Kind: "path", Name: name}
	}
	if !d.network.Contains(endPoint1) {
		return nil, &UnknownRouterError{Role: "end-point-1", Name: endPoint1.Name()}
	}
	if !d.network.Contains(endPoint2) {
		return nil, &UnknownRouterError{Role: "end-point-2", Name: endPoint2.Name()}
	}
	return d.request(name, endPoint1, endPoint2, bandwidth, fidelity)
}

func (d *Demand) request(name string, ep1, ep2 *Router, bandwidth int, fidelity float64) (*Path, error) {
	if bandwidth <= 0 {
		return nil, &InvalidBandwidthError{Bandwidth: bandwidth}
	}
	if !(fidelity > 0) || math.IsInf(fidelity, 1) {
		return nil, &InvalidFidelityError{Fidelity: fidelity}
	}
	p := &Path{
		name:      name,
		endPoint1: ep1,
		endPoint2: ep2,
		bandwidth: bandwidth,
		fidelity:  fidelity,
	}
	d.paths.put(name, p)
	return p, nil
}

// Path returns the path with the given name.
func (d *Demand) Path(name string) (*Path, bool) {
	return d.paths.get(name)
}

// Paths returns the paths in insertion order.
func (d *Demand) Paths() []*Path {
	return d.paths.list()
}

// NumPaths returns the number of requested paths.
func (d *Demand) NumPaths() int {
	return d.paths.len()
}
