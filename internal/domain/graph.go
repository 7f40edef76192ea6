package domain

import "fmt"

// View is the derived, read-only rendering of a built model used for output.
type View struct {
	NetworkID   string       `json:"network_id" yaml:"network_id"`
	Fingerprint string       `json:"fingerprint" yaml:"fingerprint"`
	Routers     []RouterView `json:"routers" yaml:"routers"`
	Links       []LinkView   `json:"links" yaml:"links"`
	DemandID    string       `json:"demand_id,omitempty" yaml:"demand_id,omitempty"`
	Paths       []PathView   `json:"paths,omitempty" yaml:"paths,omitempty"`
}

// RouterView represents a router and its port table
type RouterView struct {
	Name  string     `json:"name" yaml:"name"`
	Ports []PortView `json:"ports" yaml:"ports"`
}

// PortView is one occupied port and the router at the far end of its link
type PortView struct {
	Port     int    `json:"port" yaml:"port"`
	Neighbor string `json:"neighbor" yaml:"neighbor"`
}

// LinkView represents a link
type LinkView struct {
	Router1 string `json:"router_1" yaml:"router-1"`
	Port1   int    `json:"port_1" yaml:"port-1"`
	Router2 string `json:"router_2" yaml:"router-2"`
	Port2   int    `json:"port_2" yaml:"port-2"`
	Length  int    `json:"length" yaml:"length"`
	Label   string `json:"label" yaml:"label"` // "850m", "12km", etc.
}

// PathView represents a requested path
type PathView struct {
	Name      string  `json:"name" yaml:"name"`
	EndPoint1 string  `json:"end_point_1" yaml:"end-point-1"`
	EndPoint2 string  `json:"end_point_2" yaml:"end-point-2"`
	Bandwidth int     `json:"bandwidth" yaml:"bandwidth"`
	Fidelity  float64 `json:"fidelity" yaml:"fidelity"`
}

// DeriveView converts a network, and optionally a demand bound to it, into a
// View. Every slice follows model order. demand may be nil.
func DeriveView(network *Network, demand *Demand) *View {
	view := &View{
		NetworkID:   network.ID.String(),
		Fingerprint: network.Fingerprint(),
		Routers:     make([]RouterView, 0, network.NumRouters()),
		Links:       make([]LinkView, 0, network.NumLinks()),
	}

	for _, r := range network.routers.items {
		rv := RouterView{Name: r.name, Ports: make([]PortView, 0, len(r.ports))}
		for port, l := range r.ports {
			neighbor, _ := l.OtherEnd(r)
			rv.Ports = append(rv.Ports, PortView{Port: port, Neighbor: neighbor.name})
		}
		view.Routers = append(view.Routers, rv)
	}

	for _, l := range network.links {
		view.Links = append(view.Links, LinkView{
			Router1: l.router1.name,
			Port1:   l.port1,
			Router2: l.router2.name,
			Port2:   l.port2,
			Length:  l.length,
			Label:   lengthLabel(l.length),
		})
	}

	if demand == nil {
		return view
	}

	view.DemandID = demand.ID.String()
	view.Fingerprint = demand.Fingerprint()
	view.Paths = make([]PathView, 0, demand.NumPaths())
	for _, p := range demand.paths.items {
		view.Paths = append(view.Paths, PathView{
			Name:      p.name,
			EndPoint1: p.endPoint1.name,
			EndPoint2: p.endPoint2.name,
			Bandwidth: p.bandwidth,
			Fidelity:  p.fidelity,
		})
	}
	return view
}

func lengthLabel(meters int) string {
	if meters >= 1000 {
		if meters%1000 == 0 {
			return fmt.Sprintf("%dkm", meters/1000)
		}
		return fmt.Sprintf("%.1fkm", float64(meters)/1000)
	}
	return fmt.Sprintf("%dm", meters)
}
