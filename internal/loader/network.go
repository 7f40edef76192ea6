package loader

import (
	"fmt"
	"io"

	"qpce/internal/domain"
	"qpce/internal/schema"
)

// NetworkSchema is the schema of a topology document.
var NetworkSchema = schema.Schema{
	Name: "network",
	Root: schema.Field{
		Type: schema.TypeObject,
		Fields: map[string]schema.Field{
			"routers": schema.ListOf(map[string]schema.Field{
				"name": {Type: schema.TypeString, Required: true},
			}),
			"links": schema.ListOf(map[string]schema.Field{
				"router-1": {Type: schema.TypeString, Required: true},
				"router-2": {Type: schema.TypeString, Required: true},
				"length":   {Type: schema.TypeInteger, Required: true, Min: schema.Min(1)},
			}),
		},
	},
}

// NetworkYAML represents the topology document
type NetworkYAML struct {
	Routers []RouterYAML `yaml:"routers"`
	Links   []LinkYAML   `yaml:"links"`
}

// RouterYAML represents a router entry
type RouterYAML struct {
	Name string `yaml:"name"`
}

// LinkYAML represents a link entry
type LinkYAML struct {
	Router1 string `yaml:"router-1"`
	Router2 string `yaml:"router-2"`
	Length  int    `yaml:"length"` // meters
}

// LoadNetwork reads, validates and builds a network from a YAML file.
func LoadNetwork(path string) (*domain.Network, error) {
	data, err := ReadFile(NetworkSchema.Name, path)
	if err != nil {
		return nil, err
	}
	return ParseNetwork(data)
}

// ReadNetwork builds a network from a YAML stream.
func ReadNetwork(r io.Reader) (*domain.Network, error) {
	data, err := ReadAll(NetworkSchema.Name, r)
	if err != nil {
		return nil, err
	}
	return ParseNetwork(data)
}

// ParseNetwork builds a network from YAML bytes.
func ParseNetwork(data []byte) (*domain.Network, error) {
	doc, err := DecodeNetwork(data)
	if err != nil {
		return nil, err
	}
	return BuildNetwork(doc)
}

// DecodeNetwork parses and validates a topology document without building it.
func DecodeNetwork(data []byte) (*NetworkYAML, error) {
	var doc NetworkYAML
	if err := decode(data, NetworkSchema, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// BuildNetwork creates a network holding the document's routers and links.
func BuildNetwork(doc *NetworkYAML) (*domain.Network, error) {
	network := domain.NewNetwork()
	if err := AddRouters(network, doc.Routers); err != nil {
		return nil, err
	}
	if err := AddLinks(network, doc.Links); err != nil {
		return nil, err
	}
	return network, nil
}

// AddRouters adds the router entries to network in document order, stopping
// at the first failure.
func AddRouters(network *domain.Network, routers []RouterYAML) error {
	for i, r := range routers {
		if _, err := network.AddRouter(r.Name); err != nil {
			return fmt.Errorf("routers[%d]: %w", i, err)
		}
	}
	return nil
}

// AddLinks adds the link entries to network in document order, stopping at
// the first failure.
func AddLinks(network *domain.Network, links []LinkYAML) error {
	for i, l := range links {
		if _, err := network.AddLink(l.Router1, l.Router2, l.Length); err != nil {
			return fmt.Errorf("links[%d]: %w", i, err)
		}
	}
	return nil
}

// ExportNetwork renders a network back into a topology document.
func ExportNetwork(network *domain.Network) ([]byte, error) {
	doc := NetworkYAML{
		Routers: make([]RouterYAML, 0, network.NumRouters()),
		Links:   make([]LinkYAML, 0, network.NumLinks()),
	}
	for _, r := range network.Routers() {
		doc.Routers = append(doc.Routers, RouterYAML{Name: r.Name()})
	}
	for _, l := range network.Links() {
		doc.Links = append(doc.Links, LinkYAML{
			Router1: l.Router1().Name(),
			Router2: l.Router2().Name(),
			Length:  l.Length(),
		})
	}
	return encode(&doc)
}
