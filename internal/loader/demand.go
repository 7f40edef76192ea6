package loader

import (
	"fmt"
	"io"

	"qpce/internal/domain"
	"qpce/internal/schema"
)

// DemandSchema is the schema of a demand document.
var DemandSchema = schema.Schema{
	Name: "demand",
	Root: schema.Field{
		Type: schema.TypeObject,
		Fields: map[string]schema.Field{
			"paths": schema.ListOf(map[string]schema.Field{
				"name":        {Type: schema.TypeString, Required: true},
				"end-point-1": {Type: schema.TypeString, Required: true},
				"end-point-2": {Type: schema.TypeString, Required: true},
				"bandwidth":   {Type: schema.TypeInteger, Required: true, Min: schema.Min(1)},
				"fidelity":    {Type: schema.TypeFloat, Required: true},
			}),
		},
	},
}

// DemandYAML represents the demand document
type DemandYAML struct {
	Paths []PathYAML `yaml:"paths"`
}

// PathYAML represents a requested path entry
type PathYAML struct {
	Name      string  `yaml:"name"`
	EndPoint1 string  `yaml:"end-point-1"`
	EndPoint2 string  `yaml:"end-point-2"`
	Bandwidth int     `yaml:"bandwidth"` // Bell pairs per second
	Fidelity  float64 `yaml:"fidelity"`
}

// LoadDemand reads, validates and builds a demand on network from a YAML file.
func LoadDemand(path string, network *domain.Network) (*domain.Demand, error) {
	data, err := ReadFile(DemandSchema.Name, path)
	if err != nil {
		return nil, err
	}
	return ParseDemand(data, network)
}

// ReadDemand builds a demand on network from a YAML stream.
func ReadDemand(r io.Reader, network *domain.Network) (*domain.Demand, error) {
	data, err := ReadAll(DemandSchema.Name, r)
	if err != nil {
		return nil, err
	}
	return ParseDemand(data, network)
}

// ParseDemand builds a demand on network from YAML bytes.
func ParseDemand(data []byte, network *domain.Network) (*domain.Demand, error) {
	doc, err := DecodeDemand(data)
	if err != nil {
		return nil, err
	}
	return BuildDemand(doc, network)
}

// DecodeDemand parses and validates a demand document without building it.
func DecodeDemand(data []byte) (*DemandYAML, error) {
	var doc DemandYAML
	if err := decode(data, DemandSchema, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// BuildDemand creates a demand bound to network holding the document's paths.
func BuildDemand(doc *DemandYAML, network *domain.Network) (*domain.Demand, error) {
	demand := domain.NewDemand(network)
	if err := AddPaths(demand, doc.Paths); err != nil {
		return nil, err
	}
	return demand, nil
}

// AddPaths adds the path entries to demand in document order, stopping at the
// first failure.
func AddPaths(demand *domain.Demand, paths []PathYAML) error {
	for i, p := range paths {
		if _, err := demand.AddPath(p.Name, p.EndPoint1, p.EndPoint2, p.Bandwidth, p.Fidelity); err != nil {
			return fmt.Errorf("paths[%d]: %w", i, err)
		}
	}
	return nil
}

// ExportDemand renders a demand back into a demand document.
func ExportDemand(demand *domain.Demand) ([]byte, error) {
	doc := DemandYAML{Paths: make([]PathYAML, 0, demand.NumPaths())}
	for _, p := range demand.Paths() {
		doc.Paths = append(doc.Paths, PathYAML{
			Name:      p.Name(),
			EndPoint1: p.EndPoint1().Name(),
			EndPoint2: p.EndPoint2().Name(),
			Bandwidth: p.Bandwidth(),
			Fidelity:  p.Fidelity(),
		})
	}
	return encode(&doc)
}
