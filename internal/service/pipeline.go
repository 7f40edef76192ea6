package service

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"qpce/internal/domain"
	"qpce/internal/loader"
	"qpce/internal/metrics"
	"qpce/internal/schema"
)

// Stage is a construction pipeline state
type Stage string

const (
	StageEmpty         Stage = "empty"
	StageRoutersLoaded Stage = "routers_loaded"
	StageLinksLoaded   Stage = "links_loaded"
	StagePathsLoaded   Stage = "paths_loaded"
)

// ErrStageOrder indicates a transition requested from the wrong stage.
var ErrStageOrder = errors.New("stage out of order")

// StageOrderError is returned when a transition is not valid from the current stage.
type StageOrderError struct {
	Have Stage
	Want Stage
}

func (e *StageOrderError) Error() string {
	return fmt.Sprintf("%s: pipeline is %s, need %s", ErrStageOrder.Error(), e.Have, e.Want)
}

func (e *StageOrderError) Unwrap() error { return ErrStageOrder }

// Pipeline builds a Network and optionally a Demand, one stage at a time.
// A Pipeline is single-use and must not be shared between goroutines.
type Pipeline struct {
	logger   *slog.Logger
	metrics  *metrics.Registry
	eventBus *EventBus

	stage   Stage
	routers []loader.RouterYAML
	network *domain.Network
	demand  *domain.Demand
}

// NewPipeline creates an empty pipeline. Nil arguments are replaced by a
// discarding logger, a private registry and a bus without subscribers.
func NewPipeline(logger *slog.Logger, m *metrics.Registry, eventBus *EventBus) *Pipeline {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if m == nil {
		m = metrics.NewRegistry()
	}
	if eventBus == nil {
		eventBus = NewEventBus()
	}
	return &Pipeline{
		logger:   logger,
		metrics:  m,
		eventBus: eventBus,
		stage:    StageEmpty,
	}
}

// Stage returns the last committed stage
func (p *Pipeline) Stage() Stage {
	return p.stage
}

// Network returns the built network once links are loaded, nil before.
func (p *Pipeline) Network() *domain.Network {
	if p.stage == StageLinksLoaded || p.stage == StagePathsLoaded {
		return p.network
	}
	return nil
}

// Demand returns the built demand once paths are loaded, nil before.
func (p *Pipeline) Demand() *domain.Demand {
	if p.stage == StagePathsLoaded {
		return p.demand
	}
	return nil
}

// LoadNetworkFile reads a topology document from path and builds the network.
func (p *Pipeline) LoadNetworkFile(path string) (*domain.Network, error) {
	data, err := loader.ReadFile(loader.NetworkSchema.Name, path)
	if err != nil {
		p.fail(StageEmpty, err)
		p.metrics.RecordDocument(loader.NetworkSchema.Name, err)
		return nil, err
	}
	return p.BuildNetwork(data)
}

// BuildNetwork validates a topology document and runs the router and link stages.
func (p *Pipeline) BuildNetwork(data []byte) (*domain.Network, error) {
	network, err := p.buildNetwork(data)
	p.metrics.RecordDocument(loader.NetworkSchema.Name, err)
	return network, err
}

func (p *Pipeline) buildNetwork(data []byte) (*domain.Network, error) {
	if err := p.expect(StageEmpty); err != nil {
		return nil, err
	}
	doc, err := loader.DecodeNetwork(data)
	if err != nil {
		p.fail(StageEmpty, err)
		return nil, err
	}
	if err := p.LoadRouters(doc.Routers); err != nil {
		return nil, err
	}
	if err := p.LoadLinks(doc.Links); err != nil {
		return nil, err
	}
	return p.network, nil
}

// LoadRouters adds routers to a new network and commits routers_loaded.
func (p *Pipeline) LoadRouters(routers []loader.RouterYAML) error {
	if err := p.expect(StageEmpty); err != nil {
		return err
	}
	start := time.Now()

	network := domain.NewNetwork()
	if err := loader.AddRouters(network, routers); err != nil {
		p.fail(StageRoutersLoaded, err)
		return err
	}

	p.metrics.RoutersBuilt.Add(float64(network.NumRouters()))
	p.routers = routers
	p.network = network
	p.commit(StageRoutersLoaded, time.Since(start),
		slog.Int("routers", network.NumRouters()))
	return nil
}

// LoadLinks adds links to the committed network and commits links_loaded.
// Links are staged on a copy of the committed routers so that a failing link
// leaves the committed network untouched.
func (p *Pipeline) LoadLinks(links []loader.LinkYAML) error {
	if err := p.expect(StageRoutersLoaded); err != nil {
		return err
	}
	start := time.Now()

	network := domain.NewNetwork()
	network.ID = p.network.ID
	if err := loader.AddRouters(network, p.routers); err != nil {
		// routers were accepted once already
		panic(fmt.Sprintf("service: restaging committed routers: %v", err))
	}
	if err := loader.AddLinks(network, links); err != nil {
		p.fail(StageLinksLoaded, err)
		return err
	}

	p.metrics.LinksBuilt.Add(float64(network.NumLinks()))
	p.network = network
	p.commit(StageLinksLoaded, time.Since(start),
		slog.Int("links", network.NumLinks()),
		slog.String("fingerprint", network.Fingerprint()))
	return nil
}

// LoadDemandFile reads a demand document from path and builds the demand.
func (p *Pipeline) LoadDemandFile(path string) (*domain.Demand, error) {
	data, err := loader.ReadFile(loader.DemandSchema.Name, path)
	if err != nil {
		p.fail(p.stage, err)
		p.metrics.RecordDocument(loader.DemandSchema.Name, err)
		return nil, err
	}
	return p.BuildDemand(data)
}

// BuildDemand validates a demand document and runs the path stage against
// the built network.
func (p *Pipeline) BuildDemand(data []byte) (*domain.Demand, error) {
	demand, err := p.buildDemand(data)
	p.metrics.RecordDocument(loader.DemandSchema.Name, err)
	return demand, err
}

func (p *Pipeline) buildDemand(data []byte) (*domain.Demand, error) {
	if err := p.expect(StageLinksLoaded); err != nil {
		return nil, err
	}
	doc, err := loader.DecodeDemand(data)
	if err != nil {
		p.fail(StageLinksLoaded, err)
		return nil, err
	}
	if err := p.LoadPaths(doc.Paths); err != nil {
		return nil, err
	}
	return p.demand, nil
}

// LoadPaths binds a new demand to the built network and commits paths_loaded.
func (p *Pipeline) LoadPaths(paths []loader.PathYAML) error {
	if err := p.expect(StageLinksLoaded); err != nil {
		return err
	}
	start := time.Now()

	demand := domain.NewDemand(p.network)
	if err := loader.AddPaths(demand, paths); err != nil {
		p.fail(StagePathsLoaded, err)
		return err
	}

	p.metrics.PathsBuilt.Add(float64(demand.NumPaths()))
	p.demand = demand
	p.commit(StagePathsLoaded, time.Since(start),
		slog.String("demand_id", demand.ID.String()),
		slog.Int("paths", demand.NumPaths()))
	return nil
}

func (p *Pipeline) expect(want Stage) error {
	if p.stage != want {
		err := &StageOrderError{Have: p.stage, Want: want}
		p.fail(want, err)
		return err
	}
	return nil
}

func (p *Pipeline) commit(to Stage, elapsed time.Duration, attrs ...any) {
	from := p.stage
	p.stage = to
	p.metrics.RecordStage(string(to), elapsed)

	attrs = append([]any{
		slog.String("from", string(from)),
		slog.String("to", string(to)),
		slog.String("network_id", p.network.ID.String()),
		slog.Duration("elapsed", elapsed),
	}, attrs...)
	p.logger.Info("stage committed", attrs...)

	p.eventBus.Publish(Event{
		Type:    EventStageChanged,
		Payload: StageChange{From: from, To: to, NetworkID: p.network.ID},
	})
}

// fail records a failed transition towards stage.
func (p *Pipeline) fail(stage Stage, err error) {
	kind := ErrorKind(err)
	p.metrics.RecordError(string(stage), kind)
	p.logger.Debug("stage failed",
		slog.String("stage", string(stage)),
		slog.String("kind", kind),
		slog.Any("error", err))
	p.eventBus.Publish(Event{
		Type:    EventBuildFailed,
		Payload: BuildFailure{Stage: stage, Kind: kind, Error: err.Error()},
	})
}

// ErrorKind classifies err by its error category, for metrics labels and
// events. Unrecognized errors are "internal".
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, loader.ErrFileAccess):
		return "file_access"
	case errors.Is(err, loader.ErrParse):
		return "parse"
	case errors.Is(err, schema.ErrSchemaValidation):
		return "schema_validation"
	case errors.Is(err, domain.ErrDuplicateName):
		return "duplicate_name"
	case errors.Is(err, domain.ErrUnknownRouter):
		return "unknown_router"
	case errors.Is(err, domain.ErrInvalidLength):
		return "invalid_length"
	case errors.Is(err, domain.ErrInvalidBandwidth):
		return "invalid_bandwidth"
	case errors.Is(err, domain.ErrInvalidFidelity):
		return "invalid_fidelity"
	case errors.Is(err, ErrStageOrder):
		return "stage_order"
	default:
		return "internal"
	}
}
