// Package service drives model construction as a staged pipeline.
//
// A Pipeline moves through four stages, in order:
//
//	empty -> routers_loaded -> links_loaded -> paths_loaded
//
// Each transition is committed only when every entity of that stage was
// added. A failed transition returns the typed error from the domain, schema
// or loader package and leaves the pipeline at its last committed stage, so
// Network and Demand never expose a partially built model.
//
// # Event System
//
// Every committed transition publishes EventStageChanged and every failure
// publishes EventBuildFailed on the pipeline's EventBus. Publishing never
// blocks; slow subscribers miss events.
package service
