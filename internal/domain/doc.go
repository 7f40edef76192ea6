// Package domain defines the in-memory model of a quantum network and of the
// demand placed on it.
//
// # Core Types
//
// Network owns Routers keyed by name in insertion order, and the Links
// between them. Routers are created only through Network.AddRouter and keep a
// back-reference to their network for identity checks.
//
// Link connects two Routers of the same Network, possibly the same Router
// twice. Creating a link attaches it to the next free port of each endpoint;
// every Router numbers its own ports from 0.
//
// Demand is bound to one Network and owns Paths keyed by name in insertion
// order. A Path names two end-point Routers of that Network and the requested
// bandwidth and fidelity.
//
// # Referential Integrity
//
// Endpoint names are resolved only within the Network that owns the entity
// being created, and resolved Routers are compared by identity. A Router of
// another Network never satisfies a reference, even when the names match.
//
// # Failure Semantics
//
// Every Add operation checks all of its inputs before it mutates anything, so
// a failed call leaves the model exactly as it was. Failures reachable from
// document input are typed errors (see errors.go). Handing Network.Connect a
// Router of a different Network is a programming error and panics.
//
// The model is built by a single owner and is read-only afterwards; it does
// no locking of its own.
package domain
