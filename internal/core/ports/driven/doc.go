// Package driven provides interfaces for infrastructure adapters
// (secondary/outbound ports).
//
// Ports are defined by the consumer: the core services depend on these
// interfaces, and adapters under internal/adapters/driven implement them.
package driven
