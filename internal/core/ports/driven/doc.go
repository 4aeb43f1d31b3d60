// Package driven defines the interfaces the core depends on: durable
// key-value persistence and profile-photo loading. Adapters implement
// these; the core never imports an adapter.
package driven
