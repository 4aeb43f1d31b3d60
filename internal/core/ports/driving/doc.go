// Package driving defines the interfaces through which the CLI and TUI
// drive the core: account flows, the appointment lifecycle, the
// specialty directory and demo-data maintenance.
//
// All operations are local, synchronous and single-actor; none take a
// context because nothing blocks or is cancellable.
package driving
