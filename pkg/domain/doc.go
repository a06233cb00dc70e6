/*
Package domain contains the core models of the datagate validation gate.

It defines the records exchanged between the configuration layer, the validator and the
adapters that persist or publish validation outcomes. This package is kept pure and free
of I/O so it can be shared by every adapter.

# Key Entities

  - ValidationConfig: where the data lives, what it must look like and where the status goes.
  - Report: the outcome of one validation run (missing columns, dtype mismatches).
  - ValidationHooks: optional callbacks for observability.
*/
package domain
