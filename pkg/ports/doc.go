/*
Package ports defines the driven ports (interfaces) for the datagate validator.

These interfaces decouple the validation logic from the concrete data sources and from
the places a validation outcome is published.

# Key Interfaces

  - TableLoader: Loads a dataset into an in-memory table (e.g., from CSV).
  - ReportSink: Publishes a finished validation report (e.g., to Redis).
  - StatusStore: Persists and reads back the plain-text status file.
*/
package ports
