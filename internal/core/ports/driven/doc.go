// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - TableSource: Opens a tabular data source (CSV, SQLite, Postgres)
//   - DiagnosticSink: Receives load diagnostics (skipped rows, summary)
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - ChangeWatcher: Signals source changes. Without it, hot reload is disabled.
//   - TableSink: Writes tables. Only the offline dataset tools need it.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
