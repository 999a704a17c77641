// Package table selects a table adapter by location and holds helpers
// shared by the database-backed adapters.
//
// Adapters live in subpackages:
//   - csvfile: CSV files (any location without a scheme)
//   - sqlite: sqlite://path/to.db?table=name
//   - postgres: postgres:// and postgresql:// connection URLs
package table
