// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - CutterTableStore: Supplies the Cutter table. Without it, Cutter generation returns no results.
//   - CutterTableWriter: Replaces a stored table (import).
//   - RulePackSource: Supplies rule pack documents. Without it, field validation is disabled.
//   - RulePackWatcher: Signals rule pack changes for hot reload.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or engine package
package driven
