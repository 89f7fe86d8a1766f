// Package ports defines the interfaces (ports) that connect the application
// layer to infrastructure adapters.
//
// # Port Interfaces
//
//   - [ReportRepository]: Persists the outcome of a run
//   - [FigureRenderer]: Writes histogram images
//   - [Logger]: Structured logging abstraction
//
// # Usage
//
// The application layer (internal/app) depends only on these interfaces.
// Infrastructure adapters (internal/adapters, internal/figures, pkg/log)
// implement them with concrete file system, plotting and zerolog code.
package ports
