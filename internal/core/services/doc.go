// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// Every service takes an injected *slog.Logger; there is no
// process-wide logging singleton.
package services
