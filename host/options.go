package host

import (
	"log/slog"

	"github.com/0glabs/nitro/manifest"
)

// Option defines a functional option for configuring the Executor.
type Option func(*Executor)

// WithLogger sets the logger used for hostio tracing and invocation
// logging. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(e *Executor) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithMemoryLimitPages caps the linear memory a guest may use, in 64 KiB
// wasm pages. Zero means the engine default.
func WithMemoryLimitPages(pages uint32) Option {
	return func(e *Executor) {
		e.memoryLimitPages = pages
	}
}

// loadConfig holds per-contract load configuration.
type loadConfig struct {
	entrypoint string
}

// LoadOption configures a single LoadContract call.
type LoadOption func(*loadConfig)

// WithEntrypoint overrides the export symbol the host invokes. Defaults to
// abi.EntrypointSymbol.
func WithEntrypoint(symbol string) LoadOption {
	return func(c *loadConfig) {
		if symbol != "" {
			c.entrypoint = symbol
		}
	}
}

// WithManifest applies a contract manifest's load settings, currently the
// entrypoint symbol.
func WithManifest(m *manifest.Manifest) LoadOption {
	return func(c *loadConfig) {
		if m != nil && m.Entrypoint != "" {
			c.entrypoint = m.Entrypoint
		}
	}
}
