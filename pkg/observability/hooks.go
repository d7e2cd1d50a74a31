// Package observability provides hooks for metrics and logging instrumentation.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about roster ingestion and pipeline execution.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends to be attached later
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPipelineHooks(&myPipelineHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Pipeline().OnLayoutStart(ctx, blockCount)
//	// ... pack blocks ...
//	observability.Pipeline().OnLayoutComplete(ctx, pageCount, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Pipeline Hooks
// =============================================================================

// PipelineHooks receives events from the chart generation pipeline.
type PipelineHooks interface {
	// Read events
	OnReadStart(ctx context.Context, source string)
	OnReadComplete(ctx context.Context, source string, recordCount int, duration time.Duration, err error)

	// Build events (hierarchy construction, aggregation, sorting)
	OnBuildStart(ctx context.Context, recordCount int)
	OnBuildComplete(ctx context.Context, divisionCount, skipped int, duration time.Duration, err error)

	// Layout events
	OnLayoutStart(ctx context.Context, blockCount int)
	OnLayoutComplete(ctx context.Context, pageCount int, duration time.Duration, err error)

	// Render events
	OnRenderStart(ctx context.Context, output string)
	OnRenderComplete(ctx context.Context, output string, duration time.Duration, err error)
}

// =============================================================================
// Reader Hooks
// =============================================================================

// ReaderHooks receives events from roster ingestion.
type ReaderHooks interface {
	// OnRecord records a successfully decoded roster row.
	OnRecord(ctx context.Context, employeeID string)

	// OnRecordSkipped records a row excluded from the tree, with the reason.
	OnRecordSkipped(ctx context.Context, employeeID, reason string)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnReadStart(context.Context, string) {}
func (NoopPipelineHooks) OnReadComplete(context.Context, string, int, time.Duration, error) {
}
func (NoopPipelineHooks) OnBuildStart(context.Context, int)                              {}
func (NoopPipelineHooks) OnBuildComplete(context.Context, int, int, time.Duration, error) {}
func (NoopPipelineHooks) OnLayoutStart(context.Context, int)                             {}
func (NoopPipelineHooks) OnLayoutComplete(context.Context, int, time.Duration, error)    {}
func (NoopPipelineHooks) OnRenderStart(context.Context, string)                          {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, string, time.Duration, error) {}

// NoopReaderHooks is a no-op implementation of ReaderHooks.
type NoopReaderHooks struct{}

func (NoopReaderHooks) OnRecord(context.Context, string)                {}
func (NoopReaderHooks) OnRecordSkipped(context.Context, string, string) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	readerHooks   ReaderHooks   = NoopReaderHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks.
// This should be called once at application startup before any pipeline operations.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// SetReaderHooks registers custom reader hooks.
// This should be called once at application startup before any roster is read.
func SetReaderHooks(h ReaderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		readerHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Reader returns the registered reader hooks.
func Reader() ReaderHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return readerHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
	readerHooks = NoopReaderHooks{}
}
