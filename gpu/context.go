package gpu

import "github.com/nazotools/gen5search/seedtypes"

// DeviceContext is the shared device/queue/pipeline-cache handle spec.md
// §5 describes: acquired once and reused across searchers, with each
// searcher owning exclusive input/output buffers for its own lifetime.
// It carries no fields in the fallback build — there is nothing to hold
// a handle to.
type DeviceContext struct{}

// NewDeviceContext attempts to acquire a GPU device context. In this
// build it always fails; callers must fall back to the CPU searchers
// (searchtime.New, rawseed.New) per spec.md §4.10.
func NewDeviceContext() (*DeviceContext, error) {
	return nil, seedtypes.ErrGpuUnavailable
}

// Close releases the device context. A nil receiver is a no-op, matching
// the fallback-path idiom of calling Close on whatever NewDeviceContext
// returned even when construction failed.
func (c *DeviceContext) Close() error {
	return nil
}
