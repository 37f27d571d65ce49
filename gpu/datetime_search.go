package gpu

import (
	"github.com/nazotools/gen5search/rngtime"
	"github.com/nazotools/gen5search/searchtime"
	"github.com/nazotools/gen5search/seedtypes"
)

// DatetimeSearcher mirrors searchtime.Searcher (C9) on the GPU pipeline:
// same DsConfig/StartupCondition/window/range, same NextBatch(n) paging
// contract, dispatched as SHA-1 compute shaders instead of the 4-lane
// SIMD CPU path. In this build it can never be constructed successfully.
type DatetimeSearcher struct {
	ctx *DeviceContext
}

// NewDatetimeSearcher acquires a DeviceContext and prepares a GPU-backed
// datetime searcher. It always returns seedtypes.ErrGpuUnavailable in this
// build; callers should construct a searchtime.Searcher instead.
func NewDatetimeSearcher(ds seedtypes.DsConfig, cond seedtypes.StartupCondition, window rngtime.TimeWindow, start seedtypes.Datetime, totalSeconds uint64) (*DatetimeSearcher, error) {
	ctx, err := NewDeviceContext()
	if err != nil {
		return nil, err
	}
	return &DatetimeSearcher{ctx: ctx}, nil
}

// NextBatch mirrors searchtime.Searcher.NextBatch's signature; unreachable
// in this build since construction always fails first.
func (s *DatetimeSearcher) NextBatch(n uint64) searchtime.Batch {
	return searchtime.Batch{}
}

// Close releases the underlying device context.
func (s *DatetimeSearcher) Close() error {
	return s.ctx.Close()
}
