package gpu

import (
	"github.com/nazotools/gen5search/rawseed"
)

// MtSeedSearcher mirrors rawseed.Searcher (C11) on the GPU pipeline: the
// same four-seeds-per-step MT roll and IvFilter test, dispatched as MT
// compute shaders across much wider lane counts than the CPU's four. In
// this build it can never be constructed successfully.
type MtSeedSearcher struct {
	ctx *DeviceContext
}

// NewMtSeedSearcher acquires a DeviceContext and prepares a GPU-backed
// MT-seed searcher. It always returns seedtypes.ErrGpuUnavailable in this
// build; callers should construct a rawseed.Searcher instead.
func NewMtSeedSearcher(params rawseed.Params) (*MtSeedSearcher, error) {
	ctx, err := NewDeviceContext()
	if err != nil {
		return nil, err
	}
	return &MtSeedSearcher{ctx: ctx}, nil
}

// NextBatch mirrors rawseed.Searcher.NextBatch's signature; unreachable in
// this build since construction always fails first.
func (s *MtSeedSearcher) NextBatch(n uint64) []uint32 {
	return nil
}

// Close releases the underlying device context.
func (s *MtSeedSearcher) Close() error {
	return s.ctx.Close()
}
