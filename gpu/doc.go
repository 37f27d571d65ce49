// Package gpu mirrors the CPU datetime and MT-seed searchers (searchtime,
// rawseed) on a WebGPU compute pipeline, the accelerated path spec.md §4.10/
// §9 describes for C12: the same SHA-1 and MT schedules, dispatched as
// compute shaders, must agree with the CPU path byte-for-byte.
//
// No WebGPU binding exists anywhere in this module's dependency pack (the
// ecosystem has no mature, CGO-free Go WebGPU client at the time this
// engine was built), so this package is a documented extension point
// rather than a working accelerator: DeviceContext acquisition always
// fails with seedtypes.ErrGpuUnavailable, and every searcher constructor
// here returns that error without retrying. Nothing in this package falls
// back to the CPU equivalents (searchtime.Searcher, rawseed.Searcher);
// callers construct those themselves when they get the error.
//
// A real backend would add a `//go:build webgpu` variant of context.go
// wiring an actual device/queue/pipeline-cache triple; nothing else in
// this package would need to change, since DatetimeSearcher and
// MtSeedSearcher already take a DeviceContext as an opaque handle.
package gpu
