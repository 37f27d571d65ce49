// Package planner splits a datetime/startup search's cartesian space into
// independent, self-contained tasks for external task parallelism (spec.md
// §5 C10): Timer0 range × VCount range × key-combination set × time-range,
// sub-dividing the time range when there are fewer combinations than
// workers so every worker stays busy. Tasks do not communicate; each is
// consumed by its own searchtime.Searcher.
package planner

import (
	"github.com/aead/siphash"
	"github.com/nazotools/gen5search/rngtime"
	"github.com/nazotools/gen5search/seedinput"
	"github.com/nazotools/gen5search/seedtypes"
)

// SearchParams is one self-contained unit of search work: a startup
// description narrowed to a single Timer0/VCount counter pair and a single
// time slice. An independent searcher consumes exactly one SearchParams.
type SearchParams struct {
	Ds         seedtypes.DsConfig
	RangeStart seedtypes.Datetime
	RangeEnd   seedtypes.Datetime
	Counter    seedinput.Timer0VCountRange
	KeyMasks   []uint32
}

// jobKeyHashKey is the fixed SipHash-2-4 key used to derive stable job
// keys from SearchParams. It is not a secret — job keys only need to be
// stable across process restarts, not unforgeable — so a fixed key is
// appropriate (spec.md §5 checkpoint notes; SPEC_FULL.md §3).
var jobKeyHashKey = [siphash.KeySize]byte{
	0x67, 0x65, 0x6e, 0x35, 0x73, 0x65, 0x61, 0x72,
	0x63, 0x68, 0x2d, 0x6a, 0x6f, 0x62, 0x2d, 0x6b,
}

// JobKey derives a stable 64-bit identifier for a SearchParams, used both
// as the task dedup key and as the checkpoint row key (SPEC_FULL.md §3
// checkpoint.JobState). Two SearchParams with identical field values
// always hash to the same key, regardless of process or run.
func JobKey(p SearchParams) uint64 {
	return siphash.Sum64(encodeSearchParams(p), &jobKeyHashKey)
}

func encodeSearchParams(p SearchParams) []byte {
	buf := make([]byte, 0, 64)
	buf = append(buf, p.Ds.Mac[:]...)
	buf = append(buf, byte(p.Ds.Hardware), byte(p.Ds.Version), byte(p.Ds.Region))
	buf = appendDatetime(buf, p.RangeStart)
	buf = appendDatetime(buf, p.RangeEnd)
	buf = appendU16(buf, p.Counter.Timer0Min)
	buf = appendU16(buf, p.Counter.Timer0Max)
	buf = append(buf, p.Counter.VCountMin, p.Counter.VCountMax)
	for _, mask := range p.KeyMasks {
		buf = appendU32(buf, mask)
	}
	return buf
}

func appendU16(buf []byte, v uint16) []byte { return append(buf, byte(v>>8), byte(v)) }
func appendU32(buf []byte, v uint32) []byte {
	return append(buf, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}
func appendDatetime(buf []byte, dt seedtypes.Datetime) []byte {
	buf = appendU16(buf, dt.Year)
	return append(buf, dt.Month, dt.Day, dt.Hour, dt.Minute, dt.Second)
}

// Split partitions a startup search space into SearchParams tasks: one per
// (counter, time-slice) pair. When there are fewer counters than workers,
// each counter's time range is further divided into
// ceil(workers/len(counters)) consecutive slices so every worker has a
// task, matching spec.md §5's sub-division rule.
func Split(spec seedinput.StartupSpec, workers int) []SearchParams {
	if len(spec.Counters) == 0 || workers <= 0 {
		return nil
	}

	slicesPerCounter := 1
	if workers > len(spec.Counters) {
		slicesPerCounter = ceilDiv(workers, len(spec.Counters))
	}

	datetimes := rngtime.EnumerateRange(spec.RangeStart, spec.RangeEnd)
	tasks := make([]SearchParams, 0, len(spec.Counters)*slicesPerCounter)
	for _, counter := range spec.Counters {
		for _, slice := range timeSlices(datetimes, slicesPerCounter) {
			tasks = append(tasks, SearchParams{
				Ds:         spec.Ds,
				RangeStart: slice[0],
				RangeEnd:   slice[len(slice)-1],
				Counter:    counter,
				KeyMasks:   spec.KeyMasks,
			})
		}
	}
	return tasks
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// timeSlices partitions an ordered datetime sequence into at most n
// contiguous, non-empty slices. Fewer than n slices are returned when the
// sequence is shorter than n.
func timeSlices(datetimes []seedtypes.Datetime, n int) [][]seedtypes.Datetime {
	if len(datetimes) == 0 {
		return nil
	}
	if n < 1 {
		n = 1
	}
	if n > len(datetimes) {
		n = len(datetimes)
	}

	base := len(datetimes) / n
	remainder := len(datetimes) % n
	out := make([][]seedtypes.Datetime, 0, n)
	idx := 0
	for i := 0; i < n; i++ {
		size := base
		if i < remainder {
			size++
		}
		out = append(out, datetimes[idx:idx+size])
		idx += size
	}
	return out
}
