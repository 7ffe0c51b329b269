package main

import (
	"github.com/block-alloc/abb/abb"
)

// workloadResult summarizes one pass of runWorkload over a policy.
type workloadResult struct {
	AllocAttempts   int
	AllocSuccesses  int
	DeallocCount    int
	ReallocAttempts int
	ReallocSuccess  int

	RequestedBytes uintptr // cumulative, every successful Allocate/Reallocate request size
	GrantedBytes   uintptr // cumulative, the Block.Size() actually handed back each time
	PeakLiveBytes  uintptr // high-water mark of GrantedBytes currently outstanding
}

// demoSizes cycles through a fixed, varied mix of request sizes so every
// policy sees both its small and large size classes exercised.
var demoSizes = []uintptr{16, 24, 48, 64, 96, 128, 192, 256}

// runWorkload drives a fixed alloc/free/realloc sequence through alloc: it
// allocates a ring of live blocks, periodically frees and reallocates the
// oldest one, and frees everything still outstanding at the end. The
// sequence itself is deterministic so bench and stats report comparable
// numbers run to run.
func runWorkload(alloc abb.Allocator, rounds int) workloadResult {
	var res workloadResult
	var liveBytes uintptr
	live := make([]abb.Block, 0, rounds)

	track := func(delta uintptr, grow bool) {
		if grow {
			liveBytes += delta
			if liveBytes > res.PeakLiveBytes {
				res.PeakLiveBytes = liveBytes
			}
		} else {
			liveBytes -= delta
		}
	}

	for i := 0; i < rounds; i++ {
		size := demoSizes[i%len(demoSizes)]
		res.AllocAttempts++

		b := alloc.Allocate(size)
		if b.IsNull() {
			continue
		}
		res.AllocSuccesses++
		res.RequestedBytes += size
		res.GrantedBytes += b.Size()
		track(b.Size(), true)
		live = append(live, b)

		if len(live) >= 4 {
			oldest := &live[0]
			before := oldest.Size()
			res.ReallocAttempts++
			if alloc.Reallocate(oldest, before*2) {
				res.ReallocSuccess++
				res.RequestedBytes += before
				res.GrantedBytes += oldest.Size() - before
				track(oldest.Size()-before, true)
			}

			freed := oldest.Size()
			alloc.Deallocate(oldest)
			res.DeallocCount++
			track(freed, false)
			live = live[1:]
		}
	}

	for i := range live {
		freed := live[i].Size()
		alloc.Deallocate(&live[i])
		res.DeallocCount++
		track(freed, false)
	}

	return res
}
