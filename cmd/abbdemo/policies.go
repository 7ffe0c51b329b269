package main

import (
	"fmt"
	"sort"

	"github.com/block-alloc/abb/abb"
)

// policy names a pre-built composite allocator and, where known, the
// capacity backing it. It exists purely to give the CLI a short,
// stable vocabulary ("linear", "cascading", ...) for policies that are
// otherwise expressed only as Go generic types at compile time.
type policy struct {
	name string
	new  func() abb.Allocator
	// capacity is the total buffer size backing the policy, when known
	// statically, for the stats command's byte-accounting report.
	capacity uintptr
}

const (
	demoBufferSize = 1 << 20 // 1 MiB
	demoAlignment  = 16
)

var policies = map[string]policy{
	"linear": {
		name:     "linear",
		new:      func() abb.Allocator { return abb.NewStackLinear(demoBufferSize, demoAlignment) },
		capacity: demoBufferSize,
	},
	"freelist-over-heap": {
		name: "freelist-over-heap",
		new: func() abb.Allocator {
			return abb.NewFreelist[abb.SystemHeap](abb.SystemHeap{}, 16, 256, 64, 16)
		},
	},
	"segregated": {
		name: "segregated",
		new: func() abb.Allocator {
			small := abb.NewStackLinear(demoBufferSize/4, demoAlignment)
			return abb.NewSegregator[*abb.Linear, abb.SystemHeap](256, small, abb.SystemHeap{})
		},
		capacity: demoBufferSize / 4,
	},
	"cascading": {
		name: "cascading",
		new: func() abb.Allocator {
			return abb.NewCascading[*abb.Linear](64, func() *abb.Linear {
				return abb.NewStackLinear(demoBufferSize/16, demoAlignment)
			})
		},
		capacity: demoBufferSize / 16,
	},
}

// policyNames returns every registered policy name, sorted, for usage text
// and error messages.
func policyNames() []string {
	names := make([]string, 0, len(policies))
	for n := range policies {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func lookupPolicy(name string) (policy, error) {
	p, ok := policies[name]
	if !ok {
		return policy{}, fmt.Errorf("unknown policy %q (available: %v)", name, policyNames())
	}
	return p, nil
}
