package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newBenchCmd())
}

func newBenchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench <policy>",
		Short: "Run the fixed workload through a named policy and time it",
		Long: `The bench command drives the fixed allocate/free/reallocate workload
through a pre-built composite allocator policy and reports allocation
counts, reallocation success counts, and elapsed time.

Example:
  abbdemo bench linear
  abbdemo bench cascading --rounds 5000
  abbdemo bench freelist-over-heap --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(args[0])
		},
	}
	return cmd
}

// BenchReport is the bench command's output shape, exported for printJSON.
type BenchReport struct {
	Policy          string
	Rounds          int
	AllocAttempts   int
	AllocSuccesses  int
	DeallocCount    int
	ReallocAttempts int
	ReallocSuccess  int
	Elapsed         time.Duration
}

func runBench(policyName string) error {
	p, err := lookupPolicy(policyName)
	if err != nil {
		return err
	}

	alloc := p.new()
	start := time.Now()
	res := runWorkload(alloc, rounds)
	elapsed := time.Since(start)

	report := BenchReport{
		Policy:          p.name,
		Rounds:          rounds,
		AllocAttempts:   res.AllocAttempts,
		AllocSuccesses:  res.AllocSuccesses,
		DeallocCount:    res.DeallocCount,
		ReallocAttempts: res.ReallocAttempts,
		ReallocSuccess:  res.ReallocSuccess,
		Elapsed:         elapsed,
	}

	if jsonOut {
		return printJSON(report)
	}

	fmt.Printf("Policy: %s\n", report.Policy)
	fmt.Printf("  Rounds:            %d\n", report.Rounds)
	fmt.Printf("  Allocations:       %d/%d succeeded\n", report.AllocSuccesses, report.AllocAttempts)
	fmt.Printf("  Deallocations:     %d\n", report.DeallocCount)
	fmt.Printf("  Reallocations:     %d/%d succeeded\n", report.ReallocSuccess, report.ReallocAttempts)
	fmt.Printf("  Elapsed:           %s\n", report.Elapsed)
	return nil
}
