package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	jsonOut bool
	rounds  int
)

var rootCmd = &cobra.Command{
	Use:   "abbdemo",
	Short: "Drive fixed workloads through pre-built allocator policies",
	Long: `abbdemo exercises the composite allocator policies built from this
module's primitives and combinators. It is a smoke-test driver, not a
benchmarking harness: the workload is fixed and deterministic so results
are comparable run to run.`,
	Version: "0.1.0",
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().
		IntVar(&rounds, "rounds", 2000, "Number of allocate/free rounds to run")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
