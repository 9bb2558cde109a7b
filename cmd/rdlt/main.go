package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rdlt/analyzer"
	"github.com/katalvlaran/rdlt/inputfmt"
)

var (
	depthCap              int
	closedWalkEnumeration bool
	mixJoinsAllowed       bool
)

// rootCmd is the single reporting collaborator described in spec §6: one
// positional argument (the input file path), exit code 0 whenever
// analysis completes regardless of verdict, non-zero on input error or
// internal failure.
var rootCmd = &cobra.Command{
	Use:   "rdlt <input-file>",
	Short: "Evaluate L-Safeness and Classical Soundness of an RDLT workflow graph",
	Args:  cobra.ExactArgs(1),
	RunE:  run,
}

func init() {
	rootCmd.Flags().IntVar(&depthCap, "depth-cap", 0, "bound path/walk/DFS enumeration (0 = stage default)")
	rootCmd.Flags().BoolVar(&closedWalkEnumeration, "closed-walk-enumeration", false, "enumerate distinct simple cycles for RBS self-loop reusability instead of asserting existence")
	rootCmd.Flags().BoolVar(&mixJoinsAllowed, "mix-joins-allowed", false, "do not penalize a MIX-join for differing non-ε incoming conditions alone")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	path := args[0]
	contents, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("rdlt: reading %s: %w", path, err)
	}

	in, err := inputfmt.Parse(string(contents))
	if err != nil {
		return reportFatal(err)
	}

	result, err := analyzer.Analyze(in,
		analyzer.WithDepthCap(depthCap),
		analyzer.WithClosedWalkEnumeration(closedWalkEnumeration),
		analyzer.WithMixJoinsAllowed(mixJoinsAllowed),
	)
	if err != nil {
		return reportFatal(err)
	}

	return printResult(cmd, result)
}

// reportFatal logs err (spec §7's fatal error kinds are all surfaced this
// way: InputMalformed, AttributeParseError, UnknownVertexInBridge,
// MultipleSourcesOrSinks) and returns it so Execute exits non-zero.
func reportFatal(err error) error {
	log.Printf("rdlt: analysis aborted: %v", err)
	return err
}

func printResult(cmd *cobra.Command, result analyzer.Result) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
