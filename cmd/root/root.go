package root

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/bnb/cmd/knapsack"
	"github.com/katalvlaran/bnb/cmd/sat"
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "bnb",
		Short: "bnb is a generic branch-and-bound / backtracking solver",
		Long: `A generic branch-and-bound and backtracking solver written in Go.
For more information visit https://github.com/katalvlaran/bnb`,
	}

	// add sub-commands
	rootCmd.AddCommand(knapsack.NewKnapsackCommand())
	rootCmd.AddCommand(sat.NewSatCommand())

	return rootCmd
}
