// Package knapsack implements the "bnb knapsack" sub-command: solve a 0/1
// knapsack instance described in a YAML file.
package knapsack

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	kn "github.com/katalvlaran/bnb/knapsack"
)

// instance is the YAML schema of a knapsack problem file.
type instance struct {
	Capacity uint64 `yaml:"capacity"`
	Items    []struct {
		Weight uint64 `yaml:"weight"`
		Value  uint64 `yaml:"value"`
	} `yaml:"items"`
}

func NewKnapsackCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "knapsack <path>",
		Short: "Solves a 0/1 knapsack instance given as a YAML file",
		Long: `Solves a 0/1 knapsack instance given as a YAML file. For instance:

capacity: 9
items:
  - weight: 6
    value: 5
  - weight: 1
    value: 1
  - weight: 2
    value: 2
  - weight: 4
    value: 4
`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(args[0]); errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("file (%s) not found", args[0])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return solve(args[0])
		},
	}
}

func solve(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading instance file (%s): %w", path, err)
	}

	var inst instance
	if err = yaml.Unmarshal(raw, &inst); err != nil {
		return fmt.Errorf("error parsing instance file (%s): %w", path, err)
	}

	items := make([]kn.Item, 0, len(inst.Items))
	for _, item := range inst.Items {
		items = append(items, kn.Item{Weight: item.Weight, Value: item.Value})
	}

	packed, total, err := kn.Solve(inst.Capacity, items)
	if err != nil {
		return err
	}

	var weight uint64
	fmt.Println("optimal packing:")
	for _, item := range packed {
		weight += item.Weight
		fmt.Printf("weight=%d value=%d\n", item.Weight, item.Value)
	}
	fmt.Printf("total weight: %d / %d\n", weight, inst.Capacity)
	fmt.Printf("total value: %d\n", total)

	return nil
}
