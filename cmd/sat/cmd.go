// Package sat implements the "bnb sat" sub-command: decide a CNF formula
// given in DIMACS format.
package sat

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	satlib "github.com/katalvlaran/bnb/sat"
)

func NewSatCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sat <path>",
		Short: "Decides a sat problem given in dimacs format",
		Long: `Decides a sat problem given in dimacs format. For instance:
c
c this is a comment
c header: p cnf <number of variables> <number of clauses>
p cnf 2 2
c clauses end in zero, negative means 'not'
1 2 0
1 -2 0
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
	dimacsFile, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("error opening dimacs file (%s): %w", path, err)
	}
	defer dimacsFile.Close()

	f, err := satlib.ParseDIMACS(dimacsFile)
	if err != nil {
		return fmt.Errorf("error parsing dimacs file (%s): %w", path, err)
	}

	assignment := satlib.Solve(f)
	if assignment == nil {
		fmt.Println("UNSAT")
		return nil
	}

	fmt.Println("SAT")
	for v := 1; v <= f.Vars; v++ {
		fmt.Printf("%d = %t\n", v, assignment[v])
	}

	return nil
}
