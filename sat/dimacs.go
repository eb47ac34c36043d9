package sat

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// Sentinel errors for DIMACS parsing.
var (
	// ErrNoHeader is returned when the input declares no "p cnf" problem line.
	ErrNoHeader = errors.New("sat: missing problem header")

	// ErrBadClause is returned (wrapped, with detail) for malformed clause lines.
	ErrBadClause = errors.New("sat: malformed clause")
)

// Formula is a boolean formula in conjunctive normal form.
type Formula struct {
	// Vars is the number of variables, numbered 1..Vars.
	Vars int

	// Clauses hold literals in the DIMACS convention: v means variable v is
	// true, -v means it is false. No literal is 0.
	Clauses [][]int

	// varsByFrequency lists all variables, most frequently used first.
	// Branching in that order tends to decide many clauses early.
	varsByFrequency []int
}

// ParseDIMACS reads a CNF problem in DIMACS format: comment lines start with
// "c", a single "p cnf <vars> <clauses>" header precedes the clauses, and
// every clause is one line of literals terminated by 0.
func ParseDIMACS(r io.Reader) (*Formula, error) {
	var (
		f        Formula
		declared = -1
		scanner  = bufio.NewScanner(r)
	)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "" || strings.HasPrefix(line, "c"):
			continue

		case strings.HasPrefix(line, "p"):
			if declared >= 0 {
				return nil, fmt.Errorf("sat: duplicate problem header %q", line)
			}
			fields := strings.Fields(line)
			if len(fields) != 4 || fields[1] != "cnf" {
				return nil, fmt.Errorf("sat: malformed problem header %q", line)
			}
			vars, err := strconv.Atoi(fields[2])
			if err != nil || vars < 0 {
				return nil, fmt.Errorf("sat: invalid variable count %q", fields[2])
			}
			clauses, err := strconv.Atoi(fields[3])
			if err != nil || clauses < 0 {
				return nil, fmt.Errorf("sat: invalid clause count %q", fields[3])
			}
			f.Vars = vars
			declared = clauses

		default:
			if declared < 0 {
				return nil, ErrNoHeader
			}
			clause, err := parseClause(line, f.Vars)
			if err != nil {
				return nil, err
			}
			f.Clauses = append(f.Clauses, clause)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("sat: reading dimacs input: %w", err)
	}
	if declared < 0 {
		return nil, ErrNoHeader
	}
	if len(f.Clauses) != declared {
		return nil, fmt.Errorf("%w: header declares %d clauses, found %d", ErrBadClause, declared, len(f.Clauses))
	}
	f.rankVariables()

	return &f, nil
}

// parseClause parses one "l1 l2 ... 0" line.
func parseClause(line string, vars int) ([]int, error) {
	fields := strings.Fields(line)
	clause := make([]int, 0, len(fields)-1)
	for idx, field := range fields {
		lit, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("%w: literal %q in %q", ErrBadClause, field, line)
		}
		if lit == 0 {
			if idx != len(fields)-1 {
				return nil, fmt.Errorf("%w: literals after terminator in %q", ErrBadClause, line)
			}

			return clause, nil
		}
		if v := abs(lit); v > vars {
			return nil, fmt.Errorf("%w: variable %d out of range 1..%d", ErrBadClause, v, vars)
		}
		clause = append(clause, lit)
	}

	return nil, fmt.Errorf("%w: clause %q is not 0-terminated", ErrBadClause, line)
}

// rankVariables orders variables by descending clause frequency
// (index ascending on ties, for determinism).
func (f *Formula) rankVariables() {
	freq := make([]int, f.Vars+1)
	for _, clause := range f.Clauses {
		for _, lit := range clause {
			freq[abs(lit)]++
		}
	}
	f.varsByFrequency = make([]int, 0, f.Vars)
	for v := 1; v <= f.Vars; v++ {
		f.varsByFrequency = append(f.varsByFrequency, v)
	}
	sort.SliceStable(f.varsByFrequency, func(i, j int) bool {
		return freq[f.varsByFrequency[i]] > freq[f.varsByFrequency[j]]
	})
}

func abs(lit int) int {
	if lit < 0 {
		return -lit
	}

	return lit
}
