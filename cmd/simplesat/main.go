// Command simplesat decides the satisfiability of a CNF formula given in
// DIMACS format and, when satisfiable, prints a satisfying assignment.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/alexflint/go-arg"

	"github.com/andrebq/simplesat"
	"github.com/andrebq/simplesat/internal/ferr"
)

type cliArgs struct {
	Output  string `arg:"-o,env:SIMPLESAT_OUTPUT" help:"write the solution to this file instead of stdout"`
	Verbose bool   `arg:"-v,env:SIMPLESAT_VERBOSE" help:"print branch/propagation statistics to stderr"`
	File    string `arg:"positional,env:SIMPLESAT_FILE" help:"DIMACS CNF input file (stdin if omitted)"`
}

func (cliArgs) Description() string {
	return "simplesat decides the satisfiability of a CNF formula given in DIMACS format.\n" +
		"It reads from the given file or from standard input, and writes the\n" +
		"verdict (and, if satisfiable, a model) to standard output or to -o's file."
}

func (cliArgs) Version() string {
	return "simplesat 1.0.0"
}

func main() {
	log.SetFlags(0)

	var cliA cliArgs
	arg.MustParse(&cliA)

	if err := run(cliA); err != nil {
		kind := ferr.InvalidUsage
		if fe, ok := ferr.As(err); ok {
			kind = fe.Kind
		}
		log.Println("simplesat:", err)
		os.Exit(kind.ExitCode())
	}
}

func run(a cliArgs) error {
	var r io.Reader = os.Stdin
	if a.File != "" {
		f, err := os.Open(a.File)
		if err != nil {
			return ferr.Wrap(ferr.FileAccess, err, "opening input file")
		}
		defer f.Close()
		r = f
	}

	problem, err := simplesat.ParseDIMACS(r)
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if a.Output != "" {
		f, err := os.Create(a.Output)
		if err != nil {
			return ferr.Wrap(ferr.FileAccess, err, "creating output file")
		}
		defer f.Close()
		w = f
	}

	sol := simplesat.Solve(problem)
	if a.Verbose {
		fmt.Fprintf(os.Stderr, "branches      %d\n", sol.Stats.NumBranches)
		fmt.Fprintf(os.Stderr, "propagations  %d\n", sol.Stats.NumPropagations)
		fmt.Fprintf(os.Stderr, "elapsed       %s\n", sol.Stats.Elapsed)
	}

	if err := simplesat.WriteSolution(w, sol); err != nil {
		return ferr.Wrap(ferr.FileAccess, err, "writing solution")
	}
	return nil
}
