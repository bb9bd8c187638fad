// Package cli implements the maze command line tool.
package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/mazeio"
	"github.com/spf13/cobra"
)

// Exit codes returned by Run.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

const noPathMessage = "Path was not found."

// runtimeError marks failures that happen after the arguments were accepted.
type runtimeError struct {
	err error
}

func (e *runtimeError) Error() string { return e.err.Error() }

func (e *runtimeError) Unwrap() error { return e.err }

func failure(format string, args ...any) error {
	return &runtimeError{err: fmt.Errorf(format, args...)}
}

// Run executes the tool with args (without the program name) and returns the
// process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)

	err := root.Execute()
	if err == nil {
		return ExitOK
	}

	fmt.Fprintln(stderr, "Error:", err)
	var rt *runtimeError
	if errors.As(err, &rt) {
		return ExitFailure
	}
	return ExitUsage
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "maze",
		Short:         "Maze generator and solver",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.AddCommand(newGenerateCmd(), newSolveCmd(), newAlgorithmsCmd())
	return root
}

func newGenerateCmd() *cobra.Command {
	var (
		algorithm string
		width     int
		height    int
		output    string
		seed      int64
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a maze with the given algorithm and dimensions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if width <= 0 || height <= 0 {
				return maze.ErrInvalidDimensions
			}

			var r maze.Random
			if cmd.Flags().Changed("seed") {
				r = maze.NewRandom(seed)
			}
			gen, err := maze.ChooseGenerator(algorithm, r)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.ErrOrStderr(), "Generating maze, algorithm: %s\n", algorithm)
			m, err := gen.Generate(width, height)
			if err != nil {
				return failure("generating maze: %w", err)
			}

			return emit(cmd, m, nil, output)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&algorithm, "algorithm", "a", "", "generation algorithm ("+strings.Join(maze.GeneratorNames(), ", ")+")")
	f.IntVarP(&width, "width", "w", 0, "number of cells across the lattice")
	f.IntVarP(&height, "height", "h", 0, "number of cells down the lattice")
	f.StringVarP(&output, "output", "o", "", "file to save the maze to")
	f.Int64Var(&seed, "seed", 0, "seed for a reproducible maze")
	// -h belongs to height, so help is long-form only.
	f.Bool("help", false, "help for generate")
	for _, name := range []string{"algorithm", "width", "height"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func newSolveCmd() *cobra.Command {
	var (
		algorithm string
		start     string
		end       string
		input     string
		output    string
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a maze file between two points",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			solver, err := maze.ChooseSolver(algorithm)
			if err != nil {
				return err
			}
			from, err := maze.ParsePoint(start)
			if err != nil {
				return err
			}
			to, err := maze.ParsePoint(end)
			if err != nil {
				return err
			}

			m, err := mazeio.LoadFile(input)
			if err != nil {
				return failure("loading maze: %w", err)
			}

			if !m.InBound(from.X, from.Y) || !m.InBound(to.X, to.Y) {
				return failure("start or end point is out of maze bounds")
			}
			if !m.IsPath(from) || !m.IsPath(to) {
				return failure("start or end point is inside a wall")
			}

			fmt.Fprintf(cmd.ErrOrStderr(), "Solving maze, algorithm: %s\n", algorithm)
			path := solver.Solve(m, from, to)
			if !path.Found() {
				fmt.Fprintln(cmd.OutOrStdout(), noPathMessage)
				return nil
			}

			return emit(cmd, m, path, output)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&algorithm, "algorithm", "a", "", "solving algorithm ("+strings.Join(maze.SolverNames(), ", ")+")")
	f.StringVar(&start, "start", "", "start point as x,y")
	f.StringVar(&end, "end", "", "end point as x,y")
	f.StringVarP(&input, "file", "f", "", "maze file to solve")
	f.StringVar(&input, "input", "", "alias of --file")
	f.StringVarP(&output, "output", "o", "", "file to save the solved maze to")
	_ = f.MarkHidden("input")
	for _, name := range []string{"algorithm", "start", "end"} {
		_ = cmd.MarkFlagRequired(name)
	}
	cmd.MarkFlagsOneRequired("file", "input")
	return cmd
}

func newAlgorithmsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List the recognized algorithm names",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "generators:", strings.Join(maze.GeneratorNames(), " "))
			fmt.Fprintln(out, "solvers:", strings.Join(maze.SolverNames(), " "))
		},
	}
}

// emit prints m with the path overlay and saves it when output is set.
func emit(cmd *cobra.Command, m *maze.Maze, path maze.Path, output string) error {
	if err := mazeio.Encode(cmd.OutOrStdout(), m, path); err != nil {
		return failure("printing maze: %w", err)
	}
	if output == "" {
		return nil
	}
	if err := mazeio.SaveFile(output, m, path); err != nil {
		return failure("saving maze: %w", err)
	}
	return nil
}
