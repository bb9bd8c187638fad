package maze_test

import (
	"testing"

	"github.com/beka-birhanu/vinom-maze/maze"
)

// BenchmarkGenerators carves a 100x100 lattice with each generator.
func BenchmarkGenerators(b *testing.B) {
	for name, factory := range generatorFactories {
		b.Run(name, func(b *testing.B) {
			g := factory(maze.NewRandom(1))
			for i := 0; i < b.N; i++ {
				_, _ = g.Generate(100, 100)
			}
		})
	}
}

// BenchmarkSolvers solves corner to corner on a pre-built 100x100 Prim maze.
func BenchmarkSolvers(b *testing.B) {
	m, err := maze.NewPrimGenerator(maze.NewRandom(1)).Generate(100, 100)
	if err != nil {
		b.Fatal(err)
	}
	start := maze.Point{X: 1, Y: 1}
	end := maze.Point{X: m.X() - 2, Y: m.Y() - 2}

	for name, s := range solvers {
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = s.Solve(m, start, end)
			}
		})
	}
}
