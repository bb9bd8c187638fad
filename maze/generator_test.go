package maze_test

import (
	"fmt"
	"testing"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var generatorFactories = map[string]func(maze.Random) maze.Generator{
	maze.AlgorithmDFS:     func(r maze.Random) maze.Generator { return maze.NewDFSGenerator(r) },
	maze.AlgorithmPrim:    func(r maze.Random) maze.Generator { return maze.NewPrimGenerator(r) },
	maze.AlgorithmWilson:  func(r maze.Random) maze.Generator { return maze.NewWilsonGenerator(r) },
	maze.AlgorithmKruskal: func(r maze.Random) maze.Generator { return maze.NewKruskalGenerator(r) },
}

func TestGenerators_ProducePerfectMazes(t *testing.T) {
	sizes := [][2]int{{1, 1}, {1, 6}, {6, 1}, {2, 2}, {4, 7}, {10, 10}, {15, 3}}

	for name, factory := range generatorFactories {
		for _, size := range sizes {
			for seed := int64(1); seed <= 5; seed++ {
				t.Run(fmt.Sprintf("%s/%dx%d/seed=%d", name, size[0], size[1], seed), func(t *testing.T) {
					m, err := factory(maze.NewRandom(seed)).Generate(size[0], size[1])
					require.NoError(t, err)
					requirePerfect(t, m, size[0], size[1])
					assert.Equal(t, maze.CellPath, m.Cell(1, 1))
				})
			}
		}
	}
}

func TestGenerators_RejectNonPositiveDimensions(t *testing.T) {
	for name, factory := range generatorFactories {
		t.Run(name, func(t *testing.T) {
			g := factory(maze.NewRandom(1))
			for _, dims := range [][2]int{{0, 3}, {3, 0}, {-1, 2}, {0, 0}} {
				m, err := g.Generate(dims[0], dims[1])
				assert.Nil(t, m)
				assert.ErrorIs(t, err, maze.ErrInvalidDimensions)
			}
		})
	}
}

func TestGenerators_SameSeedSameMaze(t *testing.T) {
	for name, factory := range generatorFactories {
		t.Run(name, func(t *testing.T) {
			a, err := factory(maze.NewRandom(42)).Generate(12, 9)
			require.NoError(t, err)
			b, err := factory(maze.NewRandom(42)).Generate(12, 9)
			require.NoError(t, err)
			assert.True(t, a.Equal(b), "identical seeds must carve identical mazes")
		})
	}
}

func TestGenerators_SingleCell(t *testing.T) {
	for name, factory := range generatorFactories {
		t.Run(name, func(t *testing.T) {
			m, err := factory(maze.NewRandom(7)).Generate(1, 1)
			require.NoError(t, err)
			assert.Equal(t, "###\n# #\n###\n", m.String())
		})
	}
}

func TestDFSGenerator_FirstNeighbourAlways(t *testing.T) {
	m, err := maze.NewDFSGenerator(constRandom(0)).Generate(2, 2)
	require.NoError(t, err)

	// Neighbours are scanned up, down, left, right, so index 0 walks
	// (0,0) -> (1,0) -> (1,1) -> (0,1).
	want := "#####\n" +
		"# # #\n" +
		"# # #\n" +
		"#   #\n" +
		"#####\n"
	assert.Equal(t, want, m.String())
}

func TestPrimGenerator_EqualWeightsBreakTiesByCoordinates(t *testing.T) {
	m, err := maze.NewPrimGenerator(constRandom(0)).Generate(2, 2)
	require.NoError(t, err)

	// With every weight 1 the edge order falls back to (x1, y1, x2, y2):
	// (0,0)-(0,1), (0,0)-(1,0), (0,1)-(1,1); (1,0)-(1,1) is stale.
	want := "#####\n" +
		"#   #\n" +
		"# # #\n" +
		"# # #\n" +
		"#####\n"
	assert.Equal(t, want, m.String())
}

func TestKruskalGenerator_FixedShuffle(t *testing.T) {
	m, err := maze.NewKruskalGenerator(constRandom(0)).Generate(2, 2)
	require.NoError(t, err)

	// Always swapping with index 0 rotates the edge list left by one, so
	// (1,0)-(1,1) is joined last and (0,0)-(1,0) is never needed.
	want := "#####\n" +
		"#   #\n" +
		"### #\n" +
		"#   #\n" +
		"#####\n"
	assert.Equal(t, want, m.String())
}

func TestGenerators_NilRandomFallsBack(t *testing.T) {
	for name, factory := range generatorFactories {
		t.Run(name, func(t *testing.T) {
			m, err := factory(nil).Generate(5, 5)
			require.NoError(t, err)
			requirePerfect(t, m, 5, 5)
		})
	}
}
