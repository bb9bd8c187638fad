package maze

import (
	"fmt"
	"strings"
)

// Recognized algorithm names.
const (
	AlgorithmDFS      = "dfs"
	AlgorithmPrim     = "prim"
	AlgorithmWilson   = "wilson"
	AlgorithmKruskal  = "kruskal"
	AlgorithmDijkstra = "dijkstra"
	AlgorithmAStar    = "astar"
)

// ChooseGenerator returns the generator registered under name, drawing from r.
// Names are case-insensitive. Unknown names yield ErrUnknownAlgorithm.
func ChooseGenerator(name string, r Random) (Generator, error) {
	switch normalize(name) {
	case AlgorithmDFS:
		return NewDFSGenerator(r), nil
	case AlgorithmPrim:
		return NewPrimGenerator(r), nil
	case AlgorithmWilson:
		return NewWilsonGenerator(r), nil
	case AlgorithmKruskal:
		return NewKruskalGenerator(r), nil
	default:
		return nil, fmt.Errorf("%w: generator %q", ErrUnknownAlgorithm, name)
	}
}

// ChooseSolver returns the solver registered under name.
// Names are case-insensitive. Unknown names yield ErrUnknownAlgorithm.
func ChooseSolver(name string) (Solver, error) {
	switch normalize(name) {
	case AlgorithmDijkstra:
		return NewDijkstra(), nil
	case AlgorithmAStar:
		return NewAStar(), nil
	default:
		return nil, fmt.Errorf("%w: solver %q", ErrUnknownAlgorithm, name)
	}
}

// GeneratorNames lists the names ChooseGenerator accepts.
func GeneratorNames() []string {
	return []string{AlgorithmDFS, AlgorithmPrim, AlgorithmWilson, AlgorithmKruskal}
}

// SolverNames lists the names ChooseSolver accepts.
func SolverNames() []string {
	return []string{AlgorithmDijkstra, AlgorithmAStar}
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
