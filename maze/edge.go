package maze

import "cmp"

const (
	minEdgeWeight = 1
	maxEdgeWeight = 10
)

// Edge joins two adjacent lattice cells with a random weight.
// Coordinates are lattice cells, not grid points.
type Edge struct {
	X1, Y1 int
	X2, Y2 int
	Weight int
}

// CompareEdges orders edges by weight, then by (X1, Y1, X2, Y2).
// The coordinate tie-break keeps Prim carving reproducible under a fixed seed.
func CompareEdges(a, b Edge) int {
	if c := cmp.Compare(a.Weight, b.Weight); c != 0 {
		return c
	}
	if c := cmp.Compare(a.X1, b.X1); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Y1, b.Y1); c != 0 {
		return c
	}
	if c := cmp.Compare(a.X2, b.X2); c != 0 {
		return c
	}
	return cmp.Compare(a.Y2, b.Y2)
}

func (e Edge) from() Point { return Point{X: e.X1, Y: e.Y1} }

func (e Edge) to() Point { return Point{X: e.X2, Y: e.Y2} }

// randomWeight draws a weight in [minEdgeWeight, maxEdgeWeight].
func randomWeight(r Random) int {
	return r.Intn(maxEdgeWeight-minEdgeWeight+1) + minEdgeWeight
}
