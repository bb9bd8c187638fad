package maze

import "github.com/spakin/disjoint"

// KruskalGenerator carves mazes with randomized Kruskal: every wall between
// adjacent cells is visited in random order and removed when it separates
// two disconnected regions.
type KruskalGenerator struct {
	random Random
}

// NewKruskalGenerator returns a Kruskal generator drawing from r.
// A nil r uses a time-seeded source.
func NewKruskalGenerator(r Random) *KruskalGenerator {
	return &KruskalGenerator{random: orDefault(r)}
}

// Generate carves a maze by joining regions until one remains.
func (g *KruskalGenerator) Generate(width, height int) (*Maze, error) {
	if err := validateDimensions(width, height); err != nil {
		return nil, err
	}

	m := newWalled(gridSize(width, height))
	regions := make([][]*disjoint.Element, width)
	for x := range regions {
		regions[x] = make([]*disjoint.Element, height)
		for y := range regions[x] {
			regions[x][y] = disjoint.NewElement()
			m.carve(toGrid(Point{X: x, Y: y}))
		}
	}

	edges := latticeEdges(width, height)
	g.shuffle(edges)

	for remaining := width * height; remaining > 1 && len(edges) > 0; edges = edges[1:] {
		e := edges[0]
		a, b := regions[e.X1][e.Y1], regions[e.X2][e.Y2]
		if a.Find() == b.Find() {
			continue
		}

		disjoint.Union(a, b)
		m.carve(wallBetween(e.from(), e.to()))
		remaining--
	}

	return m, nil
}

// shuffle permutes edges in place (Fisher-Yates).
func (g *KruskalGenerator) shuffle(edges []Edge) {
	for i := len(edges) - 1; i > 0; i-- {
		j := g.random.Intn(i + 1)
		edges[i], edges[j] = edges[j], edges[i]
	}
}

// latticeEdges lists every edge to a cell's lower and right neighbour in
// row-major order.
func latticeEdges(width, height int) []Edge {
	edges := make([]Edge, 0, 2*width*height)
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			if x+1 < width {
				edges = append(edges, Edge{X1: x, Y1: y, X2: x + 1, Y2: y})
			}
			if y+1 < height {
				edges = append(edges, Edge{X1: x, Y1: y, X2: x, Y2: y + 1})
			}
		}
	}
	return edges
}
