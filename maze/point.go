package maze

import (
	"fmt"
	"strconv"
	"strings"
)

// Point is a (row, column) index into a maze grid.
type Point struct {
	X int `json:"x" bson:"x"` // Row index
	Y int `json:"y" bson:"y"` // Column index
}

// Path is an ordered sequence of points from start to end inclusive.
// A zero-length Path means no route was found.
type Path []Point

// Found reports whether the path holds at least one point.
func (p Path) Found() bool {
	return len(p) > 0
}

// Steps returns the number of moves along the path.
func (p Path) Steps() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// String formats the point as "x,y", the same form ParsePoint accepts.
func (p Point) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// add returns the point shifted by the given offset.
func (p Point) add(d offset) Point {
	return Point{X: p.X + d.dx, Y: p.Y + d.dy}
}

// Manhattan returns |dx| + |dy| between two points.
func Manhattan(a, b Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

// ParsePoint parses "x,y" into a Point. Whitespace around each number is ignored.
func ParsePoint(s string) (Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Point{}, fmt.Errorf("%w: %q, expected format: x,y", ErrInvalidPoint, s)
	}

	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Point{}, fmt.Errorf("%w: %q, expected format: x,y", ErrInvalidPoint, s)
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Point{}, fmt.Errorf("%w: %q, expected format: x,y", ErrInvalidPoint, s)
	}

	return Point{X: x, Y: y}, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
