package maze

// CellType marks a single grid cell as blocked or traversable.
type CellType uint8

const (
	CellWall CellType = iota // CellWall blocks traversal.
	CellPath                 // CellPath is traversable.
)

// String returns the name of the cell type.
func (c CellType) String() string {
	switch c {
	case CellWall:
		return "WALL"
	case CellPath:
		return "PATH"
	default:
		return "UNKNOWN"
	}
}
