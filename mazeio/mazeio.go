// Package mazeio reads and writes mazes in a plain text grid format.
//
// Each line is one row. '#' is a wall and any other character is an open
// cell. When writing, points of an optional path are drawn as '.'.
package mazeio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/beka-birhanu/vinom-maze/maze"
)

const (
	wallRune    = '#'
	openRune    = ' '
	overlayRune = '.'
)

var (
	ErrEmptyMaze      = errors.New("mazeio: maze is empty")
	ErrEmptyRow       = errors.New("mazeio: first row is empty")
	ErrNonRectangular = errors.New("mazeio: rows have different lengths")
)

// Decode reads a maze from r.
func Decode(r io.Reader) (*maze.Maze, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		rows = append(rows, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("mazeio: reading maze: %w", err)
	}
	return DecodeRows(rows)
}

// DecodeRows builds a maze from its text rows. A trailing '\r' on a row is
// dropped.
func DecodeRows(rows []string) (*maze.Maze, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyMaze
	}

	width := len(strings.TrimSuffix(rows[0], "\r"))
	if width == 0 {
		return nil, ErrEmptyRow
	}

	cells := make([][]maze.CellType, len(rows))
	for i, row := range rows {
		row = strings.TrimSuffix(row, "\r")
		if len(row) != width {
			return nil, fmt.Errorf("%w: line %d has length %d, expected %d", ErrNonRectangular, i+1, len(row), width)
		}

		cells[i] = make([]maze.CellType, width)
		for j := 0; j < width; j++ {
			if row[j] == wallRune {
				cells[i][j] = maze.CellWall
			} else {
				cells[i][j] = maze.CellPath
			}
		}
	}

	return maze.New(cells)
}

// EncodeRows renders m as text rows without line terminators. Path points
// outside the maze are ignored.
func EncodeRows(m *maze.Maze, path maze.Path) []string {
	overlay := make(map[maze.Point]bool, len(path))
	for _, p := range path {
		overlay[p] = true
	}

	rows := make([]string, m.X())
	var b strings.Builder
	for x := 0; x < m.X(); x++ {
		b.Reset()
		for y := 0; y < m.Y(); y++ {
			switch {
			case m.Cell(x, y) == maze.CellWall:
				b.WriteByte(wallRune)
			case overlay[maze.Point{X: x, Y: y}]:
				b.WriteByte(overlayRune)
			default:
				b.WriteByte(openRune)
			}
		}
		rows[x] = b.String()
	}
	return rows
}

// Encode writes m to w, one '\n' terminated line per row.
func Encode(w io.Writer, m *maze.Maze, path maze.Path) error {
	bw := bufio.NewWriter(w)
	for _, row := range EncodeRows(m, path) {
		if _, err := bw.WriteString(row + "\n"); err != nil {
			return fmt.Errorf("mazeio: writing maze: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("mazeio: writing maze: %w", err)
	}
	return nil
}

// LoadFile decodes the maze stored in the named file.
func LoadFile(name string) (*maze.Maze, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Decode(f)
}

// SaveFile writes m, with the optional path overlay, to the named file.
func SaveFile(name string, m *maze.Maze, path maze.Path) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}

	if err := Encode(f, m, path); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
