package main

import (
	"bufio"
	"io"
	"slices"
	"strings"

	"github.com/arnodb/rhombus-sub000/hex"
	"github.com/arnodb/rhombus-sub000/storage"
	"github.com/arnodb/rhombus-sub000/terrain"
)

// Map glyphs.
const (
	glyphViewer  = '@'
	glyphWall    = '#'
	glyphSeen    = '.'
	glyphUnseen  = ' '
	glyphSeenWall = '%'
)

// render prints the disk of the given radius around origin, one row per r,
// each row shifted by half a cell per step away from origin's row.
// visible must be sorted with storage.ComparePositions.
func render(w io.Writer, cells *storage.RectHash[terrain.Cell], origin hex.AxialVector, radius int, viewer hex.AxialVector, visible []hex.AxialVector) {
	bw := bufio.NewWriter(w)
	defer bw.Flush()

	seen := func(p hex.AxialVector) bool {
		_, ok := slices.BinarySearchFunc(visible, p, storage.ComparePositions)
		return ok
	}

	for dr := -radius; dr <= radius; dr++ {
		var line strings.Builder
		line.WriteString(strings.Repeat(" ", abs(dr)))
		for dq := max(-radius, -radius-dr); dq <= min(radius, radius-dr); dq++ {
			p := origin.Add(hex.NewAxialVector(dq, dr))
			line.WriteRune(glyph(cells, p, p == viewer, seen(p)))
			line.WriteByte(' ')
		}
		bw.WriteString(strings.TrimRight(line.String(), " "))
		bw.WriteByte('\n')
	}
}

func glyph(cells *storage.RectHash[terrain.Cell], p hex.AxialVector, viewer, seen bool) rune {
	c, ok := cells.Get(p)
	switch {
	case viewer:
		return glyphViewer
	case !ok || c.Opaque:
		if seen {
			return glyphSeenWall
		}
		return glyphWall
	case seen:
		return glyphSeen
	default:
		return glyphUnseen
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
