package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arnodb/rhombus-sub000/hex"
	"github.com/arnodb/rhombus-sub000/storage"
	"github.com/arnodb/rhombus-sub000/terrain"
)

func TestRender(t *testing.T) {
	origin := hex.NewAxialVector(0, 0)
	cells := storage.New[terrain.Cell]()
	for _, p := range hex.Disk(origin, 1) {
		cells.Insert(p, terrain.Cell{})
	}
	cells.Insert(hex.NewAxialVector(1, 0), terrain.Cell{Opaque: true})

	visible := []hex.AxialVector{
		hex.NewAxialVector(-1, 0),
		hex.NewAxialVector(-1, 1),
		hex.NewAxialVector(0, 0),
		hex.NewAxialVector(1, 0),
	}

	var buf bytes.Buffer
	render(&buf, cells, origin, 1, origin, visible)
	// Trailing blanks are trimmed, so the unseen top row is empty.
	want := "\n" +
		". @ %\n" +
		" .\n"
	assert.Equal(t, want, buf.String())
}

func TestGlyph(t *testing.T) {
	cells := storage.New[terrain.Cell]()
	open := hex.NewAxialVector(0, 0)
	wall := hex.NewAxialVector(1, 0)
	cells.Insert(open, terrain.Cell{})
	cells.Insert(wall, terrain.Cell{Opaque: true})

	assert.Equal(t, glyphViewer, glyph(cells, open, true, true))
	assert.Equal(t, glyphSeen, glyph(cells, open, false, true))
	assert.Equal(t, glyphUnseen, glyph(cells, open, false, false))
	assert.Equal(t, glyphWall, glyph(cells, wall, false, false))
	assert.Equal(t, glyphSeenWall, glyph(cells, wall, false, true))
	assert.Equal(t, glyphWall, glyph(cells, hex.NewAxialVector(9, 9), false, false))
}
