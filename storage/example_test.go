package storage_test

import (
	"fmt"

	"github.com/arnodb/rhombus-sub000/hex"
	"github.com/arnodb/rhombus-sub000/storage"
)

////////////////////////////////////////////////////////////////////////////////
// Example: RectHash
////////////////////////////////////////////////////////////////////////////////

// ExampleRectHash stores terrain heights around a position and reads one
// neighborhood back in a single adjacency lookup.
func ExampleRectHash() {
	heights := storage.New[int]()
	center := hex.NewAxialVector(0, -1)
	for _, p := range hex.Disk(center, 1) {
		heights.Insert(p, p.Distance(hex.NewAxialVector(0, 0)))
	}

	a := heights.HexWithAdjacents(center)
	fmt.Println("center:", *a.Hex(), "blocks:", a.BlockLookups())
	for dir := 0; dir < hex.NumDirections; dir++ {
		fmt.Print(*a.Adjacent(dir), " ")
	}
	fmt.Println()

	// Output:
	// center: 1 blocks: 4
	// 1 2 2 2 1 0
}

// ExampleEntry counts visits per position.
func ExampleEntry() {
	visits := storage.New[int]()
	for _, p := range []hex.AxialVector{
		hex.NewAxialVector(1, 1),
		hex.NewAxialVector(-9, 3),
		hex.NewAxialVector(1, 1),
	} {
		visits.Entry(p).AndModify(func(n *int) { *n++ }).OrInsert(1)
	}
	for _, p := range visits.SortedPositions() {
		n, _ := visits.Get(p)
		fmt.Println(p, n)
	}

	// Output:
	// (-9,3) 1
	// (1,1) 2
}
