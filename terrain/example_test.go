package terrain_test

import (
	"fmt"

	"github.com/arnodb/rhombus-sub000/hex"
	"github.com/arnodb/rhombus-sub000/terrain"
)

// ExampleGenerate builds a small map and counts its walls. A threshold of
// 0 walls everything outside the clearing.
func ExampleGenerate() {
	s, err := terrain.Generate(hex.NewAxialVector(0, 0), 3,
		terrain.WithSeed(7),
		terrain.WithThreshold(0),
		terrain.WithClearing(1),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("cells:", s.Len(), "opaque:", terrain.OpaqueCount(s))

	// Output:
	// cells: 37 opaque: 30
}
