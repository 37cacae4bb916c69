package fov_test

import (
	"fmt"

	"github.com/arnodb/rhombus-sub000/fov"
	"github.com/arnodb/rhombus-sub000/hex"
)

////////////////////////////////////////////////////////////////////////////////
// Example: FieldOfView
////////////////////////////////////////////////////////////////////////////////

// ExampleFieldOfView grows the view ring by ring and prints the arcs left
// after a single obstacle east of the center.
func ExampleFieldOfView() {
	center := hex.NewAxialVector(0, 0)
	wall := center.Neighbor(0)

	var f fov.FieldOfView
	f.Start(center)
	for f.Radius() < 3 {
		f.NextRadius(func(p hex.AxialVector) bool { return p == wall })
	}
	for _, a := range f.Arcs() {
		fmt.Printf("%d%v -> %d%v\n", a.Start.PolarIndex, a.Start.Vertex, a.Stop.PolarIndex, a.Stop.Vertex)
	}

	// Output:
	// 2(2,2) -> 9(-3,0)
	// 9(-3,0) -> 16(1,-1)
}

// ExampleVisible lists what a single obstacle hides within two steps.
func ExampleVisible() {
	wall := hex.NewAxialVector(1, 0)
	visible, _ := fov.Visible(hex.NewAxialVector(0, 0), 2, func(p hex.AxialVector) bool { return p == wall })

	seen := map[hex.AxialVector]bool{}
	for _, p := range visible {
		seen[p] = true
	}
	fmt.Println("visible:", len(visible))
	for _, p := range hex.Disk(hex.NewAxialVector(0, 0), 2) {
		if !seen[p] {
			fmt.Println("hidden:", p)
		}
	}

	// Output:
	// visible: 18
	// hidden: (2,0)
}
