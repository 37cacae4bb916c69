package largestarea_test

import (
	"slices"
	"testing"

	"github.com/arnodb/rhombus-sub000/hex"
	"github.com/arnodb/rhombus-sub000/largestarea"
)

// BenchmarkIterator_Disk drains a radius-16 disk.
func BenchmarkIterator_Disk(b *testing.B) {
	disk := hex.Disk(hex.NewAxialVector(0, 0), 16)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		it := largestarea.New()
		it.Initialize(slices.Values(disk))
		for range it.All() {
		}
	}
}
