package dijkstra_test

import (
	"testing"

	"github.com/arnodb/rhombus-sub000/dijkstra"
	"github.com/arnodb/rhombus-sub000/hex"
	"github.com/arnodb/rhombus-sub000/storage"
)

// BenchmarkDijkstra_Disk32 routes over a radius-32 disk with a weight that
// varies by column.
func BenchmarkDijkstra_Disk32(b *testing.B) {
	s := storage.New[struct{}]()
	for _, p := range hex.Disk(ax(0, 0), 32) {
		s.Insert(p, struct{}{})
	}
	weight := func(_, to hex.AxialVector) int64 { return int64(1 + (to.Q()&3)) }
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dijkstra.Dijkstra(s, ax(0, 0), dijkstra.WithWeight(weight)); err != nil {
			b.Fatal(err)
		}
	}
}
