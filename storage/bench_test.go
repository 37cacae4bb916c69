package storage_test

import (
	"testing"

	"github.com/arnodb/rhombus-sub000/hex"
	"github.com/arnodb/rhombus-sub000/storage"
)

func benchStorage(radius int) (*storage.RectHash[int], []hex.AxialVector) {
	s := storage.New[int]()
	disk := hex.Disk(hex.NewAxialVector(0, 0), radius)
	for i, p := range disk {
		s.Insert(p, i)
	}
	return s, disk
}

// BenchmarkRectHash_Get reads every position of a radius-64 disk.
func BenchmarkRectHash_Get(b *testing.B) {
	s, disk := benchStorage(64)
	b.ResetTimer()
	sum := 0
	for i := 0; i < b.N; i++ {
		v, _ := s.Get(disk[i%len(disk)])
		sum += v
	}
	_ = sum
}

// BenchmarkRectHash_HexWithAdjacents resolves full neighborhoods.
func BenchmarkRectHash_HexWithAdjacents(b *testing.B) {
	s, disk := benchStorage(64)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.HexWithAdjacents(disk[i%len(disk)])
	}
}

// BenchmarkRectHash_All walks every occupied slot.
func BenchmarkRectHash_All(b *testing.B) {
	s, _ := benchStorage(64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		n := 0
		for range s.All() {
			n++
		}
	}
}
