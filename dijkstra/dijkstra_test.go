// Package dijkstra_test contains unit tests for the Dijkstra implementation
// on hex storage: validation, unit and custom weights, MaxDistance,
// InfEdgeThreshold and path reconstruction.
package dijkstra_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/arnodb/rhombus-sub000/dijkstra"
	"github.com/arnodb/rhombus-sub000/hex"
	"github.com/arnodb/rhombus-sub000/storage"
)

func ax(q, r int) hex.AxialVector { return hex.NewAxialVector(q, r) }

// chain stores (0,0)..(n-1,0).
func chain(n int) *storage.RectHash[int] {
	s := storage.New[int]()
	for q := 0; q < n; q++ {
		s.Insert(ax(q, 0), q)
	}
	return s
}

// detour stores the radius-1 disk around the origin minus (-1,1), so that
// (-1,0) and (1,0) are linked through the center or through the top arc only.
func detour() *storage.RectHash[int] {
	s := storage.New[int]()
	for _, p := range hex.Disk(ax(0, 0), 1) {
		if p != ax(-1, 1) {
			s.Insert(p, 0)
		}
	}
	return s
}

// expensiveCenter charges 10 for stepping onto the origin.
func expensiveCenter(_, to hex.AxialVector) int64 {
	if to == ax(0, 0) {
		return 10
	}
	return 1
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestDijkstra_NilStorage(t *testing.T) {
	_, err := dijkstra.Dijkstra[int](nil, ax(0, 0))
	if err != dijkstra.ErrStorageNil {
		t.Fatalf("Expected ErrStorageNil, got %v", err)
	}
}

func TestDijkstra_SourceNotFound(t *testing.T) {
	_, err := dijkstra.Dijkstra(chain(3), ax(7, 7))
	if !errors.Is(err, dijkstra.ErrSourceNotFound) {
		t.Fatalf("Expected ErrSourceNotFound, got %v", err)
	}
}

func TestDijkstra_NegativeWeight(t *testing.T) {
	neg := func(_, _ hex.AxialVector) int64 { return -1 }
	_, err := dijkstra.Dijkstra(chain(3), ax(0, 0), dijkstra.WithWeight(neg))
	if !errors.Is(err, dijkstra.ErrNegativeWeight) {
		t.Fatalf("Expected ErrNegativeWeight, got %v", err)
	}
}

func TestDijkstra_OptionPanics(t *testing.T) {
	for name, fn := range map[string]func(){
		"nil weight":     func() { dijkstra.WithWeight(nil) },
		"negative max":   func() { dijkstra.WithMaxDistance(-1)(&dijkstra.Options{}) },
		"zero threshold": func() { dijkstra.WithInfEdgeThreshold(0)(&dijkstra.Options{}) },
	} {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatalf("expected panic")
				}
			}()
			fn()
		})
	}
}

// ------------------------------------------------------------------------
// 2. Distances
// ------------------------------------------------------------------------

func TestDijkstra_UnitWeightsOnChain(t *testing.T) {
	res, err := dijkstra.Dijkstra(chain(5), ax(0, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Dist) != 5 {
		t.Fatalf("expected 5 settled positions, got %d", len(res.Dist))
	}
	for q := 0; q < 5; q++ {
		if d, ok := res.Distance(ax(q, 0)); !ok || d != int64(q) {
			t.Errorf("dist (%d,0) = %d,%v; want %d", q, d, ok, q)
		}
	}
	if res.Prev != nil {
		t.Errorf("Prev must be nil without WithReturnPath")
	}
	if _, err := res.PathTo(ax(4, 0)); err != dijkstra.ErrPathNotRecorded {
		t.Errorf("Expected ErrPathNotRecorded, got %v", err)
	}
}

func TestDijkstra_DetourAroundExpensiveCell(t *testing.T) {
	res, err := dijkstra.Dijkstra(detour(), ax(-1, 0),
		dijkstra.WithWeight(expensiveCenter),
		dijkstra.WithReturnPath(),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d, _ := res.Distance(ax(1, 0)); d != 3 {
		t.Errorf("dist to (1,0) = %d; want 3", d)
	}
	if d, _ := res.Distance(ax(0, 0)); d != 10 {
		t.Errorf("dist to (0,0) = %d; want 10", d)
	}
	path, err := res.PathTo(ax(1, 0))
	if err != nil {
		t.Fatalf("PathTo: %v", err)
	}
	want := []hex.AxialVector{ax(-1, 0), ax(0, -1), ax(1, -1), ax(1, 0)}
	if !reflect.DeepEqual(path, want) {
		t.Errorf("path = %v; want %v", path, want)
	}
	if path, _ := res.PathTo(ax(-1, 0)); !reflect.DeepEqual(path, []hex.AxialVector{ax(-1, 0)}) {
		t.Errorf("path to source = %v", path)
	}
}

func TestDijkstra_MaxDistance(t *testing.T) {
	res, err := dijkstra.Dijkstra(chain(5), ax(0, 0),
		dijkstra.WithMaxDistance(2),
		dijkstra.WithReturnPath(),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Dist) != 3 {
		t.Errorf("expected 3 settled positions, got %v", res.Dist)
	}
	if _, err := res.PathTo(ax(3, 0)); err != dijkstra.ErrNoPath {
		t.Errorf("Expected ErrNoPath, got %v", err)
	}
}

func TestDijkstra_InfEdgeThreshold(t *testing.T) {
	res, err := dijkstra.Dijkstra(detour(), ax(-1, 0),
		dijkstra.WithWeight(expensiveCenter),
		dijkstra.WithInfEdgeThreshold(10),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := res.Distance(ax(0, 0)); ok {
		t.Errorf("(0,0) must be impassable")
	}
	if d, _ := res.Distance(ax(1, 0)); d != 3 {
		t.Errorf("dist to (1,0) = %d; want 3", d)
	}
}

// TestDijkstra_UnitMatchesDistance checks unit-weight costs on a full disk
// against the lattice distance.
func TestDijkstra_UnitMatchesDistance(t *testing.T) {
	s := storage.New[struct{}]()
	center := ax(3, -2)
	for _, p := range hex.Disk(center, 6) {
		s.Insert(p, struct{}{})
	}
	res, err := dijkstra.Dijkstra(s, center)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Dist) != s.Len() {
		t.Fatalf("settled %d of %d", len(res.Dist), s.Len())
	}
	for p, d := range res.Dist {
		if int(d) != p.Distance(center) {
			t.Errorf("dist %v = %d; want %d", p, d, p.Distance(center))
		}
	}
}
