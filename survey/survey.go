package survey

import (
	"context"
	"fmt"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/arnodb/rhombus-sub000/bfs"
	"github.com/arnodb/rhombus-sub000/fov"
	"github.com/arnodb/rhombus-sub000/hex"
	"github.com/arnodb/rhombus-sub000/largestarea"
	"github.com/arnodb/rhombus-sub000/storage"
	"github.com/arnodb/rhombus-sub000/terrain"
)

// Run surveys every center of s. Results are in the order of centers.
// Returns ErrNoViewpoints for an empty center list, option errors, the
// first viewpoint error (such as a center outside the map), or the context
// error.
//
// Viewpoints are read concurrently from s: s must not be mutated while Run
// is in progress.
// Complexity: O(len(centers) · r²) work spread over the workers.
func Run(ctx context.Context, s *storage.RectHash[terrain.Cell], centers []hex.AxialVector, opts ...Option) ([]Result, error) {
	if len(centers) == 0 {
		return nil, ErrNoViewpoints
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	start := time.Now()
	results := make([]Result, len(centers))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Workers)
	for i, center := range centers {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := viewpoint(gctx, s, center, o.MaxRadius)
			if err != nil {
				return fmt.Errorf("survey: viewpoint %v: %w", center, err)
			}
			o.Logger.Debug("viewpoint surveyed",
				"q", res.Q, "r", res.R,
				"visible", res.Visible,
				"reachable", res.Reachable,
				"hidden", res.Hidden,
			)
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	o.Logger.Info("survey complete",
		"viewpoints", len(centers),
		"radius", o.MaxRadius,
		"workers", o.Workers,
		"elapsed", time.Since(start),
	)
	return results, nil
}

// viewpoint measures a single center.
func viewpoint(ctx context.Context, s *storage.RectHash[terrain.Cell], center hex.AxialVector, radius int) (Result, error) {
	res := Result{Q: center.Q(), R: center.R()}

	visible, err := fov.Visible(center, radius, terrain.Obstacles(s))
	if err != nil {
		return res, err
	}
	res.Visible = len(visible)

	step := terrain.Walkable(s)
	if radius == 0 {
		// MaxDepth 0 means unlimited
		step = func(_, _ hex.AxialVector) bool { return false }
	}
	walk, err := bfs.BFS(s, center,
		bfs.WithContext(ctx),
		bfs.WithMaxDepth(radius),
		bfs.WithFilterNeighbor(step),
	)
	if err != nil {
		return res, err
	}
	res.Reachable = len(walk.Order)
	for _, p := range walk.Order {
		if _, seen := slices.BinarySearchFunc(visible, p, storage.ComparePositions); !seen {
			res.Hidden++
		}
	}

	rects := largestarea.New()
	rects.Initialize(slices.Values(visible))
	for range rects.All() {
		res.Rectangles++
	}
	return res, nil
}
