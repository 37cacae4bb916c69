package survey

import (
	"slices"

	"gonum.org/v1/gonum/stat"
)

// Summary aggregates a survey.
type Summary struct {
	Viewpoints      int
	MeanVisible     float64
	StdDevVisible   float64
	MedianVisible   float64
	MeanReachable   float64
	MeanHidden      float64
	MeanRectangles  float64
	MaxVisible      int
	MaxVisibleIndex int
}

// Summarize reduces results. An empty input yields the zero Summary.
func Summarize(results []Result) Summary {
	if len(results) == 0 {
		return Summary{}
	}
	visible := make([]float64, len(results))
	reachable := make([]float64, len(results))
	hidden := make([]float64, len(results))
	rects := make([]float64, len(results))
	sum := Summary{Viewpoints: len(results)}
	for i, r := range results {
		visible[i] = float64(r.Visible)
		reachable[i] = float64(r.Reachable)
		hidden[i] = float64(r.Hidden)
		rects[i] = float64(r.Rectangles)
		if r.Visible > sum.MaxVisible {
			sum.MaxVisible, sum.MaxVisibleIndex = r.Visible, i
		}
	}

	sum.MeanVisible = stat.Mean(visible, nil)
	if len(visible) > 1 {
		sum.StdDevVisible = stat.StdDev(visible, nil)
	}
	sum.MeanReachable = stat.Mean(reachable, nil)
	sum.MeanHidden = stat.Mean(hidden, nil)
	sum.MeanRectangles = stat.Mean(rects, nil)

	slices.Sort(visible)
	sum.MedianVisible = stat.Quantile(0.5, stat.Empirical, visible, nil)
	return sum
}
