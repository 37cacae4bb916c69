// Command hexfov generates a noise terrain on a hexagonal disk, surveys it
// from evenly spread viewpoints and reports what each one can see and reach.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/arnodb/rhombus-sub000/config"
	"github.com/arnodb/rhombus-sub000/dijkstra"
	"github.com/arnodb/rhombus-sub000/fov"
	"github.com/arnodb/rhombus-sub000/hex"
	"github.com/arnodb/rhombus-sub000/hexgrid"
	"github.com/arnodb/rhombus-sub000/survey"
	"github.com/arnodb/rhombus-sub000/terrain"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (defaults are embedded)")
	seed := flag.Int64("seed", 0, "override terrain.seed when non-zero")
	csvPath := flag.String("csv", "", "override output.csv")
	dump := flag.String("dump-config", "", "write the effective config to this path and exit")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "hexfov:", err)
		os.Exit(2)
	}
	if *seed != 0 {
		cfg.Terrain.Seed = *seed
	}
	if *csvPath != "" {
		cfg.Output.CSV = *csvPath
	}
	if *dump != "" {
		if err := cfg.WriteYAML(*dump); err != nil {
			fmt.Fprintln(os.Stderr, "hexfov:", err)
			os.Exit(1)
		}
		return
	}

	logger, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "hexfov:", err)
		os.Exit(2)
	}
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		slog.Error("run failed", "error", err)
		os.Exit(1)
	}
}

// climbScale converts elevation gain into extra step cost.
const climbScale = 10

func newLogger(cfg *config.Config) (*slog.Logger, error) {
	lvl, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if cfg.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts)), nil
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts)), nil
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	origin := hex.NewAxialVector(0, 0)
	began := time.Now()

	logger.Info("generating terrain",
		"radius", cfg.Terrain.Radius,
		"seed", cfg.Terrain.Seed,
	)
	cells, err := terrain.Generate(origin, cfg.Terrain.Radius, cfg.TerrainOptions()...)
	if err != nil {
		return fmt.Errorf("generating terrain: %w", err)
	}
	opaque := terrain.OpaqueCount(cells)
	logger.Info("terrain ready",
		"cells", humanize.Comma(int64(cells.Len())),
		"opaque", humanize.Comma(int64(opaque)),
	)

	grid, err := hexgrid.New(cells, func(c terrain.Cell) bool { return !c.Opaque })
	if err != nil {
		return fmt.Errorf("building grid: %w", err)
	}
	regions := grid.ConnectedComponents()
	logger.Info("open regions", "count", len(regions))
	if len(regions) > 1 {
		if _, walls, err := grid.ExpandIsland(0, 1); err == nil {
			logger.Debug("walls separating the first two regions", "count", walls)
		}
	}

	centers, err := survey.PickViewpoints(cells, cfg.Survey.Viewpoints)
	if err != nil {
		return fmt.Errorf("picking viewpoints: %w", err)
	}

	opts := append(cfg.SurveyOptions(), survey.WithLogger(logger))
	results, err := survey.Run(ctx, cells, centers, opts...)
	if err != nil {
		return fmt.Errorf("surveying: %w", err)
	}

	sum := survey.Summarize(results)
	logger.Info("survey summary",
		"viewpoints", sum.Viewpoints,
		"mean_visible", fmt.Sprintf("%.1f", sum.MeanVisible),
		"stddev_visible", fmt.Sprintf("%.1f", sum.StdDevVisible),
		"median_visible", fmt.Sprintf("%.1f", sum.MedianVisible),
		"mean_reachable", fmt.Sprintf("%.1f", sum.MeanReachable),
		"mean_hidden", fmt.Sprintf("%.1f", sum.MeanHidden),
		"elapsed", humanize.RelTime(began, time.Now(), "", ""),
	)

	if len(centers) > 1 {
		from, to := centers[0], centers[len(centers)-1]
		res, err := dijkstra.Dijkstra(cells, from,
			dijkstra.WithWeight(terrain.TravelCost(cells, climbScale)),
			dijkstra.WithReturnPath(),
		)
		if err != nil {
			return fmt.Errorf("routing: %w", err)
		}
		if path, err := res.PathTo(to); err == nil {
			cost, _ := res.Distance(to)
			logger.Info("route between viewpoints",
				"from", from.String(),
				"to", to.String(),
				"steps", len(path)-1,
				"cost", cost,
			)
		} else {
			logger.Warn("viewpoints are not connected", "from", from.String(), "to", to.String())
		}
	}

	if cfg.Output.CSV != "" {
		if err := writeCSV(cfg.Output.CSV, results); err != nil {
			return err
		}
		logger.Info("results written", "path", cfg.Output.CSV, "rows", len(results))
	}

	if cfg.Output.Render && len(results) > 0 {
		best := results[sum.MaxVisibleIndex]
		center := hex.NewAxialVector(best.Q, best.R)
		visible, err := fov.Visible(center, cfg.Survey.MaxRadius, terrain.Obstacles(cells))
		if err != nil {
			return fmt.Errorf("rendering: %w", err)
		}
		fmt.Printf("best viewpoint %v sees %s cells\n", center, humanize.Comma(int64(best.Visible)))
		render(os.Stdout, cells, origin, cfg.Terrain.Radius, center, visible)
	}
	return nil
}

func writeCSV(path string, results []survey.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating csv: %w", err)
	}
	if err := survey.WriteCSV(f, results); err != nil {
		f.Close()
		return fmt.Errorf("writing csv: %w", err)
	}
	return f.Close()
}
