// Command beeopt runs the bees-algorithm solver on a YAML-described problem
// instance over several independently seeded restarts and reports a cost
// summary plus the best allocation found.
//
// Usage:
//
//	beeopt -config instance.yaml [-restarts 10] [-seed 1]
//
// See example.yaml next to this file for the config format.
package main

import (
	"flag"
	"fmt"
	"os"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/beeopt/bees"
	"github.com/katalvlaran/beeopt/cargo"
)

type problemConfig struct {
	Crossings     int         `yaml:"crossings"`
	GoodsTypes    int         `yaml:"goods_types"`
	Trucks        int         `yaml:"trucks"`
	TruckCapacity float64     `yaml:"truck_capacity"`
	FuelCost      float64     `yaml:"fuel_cost"`
	Duties        [][]float64 `yaml:"duties"`
	Distances     []float64   `yaml:"distances"`
	GoodsAmounts  []float64   `yaml:"goods_amounts"`
}

type solverConfig struct {
	PopulationSize  int `yaml:"population_size"`
	GoodsMutations  int `yaml:"goods_mutations"`
	TrucksMutations int `yaml:"trucks_mutations"`
	EliteSites      int `yaml:"elite_sites"`
	NormalSites     int `yaml:"normal_sites"`
	EliteSiteSize   int `yaml:"elite_site_size"`
	NormalSiteSize  int `yaml:"normal_site_size"`
}

type stopConfig struct {
	Generations int     `yaml:"generations"`
	Delta       float64 `yaml:"delta"`
}

type runConfig struct {
	Problem problemConfig `yaml:"problem"`
	Solver  solverConfig  `yaml:"solver"`
	Stop    stopConfig    `yaml:"stop"`
}

func main() {
	var (
		configPath = flag.String("config", "", "path to the YAML problem/solver config (required)")
		restarts   = flag.Int("restarts", 10, "independent solver restarts")
		baseSeed   = flag.Int64("seed", 1, "base RNG seed; restart r uses seed+r")
	)
	flag.Parse()

	if *configPath == "" {
		fmt.Fprintln(os.Stderr, "beeopt: -config is required")
		flag.Usage()
		os.Exit(2)
	}
	if err := run(*configPath, *restarts, *baseSeed); err != nil {
		fmt.Fprintf(os.Stderr, "beeopt: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, restarts int, baseSeed int64) error {
	raw, err := os.ReadFile(configPath)
	if err != nil {
		return err
	}
	var rc runConfig
	if err = yaml.Unmarshal(raw, &rc); err != nil {
		return err
	}

	settings, err := buildSettings(rc.Problem)
	if err != nil {
		return err
	}
	stop, err := buildStop(rc.Stop)
	if err != nil {
		return err
	}
	cfg := bees.Config{
		PopulationSize:  rc.Solver.PopulationSize,
		GoodsMutations:  rc.Solver.GoodsMutations,
		TrucksMutations: rc.Solver.TrucksMutations,
		EliteSites:      rc.Solver.EliteSites,
		NormalSites:     rc.Solver.NormalSites,
		EliteSiteSize:   rc.Solver.EliteSiteSize,
		NormalSiteSize:  rc.Solver.NormalSiteSize,
	}

	var (
		costs = make([]float64, 0, restarts)
		best  bees.Result
	)
	for r := 0; r < restarts; r++ {
		cfg.Seed = baseSeed + int64(r)
		res, rerr := bees.FindBestSolution(settings, cfg, stop)
		if rerr != nil {
			return rerr
		}
		fmt.Printf("restart %2d  seed %-6d  cost %.4f  generations %d  evaluations %d\n",
			r, cfg.Seed, res.Cost, res.Generations, res.Evaluations)

		costs = append(costs, res.Cost)
		if len(costs) == 1 || res.Cost < best.Cost {
			best = res
		}
	}

	fmt.Printf("\nsummary over %d restarts: best %.4f  mean %.4f  std %.4f\n",
		len(costs), best.Cost, stat.Mean(costs, nil), stat.StdDev(costs, nil))

	fmt.Printf("\nbest truck allocation (crossing per truck): %v\n", best.Best.TruckAllocation)
	fmt.Printf("best goods allocation (trucks × goods types):\n%v\n",
		mat.Formatted(best.Best.GoodsAllocation, mat.Prefix(""), mat.Squeeze()))

	return nil
}

// buildSettings flattens the YAML duties rows and delegates all shape/sign
// checking to cargo.NewSettings.
func buildSettings(p problemConfig) (cargo.Settings, error) {
	if len(p.Duties) != p.Crossings {
		return cargo.Settings{}, cargo.ErrDimensionMismatch
	}
	flat := make([]float64, 0, p.Crossings*p.GoodsTypes)
	for _, row := range p.Duties {
		if len(row) != p.GoodsTypes {
			return cargo.Settings{}, cargo.ErrDimensionMismatch
		}
		flat = append(flat, row...)
	}
	duties := mat.NewDense(p.Crossings, p.GoodsTypes, flat)

	return cargo.NewSettings(
		p.Crossings, p.GoodsTypes, p.Trucks,
		p.TruckCapacity, p.FuelCost,
		duties, p.Distances, p.GoodsAmounts,
	)
}

// buildStop maps the stop section to a strategy: a positive delta stops on
// stalled improvement, otherwise a generation budget applies. When both are
// set, whichever fires first terminates the run.
func buildStop(c stopConfig) (bees.StopCondition, error) {
	switch {
	case c.Generations > 0 && c.Delta > 0:
		byGen := bees.StopAfterGenerations(c.Generations)
		byDelta := bees.StopBelowDelta(c.Delta)

		return func(g int, prev, cur float64) bool {
			return byGen(g, prev, cur) || byDelta(g, prev, cur)
		}, nil
	case c.Generations > 0:
		return bees.StopAfterGenerations(c.Generations), nil
	case c.Delta > 0:
		return bees.StopBelowDelta(c.Delta), nil
	default:
		return nil, fmt.Errorf("stop: either generations or delta must be positive")
	}
}
