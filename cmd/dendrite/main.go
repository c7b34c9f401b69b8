package main

import (
	"flag"
	"os"

	"github.com/plan-systems/klog"

	"dendrite/internal/scenario"
	"dendrite/pkg/builder"
	"dendrite/pkg/core"
	"dendrite/pkg/growth"
)

func main() {
	scenarioPath := flag.String("scenario", "", "YAML scenario to run (baked-in defaults when empty)")
	stepOverride := flag.Int("steps", 0, "override the scenario's step count")

	fset := flag.NewFlagSet("", flag.ContinueOnError)
	klog.InitFlags(fset)
	fset.Set("logtostderr", "true")
	fset.Set("v", "2")
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})

	flag.Parse()

	err := run(*scenarioPath, *stepOverride)
	if err != nil {
		klog.Errorf("%v", err)
	}
	klog.Flush()
	if err != nil {
		os.Exit(1)
	}
}

func run(path string, stepOverride int) error {
	var sc scenario.Scenario
	var err error
	if path == "" {
		sc, err = scenario.Parse(nil)
	} else {
		sc, err = scenario.Load(path)
	}
	if err != nil {
		return err
	}
	gc := sc.GrowthConfig()
	if stepOverride > 0 {
		gc.Steps = stepOverride
	}

	klog.Infof("building network: %d sites in %.0fx%.0f (relax %d, seed %d)",
		sc.Sites, sc.BoundX, sc.BoundY, sc.Relax, sc.Seed)
	net, err := builder.NewWithConfig(sc.BuilderConfig()).Build()
	if err != nil {
		return err
	}
	klog.Infof("network ready: %d sites, %d edges", net.Len(), net.Graph().EdgeCount())

	net.SetLifetime(gc.Lifetime)
	for _, w := range sc.Walls {
		if !net.MarkWall(w.X, w.Y, w.PrevX, w.PrevY) {
			klog.Warningf("wall (%v,%v)-(%v,%v) has no path between its endpoints, skipped",
				w.PrevX, w.PrevY, w.X, w.Y)
		}
	}
	origin := net.Seed(sc.Origin.X, sc.Origin.Y)
	klog.Infof("seeded site %d near (%v, %v)", origin, sc.Origin.X, sc.Origin.Y)

	keys := registerGrid(net, sc)

	for step := 1; step <= gc.Steps; step++ {
		if !net.Step() {
			break
		}
		census := net.Census()
		if step%sc.SampleEvery == 0 || step == gc.Steps {
			covered, field := fieldSummary(net, keys)
			klog.Infof("step %4d: live=%d path=%d dead=%d wall=%d none=%d field[%d/%d] live=%.3f path=%.3f",
				step, census[core.StateLive], census[core.StatePath], census[core.StateDead],
				census[core.StateWall], census[core.StateNone],
				covered, len(keys), field[core.StateLive], field[core.StatePath])
		}
		if census[core.StateLive] == 0 && census[core.StatePath] == 0 {
			klog.Infof("quiescent after %d steps", step)
			break
		}
	}

	census := net.Census()
	reached := net.Len() - census[core.StateNone]
	klog.Infof("run complete: %d/%d sites reached, dead=%d wall=%d",
		reached, net.Len(), census[core.StateDead], census[core.StateWall])
	return nil
}

// registerGrid registers a lattice of field probes over the interior
// of the bounds, one per grid cell center.
func registerGrid(net *growth.Network, sc scenario.Scenario) []int {
	n := sc.SampleGrid
	if n <= 0 {
		return nil
	}
	keys := make([]int, 0, n*n)
	for gy := 0; gy < n; gy++ {
		for gx := 0; gx < n; gx++ {
			x := sc.BoundX * (float64(gx) + 0.5) / float64(n)
			y := sc.BoundY * (float64(gy) + 0.5) / float64(n)
			keys = append(keys, net.RegisterQuery(x, y))
		}
	}
	return keys
}

// fieldSummary averages the registered field probes, skipping the
// uncovered ones.
func fieldSummary(net *growth.Network, keys []int) (int, core.NumericProperty) {
	var acc core.NumericProperty
	covered := 0
	for _, key := range keys {
		vec, ok := net.Sample(key)
		if !ok {
			continue
		}
		acc.Add(vec)
		covered++
	}
	if covered > 0 {
		acc.Scale(1 / float64(covered))
	}
	return covered, acc
}
