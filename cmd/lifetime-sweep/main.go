package main

import (
	"flag"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"dendrite/pkg/builder"
	"dendrite/pkg/core"
	"dendrite/pkg/growth"
)

type paramSet struct {
	lifetime int
	relax    int
	sites    int
}

func (p paramSet) String() string {
	return fmt.Sprintf("lifetime=%d relax=%d sites=%d", p.lifetime, p.relax, p.sites)
}

type scenarioResult struct {
	params     paramSet
	stats      growth.RunStats
	totalSites int
}

func main() {
	steps := flag.Int("steps", 400, "steps to simulate per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	seed := flag.Int64("seed", 1337, "scatter seed shared by all scenarios")
	flag.Parse()

	lifetimeOptions := []int{6, 12, 18, 24, 36, 48}
	relaxOptions := []int{0, 1, 2, 4}
	siteOptions := []int{300, 600, 1200}

	var sets []paramSet
	for _, lifetime := range lifetimeOptions {
		for _, relax := range relaxOptions {
			for _, sites := range siteOptions {
				sets = append(sets, paramSet{lifetime: lifetime, relax: relax, sites: sites})
			}
		}
	}

	fmt.Printf("Sweeping %d parameter sets (%d workers, %d steps)\n", len(sets), *workers, *steps)

	jobs := make(chan paramSet)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for params := range jobs {
				res, err := runScenario(params, *steps, *seed)
				if err != nil {
					fmt.Printf("Scenario %s failed: %v\n", params, err)
					continue
				}
				results <- res
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, params := range sets {
			jobs <- params
		}
		close(jobs)
	}()

	start := time.Now()
	var all []scenarioResult
	best := scenarioResult{}
	for res := range results {
		all = append(all, res)
		if res.stats.PeakPath > best.stats.PeakPath {
			best = res
		}
		if res.stats.Reached == res.totalSites {
			fmt.Printf("Candidate reached all %d sites by step %d with %s\n",
				res.totalSites, res.stats.QuiescentStep, res.params)
		}
	}

	sort.Slice(all, func(i, j int) bool { return all[i].stats.PeakPath > all[j].stats.PeakPath })
	elapsed := time.Since(start)

	fmt.Printf("\nTop 5 results (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for i := 0; i < len(all) && i < 5; i++ {
		res := all[i]
		st := res.stats
		fmt.Printf("%2d) peakPath=%d@%d chain=%d@%d peakLive=%d@%d reached=%d/%d dead=%d quiescent=%d params=%s\n",
			i+1, st.PeakPath, st.PeakPathStep, st.PeakChain, st.PeakChainStep,
			st.PeakLive, st.PeakLiveStep,
			st.Reached, res.totalSites, st.FinalCensus[core.StateDead], st.QuiescentStep, res.params)
	}

	st := best.stats
	fmt.Printf("\nBest overall: peakPath=%d@%d chain=%d@%d peakLive=%d@%d reached=%d/%d quiescent=%d params=%s\n",
		st.PeakPath, st.PeakPathStep, st.PeakChain, st.PeakChainStep,
		st.PeakLive, st.PeakLiveStep,
		st.Reached, best.totalSites, st.QuiescentStep, best.params)
}

func runScenario(params paramSet, steps int, seed int64) (scenarioResult, error) {
	cfg := builder.DefaultConfig()
	cfg.Count = params.sites
	cfg.Relax = params.relax
	cfg.Seed = seed

	net, err := builder.NewWithConfig(cfg).Build()
	if err != nil {
		return scenarioResult{}, err
	}
	net.SetLifetime(params.lifetime)
	net.Seed(cfg.BoundX/2, cfg.BoundY/2)

	stats := growth.Collect(net, steps)
	return scenarioResult{params: params, stats: stats, totalSites: net.Len()}, nil
}
