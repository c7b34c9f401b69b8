package growth

import "dendrite/pkg/core"

// RunStats summarizes a bounded run of an already seeded network.
type RunStats struct {
	StepsSimulated int
	QuiescentStep  int // step after which only fixed-point states remained, 0 when never reached
	PeakLive       int
	PeakLiveStep   int
	PeakPath       int
	PeakPathStep   int
	PeakChain      int // longest child chain of Path sites observed
	PeakChainStep  int
	FinalCensus    [core.StateCount]int
	Reached        int // sites that ever left None
}

// Collect steps net up to maxSteps times, recording per-step peaks, and
// stops early once no Live or Path sites remain, since every other state
// is a fixed point of Step. The caller seeds the network and sets its
// lifetime beforehand; with no lifetime set the stats come back zeroed.
func Collect(net *Network, maxSteps int) RunStats {
	var stats RunStats
	for step := 1; step <= maxSteps; step++ {
		if !net.Step() {
			break
		}
		stats.StepsSimulated = step
		census := net.Census()
		if census[core.StateLive] > stats.PeakLive {
			stats.PeakLive = census[core.StateLive]
			stats.PeakLiveStep = step
		}
		if census[core.StatePath] > stats.PeakPath {
			stats.PeakPath = census[core.StatePath]
			stats.PeakPathStep = step
		}
		if census[core.StatePath] > 0 {
			if chain := longestPathChain(net); chain > stats.PeakChain {
				stats.PeakChain = chain
				stats.PeakChainStep = step
			}
		}
		if census[core.StateLive] == 0 && census[core.StatePath] == 0 {
			stats.QuiescentStep = step
			break
		}
	}
	stats.FinalCensus = net.Census()
	stats.Reached = net.Len() - stats.FinalCensus[core.StateNone]
	return stats
}

// longestPathChain returns the longest run of Path sites linked by their
// child pointers. Child edges invert parent edges, which form a forest
// rooted at the seeds, so the walk cannot cycle.
func longestPathChain(net *Network) int {
	memo := make([]int, net.Len())
	for i := range memo {
		memo[i] = -1
	}
	var chain func(i int) int
	chain = func(i int) int {
		if net.props[i].State != core.StatePath {
			return 0
		}
		if memo[i] < 0 {
			memo[i] = 1 + chain(net.props[i].Child)
		}
		return memo[i]
	}
	best := 0
	for i := 0; i < net.Len(); i++ {
		if c := chain(i); c > best {
			best = c
		}
	}
	return best
}
