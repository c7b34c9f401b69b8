package growth

import (
	"testing"

	"gonum.org/v1/gonum/floats"

	"dendrite/pkg/core"
)

// stubQuerier returns canned weight entries keyed by query coordinates
// and counts how often it is consulted.
type stubQuerier struct {
	entries map[[2]float64]core.WeightEntry
	calls   int
}

func (q *stubQuerier) QueryWeights(p core.Site) core.WeightEntry {
	q.calls++
	return q.entries[[2]float64{p.X, p.Y}]
}

func stubbedLine(t *testing.T, n int, q core.WeightQuerier) *Network {
	t.Helper()
	sites := make([]core.Site, n)
	for i := range sites {
		sites[i] = core.Site{X: float64(i), Y: 0}
	}
	graph := core.NewUndirectedGraph(n)
	for i := 0; i < n-1; i++ {
		graph.AddEdge(i, i+1)
	}
	net, err := New(sites, graph, q)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return net
}

func TestRegisterQueryMintsMonotonicKeys(t *testing.T) {
	q := &stubQuerier{entries: map[[2]float64]core.WeightEntry{}}
	net := stubbedLine(t, 3, q)

	for want := 0; want < 4; want++ {
		if got := net.RegisterQuery(0.5, 0); got != want {
			t.Fatalf("key = %d, expected %d", got, want)
		}
	}
	if got := net.QueryCount(); got != 4 {
		t.Fatalf("QueryCount = %d, expected 4", got)
	}
	if got := q.calls; got != 4 {
		t.Fatalf("querier consulted %d times, expected once per registration", got)
	}
}

// TestWeightStabilityAcrossSteps locks the cache contract: weights are
// computed once at registration and reused verbatim, while the blended
// values track the automaton's current states.
func TestWeightStabilityAcrossSteps(t *testing.T) {
	q := &stubQuerier{entries: map[[2]float64]core.WeightEntry{
		{0.5, 0}: {{Site: 0, Weight: 0.5}, {Site: 1, Weight: 0.5}},
	}}
	net := stubbedLine(t, 3, q)
	net.SetLifetime(2)
	net.Seed(0, 0)

	key := net.RegisterQuery(0.5, 0)
	if q.calls != 1 {
		t.Fatalf("registration consulted querier %d times, expected 1", q.calls)
	}

	assertBlend := func(label string, wantNone, wantLive, wantPath float64) {
		t.Helper()
		got, ok := net.Sample(key)
		if !ok {
			t.Fatalf("%s: Sample reported no coverage", label)
		}
		want := core.NumericProperty{wantNone, wantLive, wantPath, 0, 0}
		if !floats.EqualApprox(got[:], want[:], 1e-12) {
			t.Fatalf("%s: Sample = %v, expected %v", label, got, want)
		}
	}

	// Site 0 Live, site 1 None.
	assertBlend("after seed", 0.5, 0.5, 0)

	net.Step() // 0: Live(1), 1: Live(0)
	assertBlend("after step 1", 0, 1, 0)

	net.Step() // 0: Path(1), 1: Live(1)
	assertBlend("after step 2", 0, 0.5, 0.5)

	if q.calls != 1 {
		t.Fatalf("sampling consulted querier %d times, weights must stay frozen", q.calls)
	}
}

func TestRegisterQueryNoCoverage(t *testing.T) {
	q := &stubQuerier{entries: map[[2]float64]core.WeightEntry{}}
	net := stubbedLine(t, 3, q)

	key := net.RegisterQuery(9, 9)
	got, ok := net.Sample(key)
	if ok {
		t.Fatal("Sample of an uncovered entry must report false")
	}
	if got != (core.NumericProperty{}) {
		t.Fatalf("uncovered Sample = %v, expected zero vector", got)
	}
	if _, ok := net.SampleAt(9, 9); ok {
		t.Fatal("SampleAt outside coverage must report false")
	}
}

func TestSampleAtBypassesCache(t *testing.T) {
	q := &stubQuerier{entries: map[[2]float64]core.WeightEntry{
		{1, 0}: {{Site: 1, Weight: 1}},
	}}
	net := stubbedLine(t, 3, q)
	net.Seed(1, 0)

	for i := 0; i < 3; i++ {
		got, ok := net.SampleAt(1, 0)
		if !ok {
			t.Fatal("SampleAt reported no coverage")
		}
		if got[core.StateLive] != 1 {
			t.Fatalf("SampleAt live component = %f, expected 1", got[core.StateLive])
		}
	}
	if got := net.QueryCount(); got != 0 {
		t.Fatalf("SampleAt registered %d keys, expected none", got)
	}
	if q.calls != 3 {
		t.Fatalf("querier consulted %d times, expected once per SampleAt", q.calls)
	}
}

func TestNilQuerierLeavesQueriesUncovered(t *testing.T) {
	net := lineNetwork(t, 3)

	key := net.RegisterQuery(1, 0)
	if _, ok := net.Sample(key); ok {
		t.Fatal("nil querier must yield no coverage")
	}
	if _, ok := net.SampleAt(1, 0); ok {
		t.Fatal("nil querier must yield no coverage for SampleAt")
	}
	if got := net.NearestSite(1.2, 0); got != 1 {
		t.Fatalf("NearestSite = %d, expected 1", got)
	}
}

func TestPropertyOfReflectsCurrentState(t *testing.T) {
	net := lineNetwork(t, 3)
	net.Seed(0, 0)

	got := net.PropertyOf(0)
	if got[core.StateLive] != 1 {
		t.Fatalf("PropertyOf(0) live component = %f, expected 1", got[core.StateLive])
	}
	if got.Sum() != 1 {
		t.Fatalf("PropertyOf sum = %f, expected 1", got.Sum())
	}
	if got := net.PropertyOf(2); got[core.StateNone] != 1 {
		t.Fatalf("PropertyOf(2) none component = %f, expected 1", got[core.StateNone])
	}
}

func TestSampleUnknownKeyPanics(t *testing.T) {
	net := lineNetwork(t, 3)
	defer func() {
		if recover() == nil {
			t.Fatal("Sample with an unregistered key must panic")
		}
	}()
	net.Sample(0)
}
