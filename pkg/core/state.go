package core

import "gonum.org/v1/gonum/floats"

// State enumerates the growth phases a site passes through.
type State uint8

const (
	StateNone State = iota // dormant, not yet reached by growth
	StateLive              // actively growing, ages every step
	StatePath              // finalized network segment
	StateDead              // growth terminated here, permanent
	StateWall              // obstacle, permanent
)

// StateCount is the number of state variants.
const StateCount = 5

func (s State) String() string {
	switch s {
	case StateNone:
		return "none"
	case StateLive:
		return "live"
	case StatePath:
		return "path"
	case StateDead:
		return "dead"
	case StateWall:
		return "wall"
	default:
		return "unknown"
	}
}

// Property is the per-site record the automaton evolves. Age counts the
// steps completed while Live. Child is the downstream site of a Path,
// Parent the neighbor that caused growth here; both hold NoSite when
// absent, so the zero Property is not a valid record.
type Property struct {
	State  State
	Age    int
	Child  int
	Parent int
}

// Numeric derives the one-hot encoding of the property's state.
func (p Property) Numeric() NumericProperty {
	var n NumericProperty
	n[p.State] = 1
	return n
}

// NumericProperty is a per-state vector of scalars, indexed by State.
// A single site's encoding is one-hot; interpolated blends stay convex
// combinations, so components always sum to 1 over covered queries.
type NumericProperty [StateCount]float64

// Add accumulates other component-wise.
func (n *NumericProperty) Add(other NumericProperty) {
	floats.Add(n[:], other[:])
}

// Scale multiplies every component by f.
func (n *NumericProperty) Scale(f float64) {
	floats.Scale(f, n[:])
}

// Sum returns the component total.
func (n NumericProperty) Sum() float64 {
	return floats.Sum(n[:])
}
