// Package scenario loads simulation runs from YAML documents. A
// scenario bundles the construction parameters, the growth parameters,
// and the host-side sampling schedule into one file.
package scenario

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"dendrite/pkg/builder"
	"dendrite/pkg/growth"
)

// Errors
var (
	ErrInvalidScenario = errors.New("invalid scenario")
)

// Scenario is the on-disk description of a full simulation run. Keys
// absent from the document keep their defaults.
type Scenario struct {
	Sites      int     `yaml:"sites"`
	BoundX     float64 `yaml:"bound_x"`
	BoundY     float64 `yaml:"bound_y"`
	EdgeSitesX int     `yaml:"edge_sites_x"`
	EdgeSitesY int     `yaml:"edge_sites_y"`
	Relax      int     `yaml:"relax"`
	Seed       int64   `yaml:"seed"`

	Lifetime int    `yaml:"lifetime"`
	Steps    int    `yaml:"steps"`
	Origin   *Point `yaml:"origin"`
	Walls    []Wall `yaml:"walls"`

	SampleEvery int `yaml:"sample_every"`
	SampleGrid  int `yaml:"sample_grid"`
}

// Point is a position in the scenario's coordinate space.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Wall is one carving instruction: the sites on the greedy path
// between the previous and current position become walls.
type Wall struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	PrevX float64 `yaml:"prev_x"`
	PrevY float64 `yaml:"prev_y"`
}

// Default returns the scenario used when no document overrides it,
// assembled from the builder and growth defaults. The origin stays nil
// until Parse resolves it against the bounds.
func Default() Scenario {
	bc := builder.DefaultConfig()
	gc := growth.DefaultConfig()
	return Scenario{
		Sites:       bc.Count,
		BoundX:      bc.BoundX,
		BoundY:      bc.BoundY,
		EdgeSitesX:  bc.EdgeSitesX,
		EdgeSitesY:  bc.EdgeSitesY,
		Relax:       bc.Relax,
		Seed:        bc.Seed,
		Lifetime:    gc.Lifetime,
		Steps:       gc.Steps,
		SampleEvery: 25,
		SampleGrid:  8,
	}
}

// Load reads and parses a scenario file.
func Load(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, errors.Wrap(err, "scenario: read")
	}
	return Parse(data)
}

// Parse decodes a YAML document over the defaults and validates the
// result. A missing origin resolves to the center of the bounds; an
// explicit origin must lie inside them.
func Parse(data []byte) (Scenario, error) {
	s := Default()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Scenario{}, errors.Wrap(err, "scenario: parse")
	}
	if s.Origin == nil {
		s.Origin = &Point{X: s.BoundX / 2, Y: s.BoundY / 2}
	}
	if err := s.validate(); err != nil {
		return Scenario{}, err
	}
	return s, nil
}

// BuilderConfig maps the scenario onto construction parameters.
func (s Scenario) BuilderConfig() builder.Config {
	return builder.Config{
		Count:      s.Sites,
		BoundX:     s.BoundX,
		BoundY:     s.BoundY,
		EdgeSitesX: s.EdgeSitesX,
		EdgeSitesY: s.EdgeSitesY,
		Relax:      s.Relax,
		Seed:       s.Seed,
	}
}

// GrowthConfig maps the scenario onto simulation parameters.
func (s Scenario) GrowthConfig() growth.Config {
	return growth.Config{Lifetime: s.Lifetime, Steps: s.Steps}
}

func (s Scenario) validate() error {
	switch {
	case s.Sites <= 0:
		return errors.Wrapf(ErrInvalidScenario, "sites = %d", s.Sites)
	case s.BoundX <= 0 || s.BoundY <= 0:
		return errors.Wrapf(ErrInvalidScenario, "bounds = %vx%v", s.BoundX, s.BoundY)
	case s.EdgeSitesX < 0 || s.EdgeSitesY < 0:
		return errors.Wrapf(ErrInvalidScenario, "edge sites = %d/%d", s.EdgeSitesX, s.EdgeSitesY)
	case s.Relax < 0:
		return errors.Wrapf(ErrInvalidScenario, "relax = %d", s.Relax)
	case s.Lifetime < 1:
		return errors.Wrapf(ErrInvalidScenario, "lifetime = %d", s.Lifetime)
	case s.Steps < 0:
		return errors.Wrapf(ErrInvalidScenario, "steps = %d", s.Steps)
	case s.Origin.X < 0 || s.Origin.X > s.BoundX || s.Origin.Y < 0 || s.Origin.Y > s.BoundY:
		return errors.Wrapf(ErrInvalidScenario, "origin (%v, %v) outside bounds", s.Origin.X, s.Origin.Y)
	case s.SampleEvery <= 0:
		return errors.Wrapf(ErrInvalidScenario, "sample_every = %d", s.SampleEvery)
	case s.SampleGrid < 0:
		return errors.Wrapf(ErrInvalidScenario, "sample_grid = %d", s.SampleGrid)
	}
	return nil
}
