package scenario

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const fullDocument = `
sites: 250
bound_x: 120
bound_y: 90
edge_sites_x: 6
edge_sites_y: 4
relax: 3
seed: 99
lifetime: 12
steps: 150
origin:
  x: 60
  y: 45
walls:
  - {x: 10, y: 10, prev_x: 20, prev_y: 20}
  - {x: 30, y: 5, prev_x: 30, prev_y: 25}
sample_every: 10
sample_grid: 4
`

func TestParseFullDocument(t *testing.T) {
	s, err := Parse([]byte(fullDocument))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if s.Sites != 250 || s.BoundX != 120 || s.BoundY != 90 {
		t.Fatalf("got %d sites in %vx%v, expected 250 in 120x90", s.Sites, s.BoundX, s.BoundY)
	}
	if s.EdgeSitesX != 6 || s.EdgeSitesY != 4 || s.Relax != 3 || s.Seed != 99 {
		t.Fatalf("construction parameters decoded as %+v", s)
	}
	if s.Lifetime != 12 || s.Steps != 150 {
		t.Fatalf("got lifetime %d steps %d, expected 12 and 150", s.Lifetime, s.Steps)
	}
	if s.Origin == nil || s.Origin.X != 60 || s.Origin.Y != 45 {
		t.Fatalf("got origin %+v, expected (60, 45)", s.Origin)
	}
	if len(s.Walls) != 2 {
		t.Fatalf("got %d walls, expected 2", len(s.Walls))
	}
	if w := s.Walls[1]; w.X != 30 || w.Y != 5 || w.PrevX != 30 || w.PrevY != 25 {
		t.Fatalf("second wall decoded as %+v", w)
	}
	if s.SampleEvery != 10 || s.SampleGrid != 4 {
		t.Fatalf("got sampling %d/%d, expected 10/4", s.SampleEvery, s.SampleGrid)
	}
}

func TestParseEmptyDocumentUsesDefaults(t *testing.T) {
	s, err := Parse(nil)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	def := Default()
	if s.Sites != def.Sites || s.Lifetime != def.Lifetime || s.Steps != def.Steps {
		t.Fatalf("got %+v, expected defaults", s)
	}
	if s.Origin == nil || s.Origin.X != def.BoundX/2 || s.Origin.Y != def.BoundY/2 {
		t.Fatalf("got origin %+v, expected center of bounds", s.Origin)
	}
	if len(s.Walls) != 0 {
		t.Fatalf("defaults include %d walls", len(s.Walls))
	}
}

func TestParseDefaultOriginTracksBounds(t *testing.T) {
	s, err := Parse([]byte("bound_x: 50\nbound_y: 30\n"))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if s.Origin.X != 25 || s.Origin.Y != 15 {
		t.Fatalf("got origin (%v, %v), expected (25, 15)", s.Origin.X, s.Origin.Y)
	}
}

func TestParseExplicitZeroesSurvive(t *testing.T) {
	s, err := Parse([]byte("relax: 0\nsample_grid: 0\n"))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if s.Relax != 0 || s.SampleGrid != 0 {
		t.Fatalf("explicit zeroes were replaced: %+v", s)
	}
}

func TestParseRejectsInvalidValues(t *testing.T) {
	for _, doc := range []string{
		"sites: -5",
		"sites: 0",
		"bound_x: 0",
		"bound_y: -2",
		"edge_sites_x: -1",
		"relax: -1",
		"lifetime: 0",
		"lifetime: -1",
		"steps: -3",
		"sample_every: 0",
		"sample_grid: -4",
		"origin: {x: -1, y: 50}",
		"origin: {x: 50, y: 300}",
	} {
		_, err := Parse([]byte(doc))
		if !errors.Is(err, ErrInvalidScenario) {
			t.Fatalf("%q parsed with err %v, expected ErrInvalidScenario", doc, err)
		}
	}
}

func TestParseMalformedDocument(t *testing.T) {
	_, err := Parse([]byte("sites: ["))
	if err == nil {
		t.Fatalf("malformed document parsed without error")
	}
	if errors.Is(err, ErrInvalidScenario) {
		t.Fatalf("syntax error reported as validation error: %v", err)
	}
}

func TestLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	if err := os.WriteFile(path, []byte(fullDocument), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	cfg := s.BuilderConfig()
	if cfg.Count != 250 || cfg.BoundX != 120 || cfg.BoundY != 90 || cfg.Seed != 99 {
		t.Fatalf("builder config decoded as %+v", cfg)
	}
	gc := s.GrowthConfig()
	if gc.Lifetime != 12 || gc.Steps != 150 {
		t.Fatalf("growth config decoded as %+v", gc)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("loading a missing file succeeded")
	}
}
