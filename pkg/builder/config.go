package builder

import "strconv"

// Config holds the construction parameters for a network.
type Config struct {
	Count      int     // scattered interior sites
	BoundX     float64 // rectangle width
	BoundY     float64 // rectangle height
	EdgeSitesX int     // sites per horizontal boundary edge, 0 = auto
	EdgeSitesY int     // sites per vertical boundary edge, 0 = auto
	Relax      int     // relaxation rounds
	Seed       int64
}

// DefaultConfig returns the standard construction parameters.
func DefaultConfig() Config {
	return Config{
		Count:  600,
		BoundX: 200,
		BoundY: 200,
		Relax:  2,
		Seed:   1337,
	}
}

// FromMap builds a Config from string key/value pairs, falling back to
// defaults for missing or malformed entries.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["sites"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Count = parsed
		}
	}
	if v, ok := cfg["bound_x"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.BoundX = parsed
		}
	}
	if v, ok := cfg["bound_y"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.BoundY = parsed
		}
	}
	if v, ok := cfg["edge_sites_x"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.EdgeSitesX = parsed
		}
	}
	if v, ok := cfg["edge_sites_y"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.EdgeSitesY = parsed
		}
	}
	if v, ok := cfg["relax"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Relax = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}
