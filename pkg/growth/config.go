package growth

import "strconv"

// Config holds the run parameters the command-line hosts drive a network
// with. Network construction itself is configured on the builder side.
type Config struct {
	Lifetime int
	Steps    int
}

// DefaultConfig returns the standard run configuration.
func DefaultConfig() Config {
	return Config{
		Lifetime: 24,
		Steps:    400,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["lifetime"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Lifetime = parsed
		}
	}
	if v, ok := cfg["steps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Steps = parsed
		}
	}
	return c
}
