package core

import "math"

// NoSite marks the absence of a site reference (no parent, no child).
const NoSite = -1

// Site is an immutable 2D point. A site's identity is its index in the
// slice handed to the network at construction; positions never change
// afterward.
type Site struct {
	X, Y float64
}

// Distance returns the Euclidean distance to other.
func (s Site) Distance(other Site) float64 {
	return math.Hypot(s.X-other.X, s.Y-other.Y)
}

// SquaredDistance returns the squared Euclidean distance to other.
func (s Site) SquaredDistance(other Site) float64 {
	dx := s.X - other.X
	dy := s.Y - other.Y
	return dx*dx + dy*dy
}
