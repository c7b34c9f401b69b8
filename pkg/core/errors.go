package core

import "errors"

// Errors
var (
	ErrNoSites       = errors.New("no sites")
	ErrNilGraph      = errors.New("nil graph")
	ErrGraphMismatch = errors.New("graph does not span the site set")
)
