// Package usecase defines the interfaces for application use cases and
// their input/output types.
package usecase

import "time"

// PageRequest is the caller-supplied pagination input. Zero values
// fall back to the engine defaults; out-of-range values are clamped
// server-side, never rejected.
type PageRequest struct {
	Page    int `json:"page"`
	PerPage int `json:"perPage"`
}

// DateRange is an inclusive timestamp range. Either bound may be nil,
// in which case that side is unbounded.
type DateRange struct {
	Start *time.Time `json:"start,omitempty"`
	End   *time.Time `json:"end,omitempty"`
}
