// Package filter narrows a record set down to the records meeting a sales threshold.
package filter

import (
	"math"

	"github.com/Veraticus/salesdash/internal/common"
	"github.com/Veraticus/salesdash/internal/model"
)

// ThresholdMessage is shown when a threshold is rejected.
const ThresholdMessage = "Threshold must be a positive number"

// Validate checks that threshold is usable as a filter.
func Validate(threshold float64) error {
	if math.IsNaN(threshold) || threshold < 0 {
		return common.NewUserError(ThresholdMessage, common.ErrNegativeThreshold)
	}
	return nil
}

// Apply returns the records whose sales meet or exceed threshold, in their original order.
// The input slice is never modified. A rejected threshold returns a nil slice and the
// validation error; callers keep whatever they were displaying.
func Apply(full []model.SalesRecord, threshold float64) ([]model.SalesRecord, error) {
	if err := Validate(threshold); err != nil {
		return nil, err
	}

	out := make([]model.SalesRecord, 0, len(full))
	for _, r := range full {
		if r.Sales >= threshold {
			out = append(out, r)
		}
	}
	return out, nil
}

// Clear returns the full set unmodified.
func Clear(full []model.SalesRecord) []model.SalesRecord {
	return full
}

// State is the filter state of a dashboard session.
type State struct {
	Threshold float64
	Active    bool
}

// Apply validates threshold and records it. The state is unchanged on error.
func (s *State) Apply(threshold float64) error {
	if err := Validate(threshold); err != nil {
		return err
	}
	s.Threshold = threshold
	s.Active = true
	return nil
}

// Clear resets the state to the identity filter.
func (s *State) Clear() {
	s.Threshold = 0
	s.Active = false
}

// Select returns the active set for this state.
func (s State) Select(full []model.SalesRecord) []model.SalesRecord {
	if !s.Active {
		return Clear(full)
	}
	out, err := Apply(full, s.Threshold)
	if err != nil {
		return Clear(full)
	}
	return out
}
