package tui

import "github.com/Veraticus/salesdash/internal/model"

// dataLoadedMsg carries the full record set once the source has answered.
type dataLoadedMsg struct {
	records []model.SalesRecord
}

// filterAppliedMsg completes a pending filter once the apply latency has passed.
type filterAppliedMsg struct {
	threshold float64
}

// focusArea is the part of the dashboard receiving keys.
type focusArea int

const (
	focusFilter focusArea = iota
	focusChart
)
