package chart

import (
	"fmt"

	"github.com/Veraticus/salesdash/internal/common"
	"github.com/Veraticus/salesdash/internal/model"
)

// Select moves from current to next. Every kind is reachable from every other;
// an unknown next keeps current.
func Select(current, next model.ChartKind) (model.ChartKind, error) {
	if !next.Valid() {
		return current, fmt.Errorf("%w: %d", common.ErrInvalidChartKind, int(next))
	}
	return next, nil
}

// Selector holds the currently selected chart kind.
type Selector struct {
	current model.ChartKind
}

// NewSelector returns a selector starting at kind, or bar if kind is unknown.
func NewSelector(kind model.ChartKind) *Selector {
	if !kind.Valid() {
		kind = model.ChartBar
	}
	return &Selector{current: kind}
}

// Current returns the selected kind.
func (s *Selector) Current() model.ChartKind {
	return s.current
}

// Set selects kind. It reports whether the selection changed.
func (s *Selector) Set(kind model.ChartKind) (bool, error) {
	next, err := Select(s.current, kind)
	if err != nil {
		return false, err
	}
	changed := next != s.current
	s.current = next
	return changed, nil
}

// Kinds lists the selectable kinds in display order.
func Kinds() []model.ChartKind {
	return model.ChartKinds()
}
