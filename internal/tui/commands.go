package tui

import (
	"context"
	"time"

	"github.com/Veraticus/salesdash/internal/source"
	tea "github.com/charmbracelet/bubbletea"
)

const loadTimeout = 30 * time.Second

// loadRecords fetches the full record set. The source never fails; it falls back instead.
func loadRecords(ds *source.DataSource) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()

		return dataLoadedMsg{records: ds.Fetch(ctx)}
	}
}

// completeFilter finishes applying threshold after latency.
func completeFilter(threshold float64, latency time.Duration) tea.Cmd {
	done := filterAppliedMsg{threshold: threshold}
	if latency <= 0 {
		return func() tea.Msg { return done }
	}
	return tea.Tick(latency, func(time.Time) tea.Msg { return done })
}
