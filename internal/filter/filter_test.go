package filter

import (
	"math"
	"testing"

	"github.com/Veraticus/salesdash/internal/common"
	"github.com/Veraticus/salesdash/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quarter() []model.SalesRecord {
	return []model.SalesRecord{
		{ID: "1", Month: "January", Sales: 4000, Revenue: 24000},
		{ID: "2", Month: "February", Sales: 3000, Revenue: 18000},
		{ID: "3", Month: "March", Sales: 2000, Revenue: 12000},
	}
}

func months(records []model.SalesRecord) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.Month)
	}
	return out
}

func TestApply(t *testing.T) {
	tests := []struct {
		name      string
		want      []string
		threshold float64
	}{
		{name: "zero keeps everything", threshold: 0, want: []string{"January", "February", "March"}},
		{name: "inclusive boundary", threshold: 3000, want: []string{"January", "February"}},
		{name: "between values", threshold: 2500, want: []string{"January", "February"}},
		{name: "only the top", threshold: 4000, want: []string{"January"}},
		{name: "above max", threshold: 4001, want: []string{}},
		{name: "fractional", threshold: 1999.99, want: []string{"January", "February", "March"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Apply(quarter(), tt.threshold)
			require.NoError(t, err)
			assert.Equal(t, tt.want, months(got))
		})
	}
}

func TestApply_PreservesOrder(t *testing.T) {
	records := []model.SalesRecord{
		{ID: "a", Month: "A", Sales: 10},
		{ID: "b", Month: "B", Sales: 50},
		{ID: "c", Month: "C", Sales: 5},
		{ID: "d", Month: "D", Sales: 30},
	}

	got, err := Apply(records, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D"}, months(got))
}

func TestApply_Idempotent(t *testing.T) {
	for _, threshold := range []float64{0, 1500, 2000, 3000, 9999} {
		once, err := Apply(quarter(), threshold)
		require.NoError(t, err)
		twice, err := Apply(once, threshold)
		require.NoError(t, err)
		assert.Equal(t, once, twice, "threshold %v", threshold)
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	full := quarter()
	before := append([]model.SalesRecord(nil), full...)

	_, err := Apply(full, 3000)
	require.NoError(t, err)
	assert.Equal(t, before, full)
}

func TestApply_RejectsNegative(t *testing.T) {
	for _, threshold := range []float64{-1, -0.01, math.Inf(-1), math.NaN()} {
		got, err := Apply(quarter(), threshold)
		require.Error(t, err)
		assert.Nil(t, got)
		assert.ErrorIs(t, err, common.ErrNegativeThreshold)
		assert.Equal(t, ThresholdMessage, common.UserMessage(err))
	}
}

func TestApply_ZeroDropsNegativeSales(t *testing.T) {
	records := []model.SalesRecord{
		{ID: "1", Month: "January", Sales: 10},
		{ID: "2", Month: "Refunds", Sales: -5},
	}

	got, err := Apply(records, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"January"}, months(got))
	assert.Len(t, Clear(records), 2)
}

func TestState(t *testing.T) {
	var s State
	assert.False(t, s.Active)
	assert.Len(t, s.Select(quarter()), 3)

	require.NoError(t, s.Apply(3000))
	assert.True(t, s.Active)
	assert.Equal(t, []string{"January", "February"}, months(s.Select(quarter())))

	err := s.Apply(-1)
	require.Error(t, err)
	assert.Equal(t, 3000.0, s.Threshold, "rejected threshold must not change state")
	assert.True(t, s.Active)

	s.Clear()
	assert.Equal(t, 0.0, s.Threshold)
	assert.False(t, s.Active)
	assert.Len(t, s.Select(quarter()), 3)
}
