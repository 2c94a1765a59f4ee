package aggregate

import (
	"testing"

	"github.com/Veraticus/salesdash/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name    string
		records []model.SalesRecord
		want    model.AggregateStats
	}{
		{
			name:    "empty",
			records: nil,
			want:    model.AggregateStats{},
		},
		{
			name: "single record",
			records: []model.SalesRecord{
				{Month: "January", Sales: 4000, Revenue: 24000},
			},
			want: model.AggregateStats{TotalSales: 4000, TotalRevenue: 24000, AverageSales: 4000, Count: 1},
		},
		{
			name: "filtered quarter",
			records: []model.SalesRecord{
				{Month: "January", Sales: 4000, Revenue: 24000},
				{Month: "February", Sales: 3000, Revenue: 18000},
			},
			want: model.AggregateStats{TotalSales: 7000, TotalRevenue: 42000, AverageSales: 3500, Count: 2},
		},
		{
			name: "fractional average",
			records: []model.SalesRecord{
				{Sales: 1, Revenue: 2},
				{Sales: 2, Revenue: 2},
				{Sales: 2, Revenue: 2},
			},
			want: model.AggregateStats{TotalSales: 5, TotalRevenue: 6, AverageSales: 5.0 / 3.0, Count: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(tt.records)
			assert.Equal(t, tt.want.Count, got.Count)
			assert.InDelta(t, tt.want.TotalSales, got.TotalSales, 1e-9)
			assert.InDelta(t, tt.want.TotalRevenue, got.TotalRevenue, 1e-9)
			assert.InDelta(t, tt.want.AverageSales, got.AverageSales, 1e-9)
		})
	}
}

func TestCompute_LargeSet(t *testing.T) {
	records := make([]model.SalesRecord, 10000)
	for i := range records {
		records[i] = model.SalesRecord{Sales: 1.5, Revenue: 3}
	}

	got := Compute(records)
	assert.InDelta(t, 15000.0, got.TotalSales, 1e-6)
	assert.InDelta(t, 30000.0, got.TotalRevenue, 1e-6)
	assert.InDelta(t, 1.5, got.AverageSales, 1e-9)
}
