package source

import (
	"context"

	"github.com/Veraticus/salesdash/internal/model"
)

var fixedRecords = []model.SalesRecord{
	{ID: "1", Month: "January", Sales: 4000, Revenue: 24000},
	{ID: "2", Month: "February", Sales: 3000, Revenue: 18000},
	{ID: "3", Month: "March", Sales: 2000, Revenue: 12000},
	{ID: "4", Month: "April", Sales: 2780, Revenue: 16680},
	{ID: "5", Month: "May", Sales: 1890, Revenue: 11340},
	{ID: "6", Month: "June", Sales: 2390, Revenue: 14340},
	{ID: "7", Month: "July", Sales: 3490, Revenue: 20940},
	{ID: "8", Month: "August", Sales: 4200, Revenue: 25200},
}

// FixedRecords returns a copy of the built-in record set.
func FixedRecords() []model.SalesRecord {
	out := make([]model.SalesRecord, len(fixedRecords))
	copy(out, fixedRecords)
	return out
}

// Fixed serves the built-in record set. It never fails.
type Fixed struct{}

// Fetch returns the built-in records.
func (Fixed) Fetch(_ context.Context) ([]model.SalesRecord, error) {
	return FixedRecords(), nil
}
