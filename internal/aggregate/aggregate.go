// Package aggregate computes summary statistics over sales records.
package aggregate

import "github.com/Veraticus/salesdash/internal/model"

// Compute sums sales and revenue over records and averages sales per record.
// An empty set yields all zeros.
func Compute(records []model.SalesRecord) model.AggregateStats {
	var stats model.AggregateStats
	for _, r := range records {
		stats.TotalSales += r.Sales
		stats.TotalRevenue += r.Revenue
	}
	stats.Count = len(records)
	stats.AverageSales = stats.TotalSales / float64(max(1, stats.Count))
	return stats
}
