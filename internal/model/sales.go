package model

// SalesRecord is one month's sales and revenue data point.
// Records are treated as immutable once a source has produced them.
type SalesRecord struct {
	ID      string  `json:"id" db:"id"`
	Month   string  `json:"month" db:"month"`         // Display label, used as chart category
	Date    string  `json:"date,omitempty" db:"date"` // Descriptive only
	Sales   float64 `json:"sales" db:"sales"`
	Revenue float64 `json:"revenue" db:"revenue"`
}

// NewSalesRecord is a record that has not been assigned an ID yet.
type NewSalesRecord struct {
	Month   string  `json:"month"`
	Date    string  `json:"date,omitempty"`
	Sales   float64 `json:"sales"`
	Revenue float64 `json:"revenue"`
}

// SalesPatch carries the fields of a partial update. Nil fields are left untouched.
type SalesPatch struct {
	Month   *string  `json:"month,omitempty"`
	Date    *string  `json:"date,omitempty"`
	Sales   *float64 `json:"sales,omitempty"`
	Revenue *float64 `json:"revenue,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (p SalesPatch) IsEmpty() bool {
	return p.Month == nil && p.Date == nil && p.Sales == nil && p.Revenue == nil
}

// AggregateStats summarizes a set of records.
type AggregateStats struct {
	TotalSales   float64 `json:"total_sales"`
	TotalRevenue float64 `json:"total_revenue"`
	AverageSales float64 `json:"average_sales"`
	Count        int     `json:"count"`
}
