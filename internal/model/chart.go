package model

import (
	"fmt"
	"strings"

	"github.com/Veraticus/salesdash/internal/common"
)

// ChartKind selects how the active records are visualized.
type ChartKind int

// Chart kinds in display order. ChartBar is the zero value and the default.
const (
	ChartBar ChartKind = iota
	ChartLine
	ChartPie
)

// ChartKinds returns every chart kind in display order.
func ChartKinds() []ChartKind {
	return []ChartKind{ChartBar, ChartLine, ChartPie}
}

// String returns the lowercase name used in config and flags.
func (k ChartKind) String() string {
	switch k {
	case ChartBar:
		return "bar"
	case ChartLine:
		return "line"
	case ChartPie:
		return "pie"
	default:
		return fmt.Sprintf("ChartKind(%d)", int(k))
	}
}

// Valid reports whether k is one of the known chart kinds.
func (k ChartKind) Valid() bool {
	return k >= ChartBar && k <= ChartPie
}

// ParseChartKind parses a chart kind name case-insensitively.
func ParseChartKind(s string) (ChartKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bar":
		return ChartBar, nil
	case "line":
		return ChartLine, nil
	case "pie":
		return ChartPie, nil
	default:
		return ChartBar, fmt.Errorf("%w: %q", common.ErrInvalidChartKind, s)
	}
}

// MarshalText encodes k by name.
func (k ChartKind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", common.ErrInvalidChartKind, int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind name.
func (k *ChartKind) UnmarshalText(text []byte) error {
	parsed, err := ParseChartKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Field names a numeric column of a SalesRecord.
type Field string

// Fields a chart can be driven by.
const (
	FieldSales   Field = "sales"
	FieldRevenue Field = "revenue"
)

// ParseField parses a field name, accepting sales and revenue only.
func ParseField(s string) (Field, error) {
	switch Field(strings.ToLower(strings.TrimSpace(s))) {
	case FieldSales:
		return FieldSales, nil
	case FieldRevenue:
		return FieldRevenue, nil
	default:
		return FieldSales, fmt.Errorf("%w: unknown field %q", common.ErrInvalidConfig, s)
	}
}

// Value returns the value of field f for record r.
func (r SalesRecord) Value(f Field) float64 {
	if f == FieldRevenue {
		return r.Revenue
	}
	return r.Sales
}
