package chart

// Palette is the fixed, ordered set of slice colors.
var Palette = [8]string{
	"#3b82f6",
	"#10b981",
	"#f59e0b",
	"#ef4444",
	"#8b5cf6",
	"#ec4899",
	"#14b8a6",
	"#f97316",
}

// Series colors for bar and line charts.
const (
	SalesColor   = "#3b82f6"
	RevenueColor = "#10b981"
)

// ColorAt returns the palette color for position i. Colors depend on position only.
func ColorAt(i int) string {
	n := len(Palette)
	return Palette[((i%n)+n)%n]
}
