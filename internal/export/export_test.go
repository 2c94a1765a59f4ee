package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"image/png"
	"strings"
	"testing"

	"github.com/Veraticus/salesdash/internal/chart"
	"github.com/Veraticus/salesdash/internal/common"
	"github.com/Veraticus/salesdash/internal/dashboard"
	"github.com/Veraticus/salesdash/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func quarterReport(t *testing.T, opts ...dashboard.Option) Report {
	t.Helper()
	c := dashboard.New([]model.SalesRecord{
		{ID: "1", Month: "January", Sales: 4000, Revenue: 24000, Date: "2024-01-31"},
		{ID: "2", Month: "February", Sales: 3000, Revenue: 18000},
		{ID: "3", Month: "March", Sales: 2000, Revenue: 12000},
	}, opts...)
	require.NoError(t, c.ApplyFilter(3000))
	return FromSnapshot(c.Snapshot())
}

func TestParseFormat(t *testing.T) {
	for _, f := range Formats() {
		got, err := ParseFormat(strings.ToUpper(string(f)))
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}

	_, err := ParseFormat("pdf")
	assert.ErrorIs(t, err, common.ErrUnsupportedFormat)
	assert.Equal(t, ".xlsx", FormatXLSX.Extension())
	assert.True(t, FormatSVG.IsImage())
	assert.False(t, FormatCSV.IsImage())
}

func TestFromSnapshot(t *testing.T) {
	report := quarterReport(t)
	assert.Len(t, report.Records, 2)
	assert.True(t, report.Filtered)
	assert.Equal(t, 3000.0, report.Threshold)
	assert.Equal(t, 7000.0, report.Stats.TotalSales)
	assert.Equal(t, "2 of 3 records displayed", report.Summary)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatCSV, quarterReport(t), DefaultImageSize))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"id", "month", "date", "sales", "revenue"},
		{"1", "January", "2024-01-31", "4000", "24000"},
		{"2", "February", "", "3000", "18000"},
		{"", "Total", "", "7000", "42000"},
	}, rows)
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatJSON, quarterReport(t), DefaultImageSize))

	var doc struct {
		Summary string               `json:"summary"`
		Records []model.SalesRecord  `json:"records"`
		Stats   model.AggregateStats `json:"stats"`
		Chart   struct {
			Kind  string `json:"kind"`
			Title string `json:"title"`
		} `json:"chart"`
		Threshold float64 `json:"threshold"`
		Filtered  bool    `json:"filtered"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Len(t, doc.Records, 2)
	assert.Equal(t, 3500.0, doc.Stats.AverageSales)
	assert.Equal(t, "bar", doc.Chart.Kind)
	assert.Equal(t, chart.BarTitle, doc.Chart.Title)
	assert.True(t, doc.Filtered)
}

func TestWriteJSON_EmptyRecords(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, Report{Chart: chart.Empty()}))
	assert.Contains(t, buf.String(), `"records": []`)
	assert.Contains(t, buf.String(), chart.NoDataMessage)
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatXLSX, quarterReport(t), DefaultImageSize))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, []string{RecordsSheet, SummarySheet}, f.GetSheetList())

	rows, err := f.GetRows(RecordsSheet)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(rows), 4)
	assert.Equal(t, []string{"ID", "Month", "Date", "Sales", "Revenue"}, rows[0])
	assert.Equal(t, "January", rows[1][1])
	assert.Equal(t, "February", rows[2][1])
	assert.Equal(t, "Total", rows[3][1])

	formula, err := f.GetCellFormula(RecordsSheet, "D4")
	require.NoError(t, err)
	assert.Equal(t, "SUM(D2:D3)", formula)

	total, err := f.CalcCellValue(RecordsSheet, "D4", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "7000", total)

	metric, err := f.GetCellValue(SummarySheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, "Total Sales", metric)
	filtered, err := f.GetCellValue(SummarySheet, "B7")
	require.NoError(t, err)
	assert.Equal(t, "yes", filtered)
}

func TestWriteImage(t *testing.T) {
	for _, kind := range model.ChartKinds() {
		t.Run(kind.String(), func(t *testing.T) {
			report := quarterReport(t, dashboard.WithChartKind(kind))

			var pngBuf bytes.Buffer
			require.NoError(t, Write(&pngBuf, FormatPNG, report, ImageSize{Width: 640, Height: 320}))
			img, err := png.Decode(&pngBuf)
			require.NoError(t, err)
			assert.Equal(t, 640, img.Bounds().Dx())
			assert.Equal(t, 320, img.Bounds().Dy())

			var svgBuf bytes.Buffer
			require.NoError(t, Write(&svgBuf, FormatSVG, report, DefaultImageSize))
			assert.Contains(t, svgBuf.String(), "<svg")
		})
	}
}

func TestWriteImage_SingleRecordLine(t *testing.T) {
	c := dashboard.New([]model.SalesRecord{{ID: "1", Month: "January", Sales: 4000, Revenue: 24000}},
		dashboard.WithChartKind(model.ChartLine))

	var buf bytes.Buffer
	assert.NoError(t, WriteImage(&buf, FormatPNG, c.Chart(), DefaultImageSize))
}

func TestWriteImage_NoData(t *testing.T) {
	var buf bytes.Buffer
	err := WriteImage(&buf, FormatPNG, chart.Empty(), DefaultImageSize)
	assert.ErrorIs(t, err, common.ErrNoData)

	err = WriteImage(&buf, FormatCSV, chart.Empty(), DefaultImageSize)
	assert.ErrorIs(t, err, common.ErrUnsupportedFormat)
}
