package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// Sheet names of the workbook export.
const (
	RecordsSheet = "Sales"
	SummarySheet = "Summary"
)

var currencyFormat = "$#,##0"

// WriteXLSX writes a workbook with the records on one sheet and the statistics on another.
func WriteXLSX(w io.Writer, report Report) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", RecordsSheet); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	if _, err := f.NewSheet(SummarySheet); err != nil {
		return fmt.Errorf("failed to create summary sheet: %w", err)
	}

	styles, err := newSheetStyles(f)
	if err != nil {
		return err
	}
	if err := fillRecordsSheet(f, report, styles); err != nil {
		return err
	}
	if err := fillSummarySheet(f, report, styles); err != nil {
		return err
	}

	f.SetActiveSheet(0)
	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

type sheetStyles struct {
	header   int
	number   int
	currency int
	total    int
}

func newSheetStyles(f *excelize.File) (sheetStyles, error) {
	var s sheetStyles
	var err error

	if s.header, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"3B82F6"}},
	}); err != nil {
		return s, fmt.Errorf("failed to create header style: %w", err)
	}
	if s.number, err = f.NewStyle(&excelize.Style{NumFmt: 3}); err != nil {
		return s, fmt.Errorf("failed to create number style: %w", err)
	}
	if s.currency, err = f.NewStyle(&excelize.Style{CustomNumFmt: &currencyFormat}); err != nil {
		return s, fmt.Errorf("failed to create currency style: %w", err)
	}
	if s.total, err = f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		NumFmt: 3,
		Border: []excelize.Border{{Type: "top", Color: "333333", Style: 1}},
	}); err != nil {
		return s, fmt.Errorf("failed to create total style: %w", err)
	}
	return s, nil
}

func fillRecordsSheet(f *excelize.File, report Report, styles sheetStyles) error {
	const sheet = RecordsSheet

	if err := f.SetSheetRow(sheet, "A1", &[]any{"ID", "Month", "Date", "Sales", "Revenue"}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := f.SetCellStyle(sheet, "A1", "E1", styles.header); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}

	for i, r := range report.Records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &[]any{r.ID, r.Month, r.Date, r.Sales, r.Revenue}); err != nil {
			return fmt.Errorf("failed to write record %s: %w", r.ID, err)
		}
	}

	last := len(report.Records) + 1
	totalRow := last + 1
	if len(report.Records) > 0 {
		if err := f.SetCellStyle(sheet, "D2", fmt.Sprintf("D%d", last), styles.number); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, "E2", fmt.Sprintf("E%d", last), styles.currency); err != nil {
			return err
		}
	}

	if err := f.SetCellValue(sheet, fmt.Sprintf("B%d", totalRow), "Total"); err != nil {
		return err
	}
	for _, col := range []string{"D", "E"} {
		cell := fmt.Sprintf("%s%d", col, totalRow)
		formula := "0"
		if len(report.Records) > 0 {
			formula = fmt.Sprintf("SUM(%s2:%s%d)", col, col, last)
		}
		if err := f.SetCellFormula(sheet, cell, formula); err != nil {
			return fmt.Errorf("failed to write total formula: %w", err)
		}
	}
	if err := f.SetCellStyle(sheet, fmt.Sprintf("A%d", totalRow), fmt.Sprintf("E%d", totalRow), styles.total); err != nil {
		return err
	}

	if err := f.SetColWidth(sheet, "A", "A", 8); err != nil {
		return err
	}
	return f.SetColWidth(sheet, "B", "E", 14)
}

func fillSummarySheet(f *excelize.File, report Report, styles sheetStyles) error {
	const sheet = SummarySheet

	filtered := "no"
	if report.Filtered {
		filtered = "yes"
	}

	rows := [][]any{
		{"Metric", "Value"},
		{"Total Sales", report.Stats.TotalSales},
		{"Total Revenue", report.Stats.TotalRevenue},
		{"Average Sales", report.Stats.AverageSales},
		{"Records", report.Stats.Count},
		{"Threshold", report.Threshold},
		{"Filtered", filtered},
		{"Chart", report.Chart.Title},
	}
	for i, row := range rows {
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+1), &row); err != nil {
			return fmt.Errorf("failed to write summary: %w", err)
		}
	}

	if err := f.SetCellStyle(sheet, "A1", "B1", styles.header); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "B2", "B2", styles.number); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "B3", "B3", styles.currency); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "B4", "B4", styles.number); err != nil {
		return err
	}
	return f.SetColWidth(sheet, "A", "B", 18)
}
