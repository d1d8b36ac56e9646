package exporter

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"dockit/internal/config"
	"dockit/internal/exporter/common"
	"dockit/internal/model"
)

// Sheet names of the workbook
const (
	SheetOverview  = "Overview"
	SheetAPIIndex  = "API Index"
	SheetArguments = "Arguments"
)

// ExcelExporter writes an index workbook of every documented method
type ExcelExporter struct {
	// Stateless
}

// NewExcelExporter creates a new ExcelExporter
func NewExcelExporter() *ExcelExporter {
	return &ExcelExporter{}
}

// Name implements Exporter
func (e *ExcelExporter) Name() string {
	return "excel"
}

// Export generates <file_name>.xlsx
func (e *ExcelExporter) Export(report *model.Report, cfg *config.Config) error {
	outputFile := cfg.GetOutputPath(".xlsx")
	f := excelize.NewFile()
	defer f.Close()

	styler, err := NewStyler(f)
	if err != nil {
		return fmt.Errorf("failed to create styles: %w", err)
	}

	records := common.SortRecords(report.Records())

	if err := e.writeOverview(f, styler, report, records); err != nil {
		return err
	}
	if err := e.writeAPIIndex(f, styler, records); err != nil {
		return err
	}
	if err := e.writeArguments(f, styler, records); err != nil {
		return err
	}

	// Remove default "Sheet1"
	if idx, err := f.GetSheetIndex("Sheet1"); err == nil && idx != -1 {
		f.DeleteSheet("Sheet1")
	}
	if idx, err := f.GetSheetIndex(SheetOverview); err == nil && idx != -1 {
		f.SetActiveSheet(idx)
	}

	if err := f.SaveAs(outputFile); err != nil {
		return fmt.Errorf("failed to save %s: %w", outputFile, err)
	}
	return nil
}

// --- Overview Sheet Logic ---

func (e *ExcelExporter) writeOverview(f *excelize.File, s *Styler, report *model.Report, records []*model.MethodRecord) error {
	sheet := SheetOverview
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
	}

	// Section A: Summary
	row := 1
	e.writeRow(f, sheet, row, []string{"Metric", "Value"}, s.HeaderStyle)
	row++

	requestArgs, responseFields, deprecated := 0, 0, 0
	for _, rec := range records {
		requestArgs += model.CountArguments(rec.RequestArgList)
		responseFields += model.CountArguments(rec.ResponseArgList)
		if rec.Deprecated {
			deprecated++
		}
	}

	metrics := []struct {
		Key string
		Val any
	}{
		{"Generated At", report.GeneratedAt},
		{"Documented Classes", report.ClassCount()},
		{"Documented Methods", len(records)},
		{"Deprecated Methods", deprecated},
		{"Request Arguments", requestArgs},
		{"Response Fields", responseFields},
		{"Malformed Descriptors", common.CountDiagnostics(records)},
	}

	for _, m := range metrics {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), m.Key)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), m.Val)
		f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row), s.DefaultStyle)
		row++
	}

	row += 2 // Spacer

	// Section B: Classes
	e.writeRow(f, sheet, row, []string{"No", "Class Name", "Package", "Methods", "Note"}, s.HeaderStyle)
	row++

	for i, group := range common.GroupByClass(report) {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), i+1)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), group.ClassName)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), group.Package)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), len(group.Records))

		if len(group.Records) > 20 {
			f.SetCellValue(sheet, fmt.Sprintf("E%d", row), "Large")
		}
		f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("E%d", row), s.DefaultStyle)
		row++
	}

	f.SetColWidth(sheet, "A", "A", 24)
	f.SetColWidth(sheet, "B", "C", 30)

	return nil
}

// --- API Index Sheet Logic ---

func (e *ExcelExporter) writeAPIIndex(f *excelize.File, s *Styler, records []*model.MethodRecord) error {
	sheet := SheetAPIIndex
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
	}

	headers := []string{"No", "Class", "Method", "Title", "HTTP Method", "URL", "Version", "Status", "Response Type", "Description"}
	e.writeRow(f, sheet, 1, headers, s.HeaderStyle)
	e.freezeHeader(f, sheet)

	row := 2
	for i, rec := range records {
		title := rec.Title
		if rec.Deprecated {
			title = "[Deprecated] " + title
		}

		values := []any{
			i + 1,
			rec.ClassName,
			rec.MethodName,
			title,
			rec.RequestMethod,
			rec.RequestURL,
			rec.Version,
			rec.Status,
			rec.ResponseObjectClassName,
			strings.Join(rec.DescriptionList, "\n"),
		}
		for col, val := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(sheet, cell, val)
		}

		style := s.DefaultStyle
		if rec.Deprecated {
			style = s.DeprecatedStyle
		}
		f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("J%d", row), style)
		row++
	}

	f.SetColWidth(sheet, "B", "D", 30)
	f.SetColWidth(sheet, "F", "F", 40)
	f.SetColWidth(sheet, "I", "I", 25)
	f.SetColWidth(sheet, "J", "J", 50)

	return nil
}

// --- Arguments Sheet Logic ---

func (e *ExcelExporter) writeArguments(f *excelize.File, s *Styler, records []*model.MethodRecord) error {
	sheet := SheetArguments
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
	}

	headers := []string{"Kind", "Class/Method", "Name", "Type", "Required", "Description"}
	e.writeRow(f, sheet, 1, headers, s.HeaderStyle)
	e.freezeHeader(f, sheet)

	row := 2
	for _, rec := range records {
		if len(rec.RequestArgList) == 0 && len(rec.ResponseArgList) == 0 {
			continue
		}

		// Record header row
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "[Method]")
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), rec.ID())
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), rec.DisplayTitle())
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), rec.RequestMethod)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), rec.RequestURL)
		f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("F%d", row), s.RecordStyle)
		row++

		row = e.writeArgumentRows(f, s, sheet, row, "[Request]", rec.RequestArgList, s.RequestStyle)
		row = e.writeArgumentRows(f, s, sheet, row, "[Response]", rec.ResponseArgList, s.ResponseStyle)
	}

	f.SetColWidth(sheet, "B", "C", 35)
	f.SetColWidth(sheet, "D", "E", 15)
	f.SetColWidth(sheet, "F", "F", 60)

	return nil
}

func (e *ExcelExporter) writeArgumentRows(f *excelize.File, s *Styler, sheet string, row int, kind string, args []*model.Argument, style int) int {
	for _, flat := range common.FlattenArguments(args) {
		arg := flat.Arg

		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), kind)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), strings.Repeat("  ", flat.Indent)+arg.Name)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), arg.Type)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), arg.Required)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), arg.Description)

		rowStyle := style
		if arg.IsDiagnostic() {
			rowStyle = s.DiagnosticStyle
		}
		f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("F%d", row), rowStyle)
		row++
	}
	return row
}

func (e *ExcelExporter) writeRow(f *excelize.File, sheet string, row int, values []string, style int) {
	for i, val := range values {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		f.SetCellValue(sheet, cell, val)
		f.SetCellStyle(sheet, cell, cell, style)
	}
}

func (e *ExcelExporter) freezeHeader(f *excelize.File, sheet string) {
	f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}
