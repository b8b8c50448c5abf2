package report

import (
	"fmt"
	"sort"

	"view-scaffold/internal/config"
	"view-scaffold/internal/model"

	"github.com/xuri/excelize/v2"
)

// ExcelReporter handles the Excel generation
type ExcelReporter struct {
	// Stateless
}

// NewExcelReporter creates a new ExcelReporter
func NewExcelReporter() *ExcelReporter {
	return &ExcelReporter{}
}

// Export generates the Excel report
func (e *ExcelReporter) Export(inv *model.Inventory, cfg *config.Config) error {
	outputFile := cfg.GetReportPath("xlsx")
	f := excelize.NewFile()
	styler, err := NewStyler(f)
	if err != nil {
		return err
	}

	// 1. Create Overview Sheet
	if err := e.writeOverview(f, styler, inv); err != nil {
		return err
	}

	// 2. Create Model Detail Sheet
	if err := e.writeModelDetail(f, styler, inv); err != nil {
		return err
	}

	// Remove default "Sheet1"
	if idx, err := f.GetSheetIndex("Sheet1"); err == nil && idx != -1 {
		f.DeleteSheet("Sheet1")
	}

	// Save
	if err := f.SaveAs(outputFile); err != nil {
		return err
	}

	return nil
}

// --- Overview Sheet Logic ---

func (e *ExcelReporter) writeOverview(f *excelize.File, s *Styler, inv *model.Inventory) error {
	sheet := "Overview"
	f.NewSheet(sheet)

	// Section A: System Summary
	headers := []string{"Metric", "Count"}

	row := 1
	e.writeRow(f, sheet, row, headers, s.HeaderStyle)
	row++

	metrics := []struct {
		Key string
		Val int
	}{
		{"Total Classes", inv.TotalClasses},
		{"Total Properties", inv.TotalProperties},
		{"Total Required", inv.TotalRequired},
	}

	for _, m := range metrics {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), m.Key)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), m.Val)
		row++
	}

	row += 2 // Spacer

	// Section B: Class Size
	headersB := []string{"No", "Class Name", "Namespace", "Properties", "Required", "Note"}
	e.writeRow(f, sheet, row, headersB, s.HeaderStyle)
	row++

	// Sort classes by property count, largest first
	classes := append([]*model.ModelClass(nil), inv.Classes...)
	sort.Slice(classes, func(i, j int) bool {
		return len(classes[i].Properties) > len(classes[j].Properties)
	})

	listIndex := 1
	for _, mc := range classes {
		if len(mc.Properties) == 0 {
			continue
		}

		requiredCount := 0
		for _, p := range mc.Properties {
			if p.IsRequired {
				requiredCount++
			}
		}

		namespace, _ := model.SplitTypeName(mc.TypeName)

		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), listIndex)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), mc.ClassName)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), namespace)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), len(mc.Properties))
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), requiredCount)

		if len(mc.Properties) > 20 {
			f.SetCellValue(sheet, fmt.Sprintf("F%d", row), "Wide")
		}

		row++
		listIndex++
	}

	// Adjust column widths
	f.SetColWidth(sheet, "B", "C", 30)

	return nil
}

// --- Model Detail Sheet Logic ---

func (e *ExcelReporter) writeModelDetail(f *excelize.File, s *Styler, inv *model.Inventory) error {
	sheet := "Model Detail"
	f.NewSheet(sheet)

	headers := []string{"Class/Property", "Declared Type", "Input Kind", "Flags", "Display Name", "Max Len", "Annotations"}
	e.writeRow(f, sheet, 1, headers, s.HeaderStyle)

	f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})

	row := 2
	classes := append([]*model.ModelClass(nil), inv.Classes...)
	sort.Slice(classes, func(i, j int) bool {
		return classes[i].TypeName < classes[j].TypeName
	})

	for _, mc := range classes {
		if len(mc.Properties) == 0 {
			continue
		}

		// 1. Class header row
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), mc.TypeName)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), mc.File)
		f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("G%d", row), s.ClassStyle)
		row++

		// 2. Property rows in source order
		for i := range mc.Properties {
			e.writePropertyRow(f, sheet, row, &mc.Properties[i], s)
			row++
		}
	}

	// Auto width
	f.SetColWidth(sheet, "A", "A", 40) // Class/Property
	f.SetColWidth(sheet, "B", "B", 20) // Type
	f.SetColWidth(sheet, "D", "E", 25) // Flags/Display
	f.SetColWidth(sheet, "G", "G", 50) // Annotations

	return nil
}

func (e *ExcelReporter) writePropertyRow(f *excelize.File, sheet string, row int, p *model.Property, s *Styler) {
	style := s.DefaultStyle
	if p.IsPrimaryKey {
		style = s.KeyStyle
	} else if p.IsRequired {
		style = s.RequiredStyle
	}

	flags := ""
	if p.IsPrimaryKey {
		flags += "PK "
	}
	if p.IsRequired {
		flags += "REQUIRED "
	}
	if p.IsNullable {
		flags += "NULLABLE"
	}

	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "  "+p.Name)
	f.SetCellValue(sheet, fmt.Sprintf("B%d", row), p.DeclaredType)
	f.SetCellValue(sheet, fmt.Sprintf("C%d", row), string(p.Kind))
	f.SetCellValue(sheet, fmt.Sprintf("D%d", row), flags)
	f.SetCellValue(sheet, fmt.Sprintf("E%d", row), p.DisplayName)
	if p.MaxLength != nil {
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), *p.MaxLength)
	}
	f.SetCellValue(sheet, fmt.Sprintf("G%d", row), joinAttributes(p.Attributes))

	f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("G%d", row), style)
}

func (e *ExcelReporter) writeRow(f *excelize.File, sheet string, row int, values []string, style int) {
	for i, val := range values {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		f.SetCellValue(sheet, cell, val)
		f.SetCellStyle(sheet, cell, cell, style)
	}
}

func joinAttributes(attrs []string) string {
	out := ""
	for i, a := range attrs {
		if i > 0 {
			out += "; "
		}
		out += "[" + a + "]"
	}
	return out
}
