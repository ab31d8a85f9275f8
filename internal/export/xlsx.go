package export

import (
	"fmt"
	"strings"

	excelize "github.com/xuri/excelize/v2"

	"github.com/ailab/timesheetgen/internal/model"
)

// XLSXFilename is the download name for the whole-workbook export.
const XLSXFilename = "timesheet.xlsx"

// EmployeeXLSXFilename returns the download name for a single-employee
// workbook, e.g. "timesheet-diya.xlsx".
func EmployeeXLSXFilename(employeeName string) string {
	return "timesheet-" + strings.ToLower(employeeName) + ".xlsx"
}

// timesheet column widths; cosmetic only.
var timesheetWidths = []float64{12, 12, 14, 14, 40, 8}

// Workbook builds the two-sheet workbook: "Timesheet" with the flat
// projection and "Summary" with the pivot.
func Workbook(entries []model.Entry, employees []model.Employee, projects []model.Project) ([]byte, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", "Timesheet"); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	if err := writeTimesheetSheet(f, "Timesheet", entries); err != nil {
		return nil, fmt.Errorf("timesheet sheet: %w", err)
	}

	if _, err := f.NewSheet("Summary"); err != nil {
		return nil, fmt.Errorf("summary sheet: %w", err)
	}
	if err := writeSummarySheet(f, "Summary", entries, employees, projects); err != nil {
		return nil, fmt.Errorf("summary sheet: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write to buffer: %w", err)
	}
	return buf.Bytes(), nil
}

// EmployeeWorkbook builds a single-sheet workbook named after the
// employee, holding only that employee's entries.
func EmployeeWorkbook(entries []model.Entry, employee model.Employee) ([]byte, error) {
	var own []model.Entry
	for _, e := range entries {
		if e.EmployeeID == employee.ID {
			own = append(own, e)
		}
	}

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", employee.Name); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	if err := writeTimesheetSheet(f, employee.Name, own); err != nil {
		return nil, fmt.Errorf("employee sheet: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write to buffer: %w", err)
	}
	return buf.Bytes(), nil
}

func writeTimesheetSheet(f *excelize.File, sheet string, entries []model.Entry) error {
	if err := writeHeaderRow(f, sheet, Headers); err != nil {
		return err
	}

	for i, e := range entries {
		row := i + 2 // row 1 is headers
		values := []any{e.Date, e.EmployeeName, e.ProjectName, e.ProjectCode, e.TaskDescription, e.Hours}
		for col, val := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, val); err != nil {
				return fmt.Errorf("entry %s, col %d: %w", e.ID, col, err)
			}
		}
	}

	return setColumnWidths(f, sheet, timesheetWidths)
}

func writeSummarySheet(f *excelize.File, sheet string, entries []model.Entry, employees []model.Employee, projects []model.Project) error {
	headers := SummaryHeaders(projects)
	if err := writeHeaderRow(f, sheet, headers); err != nil {
		return err
	}

	for i, row := range Summary(entries, employees, projects) {
		values := make([]any, 0, len(headers))
		values = append(values, row.Employee)
		for _, h := range row.ProjectHours {
			values = append(values, h)
		}
		values = append(values, row.TotalHours)

		for col, val := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, val); err != nil {
				return fmt.Errorf("summary row %d, col %d: %w", i, col, err)
			}
		}
	}

	widths := make([]float64, len(headers))
	for i := range widths {
		widths[i] = 14
	}
	return setColumnWidths(f, sheet, widths)
}

func writeHeaderRow(f *excelize.File, sheet string, headers []string) error {
	style, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return err
	}

	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellStr(sheet, cell, header); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
			return err
		}
	}
	return nil
}

func setColumnWidths(f *excelize.File, sheet string, widths []float64) error {
	for col, w := range widths {
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, name, name, w); err != nil {
			return err
		}
	}
	return nil
}
