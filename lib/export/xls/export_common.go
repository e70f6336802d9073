package xlsexport

import "github.com/xuri/excelize/v2"

const (
	fontFamily  = "Times New Roman"
	fontSize    = 11
	columnWidth = 25
)

func cellStyle(f *excelize.File, horizontal string, bold bool) (int, error) {
	return f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{
			Horizontal: horizontal,
			Vertical:   "center",
			WrapText:   !bold,
		},
		Font: &excelize.Font{
			Bold:   bold,
			Family: fontFamily,
			Size:   fontSize,
		},
	})
}

// writeRow пишет values в строку row начиная с первой колонки
func writeRow(f *excelize.File, sheet string, row int, values ...interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func styleRange(f *excelize.File, sheet string, style, colFrom, rowFrom, colTo, rowTo int) error {
	cellFirst, err := excelize.CoordinatesToCellName(colFrom, rowFrom)
	if err != nil {
		return err
	}
	cellLast, err := excelize.CoordinatesToCellName(colTo, rowTo)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, cellFirst, cellLast, style)
}

// writeTitle заголовок документа, объединенный на ширину таблицы
func writeTitle(f *excelize.File, sheet string, row, width int, title string) error {
	if err := writeRow(f, sheet, row, title); err != nil {
		return err
	}
	cellFirst, _ := excelize.CoordinatesToCellName(1, row)
	cellLast, err := excelize.CoordinatesToCellName(width, row)
	if err != nil {
		return err
	}
	if err = f.MergeCell(sheet, cellFirst, cellLast); err != nil {
		return err
	}
	style, err := cellStyle(f, "left", true)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, cellFirst, cellLast, style)
}

func writeHeader(f *excelize.File, sheet string, row int, headers []string) error {
	style, err := cellStyle(f, "center", true)
	if err != nil {
		return err
	}
	if err = styleRange(f, sheet, style, 1, row, len(headers), row); err != nil {
		return err
	}
	lastCol, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return err
	}
	if err = f.SetColWidth(sheet, "A", lastCol, columnWidth); err != nil {
		return err
	}
	values := make([]interface{}, 0, len(headers))
	for _, header := range headers {
		values = append(values, header)
	}
	return writeRow(f, sheet, row, values...)
}

func applyDataCellStyle(f *excelize.File, sheet string, colFrom, rowFrom, colTo, rowTo int) error {
	style, err := cellStyle(f, "left", false)
	if err != nil {
		return err
	}
	return styleRange(f, sheet, style, colFrom, rowFrom, colTo, rowTo)
}
