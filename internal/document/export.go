package document

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"framescribe/internal/entity"
)

// FramesXLSX returns an XLSX workbook (as bytes) listing a job's reconciled
// frames in document order, one row per frame.
func FramesXLSX(frames []*entity.Frame) ([]byte, error) {
	f := excelize.NewFile()
	const sheet = "Frames"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	if defIdx, _ := f.GetSheetIndex("Sheet1"); defIdx != -1 {
		_ = f.DeleteSheet("Sheet1")
	}

	headers := []string{"Frame Index", "Filename", "Base Key", "Text"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, fr := range frames {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		write(1, fr.FrameIndex)
		write(2, fr.Filename)
		write(3, fr.BaseKey)
		write(4, fr.Text)
		row++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}
