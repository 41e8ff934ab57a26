package service

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/Aashish23092/electricity-bill-extractor/dto"
	"github.com/Aashish23092/electricity-bill-extractor/utils"
)

const reportSheet = "Sheet1"

// BuildReport lays the records out as a workbook: a header row with every
// field name and "File", then one row per record.
func BuildReport(records []dto.ExtractionRecord) (*excelize.File, error) {
	f := excelize.NewFile()

	header := utils.ReportHeader()
	if err := writeRow(f, 1, header); err != nil {
		f.Close()
		return nil, err
	}

	for i, rec := range records {
		if err := writeRow(f, i+2, rec.Row()); err != nil {
			f.Close()
			return nil, err
		}
	}

	last, _ := excelize.ColumnNumberToName(len(header))
	_ = f.SetColWidth(reportSheet, "A", last, 18)
	_ = f.SetColWidth(reportSheet, "C", "C", 36)   // consumer name
	_ = f.SetColWidth(reportSheet, last, last, 32) // file

	return f, nil
}

func writeRow(f *excelize.File, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	if err := f.SetSheetRow(reportSheet, cell, &cells); err != nil {
		return fmt.Errorf("write row %d: %w", row, err)
	}
	return nil
}

// WriteReport saves the records as an XLSX file at path.
func WriteReport(records []dto.ExtractionRecord, path string) error {
	f, err := BuildReport(records)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("xlsx write: %w", err)
	}
	return nil
}

// ReportBytes renders the records as XLSX content.
func ReportBytes(records []dto.ExtractionRecord) ([]byte, error) {
	f, err := BuildReport(records)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}
