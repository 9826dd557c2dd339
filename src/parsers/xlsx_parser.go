package parsers

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/username/confirmdesk/backend/src/models"
)

type xlsxParser struct{}

func NewXLSXParser() FileParser {
	return &xlsxParser{}
}

// ParseRows reads the first sheet of a workbook, treating the first row as
// the header, the same way the CSV parser does.
func (p *xlsxParser) ParseRows(file io.Reader) ([]models.RawRow, error) {
	wb, err := excelize.OpenReader(file)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}

	records, err := wb.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	header := records[0]
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var rows []models.RawRow
	for _, record := range records[1:] {
		row := make(models.RawRow, len(header))
		empty := true
		for i, name := range header {
			if name == "" {
				continue
			}
			var value string
			if i < len(record) {
				value = strings.TrimSpace(record[i])
			}
			if value != "" {
				empty = false
			}
			row[name] = value
		}
		if !empty {
			rows = append(rows, row)
		}
	}
	return rows, nil
}
