package parsers

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/username/confirmdesk/backend/src/models"
)

type csvParser struct{}

func NewCSVParser() FileParser {
	return &csvParser{}
}

// ParseRows reads the header record and keys every following record by it.
// Short records leave the remaining columns empty; an empty file yields no
// rows and no error, the caller decides whether that is a problem.
func (p *csvParser) ParseRows(file io.Reader) ([]models.RawRow, error) {
	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV records: %w", err)
	}

	var rows []models.RawRow
	for _, record := range records {
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
