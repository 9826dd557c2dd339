package parsers

import (
	"fmt"
	"path/filepath"
	"strings"
)

// GetParser selects a file parser from the uploaded file's extension.
func GetParser(filename string) (FileParser, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return NewCSVParser(), nil
	case ".xlsx", ".xls":
		return NewXLSXParser(), nil
	default:
		return nil, fmt.Errorf("no parser available for file type: %s", filepath.Ext(filename))
	}
}
