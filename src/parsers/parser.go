package parsers

import (
	"io"

	"github.com/username/confirmdesk/backend/src/models"
)

// FileParser turns an uploaded file stream into header-keyed raw rows.
// One implementation exists per supported file format.
type FileParser interface {
	ParseRows(file io.Reader) ([]models.RawRow, error)
}
