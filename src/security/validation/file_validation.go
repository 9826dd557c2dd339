package validation

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/username/confirmdesk/backend/src/logger"
)

// ErrValidationFailed marks upload rejections caused by file validation, so
// callers can report them as user errors rather than internal ones.
var ErrValidationFailed = errors.New("file validation failed")

// AllowedClientContentTypes is a map for quick lookup of allowed client-declared MIME types.
var AllowedClientContentTypes = map[string]bool{
	"text/csv":                 true,
	"application/csv":          true,
	"application/vnd.ms-excel": true, // old Excel, also commonly declared for CSV
	"text/plain":               true,
	"application/octet-stream": true, // generic fallback, content check still applies
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": true, // .xlsx
}

// xlsxMagic is the ZIP local-file-header signature; .xlsx files are ZIP archives.
var xlsxMagic = []byte{'P', 'K', 0x03, 0x04}

// ValidateClientContentType checks the Content-Type declared by the uploader.
func ValidateClientContentType(contentType string) error {
	if contentType == "" {
		return nil // not all upload paths declare one
	}
	if !AllowedClientContentTypes[strings.ToLower(contentType)] {
		logger.L.Warn("Disallowed client-declared Content-Type", "contentType", contentType)
		return fmt.Errorf("%w: declared file type '%s' is not allowed", ErrValidationFailed, contentType)
	}
	return nil
}

// ValidateUploadSize rejects files over the configured limit.
func ValidateUploadSize(size, limit int64) error {
	if limit > 0 && size > limit {
		logger.L.Warn("Uploaded file too large", "size", size, "limit", limit)
		return fmt.Errorf("%w: file too large, max %d MB", ErrValidationFailed, limit/(1024*1024))
	}
	return nil
}

// ValidateFileContent checks the actual content signature (magic bytes)
// against what the filename claims the file is. Spreadsheets must carry the
// ZIP signature; CSV uploads must sniff as text.
func ValidateFileContent(data []byte, filename string) (string, error) {
	head := data
	if len(head) > 512 {
		head = head[:512]
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == ".xlsx" || ext == ".xls" {
		if !bytes.HasPrefix(data, xlsxMagic) {
			logger.L.Warn("Spreadsheet upload without ZIP signature", "filename", filename)
			return "", fmt.Errorf("%w: '%s' is not a valid spreadsheet file", ErrValidationFailed, filename)
		}
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", nil
	}

	detected := http.DetectContentType(head)
	detected = strings.ToLower(strings.Split(detected, ";")[0])

	allowedDetected := map[string]bool{
		"text/plain":               true,
		"text/csv":                 true,
		"application/csv":          true,
		"application/octet-stream": true, // strict CSV parsing follows anyway
	}
	if !allowedDetected[detected] {
		logger.L.Warn("Disallowed detected file content type", "detectedContentType", detected, "filename", filename)
		return detected, fmt.Errorf("%w: detected content type '%s' is not consistent with a CSV file", ErrValidationFailed, detected)
	}

	logger.L.Debug("File content validated", "detectedContentType", detected, "filename", filename)
	return detected, nil
}
