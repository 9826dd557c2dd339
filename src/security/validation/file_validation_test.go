package validation

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/username/confirmdesk/backend/src/logger"
)

func TestMain(m *testing.M) {
	logger.InitLogger("error")
	os.Exit(m.Run())
}

func TestValidateClientContentType(t *testing.T) {
	assert.NoError(t, ValidateClientContentType(""))
	assert.NoError(t, ValidateClientContentType("text/csv"))
	assert.NoError(t, ValidateClientContentType("TEXT/CSV"))
	assert.NoError(t, ValidateClientContentType("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"))
	assert.ErrorIs(t, ValidateClientContentType("application/pdf"), ErrValidationFailed)
}

func TestValidateUploadSize(t *testing.T) {
	assert.NoError(t, ValidateUploadSize(100, 1024))
	assert.NoError(t, ValidateUploadSize(1024, 1024))
	assert.NoError(t, ValidateUploadSize(5000, 0)) // no limit configured
	assert.ErrorIs(t, ValidateUploadSize(2048, 1024), ErrValidationFailed)
}

func TestValidateFileContentCSV(t *testing.T) {
	detected, err := ValidateFileContent([]byte("Trade ID,Quantity\nEQ-1,100\n"), "trades.csv")
	assert.NoError(t, err)
	assert.Equal(t, "text/plain", detected)
}

func TestValidateFileContentRejectsBinaryAsCSV(t *testing.T) {
	pdf := []byte("%PDF-1.4 binary content")
	_, err := ValidateFileContent(pdf, "trades.csv")
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestValidateFileContentXLSXRequiresZIPSignature(t *testing.T) {
	_, err := ValidateFileContent([]byte("not a zip"), "trades.xlsx")
	assert.ErrorIs(t, err, ErrValidationFailed)

	detected, err := ValidateFileContent(append([]byte{'P', 'K', 0x03, 0x04}, []byte("rest")...), "trades.xlsx")
	assert.NoError(t, err)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", detected)
}

func TestSanitizeForFormulaInjection(t *testing.T) {
	assert.Equal(t, "'=SUM(A1)", SanitizeForFormulaInjection("=SUM(A1)"))
	assert.Equal(t, "'+1234", SanitizeForFormulaInjection("+1234"))
	assert.Equal(t, "'@cmd", SanitizeForFormulaInjection("@cmd"))
	assert.Equal(t, "Morgan Stanley", SanitizeForFormulaInjection("Morgan Stanley"))
}

func TestStripUnprintable(t *testing.T) {
	assert.Equal(t, "abc", StripUnprintable("a\x00b\x1bc"))
	assert.Equal(t, "line1\nline2", StripUnprintable("line1\nline2"))
}

func TestSanitizeField(t *testing.T) {
	assert.Equal(t, "'=cmd", SanitizeField("\x00=cmd"))
}
