package parsers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRowsKeysByHeader(t *testing.T) {
	input := "Trade ID,Quantity,Price\nEQ-1,100,25.50\nEQ-2,250,8.20\n"

	rows, err := NewCSVParser().ParseRows(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "EQ-1", rows[0]["Trade ID"])
	assert.Equal(t, "100", rows[0]["Quantity"])
	assert.Equal(t, "8.20", rows[1]["Price"])
}

func TestParseRowsEmptyFile(t *testing.T) {
	rows, err := NewCSVParser().ParseRows(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestParseRowsHeaderOnly(t *testing.T) {
	rows, err := NewCSVParser().ParseRows(strings.NewReader("Trade ID,Quantity\n"))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestParseRowsShortRecordLeavesColumnsEmpty(t *testing.T) {
	input := "Trade ID,Quantity,Price\nEQ-1,100\n"

	rows, err := NewCSVParser().ParseRows(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "EQ-1", rows[0]["Trade ID"])
	assert.Equal(t, "", rows[0]["Price"])
}

func TestParseRowsSkipsAllEmptyRows(t *testing.T) {
	input := "Trade ID,Quantity\nEQ-1,100\n,\nEQ-2,200\n"

	rows, err := NewCSVParser().ParseRows(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "EQ-2", rows[1]["Trade ID"])
}

func TestParseRowsTrimsWhitespace(t *testing.T) {
	input := " Trade ID , Quantity \n EQ-1 , 100 \n"

	rows, err := NewCSVParser().ParseRows(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "EQ-1", rows[0]["Trade ID"])
	assert.Equal(t, "100", rows[0]["Quantity"])
}
