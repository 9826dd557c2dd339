package models

// RawRow is a single header-keyed row from a parsed CSV or spreadsheet file,
// before normalization into a typed trade.
type RawRow map[string]string

// Field returns the first non-empty value among the given column aliases.
// Uploaded files name the same column in several ways ("Trade ID", "TradeID",
// "tradeId"); the mapper probes all known spellings and falls back to "".
func (r RawRow) Field(aliases ...string) string {
	for _, name := range aliases {
		if v, ok := r[name]; ok && v != "" {
			return v
		}
	}
	return ""
}
