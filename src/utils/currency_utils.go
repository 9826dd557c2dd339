package utils

// currencySymbols maps ISO currency codes to their display symbols for
// letter rendering. Unlisted codes fall back to the code itself.
var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"CHF": "CHF",
	"AUD": "A$",
	"CAD": "C$",
	"INR": "₹",
}

// CurrencySymbol returns the display symbol for a currency code.
func CurrencySymbol(code string) string {
	if sym, ok := currencySymbols[code]; ok {
		return sym
	}
	return code
}
