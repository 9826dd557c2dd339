package parsers

import (
	"strings"

	"github.com/username/confirmdesk/backend/src/models"
)

// Column-name fragments that hint at each asset class. Matching is
// substring-based on lowercased headers, so "Currency Pair" and
// "currencyPair" both count.
var (
	fxIndicators = []string{
		"currencypair", "currency pair", "buysell", "buy/sell", "basecurrency", "base currency",
		"termcurrency", "term currency", "producttype", "product type", "valuedate", "value date",
		"traderid", "trader id", "dealtcurrency", "dealt currency",
	}
	equityIndicators = []string{
		"quantity", "price", "clientid", "client id", "orderid", "order id",
		"tradingvenue", "trading venue", "tradername", "trader name",
	}
)

// DetectAssetClass guesses whether a parsed file holds equity or FX trades by
// scoring its column headers. Ties and empty input fall back to equity.
func DetectAssetClass(rows []models.RawRow) models.AssetClass {
	if len(rows) == 0 {
		return models.AssetClassEquity
	}

	headers := make([]string, 0, len(rows[0]))
	for name := range rows[0] {
		headers = append(headers, strings.ToLower(name))
	}

	score := func(indicators []string) int {
		n := 0
		for _, indicator := range indicators {
			for _, header := range headers {
				if strings.Contains(header, indicator) {
					n++
					break
				}
			}
		}
		return n
	}

	if score(fxIndicators) > score(equityIndicators) {
		return models.AssetClassFX
	}
	return models.AssetClassEquity
}
