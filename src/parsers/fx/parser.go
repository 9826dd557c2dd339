package fx

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/username/confirmdesk/backend/src/models"
	"github.com/username/confirmdesk/backend/src/security/validation"
	"github.com/username/confirmdesk/backend/src/utils"
)

type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// MapRows normalizes raw FX rows into FXTrade records with the documented
// defaults for unmapped or missing fields. Mapping never fails.
func (p *Parser) MapRows(rows []models.RawRow) []models.FXTrade {
	if len(rows) == 0 {
		return nil
	}

	batch := strings.Split(uuid.NewString(), "-")[0]
	today := utils.Today()

	trades := make([]models.FXTrade, 0, len(rows))
	for i, row := range rows {
		trade := models.FXTrade{
			TradeID:               row.Field("TradeID", "Trade ID", "tradeId", "ID"),
			TradeDate:             defaultString(row.Field("TradeDate", "Trade Date", "tradeDate", "Date"), today),
			ValueDate:             defaultString(row.Field("ValueDate", "Value Date", "valueDate"), today),
			TradeTime:             defaultString(row.Field("TradeTime", "Trade Time", "tradeTime", "Time"), "09:00:00"),
			TraderID:              row.Field("TraderID", "Trader ID", "traderId", "Trader"),
			Counterparty:          defaultString(validation.SanitizeField(row.Field("Counterparty", "counterparty", "Counter Party")), "Unknown"),
			CurrencyPair:          defaultString(row.Field("CurrencyPair", "Currency Pair", "currencyPair", "Pair"), "USD/EUR"),
			BuySell:               defaultString(row.Field("BuySell", "Buy/Sell", "buySell", "Side", "Direction"), "Buy"),
			DealtCurrency:         defaultString(row.Field("DealtCurrency", "Dealt Currency", "dealtCurrency"), "USD"),
			BaseCurrency:          defaultString(row.Field("BaseCurrency", "Base Currency", "baseCurrency", "Base"), "USD"),
			TermCurrency:          defaultString(row.Field("TermCurrency", "Term Currency", "termCurrency", "Term"), "EUR"),
			TradeStatus:           defaultString(row.Field("TradeStatus", "Trade Status", "tradeStatus", "Status"), "Booked"),
			ProductType:           defaultString(row.Field("ProductType", "Product Type", "productType", "Product"), "Spot"),
			MaturityDate:          row.Field("MaturityDate", "Maturity Date", "maturityDate"),
			ConfirmationTimestamp: defaultString(row.Field("ConfirmationTimestamp", "Confirmation Timestamp", "confirmationTimestamp"), time.Now().Format(time.RFC3339)),
			SettlementDate:        defaultString(row.Field("SettlementDate", "Settlement Date", "settlementDate"), today),
			AmendmentFlag:         defaultString(row.Field("AmendmentFlag", "Amendment Flag", "amendmentFlag"), "No"),
			ConfirmationMethod:    defaultString(row.Field("ConfirmationMethod", "Confirmation Method", "confirmationMethod"), "Electronic"),
			ConfirmationStatus:    defaultString(row.Field("ConfirmationStatus", "Confirmation Status", "confirmationStatus"), "Pending"),
		}
		if trade.TradeID == "" {
			trade.TradeID = fmt.Sprintf("FX-%s-%d", batch, i)
		}
		if trade.TraderID == "" {
			trade.TraderID = fmt.Sprintf("TDR%d", i)
		}
		trades = append(trades, trade)
	}
	return trades
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
