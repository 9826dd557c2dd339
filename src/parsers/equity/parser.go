package equity

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/username/confirmdesk/backend/src/models"
	"github.com/username/confirmdesk/backend/src/security/validation"
	"github.com/username/confirmdesk/backend/src/utils"
)

type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// MapRows normalizes raw equity rows into EquityTrade records. Unmapped or
// missing fields take the documented defaults; numeric fields that fail to
// parse become zero. Mapping never fails — the worst case is a record made
// entirely of defaults.
func (p *Parser) MapRows(rows []models.RawRow) []models.EquityTrade {
	if len(rows) == 0 {
		return nil
	}

	// One batch tag per mapped file so generated fallback IDs stay unique
	// across uploads within a session.
	batch := strings.Split(uuid.NewString(), "-")[0]
	today := utils.Today()

	trades := make([]models.EquityTrade, 0, len(rows))
	for i, row := range rows {
		trade := models.EquityTrade{
			TradeID:            row.Field("Trade ID", "TradeID", "tradeId", "ID"),
			OrderID:            row.Field("Order ID", "OrderID", "orderId"),
			ClientID:           row.Field("Client ID", "ClientID", "clientId", "Client"),
			TradeType:          defaultString(row.Field("Trade Type", "TradeType", "tradeType", "Type"), "Buy"),
			Quantity:           parseInt(row.Field("Quantity", "quantity", "Qty")),
			Price:              parseDecimal(row.Field("Price", "price", "Unit Price")),
			TradeValue:         parseDecimal(row.Field("Trade Value", "TradeValue", "tradeValue", "Value", "Amount")),
			Currency:           defaultString(row.Field("Currency", "currency", "Ccy"), "USD"),
			TradeDate:          defaultString(row.Field("Trade Date", "TradeDate", "tradeDate", "Date"), today),
			SettlementDate:     defaultString(row.Field("Settlement Date", "SettlementDate", "settlementDate", "Settle Date"), today),
			Counterparty:       defaultString(validation.SanitizeField(row.Field("Counterparty", "counterparty", "Counter Party")), "Unknown"),
			TradingVenue:       defaultString(row.Field("Trading Venue", "TradingVenue", "tradingVenue", "Venue", "Exchange"), "NYSE"),
			TraderName:         defaultString(validation.SanitizeField(row.Field("Trader Name", "TraderName", "traderName", "Trader")), "Trader A"),
			ConfirmationStatus: defaultString(row.Field("Confirmation Status", "ConfirmationStatus", "confirmationStatus", "Status"), "Pending"),
			CountryOfTrade:     defaultString(row.Field("Country of Trade", "CountryOfTrade", "countryOfTrade", "Country"), "US"),
			OpsTeamNotes:       defaultString(validation.SanitizeField(row.Field("Ops Team Notes", "OpsTeamNotes", "opsTeamNotes", "Notes", "Comments")), "Clean"),
		}
		if trade.TradeID == "" {
			trade.TradeID = fmt.Sprintf("UPLOAD-%s-%d", batch, i)
		}
		if trade.OrderID == "" {
			trade.OrderID = fmt.Sprintf("ORDER-%s-%d", batch, i)
		}
		if trade.ClientID == "" {
			trade.ClientID = fmt.Sprintf("CLIENT-%d", i)
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

func parseInt(value string) int64 {
	n, err := strconv.ParseInt(strings.ReplaceAll(value, ",", ""), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func parseDecimal(value string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.ReplaceAll(value, ",", ""))
	if err != nil {
		return decimal.Zero
	}
	return d
}
