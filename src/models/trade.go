package models

import "github.com/shopspring/decimal"

// AssetClass is the explicit discriminator between the two trade variants.
type AssetClass string

const (
	AssetClassEquity AssetClass = "equity"
	AssetClassFX     AssetClass = "fx"
)

// Trade is the common read-only view over both trade variants. Every
// status-derived display goes through EffectiveStatus, never through the raw
// variant fields directly.
type Trade interface {
	ID() string
	Class() AssetClass
	// EffectiveStatus is the status string the workflow derives everything
	// from: ConfirmationStatus for equity trades, TradeStatus for FX trades.
	EffectiveStatus() string
	TradeDay() string
	SettlementDay() string
	CounterpartyName() string
}

// EquityTrade represents a single cash equity trade as normalized from an
// uploaded or bundled dataset.
type EquityTrade struct {
	TradeID            string          `json:"tradeId"`
	OrderID            string          `json:"orderId"`
	ClientID           string          `json:"clientId"`
	TradeType          string          `json:"tradeType"` // "Buy" or "Sell"
	Quantity           int64           `json:"quantity"`
	Price              decimal.Decimal `json:"price"`
	TradeValue         decimal.Decimal `json:"tradeValue"`
	Currency           string          `json:"currency"`
	TradeDate          string          `json:"tradeDate"`
	SettlementDate     string          `json:"settlementDate"`
	Counterparty       string          `json:"counterparty"`
	TradingVenue       string          `json:"tradingVenue"`
	TraderName         string          `json:"traderName"`
	ConfirmationStatus string          `json:"confirmationStatus"` // Confirmed, Pending, Failed, Settled
	CountryOfTrade     string          `json:"countryOfTrade"`
	OpsTeamNotes       string          `json:"opsTeamNotes"`
}

func (t EquityTrade) ID() string               { return t.TradeID }
func (t EquityTrade) Class() AssetClass        { return AssetClassEquity }
func (t EquityTrade) EffectiveStatus() string  { return t.ConfirmationStatus }
func (t EquityTrade) TradeDay() string         { return t.TradeDate }
func (t EquityTrade) SettlementDay() string    { return t.SettlementDate }
func (t EquityTrade) CounterpartyName() string { return t.Counterparty }

// FXTrade represents a single FX trade (spot, forward or swap).
type FXTrade struct {
	TradeID               string `json:"tradeId"`
	TradeDate             string `json:"tradeDate"`
	ValueDate             string `json:"valueDate"`
	TradeTime             string `json:"tradeTime"`
	TraderID              string `json:"traderId"`
	Counterparty          string `json:"counterparty"`
	CurrencyPair          string `json:"currencyPair"`
	BuySell               string `json:"buySell"`
	DealtCurrency         string `json:"dealtCurrency"`
	BaseCurrency          string `json:"baseCurrency"`
	TermCurrency          string `json:"termCurrency"`
	TradeStatus           string `json:"tradeStatus"` // Booked, Confirmed, Settled, Cancelled
	ProductType           string `json:"productType"` // Spot, Forward, Swap
	MaturityDate          string `json:"maturityDate,omitempty"`
	ConfirmationTimestamp string `json:"confirmationTimestamp"`
	SettlementDate        string `json:"settlementDate"`
	AmendmentFlag         string `json:"amendmentFlag"`      // Yes or No
	ConfirmationMethod    string `json:"confirmationMethod"` // SWIFT, Email, Manual, Electronic
	ConfirmationStatus    string `json:"confirmationStatus"` // Confirmed, Pending, Disputed
}

func (t FXTrade) ID() string               { return t.TradeID }
func (t FXTrade) Class() AssetClass        { return AssetClassFX }
func (t FXTrade) EffectiveStatus() string  { return t.TradeStatus }
func (t FXTrade) TradeDay() string         { return t.TradeDate }
func (t FXTrade) SettlementDay() string    { return t.SettlementDate }
func (t FXTrade) CounterpartyName() string { return t.Counterparty }

// Combine flattens the two typed collections into the common view, equities
// first, preserving order within each class.
func Combine(equity []EquityTrade, fx []FXTrade) []Trade {
	trades := make([]Trade, 0, len(equity)+len(fx))
	for _, t := range equity {
		trades = append(trades, t)
	}
	for _, t := range fx {
		trades = append(trades, t)
	}
	return trades
}
