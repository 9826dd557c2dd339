package services

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/username/confirmdesk/backend/src/logger"
	"github.com/username/confirmdesk/backend/src/models"
	"github.com/username/confirmdesk/backend/src/utils"
)

const deskLetterTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Trade Confirmation - {{.TradeID}}</title>
<style>
body { font-family: Arial, sans-serif; margin: 40px; color: #1f2937; }
h1 { font-size: 20px; border-bottom: 2px solid #3B82F6; padding-bottom: 8px; }
table { border-collapse: collapse; width: 100%; margin-top: 16px; }
td { border: 1px solid #d1d5db; padding: 8px 12px; font-size: 13px; }
td.label { background: #f3f4f6; font-weight: bold; width: 220px; }
.meta { color: #6b7280; font-size: 12px; margin-top: 24px; }
</style>
</head>
<body>
<h1>Trade Confirmation &mdash; {{.ClassLabel}}</h1>
<p>Reference: <strong>{{.TradeID}}</strong> &nbsp;|&nbsp; Status: <strong>{{.Status}}</strong></p>
<table>
{{range .Fields}}<tr><td class="label">{{.Label}}</td><td>{{.Value}}</td></tr>
{{end}}</table>
<p class="meta">Generated {{.GeneratedAt}} by the confirmations desk.</p>
</body>
</html>
`

const clientLetterTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Trade Confirmation - {{.TradeID}}</title>
<style>
body { font-family: Georgia, serif; margin: 48px; color: #111827; line-height: 1.6; }
.header { text-align: right; color: #6b7280; font-size: 13px; }
h1 { font-size: 18px; margin-top: 32px; }
table { border-collapse: collapse; margin: 16px 0; }
td { padding: 4px 16px 4px 0; font-size: 14px; }
td.label { font-weight: bold; }
.signature { margin-top: 48px; }
</style>
</head>
<body>
<div class="header">{{.GeneratedAt}}</div>
<h1>Trade Confirmation</h1>
<p>Dear {{.Counterparty}},</p>
<p>We are writing to confirm the details of the following {{.ClassLabel}} transaction
executed with you. Please review the particulars below and notify us within two
business days if any detail does not match your records.</p>
<table>
{{range .Fields}}<tr><td class="label">{{.Label}}</td><td>{{.Value}}</td></tr>
{{end}}</table>
<p>If all details are in order no further action is required and this letter will
serve as the definitive record of the transaction.</p>
<div class="signature">
<p>Yours faithfully,</p>
<p><strong>Confirmations Desk</strong><br>Operations Division</p>
</div>
</body>
</html>
`

type letterField struct {
	Label string
	Value string
}

type letterData struct {
	TradeID      string
	Status       string
	ClassLabel   string
	Counterparty string
	GeneratedAt  string
	Fields       []letterField
}

type letterServiceImpl struct {
	deskTemplate   *template.Template
	clientTemplate *template.Template
	outputDir      string
}

func NewLetterService(outputDir string) LetterService {
	return &letterServiceImpl{
		deskTemplate:   template.Must(template.New("desk").Parse(deskLetterTemplate)),
		clientTemplate: template.Must(template.New("client").Parse(clientLetterTemplate)),
		outputDir:      outputDir,
	}
}

// RenderLetter produces the letter HTML for one trade without touching disk.
func (s *letterServiceImpl) RenderLetter(trade models.Trade, style LetterStyle) (string, error) {
	data, err := buildLetterData(trade)
	if err != nil {
		return "", err
	}

	tmpl := s.deskTemplate
	if style == LetterStyleClient {
		tmpl = s.clientTemplate
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("failed to render letter for trade %s: %w", trade.ID(), err)
	}
	return sb.String(), nil
}

// WriteLetter renders the letter and writes it under the configured output
// directory, returning the written path.
func (s *letterServiceImpl) WriteLetter(trade models.Trade, style LetterStyle) (string, error) {
	content, err := s.RenderLetter(trade, style)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create letters directory %s: %w", s.outputDir, err)
	}

	path := filepath.Join(s.outputDir, fmt.Sprintf("trade-confirmation-%s.html", trade.ID()))
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("failed to write letter %s: %w", path, err)
	}
	logger.L.Info("Confirmation letter written", "tradeId", trade.ID(), "style", style, "path", path)
	return path, nil
}

func buildLetterData(trade models.Trade) (letterData, error) {
	data := letterData{
		TradeID:      trade.ID(),
		Status:       trade.EffectiveStatus(),
		Counterparty: trade.CounterpartyName(),
		GeneratedAt:  time.Now().Format("2 January 2006"),
	}

	switch t := trade.(type) {
	case models.EquityTrade:
		symbol := utils.CurrencySymbol(t.Currency)
		data.ClassLabel = "Equity"
		data.Fields = []letterField{
			{"Trade ID", t.TradeID},
			{"Order ID", t.OrderID},
			{"Client ID", t.ClientID},
			{"Trade Type", t.TradeType},
			{"Quantity", fmt.Sprintf("%d", t.Quantity)},
			{"Price", symbol + t.Price.StringFixed(2)},
			{"Trade Value", symbol + t.TradeValue.StringFixed(2)},
			{"Currency", t.Currency},
			{"Trade Date", t.TradeDate},
			{"Settlement Date", t.SettlementDate},
			{"Counterparty", t.Counterparty},
			{"Trading Venue", t.TradingVenue},
			{"Trader Name", t.TraderName},
			{"Confirmation Status", t.ConfirmationStatus},
			{"Country of Trade", t.CountryOfTrade},
		}
	case models.FXTrade:
		data.ClassLabel = "FX"
		data.Fields = []letterField{
			{"Trade ID", t.TradeID},
			{"Trade Date", t.TradeDate},
			{"Value Date", t.ValueDate},
			{"Trader ID", t.TraderID},
			{"Counterparty", t.Counterparty},
			{"Currency Pair", t.CurrencyPair},
			{"Buy/Sell", t.BuySell},
			{"Dealt Currency", t.DealtCurrency},
			{"Product Type", t.ProductType},
			{"Settlement Date", t.SettlementDate},
			{"Confirmation Method", t.ConfirmationMethod},
			{"Confirmation Status", t.ConfirmationStatus},
		}
	default:
		return letterData{}, fmt.Errorf("no letter layout for asset class %q", trade.Class())
	}
	return data, nil
}
