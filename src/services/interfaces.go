package services

import (
	"errors"
	"io"
	"time"

	"github.com/username/confirmdesk/backend/src/models"
	"github.com/username/confirmdesk/backend/src/processors"
)

var (
	ErrUnsupportedFile = errors.New("unsupported file type")
	ErrParsingFailed   = errors.New("file parsing failed")
	ErrEmptyFile       = errors.New("file contains no data rows")
)

// UploadResult summarizes one ingested file.
type UploadResult struct {
	AssetClass  models.AssetClass `json:"assetClass"`
	TradesAdded int               `json:"tradesAdded"`
	TotalTrades int               `json:"totalTrades"`
}

// DashboardReport holds every aggregate the dashboard renders for one
// asset-class filter.
type DashboardReport struct {
	Summary            models.SummaryStats     `json:"summary"`
	WorkflowStages     []models.Bucket         `json:"workflowStages"`
	NextActionOwners   []models.Bucket         `json:"nextActionOwners"`
	CurrentStages      []models.Bucket         `json:"currentStages"`
	StatusDistribution []models.Bucket         `json:"statusDistribution"`
	Escalations        models.EscalationCounts `json:"escalations"`
}

// TradeService is the core upload/reporting surface.
type TradeService interface {
	ProcessUpload(fileReader io.Reader, filename string, size int64) (*UploadResult, error)
	ReplaceTrades(equityTrades []models.EquityTrade, fxTrades []models.FXTrade) error
	Trades(filter processors.TradeFilter) ([]models.Trade, error)
	Dashboard(filter processors.TradeFilter) (*DashboardReport, error)
	AnalyzeDate(filter processors.TradeFilter, date string) (models.DateAnalysis, error)
	EscalatedTrades(department string) ([]models.Trade, error)
	Lifecycles(now time.Time) ([]models.TradeLifecycle, error)
}

// LetterStyle selects the confirmation letter template.
type LetterStyle string

const (
	LetterStyleDesk   LetterStyle = "desk"
	LetterStyleClient LetterStyle = "client"
)

// LetterService renders trade confirmation letters.
type LetterService interface {
	RenderLetter(trade models.Trade, style LetterStyle) (string, error)
	WriteLetter(trade models.Trade, style LetterStyle) (string, error)
}
