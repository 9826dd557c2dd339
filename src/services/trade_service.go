package services

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/username/confirmdesk/backend/src/logger"
	"github.com/username/confirmdesk/backend/src/models"
	"github.com/username/confirmdesk/backend/src/parsers"
	"github.com/username/confirmdesk/backend/src/parsers/equity"
	"github.com/username/confirmdesk/backend/src/parsers/fx"
	"github.com/username/confirmdesk/backend/src/processors"
	"github.com/username/confirmdesk/backend/src/security/validation"
	"github.com/username/confirmdesk/backend/src/storage"
)

const (
	ckDashboardReport = "report_%s"

	DefaultCacheExpiration = 15 * time.Minute
	CacheCleanupInterval   = 30 * time.Minute
)

type tradeServiceImpl struct {
	store              *storage.TradeStore
	classifier         processors.StatusClassifier
	analytics          processors.AnalyticsProcessor
	escalation         processors.EscalationProcessor
	lifecycle          processors.LifecycleProcessor
	reportCache        *cache.Cache
	maxUploadSizeBytes int64
}

func NewTradeService(
	store *storage.TradeStore,
	classifier processors.StatusClassifier,
	analytics processors.AnalyticsProcessor,
	escalation processors.EscalationProcessor,
	lifecycle processors.LifecycleProcessor,
	reportCache *cache.Cache,
	maxUploadSizeBytes int64,
) TradeService {
	return &tradeServiceImpl{
		store:              store,
		classifier:         classifier,
		analytics:          analytics,
		escalation:         escalation,
		lifecycle:          lifecycle,
		reportCache:        reportCache,
		maxUploadSizeBytes: maxUploadSizeBytes,
	}
}

// ProcessUpload validates, parses and persists one uploaded trade file. The
// asset class is detected from the column headers, so a FX file uploaded
// through the equity screen still lands in the right collection.
func (s *tradeServiceImpl) ProcessUpload(fileReader io.Reader, filename string, size int64) (*UploadResult, error) {
	startTime := time.Now()
	logger.L.Info("ProcessUpload START", "filename", filename, "size", size)

	if err := validation.ValidateUploadSize(size, s.maxUploadSizeBytes); err != nil {
		return nil, err
	}

	data, err := io.ReadAll(fileReader)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParsingFailed, err)
	}
	if _, err := validation.ValidateFileContent(data, filename); err != nil {
		return nil, err
	}

	parser, err := parsers.GetParser(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFile, err)
	}

	rows, err := parser.ParseRows(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParsingFailed, err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyFile
	}

	assetClass := parsers.DetectAssetClass(rows)
	result := &UploadResult{AssetClass: assetClass}
	switch assetClass {
	case models.AssetClassFX:
		trades := fx.NewParser().MapRows(rows)
		if err := s.store.Append(nil, trades); err != nil {
			return nil, fmt.Errorf("failed to persist fx trades: %w", err)
		}
		result.TradesAdded = len(trades)
	default:
		trades := equity.NewParser().MapRows(rows)
		if err := s.store.Append(trades, nil); err != nil {
			return nil, fmt.Errorf("failed to persist equity trades: %w", err)
		}
		result.TradesAdded = len(trades)
	}

	all, err := s.Trades(processors.FilterAll)
	if err != nil {
		return nil, err
	}
	result.TotalTrades = len(all)

	s.invalidateReportCache()
	logger.L.Info("ProcessUpload END",
		"filename", filename,
		"assetClass", assetClass,
		"tradesAdded", result.TradesAdded,
		"durationMs", time.Since(startTime).Milliseconds())
	return result, nil
}

// ReplaceTrades swaps out both stored collections wholesale.
func (s *tradeServiceImpl) ReplaceTrades(equityTrades []models.EquityTrade, fxTrades []models.FXTrade) error {
	if err := s.store.Replace(equityTrades, fxTrades); err != nil {
		return err
	}
	s.invalidateReportCache()
	return nil
}

func (s *tradeServiceImpl) Trades(filter processors.TradeFilter) ([]models.Trade, error) {
	equityTrades, fxTrades, err := s.store.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load trades: %w", err)
	}
	return s.analytics.Filter(models.Combine(equityTrades, fxTrades), filter), nil
}

// Dashboard builds the full aggregate report for one filter. Reports are
// cached until the next upload or replace.
func (s *tradeServiceImpl) Dashboard(filter processors.TradeFilter) (*DashboardReport, error) {
	cacheKey := fmt.Sprintf(ckDashboardReport, filter)
	if cached, found := s.reportCache.Get(cacheKey); found {
		if report, ok := cached.(*DashboardReport); ok {
			logger.L.Debug("Dashboard report served from cache", "filter", filter)
			return report, nil
		}
	}

	trades, err := s.Trades(filter)
	if err != nil {
		return nil, err
	}

	report := &DashboardReport{
		Summary:            s.analytics.Summary(trades),
		WorkflowStages:     s.analytics.Aggregate(trades, processors.DimensionWorkflowStage),
		NextActionOwners:   s.analytics.Aggregate(trades, processors.DimensionNextActionOwner),
		CurrentStages:      s.analytics.Aggregate(trades, processors.DimensionCurrentStage),
		StatusDistribution: s.analytics.Aggregate(trades, processors.DimensionStatus),
		Escalations:        s.escalation.Counts(trades),
	}
	s.reportCache.Set(cacheKey, report, cache.DefaultExpiration)
	return report, nil
}

func (s *tradeServiceImpl) AnalyzeDate(filter processors.TradeFilter, date string) (models.DateAnalysis, error) {
	trades, err := s.Trades(filter)
	if err != nil {
		return models.DateAnalysis{}, err
	}
	return s.analytics.AnalyzeDate(trades, date), nil
}

func (s *tradeServiceImpl) EscalatedTrades(department string) ([]models.Trade, error) {
	trades, err := s.Trades(processors.FilterAll)
	if err != nil {
		return nil, err
	}
	return s.escalation.EscalatedTrades(trades, department), nil
}

func (s *tradeServiceImpl) Lifecycles(now time.Time) ([]models.TradeLifecycle, error) {
	trades, err := s.Trades(processors.FilterAll)
	if err != nil {
		return nil, err
	}
	return s.lifecycle.Build(trades, now), nil
}

func (s *tradeServiceImpl) invalidateReportCache() {
	for _, filter := range []processors.TradeFilter{processors.FilterAll, processors.FilterEquity, processors.FilterFX} {
		s.reportCache.Delete(fmt.Sprintf(ckDashboardReport, filter))
	}
}
