package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/username/confirmdesk/backend/src/config"
	"github.com/username/confirmdesk/backend/src/logger"
	"github.com/username/confirmdesk/backend/src/processors"
	"github.com/username/confirmdesk/backend/src/services"
	"github.com/username/confirmdesk/backend/src/storage"
)

func main() {
	uploadPath := flag.String("upload", "", "path of a trade file (csv/xlsx) to ingest before reporting")
	filterName := flag.String("filter", "all", "asset-class filter for the dashboard report: all, equity or fx")
	date := flag.String("date", "", "date (YYYY-MM-DD) to analyze registrations and next-day closures for")
	letters := flag.Bool("letters", false, "write a confirmation letter per trade to the letters directory")
	letterStyle := flag.String("letter-style", "desk", "letter template: desk or client")
	lifecycle := flag.Bool("lifecycle", false, "print the per-trade team lifecycles instead of the dashboard report")
	flag.Parse()

	config.LoadConfig()
	logger.InitLogger(config.Cfg.LogLevel)
	logger.L.Info("Confirmdesk backend starting...")

	store, err := storage.NewTradeStore(
		config.Cfg.SnapshotDBPath,
		config.Cfg.EquityFixturePath,
		config.Cfg.FXFixturePath,
	)
	if err != nil {
		logger.L.Error("Failed to open trade store", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	reportCache := cache.New(services.DefaultCacheExpiration, services.CacheCleanupInterval)
	tradeService := services.NewTradeService(
		store,
		processors.NewStatusClassifier(),
		processors.NewAnalyticsProcessor(processors.NewStatusClassifier()),
		processors.NewEscalationProcessor(),
		processors.NewLifecycleProcessor(),
		reportCache,
		config.Cfg.MaxUploadSizeBytes,
	)
	letterService := services.NewLetterService(config.Cfg.LettersOutputDir)

	if *uploadPath != "" {
		file, err := os.Open(*uploadPath)
		if err != nil {
			logger.L.Error("Failed to open upload file", "path", *uploadPath, "error", err)
			os.Exit(1)
		}
		info, err := file.Stat()
		if err != nil {
			file.Close()
			logger.L.Error("Failed to stat upload file", "path", *uploadPath, "error", err)
			os.Exit(1)
		}
		result, err := tradeService.ProcessUpload(file, info.Name(), info.Size())
		file.Close()
		if err != nil {
			logger.L.Error("Upload failed", "path", *uploadPath, "error", err)
			os.Exit(1)
		}
		logger.L.Info("Upload processed",
			"assetClass", result.AssetClass,
			"tradesAdded", result.TradesAdded,
			"totalTrades", result.TotalTrades)
	}

	filter := processors.TradeFilter(*filterName)
	switch filter {
	case processors.FilterAll, processors.FilterEquity, processors.FilterFX:
	default:
		logger.L.Error("Unknown filter", "filter", *filterName)
		os.Exit(1)
	}

	if *lifecycle {
		lifecycles, err := tradeService.Lifecycles(time.Now())
		if err != nil {
			logger.L.Error("Failed to build lifecycles", "error", err)
			os.Exit(1)
		}
		printJSON(lifecycles)
		return
	}

	report, err := tradeService.Dashboard(filter)
	if err != nil {
		logger.L.Error("Failed to build dashboard report", "error", err)
		os.Exit(1)
	}
	printJSON(report)

	if *date != "" {
		analysis, err := tradeService.AnalyzeDate(filter, *date)
		if err != nil {
			logger.L.Error("Failed to analyze date", "date", *date, "error", err)
			os.Exit(1)
		}
		printJSON(analysis)
	}

	if *letters {
		style := services.LetterStyle(*letterStyle)
		if style != services.LetterStyleDesk && style != services.LetterStyleClient {
			logger.L.Error("Unknown letter style", "style", *letterStyle)
			os.Exit(1)
		}
		trades, err := tradeService.Trades(filter)
		if err != nil {
			logger.L.Error("Failed to load trades for letters", "error", err)
			os.Exit(1)
		}
		for _, trade := range trades {
			if _, err := letterService.WriteLetter(trade, style); err != nil {
				logger.L.Error("Failed to write letter", "tradeId", trade.ID(), "error", err)
			}
		}
		logger.L.Info("Letters written", "count", len(trades), "dir", config.Cfg.LettersOutputDir)
	}
}

func printJSON(v interface{}) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		logger.L.Error("Failed to encode output", "error", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
