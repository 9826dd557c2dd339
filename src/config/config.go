package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	LogLevel           string
	SnapshotDBPath     string
	EquityFixturePath  string
	FXFixturePath      string
	LettersOutputDir   string
	MaxUploadSizeBytes int64
}

var Cfg *AppConfig

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found. Relying on OS environment variables and defaults.")
	} else {
		log.Println(".env file loaded successfully.")
	}

	log.Println("Loading application configuration...")

	maxUploadSizeBytesStr := getEnv("MAX_UPLOAD_SIZE_BYTES", "10485760")
	maxUploadSizeBytes, err := strconv.ParseInt(maxUploadSizeBytesStr, 10, 64)
	if err != nil {
		log.Printf("WARNING: Invalid MAX_UPLOAD_SIZE_BYTES format '%s'. Using default 10MB. Error: %v", maxUploadSizeBytesStr, err)
		maxUploadSizeBytes = 10 * 1024 * 1024
	}

	Cfg = &AppConfig{
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		SnapshotDBPath:     getEnv("SNAPSHOT_DB_PATH", "./confirmdesk.db"),
		EquityFixturePath:  getEnv("EQUITY_FIXTURE_PATH", "data/equity_trades.csv"),
		FXFixturePath:      getEnv("FX_FIXTURE_PATH", "data/fx_trades.csv"),
		LettersOutputDir:   getEnv("LETTERS_OUTPUT_DIR", "./letters"),
		MaxUploadSizeBytes: maxUploadSizeBytes,
	}

	log.Printf("Configuration loaded: LogLevel=%s, SnapshotDBPath=%s, LettersDir=%s",
		Cfg.LogLevel, Cfg.SnapshotDBPath, Cfg.LettersOutputDir)
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	log.Printf("Environment variable %s not set, using default: %s", key, fallback)
	return fallback
}
