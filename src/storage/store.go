package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"

	"github.com/username/confirmdesk/backend/src/logger"
	"github.com/username/confirmdesk/backend/src/models"
	"github.com/username/confirmdesk/backend/src/parsers"
	"github.com/username/confirmdesk/backend/src/parsers/equity"
	"github.com/username/confirmdesk/backend/src/parsers/fx"
	_ "modernc.org/sqlite"
)

const (
	keyEquityTrades = "equityTrades"
	keyFXTrades     = "fxTrades"
)

// TradeStore persists the equity and FX trade collections as whole-collection
// JSON snapshots in a local sqlite file. Each collection lives under a fixed
// key and is always written in full; there is no per-trade row model.
type TradeStore struct {
	db                *sql.DB
	equityFixturePath string
	fxFixturePath     string
}

func NewTradeStore(dbPath, equityFixturePath, fxFixturePath string) (*TradeStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot database at %s: %w", dbPath, err)
	}

	createTableStatement := `
	CREATE TABLE IF NOT EXISTS trade_snapshots (
		key TEXT PRIMARY KEY,
		payload TEXT NOT NULL,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	`
	if _, err := db.Exec(createTableStatement); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create trade_snapshots table: %w", err)
	}
	logger.L.Info("Snapshot store ready", "dbPath", dbPath)

	return &TradeStore{
		db:                db,
		equityFixturePath: equityFixturePath,
		fxFixturePath:     fxFixturePath,
	}, nil
}

// Load returns the stored trade collections. A collection with no snapshot
// falls back to the bundled fixture CSV; a missing fixture yields an empty
// collection rather than an error.
func (s *TradeStore) Load() ([]models.EquityTrade, []models.FXTrade, error) {
	var equityTrades []models.EquityTrade
	found, err := s.loadSnapshot(keyEquityTrades, &equityTrades)
	if err != nil {
		return nil, nil, err
	}
	if !found {
		equityTrades = loadEquityFixture(s.equityFixturePath)
	}

	var fxTrades []models.FXTrade
	found, err = s.loadSnapshot(keyFXTrades, &fxTrades)
	if err != nil {
		return nil, nil, err
	}
	if !found {
		fxTrades = loadFXFixture(s.fxFixturePath)
	}

	return equityTrades, fxTrades, nil
}

// Replace overwrites both snapshots in a single transaction.
func (s *TradeStore) Replace(equityTrades []models.EquityTrade, fxTrades []models.FXTrade) error {
	equityPayload, err := json.Marshal(equityTrades)
	if err != nil {
		return fmt.Errorf("failed to marshal equity trades: %w", err)
	}
	fxPayload, err := json.Marshal(fxTrades)
	if err != nil {
		return fmt.Errorf("failed to marshal fx trades: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin snapshot transaction: %w", err)
	}
	defer tx.Rollback()

	upsert := `
	INSERT INTO trade_snapshots (key, payload, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
	ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, updated_at = CURRENT_TIMESTAMP;
	`
	if _, err := tx.Exec(upsert, keyEquityTrades, string(equityPayload)); err != nil {
		return fmt.Errorf("failed to write equity snapshot: %w", err)
	}
	if _, err := tx.Exec(upsert, keyFXTrades, string(fxPayload)); err != nil {
		return fmt.Errorf("failed to write fx snapshot: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit snapshot transaction: %w", err)
	}

	logger.L.Info("Trade snapshots replaced",
		"equityCount", len(equityTrades),
		"fxCount", len(fxTrades))
	return nil
}

// Append adds trades to the stored collections and persists the result.
// Duplicate trade IDs are kept as-is; ingestion never rejects a row for
// colliding with an existing one.
func (s *TradeStore) Append(equityTrades []models.EquityTrade, fxTrades []models.FXTrade) error {
	existingEquity, existingFX, err := s.Load()
	if err != nil {
		return err
	}
	return s.Replace(append(existingEquity, equityTrades...), append(existingFX, fxTrades...))
}

func (s *TradeStore) Close() error {
	return s.db.Close()
}

func (s *TradeStore) loadSnapshot(key string, dest interface{}) (bool, error) {
	var payload string
	err := s.db.QueryRow("SELECT payload FROM trade_snapshots WHERE key = ?", key).Scan(&payload)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read snapshot %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(payload), dest); err != nil {
		return false, fmt.Errorf("failed to decode snapshot %s: %w", key, err)
	}
	return true, nil
}

func loadEquityFixture(path string) []models.EquityTrade {
	rows := loadFixtureRows(path)
	if rows == nil {
		return nil
	}
	trades := equity.NewParser().MapRows(rows)
	logger.L.Info("Loaded equity trades from fixture", "path", path, "count", len(trades))
	return trades
}

func loadFXFixture(path string) []models.FXTrade {
	rows := loadFixtureRows(path)
	if rows == nil {
		return nil
	}
	trades := fx.NewParser().MapRows(rows)
	logger.L.Info("Loaded fx trades from fixture", "path", path, "count", len(trades))
	return trades
}

func loadFixtureRows(path string) []models.RawRow {
	file, err := os.Open(path)
	if err != nil {
		logger.L.Warn("Fixture file unavailable, starting with empty collection", "path", path, "error", err)
		return nil
	}
	defer file.Close()

	rows, err := parsers.NewCSVParser().ParseRows(file)
	if err != nil {
		logger.L.Warn("Failed to parse fixture file", "path", path, "error", err)
		return nil
	}
	return rows
}
