package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"math"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"StockScope/internal/model"
	"StockScope/internal/series"
)

// SQLiteRecorder caches price history and run metadata in a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode for better concurrent read performance (dashboard reads while
	// the refresh task writes).
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS daily_bars (
			symbol TEXT NOT NULL,
			day    TEXT NOT NULL,
			high   REAL,
			low    REAL,
			close  REAL NOT NULL,
			volume REAL,
			PRIMARY KEY (symbol, day)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_bars_symbol_day ON daily_bars(symbol, day)`,

		`CREATE TABLE IF NOT EXISTS analysis_runs (
			id      TEXT PRIMARY KEY,
			symbol  TEXT NOT NULL,
			run_at  INTEGER NOT NULL,
			points  INTEGER,
			signals INTEGER,
			zones   INTEGER,
			peaks   INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_symbol_ts ON analysis_runs(symbol, run_at)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// SaveDailyBars upserts the fetched bars, keyed by canonical calendar day.
func (r *SQLiteRecorder) SaveDailyBars(symbol string, bars []model.PricePoint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	stmt, err := tx.Prepare(`INSERT INTO daily_bars (symbol, day, high, low, close, volume)
		VALUES (?,?,?,?,?,?)
		ON CONFLICT(symbol, day) DO UPDATE SET
			high=excluded.high, low=excluded.low, close=excluded.close, volume=excluded.volume`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("prepare upsert: %w", err)
	}
	defer stmt.Close()

	for _, b := range bars {
		if _, err := stmt.Exec(symbol, series.DayKey(b.Date),
			nullable(b.High), nullable(b.Low), b.Close, nullable(b.Volume)); err != nil {
			tx.Rollback()
			return fmt.Errorf("upsert bar: %w", err)
		}
	}
	return tx.Commit()
}

// LoadDailyBars returns up to limit most recent cached bars, ascending.
func (r *SQLiteRecorder) LoadDailyBars(symbol string, limit int) ([]model.PricePoint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows, err := r.db.Query(`SELECT day, high, low, close, volume
		FROM daily_bars WHERE symbol=? ORDER BY day DESC LIMIT ?`, symbol, limit)
	if err != nil {
		return nil, fmt.Errorf("query bars: %w", err)
	}
	defer rows.Close()

	var bars []model.PricePoint
	for rows.Next() {
		var day string
		var high, low, volume sql.NullFloat64
		var closePrice float64
		if err := rows.Scan(&day, &high, &low, &closePrice, &volume); err != nil {
			return nil, fmt.Errorf("scan bar: %w", err)
		}
		d, err := time.ParseInLocation("2006-01-02", day, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("parse day %q: %w", day, err)
		}
		bars = append(bars, model.PricePoint{
			Date:   d,
			High:   fromNullable(high),
			Low:    fromNullable(low),
			Close:  closePrice,
			Volume: fromNullable(volume),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	// Query returned newest first; flip to ascending.
	for i, j := 0, len(bars)-1; i < j; i, j = i+1, j-1 {
		bars[i], bars[j] = bars[j], bars[i]
	}
	return bars, nil
}

// RecordRun logs one analysis run. Indicator values themselves are not
// persisted.
func (r *SQLiteRecorder) RecordRun(a *model.Analysis) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO analysis_runs (id, symbol, run_at, points, signals, zones, peaks)
		VALUES (?,?,?,?,?,?,?)`,
		a.ID, a.Symbol, a.ComputedAt.Unix(),
		len(a.Points), len(a.Signals), len(a.Zones), len(a.Peaks))
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}

func nullable(v float64) sql.NullFloat64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: v, Valid: true}
}

func fromNullable(v sql.NullFloat64) float64 {
	if !v.Valid {
		return math.NaN()
	}
	return v.Float64
}
