package collector

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"time"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"

	"SignalSentinel/internal/model"
)

// DefaultTable holds input bars when no table is configured.
const DefaultTable = "price_bars"

var tableName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// SQLiteSource reads input bars from a SQLite table ordered by timestamp.
type SQLiteSource struct {
	db     *sql.DB
	table  string
	symbol string
	path   string
}

// NewSQLiteSource opens (or creates) the database at dbPath and ensures the table exists.
func NewSQLiteSource(dbPath, table, symbol string) (*SQLiteSource, error) {
	if table == "" {
		table = DefaultTable
	}
	if !tableName.MatchString(table) {
		return nil, fmt.Errorf("invalid table name %q", table)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}
	s := &SQLiteSource{db: db, table: table, symbol: symbol, path: dbPath}
	if err := s.migrate(context.Background()); err != nil {
		db.Close()
		return nil, err
	}
	log.Info().Str("path", dbPath).Str("table", table).Msg("sqlite source opened")
	return s, nil
}

func (s *SQLiteSource) Name() string { return "sqlite:" + s.path + "#" + s.table }

// migrate creates the bar table. Bars are keyed on their full UTC timestamp
// (unix nanoseconds) so intraday stamps on one calendar day stay distinct.
func (s *SQLiteSource) migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS ` + s.table + ` (
			ts     INTEGER PRIMARY KEY,
			date   TEXT NOT NULL,
			open   REAL NOT NULL,
			high   REAL NOT NULL,
			low    REAL NOT NULL,
			close  REAL NOT NULL,
			volume INTEGER NOT NULL
		)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate %s: %w", s.table, err)
		}
	}
	return nil
}

// Load reads every bar. Rows failing PriceBar validation abort the load.
// An empty table yields an empty series.
func (s *SQLiteSource) Load(ctx context.Context) (model.PriceSeries, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT ts, open, high, low, close, volume FROM `+s.table+` ORDER BY ts ASC`)
	if err != nil {
		return model.PriceSeries{}, fmt.Errorf("query bars: %w", err)
	}
	defer rows.Close()

	series := model.PriceSeries{Symbol: s.symbol}
	row := 0
	for rows.Next() {
		row++
		var (
			ts  int64
			bar model.PriceBar
		)
		if err := rows.Scan(&ts, &bar.Open, &bar.High, &bar.Low, &bar.Close, &bar.Volume); err != nil {
			return model.PriceSeries{}, &model.MalformedInputError{Line: row, Reason: err.Error()}
		}
		bar.Date = time.Unix(0, ts).UTC()
		series.Bars = append(series.Bars, bar)
	}
	if err := rows.Err(); err != nil {
		return model.PriceSeries{}, fmt.Errorf("iterate bars: %w", err)
	}
	if err := Validate(series, 1); err != nil {
		return model.PriceSeries{}, err
	}
	return series, nil
}

// Store upserts the input bars.
func (s *SQLiteSource) Store(ctx context.Context, series model.PriceSeries) error {
	if err := Validate(series, 1); err != nil {
		return err
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO `+s.table+`
		(ts, date, open, high, low, close, volume) VALUES (?,?,?,?,?,?,?)
		ON CONFLICT(ts) DO UPDATE SET
			date=excluded.date, open=excluded.open, high=excluded.high,
			low=excluded.low, close=excluded.close, volume=excluded.volume`)
	if err != nil {
		return fmt.Errorf("prepare upsert: %w", err)
	}
	defer stmt.Close()

	for _, b := range series.Bars {
		stamp := b.Date.UTC()
		if _, err := stmt.ExecContext(ctx, stamp.UnixNano(), stamp.Format(time.RFC3339), b.Open, b.High, b.Low, b.Close, b.Volume); err != nil {
			return fmt.Errorf("upsert bar %s: %w", stamp.Format(time.RFC3339), err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	log.Info().Int("bars", len(series.Bars)).Str("table", s.table).Msg("bars stored")
	return nil
}

// Close releases the database handle.
func (s *SQLiteSource) Close() error {
	log.Info().Str("path", s.path).Msg("closing sqlite source")
	return s.db.Close()
}
