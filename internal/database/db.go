package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

const (
	defaultDBTimeout = 5 * time.Second

	// MemoryPath opens a private in-memory store.
	MemoryPath = ":memory:"
)

// Database owns the single SQLite handle. It is passed explicitly to every
// caller; there is no package-level connection.
type Database struct {
	DB     *sql.DB
	dbFile string
	log    *zap.Logger
}

type Option func(*Database)

// WithLogger routes rollback failures and migration notes to log.
func WithLogger(log *zap.Logger) Option {
	return func(d *Database) {
		if log != nil {
			d.log = log
		}
	}
}

// Open connects to the store at path, creating the file and schema if needed.
// Every failure is reported as ErrStoreUnavailable.
func Open(ctx context.Context, path string, opts ...Option) (*Database, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("%w: database path is empty", ErrStoreUnavailable)
	}
	if path != MemoryPath && !strings.HasPrefix(path, "file:") {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
		}
	}

	db, err := sql.Open("sqlite3", sqliteDSN(path))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	// One connection keeps writes serialized and an in-memory store alive.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	d := &Database{DB: db, dbFile: path, log: zap.NewNop()}
	for _, opt := range opts {
		opt(d)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: ping %s: %w", ErrStoreUnavailable, path, err)
	}
	if err := d.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: migrate %s: %w", ErrStoreUnavailable, path, err)
	}
	return d, nil
}

// Close releases the connection.
func (d *Database) Close() error {
	if d == nil || d.DB == nil {
		return nil
	}
	return d.DB.Close()
}

// Path returns the location the store was opened from.
func (d *Database) Path() string {
	return d.dbFile
}

func (d *Database) migrate(ctx context.Context) error {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	queries := []string{
		`CREATE TABLE IF NOT EXISTS tasks (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			done INTEGER NOT NULL DEFAULT 0,
			estimate INTEGER NOT NULL DEFAULT 0,
			locked INTEGER NOT NULL DEFAULT 0,
			just_created INTEGER NOT NULL DEFAULT 0
		);`,
		`CREATE TABLE IF NOT EXISTS timers (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			is_pomodoro INTEGER NOT NULL DEFAULT 0,
			start DATETIME NOT NULL,
			duration INTEGER NOT NULL,
			task INTEGER NULL,
			FOREIGN KEY(task) REFERENCES tasks(id)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_timers_task ON timers(task);`,
		`CREATE INDEX IF NOT EXISTS idx_timers_start ON timers(start);`,
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT
		);`,
	}
	for _, query := range queries {
		if _, err := d.DB.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return d.ensureTaskColumns(ctx)
}

// ensureTaskColumns upgrades task tables created before estimates and
// focus-grab hints existed.
func (d *Database) ensureTaskColumns(ctx context.Context) error {
	required := map[string]string{
		"estimate":     "ALTER TABLE tasks ADD COLUMN estimate INTEGER NOT NULL DEFAULT 0;",
		"locked":       "ALTER TABLE tasks ADD COLUMN locked INTEGER NOT NULL DEFAULT 0;",
		"just_created": "ALTER TABLE tasks ADD COLUMN just_created INTEGER NOT NULL DEFAULT 0;",
	}
	existing := map[string]struct{}{}
	rows, err := d.DB.QueryContext(ctx, `PRAGMA table_info(tasks);`)
	if err != nil {
		return err
	}
	for rows.Next() {
		var cid int
		var name, ctype string
		var notnull, pk int
		var dflt sql.NullString
		if err := rows.Scan(&cid, &name, &ctype, &notnull, &dflt, &pk); err != nil {
			rows.Close()
			return err
		}
		existing[name] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return err
	}
	rows.Close()

	for col, alter := range required {
		if _, ok := existing[col]; ok {
			continue
		}
		d.log.Info("adding missing column", zap.String("table", "tasks"), zap.String("column", col))
		if _, err := d.DB.ExecContext(ctx, alter); err != nil {
			return err
		}
	}
	return nil
}

// WithTx runs fn inside a transaction. fn's error rolls everything back.
func (d *Database) WithTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := d.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		return d.rollbackWithLog(tx, err)
	}
	return tx.Commit()
}

func (d *Database) rollbackWithLog(tx *sql.Tx, err error) error {
	if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
		d.log.Warn("rollback failed", zap.Error(rbErr), zap.NamedError("cause", err))
		return errors.Join(err, rbErr)
	}
	return err
}

func (d *Database) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	if deadline, ok := ctx.Deadline(); ok && time.Until(deadline) < timeout {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

func sqliteDSN(path string) string {
	if path == MemoryPath || strings.HasPrefix(path, "file:") {
		return path
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		path = abs
	}
	u := url.URL{
		Scheme: "file",
		Path:   path,
	}
	q := u.Query()
	q.Set("mode", "rwc")
	q.Set("_busy_timeout", "5000")
	u.RawQuery = q.Encode()
	return u.String()
}
