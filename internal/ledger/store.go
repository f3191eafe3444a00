package ledger

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Operation names the kind of run a ledger row describes.
type Operation string

const (
	OperationAdd  Operation = "add"
	OperationPick Operation = "pick"
)

// DefaultLimit caps Recent when callers pass a non-positive limit.
const DefaultLimit = 20

// Entry is one recorded run.
type Entry struct {
	ID          int64
	RunID       string
	Operation   Operation
	Target      string
	Sources     int
	Skipped     int
	WordsBefore int
	WordsAfter  int
	Count       int
	CreatedAt   time.Time
}

// Store manages run history persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the ledger database at path and applies
// migrations. The parent directory is created when missing.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("ledger path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create ledger directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path}
	if err := store.migrate(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Path returns the database file location.
func (s *Store) Path() string {
	if s == nil {
		return ""
	}
	return s.path
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Record inserts a run. A zero CreatedAt is stamped with the current time.
func (s *Store) Record(ctx context.Context, entry Entry) (Entry, error) {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	entry.CreatedAt = entry.CreatedAt.UTC()

	res, err := s.db.ExecContext(
		ctx,
		`INSERT INTO runs (
            run_id, operation, target, sources, skipped,
            words_before, words_after, count, created_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.RunID,
		string(entry.Operation),
		entry.Target,
		entry.Sources,
		entry.Skipped,
		entry.WordsBefore,
		entry.WordsAfter,
		entry.Count,
		entry.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return Entry{}, fmt.Errorf("insert run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return Entry{}, fmt.Errorf("last insert id: %w", err)
	}
	entry.ID = id
	return entry, nil
}

// Recent returns up to limit runs, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, run_id, operation, target, sources, skipped,
                words_before, words_after, count, created_at
         FROM runs ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			entry     Entry
			operation string
			created   string
		)
		if err := rows.Scan(
			&entry.ID,
			&entry.RunID,
			&operation,
			&entry.Target,
			&entry.Sources,
			&entry.Skipped,
			&entry.WordsBefore,
			&entry.WordsAfter,
			&entry.Count,
			&created,
		); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		entry.Operation = Operation(operation)
		if ts, parseErr := time.Parse(time.RFC3339Nano, created); parseErr == nil {
			entry.CreatedAt = ts
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return entries, nil
}
