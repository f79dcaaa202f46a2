package statestore

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/gob"
	stderrors "errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"git.home.luguber.info/inful/sansstate/internal/foundation/errors"
	"git.home.luguber.info/inful/sansstate/internal/metrics"
	"git.home.luguber.info/inful/sansstate/internal/typed"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db       *sql.DB
	mu       sync.RWMutex
	recorder metrics.Recorder
	now      func() time.Time
}

// Option configures a SQLiteStore.
type Option func(*SQLiteStore)

// WithRecorder counts store operations.
func WithRecorder(r metrics.Recorder) Option {
	return func(s *SQLiteStore) { s.recorder = r }
}

// NewSQLiteStore opens a snapshot store.
// Use ":memory:" for in-memory database, or a file path for persistent storage.
func NewSQLiteStore(dbPath string, opts ...Option) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, storeError(err, "open")
	}
	// A pool of :memory: connections would each see their own database.
	db.SetMaxOpenConns(1)

	store := &SQLiteStore{db: db, recorder: metrics.NoopRecorder{}, now: time.Now}
	for _, opt := range opts {
		opt(store)
	}
	if err := store.initialize(); err != nil {
		_ = db.Close() // Best effort cleanup on initialization error
		return nil, storeError(err, "initialize")
	}

	return store, nil
}

func (s *SQLiteStore) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS snapshots (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		id TEXT NOT NULL UNIQUE,
		model TEXT NOT NULL,
		instrument TEXT NOT NULL,
		run TEXT NOT NULL,
		created_at INTEGER NOT NULL,
		properties BLOB NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_snapshots_model ON snapshots(model);
	CREATE INDEX IF NOT EXISTS idx_snapshots_instrument ON snapshots(instrument);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Save adds a snapshot to the store.
func (s *SQLiteStore) Save(ctx context.Context, snap Snapshot) (id string, err error) {
	defer func() { s.recorder.IncStoreOperation("save", metrics.Result(err)) }()

	payload, err := encodeProperties(snap.Properties)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id = uuid.NewString()
	_, err = s.db.ExecContext(ctx,
		"INSERT INTO snapshots (id, model, instrument, run, created_at, properties) VALUES (?, ?, ?, ?, ?, ?)",
		id, snap.Model, snap.Instrument, snap.Run, s.now().UnixNano(), payload,
	)
	if err != nil {
		return "", storeError(err, "insert")
	}
	return id, nil
}

// Get retrieves one snapshot.
func (s *SQLiteStore) Get(ctx context.Context, id string) (snap Snapshot, err error) {
	defer func() { s.recorder.IncStoreOperation("get", metrics.Result(err)) }()

	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx,
		"SELECT id, model, instrument, run, created_at, properties FROM snapshots WHERE id = ?", id)
	snap, err = scanSnapshot(row)
	if stderrors.Is(err, sql.ErrNoRows) {
		return Snapshot{}, errors.StoreError("snapshot not found").
			WithCause(ErrNotFound).
			WithContext("state_id", id).
			Build()
	}
	return snap, err
}

// List retrieves snapshots matching f, newest first.
func (s *SQLiteStore) List(ctx context.Context, f Filter) (snaps []Snapshot, err error) {
	defer func() { s.recorder.IncStoreOperation("list", metrics.Result(err)) }()

	var (
		where []string
		args  []any
	)
	if f.Model != "" {
		where = append(where, "model = ?")
		args = append(args, f.Model)
	}
	if f.Instrument != "" {
		where = append(where, "instrument = ?")
		args = append(args, f.Instrument)
	}
	query := "SELECT id, model, instrument, run, created_at, properties FROM snapshots"
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY seq DESC"
	if f.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, f.Limit)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storeError(err, "query")
	}
	defer rows.Close()

	for rows.Next() {
		snap, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		snaps = append(snaps, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError(err, "iterate")
	}
	return snaps, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(row scanner) (Snapshot, error) {
	var (
		snap    Snapshot
		created int64
		payload []byte
	)
	if err := row.Scan(&snap.ID, &snap.Model, &snap.Instrument, &snap.Run, &created, &payload); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return Snapshot{}, err
		}
		return Snapshot{}, storeError(err, "scan")
	}
	snap.CreatedAt = time.Unix(0, created)

	props, err := decodeProperties(payload)
	if err != nil {
		return Snapshot{}, err
	}
	snap.Properties = props
	return snap, nil
}

// Property maps are gob encoded so int and float64 values keep their types.
func encodeProperties(props typed.PropertyMap) ([]byte, error) {
	if props == nil {
		props = typed.PropertyMap{}
	}
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(map[string]any(props)); err != nil {
		return nil, storeError(err, "encode")
	}
	return buf.Bytes(), nil
}

func decodeProperties(payload []byte) (typed.PropertyMap, error) {
	var props map[string]any
	if err := gob.NewDecoder(bytes.NewReader(payload)).Decode(&props); err != nil {
		return nil, storeError(err, "decode")
	}
	return typed.PropertyMap(props), nil
}
