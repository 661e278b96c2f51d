package catalog

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"pindex/internal/services"
)

//go:embed schema.sql
var schemaSQL string

const schemaVersion = 1

// Store persists catalog records in SQLite, keyed by table file path.
type Store struct {
	db   *sql.DB
	path string
}

// OpenStore initializes or connects to the catalog database at path and
// applies the schema.
func OpenStore(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, services.Wrap(services.ErrPersistence, "catalog", "open", "create database directory", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, services.Wrap(services.ErrPersistence, "catalog", "open", "open sqlite db", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, services.Wrap(services.ErrPersistence, "catalog", "open", fmt.Sprintf("apply pragma %q", pragma), execErr)
		}
	}

	store := &Store{db: db, path: path}
	if err := store.applySchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) applySchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schemaSQL); err != nil {
		return services.Wrap(services.ErrPersistence, "catalog", "migrate", "apply schema", err)
	}

	var version int
	err := s.db.QueryRowContext(ctx, `SELECT version FROM schema_version LIMIT 1`).Scan(&version)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		if _, err := s.db.ExecContext(ctx, `INSERT INTO schema_version (version) VALUES (?)`, schemaVersion); err != nil {
			return services.Wrap(services.ErrPersistence, "catalog", "migrate", "record schema version", err)
		}
	case err != nil:
		return services.Wrap(services.ErrPersistence, "catalog", "migrate", "read schema version", err)
	case version > schemaVersion:
		return services.Wrap(services.ErrPersistence, "catalog", "migrate",
			fmt.Sprintf("database schema version %d is newer than supported %d", version, schemaVersion), nil)
	}
	return nil
}

// Upsert writes a record, replacing any existing record for the same file.
func (s *Store) Upsert(ctx context.Context, table *Table) error {
	if table == nil || table.VpxFile == "" {
		return services.Wrap(services.ErrValidation, "catalog", "upsert", "record has no file path", nil)
	}
	payload, err := json.Marshal(table)
	if err != nil {
		return services.Wrap(services.ErrPersistence, "catalog", "upsert", "marshal record", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO tables (vpx_file, title, vps_id, owner, file_last_modified, updated_at, record_json)
         VALUES (?, ?, ?, ?, ?, ?, ?)
         ON CONFLICT(vpx_file) DO UPDATE SET
             title = excluded.title,
             vps_id = excluded.vps_id,
             owner = excluded.owner,
             file_last_modified = excluded.file_last_modified,
             updated_at = excluded.updated_at,
             record_json = excluded.record_json`,
		table.VpxFile,
		table.Title,
		table.VpsID,
		table.Owner,
		table.FileLastModified,
		time.Now().UTC().Format(time.RFC3339Nano),
		string(payload),
	)
	if err != nil {
		return services.Wrap(services.ErrPersistence, "catalog", "upsert", "write record", err)
	}
	return nil
}

// Get returns the record for a table file path.
func (s *Store) Get(ctx context.Context, vpxFile string) (*Table, error) {
	var payload string
	err := s.db.QueryRowContext(ctx, `SELECT record_json FROM tables WHERE vpx_file = ?`, vpxFile).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, services.Wrap(services.ErrNotFound, "catalog", "get", fmt.Sprintf("no record for %s", vpxFile), nil)
	}
	if err != nil {
		return nil, services.Wrap(services.ErrPersistence, "catalog", "get", "read record", err)
	}
	return decodeRecord(payload)
}

// List returns every record ordered by file path.
func (s *Store) List(ctx context.Context) ([]Table, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT record_json FROM tables ORDER BY vpx_file`)
	if err != nil {
		return nil, services.Wrap(services.ErrPersistence, "catalog", "list", "query records", err)
	}
	defer rows.Close()

	var tables []Table
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, services.Wrap(services.ErrPersistence, "catalog", "list", "scan record", err)
		}
		table, err := decodeRecord(payload)
		if err != nil {
			return nil, err
		}
		tables = append(tables, *table)
	}
	if err := rows.Err(); err != nil {
		return nil, services.Wrap(services.ErrPersistence, "catalog", "list", "iterate records", err)
	}
	return tables, nil
}

// Delete removes the record for a table file path. Deleting an absent
// record is not an error.
func (s *Store) Delete(ctx context.Context, vpxFile string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM tables WHERE vpx_file = ?`, vpxFile); err != nil {
		return services.Wrap(services.ErrPersistence, "catalog", "delete", "delete record", err)
	}
	return nil
}

// Replace swaps the stored index for the given records in one transaction.
func (s *Store) Replace(ctx context.Context, tables []Table) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return services.Wrap(services.ErrPersistence, "catalog", "replace", "begin transaction", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM tables`); err != nil {
		return services.Wrap(services.ErrPersistence, "catalog", "replace", "clear records", err)
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)
	for i := range tables {
		table := &tables[i]
		if table.VpxFile == "" {
			continue
		}
		payload, err := json.Marshal(table)
		if err != nil {
			return services.Wrap(services.ErrPersistence, "catalog", "replace", "marshal record", err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO tables (vpx_file, title, vps_id, owner, file_last_modified, updated_at, record_json)
             VALUES (?, ?, ?, ?, ?, ?, ?)`,
			table.VpxFile, table.Title, table.VpsID, table.Owner, table.FileLastModified, now, string(payload),
		); err != nil {
			return services.Wrap(services.ErrPersistence, "catalog", "replace", "write record", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return services.Wrap(services.ErrPersistence, "catalog", "replace", "commit transaction", err)
	}
	return nil
}

func decodeRecord(payload string) (*Table, error) {
	var table Table
	if err := json.Unmarshal([]byte(payload), &table); err != nil {
		return nil, services.Wrap(services.ErrPersistence, "catalog", "decode", "unmarshal record", err)
	}
	return &table, nil
}
