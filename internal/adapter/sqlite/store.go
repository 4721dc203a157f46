// Package sqlite implements the on-disk fallback journal store.
package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"

	"github.com/heartmarshall/nutritrack-backend/internal/domain"
)

//go:embed schema.sql
var schema string

const table = "journal_entries"

// Store keeps journal entries in a local SQLite file.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and applies the schema.
func Open(path string) (*Store, error) {
	if path != ":memory:" && !strings.HasPrefix(path, "file:") {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create database dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// SQLite allows one writer; a single connection also keeps :memory: stable.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping checks that the database file is usable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// ListDay returns the entries of a day in insertion order.
func (s *Store) ListDay(ctx context.Context, day string) ([]domain.LoggedEntry, error) {
	rows, err := squirrel.Select("id", "day", "food", "quantity", "consumed_at", "nutrients").
		From(table).
		Where(squirrel.Eq{"day": day}).
		OrderBy("position ASC").
		RunWith(s.db).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("journal_day %s: list: %w", day, err)
	}
	defer rows.Close()

	entries := []domain.LoggedEntry{}
	for rows.Next() {
		var (
			e               domain.LoggedEntry
			id              string
			food, nutrients []byte
		)
		if err := rows.Scan(&id, &e.Day, &food, &e.Quantity, &e.ConsumedAt, &nutrients); err != nil {
			return nil, fmt.Errorf("journal_day %s: scan: %w", day, err)
		}
		if e.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("journal_entry %s: parse id: %w", id, err)
		}
		if err := json.Unmarshal(food, &e.Food); err != nil {
			return nil, fmt.Errorf("journal_entry %s: decode food: %w", id, err)
		}
		if err := json.Unmarshal(nutrients, &e.Nutrients); err != nil {
			return nil, fmt.Errorf("journal_entry %s: decode nutrients: %w", id, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("journal_day %s: rows: %w", day, err)
	}

	return entries, nil
}

// Append stores an entry at the end of its day.
func (s *Store) Append(ctx context.Context, entry domain.LoggedEntry) error {
	food, err := json.Marshal(entry.Food)
	if err != nil {
		return fmt.Errorf("encode food: %w", err)
	}
	nutrients, err := json.Marshal(entry.Nutrients)
	if err != nil {
		return fmt.Errorf("encode nutrients: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var position int
	err = squirrel.Select("COALESCE(MAX(position), 0) + 1").
		From(table).
		Where(squirrel.Eq{"day": entry.Day}).
		RunWith(tx).
		QueryRowContext(ctx).
		Scan(&position)
	if err != nil {
		return fmt.Errorf("journal_day %s: next position: %w", entry.Day, err)
	}

	_, err = squirrel.Insert(table).
		Columns("id", "day", "position", "food", "quantity", "consumed_at", "nutrients").
		Values(entry.ID.String(), entry.Day, position, string(food), entry.Quantity, entry.ConsumedAt.UTC(), string(nutrients)).
		RunWith(tx).
		ExecContext(ctx)
	if err != nil {
		return mapError(err, "journal_entry", entry.ID.String())
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Delete removes one entry of a day.
// Returns domain.ErrNotFound if the day has no entry with that id.
func (s *Store) Delete(ctx context.Context, day string, id uuid.UUID) error {
	res, err := squirrel.Delete(table).
		Where(squirrel.Eq{"day": day, "id": id.String()}).
		RunWith(s.db).
		ExecContext(ctx)
	if err != nil {
		return mapError(err, "journal_entry", id.String())
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("journal_entry %s: rows affected: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("journal_entry %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ClearDay removes every entry of a day and returns how many were removed.
func (s *Store) ClearDay(ctx context.Context, day string) (int, error) {
	res, err := squirrel.Delete(table).
		Where(squirrel.Eq{"day": day}).
		RunWith(s.db).
		ExecContext(ctx)
	if err != nil {
		return 0, mapError(err, "journal_day", day)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("journal_day %s: rows affected: %w", day, err)
	}
	return int(n), nil
}

// mapError converts sqlite3 constraint errors into domain errors.
func mapError(err error, entity, key string) error {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
		switch sqliteErr.ExtendedCode {
		case sqlite3.ErrConstraintPrimaryKey, sqlite3.ErrConstraintUnique:
			return fmt.Errorf("%s %s: %w", entity, key, domain.ErrConflict)
		case sqlite3.ErrConstraintCheck:
			return fmt.Errorf("%s %s: %w", entity, key, domain.ErrValidation)
		}
	}
	return fmt.Errorf("%s %s: %w", entity, key, err)
}

