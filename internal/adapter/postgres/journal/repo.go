// Package journal implements the food journal store using PostgreSQL.
package journal

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/nutritrack-backend/internal/adapter/postgres"
	"github.com/heartmarshall/nutritrack-backend/internal/domain"
)

const table = "journal_entries"

var columns = []string{
	"id", "day", "position",
	"food_id", "food_name", "brand", "data_type",
	"serving_size", "serving_size_unit", "food_nutrients",
	"quantity", "consumed_at", "nutrients",
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides journal persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
	tx   *postgres.TxManager
}

// New creates a new journal repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool, tx: postgres.NewTxManager(pool)}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListDay returns the entries of a day in insertion order.
// An empty day yields an empty slice.
func (r *Repo) ListDay(ctx context.Context, day string) ([]domain.LoggedEntry, error) {
	sql, args, err := psql.Select(columns...).
		From(table).
		Where(squirrel.Eq{"day": day}).
		OrderBy("position ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	var rows []entryRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "journal_day", day)
	}

	entries := make([]domain.LoggedEntry, 0, len(rows))
	for _, row := range rows {
		e, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// Ping checks that the database is reachable.
func (r *Repo) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Append stores an entry at the end of its day. Appends to the same day are
// serialized across processes by a transaction-scoped advisory lock.
func (r *Repo) Append(ctx context.Context, entry domain.LoggedEntry) error {
	foodNutrients, err := json.Marshal(entry.Food.Nutrients)
	if err != nil {
		return fmt.Errorf("encode food nutrients: %w", err)
	}
	nutrients, err := json.Marshal(entry.Nutrients)
	if err != nil {
		return fmt.Errorf("encode nutrients: %w", err)
	}

	return r.tx.RunLocked(ctx, table+":"+entry.Day, func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, r.pool)

		posSQL, posArgs, err := psql.Select("COALESCE(MAX(position), 0) + 1").
			From(table).
			Where(squirrel.Eq{"day": entry.Day}).
			ToSql()
		if err != nil {
			return fmt.Errorf("build position query: %w", err)
		}

		var position int
		if err := q.QueryRow(ctx, posSQL, posArgs...).Scan(&position); err != nil {
			return postgres.MapError(err, "journal_day", entry.Day)
		}

		insSQL, insArgs, err := psql.Insert(table).
			Columns(columns...).
			Values(
				entry.ID, entry.Day, position,
				entry.Food.ID, entry.Food.Name, entry.Food.Brand, entry.Food.DataType.String(),
				entry.Food.ServingSize, entry.Food.ServingSizeUnit, foodNutrients,
				entry.Quantity, entry.ConsumedAt, nutrients,
			).
			ToSql()
		if err != nil {
			return fmt.Errorf("build insert query: %w", err)
		}

		if _, err := q.Exec(ctx, insSQL, insArgs...); err != nil {
			return postgres.MapError(err, "journal_entry", entry.ID.String())
		}
		return nil
	})
}

// Delete removes one entry of a day.
// Returns domain.ErrNotFound if the day has no entry with that id.
func (r *Repo) Delete(ctx context.Context, day string, id uuid.UUID) error {
	sql, args, err := psql.Delete(table).
		Where(squirrel.Eq{"day": day, "id": id.String()}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "journal_entry", id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("journal_entry %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ClearDay removes every entry of a day. Idempotent: clearing an empty day
// is not an error. Returns the number of deleted entries.
func (r *Repo) ClearDay(ctx context.Context, day string) (int, error) {
	sql, args, err := psql.Delete(table).
		Where(squirrel.Eq{"day": day}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build clear query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "journal_day", day)
	}
	return int(tag.RowsAffected()), nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

type entryRow struct {
	ID              uuid.UUID `db:"id"`
	Day             string    `db:"day"`
	Position        int       `db:"position"`
	FoodID          string    `db:"food_id"`
	FoodName        string    `db:"food_name"`
	Brand           *string   `db:"brand"`
	DataType        string    `db:"data_type"`
	ServingSize     float64   `db:"serving_size"`
	ServingSizeUnit string    `db:"serving_size_unit"`
	FoodNutrients   []byte    `db:"food_nutrients"`
	Quantity        float64   `db:"quantity"`
	ConsumedAt      time.Time `db:"consumed_at"`
	Nutrients       []byte    `db:"nutrients"`
}

func (row entryRow) toDomain() (domain.LoggedEntry, error) {
	e := domain.LoggedEntry{
		ID:  row.ID,
		Day: row.Day,
		Food: domain.FoodDetail{
			FoodSummary: domain.FoodSummary{
				ID:              row.FoodID,
				Name:            row.FoodName,
				Brand:           row.Brand,
				DataType:        domain.DataType(row.DataType),
				ServingSize:     row.ServingSize,
				ServingSizeUnit: row.ServingSizeUnit,
			},
		},
		Quantity:   row.Quantity,
		ConsumedAt: row.ConsumedAt,
	}

	if err := json.Unmarshal(row.FoodNutrients, &e.Food.Nutrients); err != nil {
		return domain.LoggedEntry{}, fmt.Errorf("journal_entry %s: decode food nutrients: %w", row.ID, err)
	}
	if err := json.Unmarshal(row.Nutrients, &e.Nutrients); err != nil {
		return domain.LoggedEntry{}, fmt.Errorf("journal_entry %s: decode nutrients: %w", row.ID, err)
	}
	return e, nil
}
