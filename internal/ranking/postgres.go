package ranking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const rankedVehiclesQuery = `
	SELECT vehicle_id::text, body_type, make, model, COALESCE(price::text, '')
	FROM ranked_vehicles
	ORDER BY rank ASC
	LIMIT $1`

// PostgresSource reads the top ranked vehicles from the ranked_vehicles view.
type PostgresSource struct {
	pool  *pgxpool.Pool
	limit int
}

// NewPostgresSource opens a small pool against dsn.
func NewPostgresSource(ctx context.Context, dsn string, limit int) (*PostgresSource, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, fmt.Errorf("postgres dsn is empty")
	}
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse postgres dsn: %w", err)
	}
	// One query per run; no need for a wide pool.
	poolConfig.MaxConns = 2
	poolConfig.MinConns = 0
	poolConfig.MaxConnIdleTime = time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("open postgres pool: %w", err)
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &PostgresSource{pool: pool, limit: limit}, nil
}

// FetchRanked queries the ranked view. Query errors are returned as errors,
// so the envelope is always a success when err is nil.
func (s *PostgresSource) FetchRanked(ctx context.Context) (Result, error) {
	rows, err := s.pool.Query(ctx, rankedVehiclesQuery, s.limit)
	if err != nil {
		return Result{}, fmt.Errorf("query ranked vehicles: %w", err)
	}
	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Item, error) {
		var (
			item  Item
			price string
		)
		if err := row.Scan(&item.ID, &item.Category, &item.Make, &item.Model, &price); err != nil {
			return Item{}, err
		}
		item.Price = Price(price)
		return item, nil
	})
	if err != nil {
		return Result{}, fmt.Errorf("scan ranked vehicles: %w", err)
	}
	return Result{Status: StatusSuccess, Data: items}, nil
}

// Close releases the pool.
func (s *PostgresSource) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}
