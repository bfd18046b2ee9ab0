//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestListing(t *testing.T, db DBLike, name string, basePriceCents int64, currency string) uuid.UUID {
	t.Helper()

	listingID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO listings (id, name, base_price_cents, currency) VALUES ($1, $2, $3, $4)",
		listingID, name, basePriceCents, currency)
	require.NoError(t, err)

	return listingID
}

func CreateTestBlockedRange(t *testing.T, db DBLike, scopeID uuid.UUID, startDate, endDate, reason string) uuid.UUID {
	t.Helper()

	entryID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO calendar_blocked_ranges (id, scope_id, start_date, end_date, reason) VALUES ($1, $2, $3, $4, $5)",
		entryID, scopeID, startDate, endDate, reason)
	require.NoError(t, err)

	return entryID
}

func CreateTestPriceOverride(t *testing.T, db DBLike, scopeID uuid.UUID, startDate, endDate string, priceCents int64, note string) uuid.UUID {
	t.Helper()

	entryID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO calendar_price_overrides (id, scope_id, start_date, end_date, price_cents, note) VALUES ($1, $2, $3, $4, $5, $6)",
		entryID, scopeID, startDate, endDate, priceCents, note)
	require.NoError(t, err)

	return entryID
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables between tests
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return nil
}
