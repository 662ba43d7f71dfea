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

const organizerID = "organizer-001"

// CreateTestEvent inserts a published standalone event directly, bypassing the API.
func CreateTestEvent(t *testing.T, db DBLike, title string, capacity int) uuid.UUID {
	t.Helper()
	return insertEvent(t, db, nil, title, capacity)
}

func CreateTestFestEvent(t *testing.T, db DBLike, festID uuid.UUID, title string, capacity int) uuid.UUID {
	t.Helper()
	return insertEvent(t, db, &festID, title, capacity)
}

func insertEvent(t *testing.T, db DBLike, festID *uuid.UUID, title string, capacity int) uuid.UUID {
	t.Helper()

	id := uuid.New()
	now := time.Now().UTC()
	_, err := db.Exec(context.Background(), `
		INSERT INTO events (id, fest_id, title, starts_at, capacity, registered_count,
		                    organizer_id, organizer_email, is_published, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, 0, $6, $7, true, $8, $8)`,
		id, festID, title, now.Add(7*24*time.Hour), capacity, organizerID, organizerID+"@campus.example.edu", now)
	require.NoError(t, err)
	return id
}

func CreateTestFest(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	now := time.Now().UTC()
	_, err := db.Exec(context.Background(), `
		INSERT INTO fests (id, name, starts_at, ends_at, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)`,
		id, name, now.Add(30*24*time.Hour), now.Add(33*24*time.Hour), organizerID, now)
	require.NoError(t, err)
	return id
}

// CreateTestMerch inserts an item whose sizes keep the order given.
func CreateTestMerch(t *testing.T, db DBLike, name string, sizes map[string]int, order ...string) uuid.UUID {
	t.Helper()

	ctx := context.Background()
	id := uuid.New()
	now := time.Now().UTC()
	stock := 0
	for _, q := range sizes {
		stock += q
	}
	_, err := db.Exec(ctx, `
		INSERT INTO merch_items (id, name, price_cents, stock, created_by, created_by_email, created_at, updated_at)
		VALUES ($1, $2, 49900, $3, $4, $5, $6, $6)`,
		id, name, stock, organizerID, organizerID+"@campus.example.edu", now)
	require.NoError(t, err)

	for pos, size := range order {
		_, err := db.Exec(ctx, `
			INSERT INTO merch_sizes (merch_id, size, position, capacity, available)
			VALUES ($1, $2, $3, $4, $4)`,
			id, size, pos, sizes[size])
		require.NoError(t, err)
	}
	return id
}

func RegisteredCount(t *testing.T, db DBLike, eventID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT registered_count FROM events WHERE id = $1", eventID).Scan(&n)
	require.NoError(t, err)
	return n
}

func SizeAvailable(t *testing.T, db DBLike, merchID uuid.UUID, size string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT available FROM merch_sizes WHERE merch_id = $1 AND size = $2", merchID, size).Scan(&n)
	require.NoError(t, err)
	return n
}

func CountRows(t *testing.T, db DBLike, table, where string, args ...any) int {
	t.Helper()

	query := "SELECT count(*) FROM " + table
	if where != "" {
		query += " WHERE " + where
	}
	var n int
	require.NoError(t, db.QueryRow(context.Background(), query, args...).Scan(&n))
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all application tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations', 'atlas_schema_revisions')`)
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
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
