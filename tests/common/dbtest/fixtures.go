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

	"bookloop/internal/infra/seed"
	sqlc "bookloop/internal/infra/sqlc/generated"
	"bookloop/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// identity service owns the real hash; these rows never log in here
const placeholderHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, username, email string) uuid.UUID {
	t.Helper()

	userID := uuid.Must(uuid.NewV7())
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO users (id, username, email, password_hash, full_name) VALUES ($1, $2, $3, $4, $5) ON CONFLICT (email) DO NOTHING",
		userID, username, email, placeholderHash, username)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		err = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
		require.NoError(t, err)
	}

	return userID
}

func CreateTestBook(t *testing.T, db DBLike, title, author string) uuid.UUID {
	t.Helper()

	bookID := uuid.Must(uuid.NewV7())
	_, err := db.Exec(context.Background(),
		"INSERT INTO books (id, title, author, genre, rating) VALUES ($1, $2, $3, 'Fiction', 4.0)",
		bookID, title, author)
	require.NoError(t, err)

	return bookID
}

// FirstBookID returns the alphabetically first catalog entry.
func FirstBookID(t *testing.T, db DBLike) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(), "SELECT id FROM books ORDER BY title, id LIMIT 1").Scan(&id)
	require.NoError(t, err)
	return id
}

func CopyStatus(t *testing.T, db DBLike, userBookID uuid.UUID) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(), "SELECT status FROM user_books WHERE id = $1", userBookID).Scan(&status)
	require.NoError(t, err)
	return status
}

func CountRows(t *testing.T, db DBLike, table string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM "+pgx.Identifier{table}.Sanitize()).Scan(&n)
	require.NoError(t, err)
	return n
}

// inserts the sample catalog
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()
	seeder := seed.NewCatalogSeeder(sqlc.New(), clock.NewRealClock())
	return pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		_, err := seeder.Seed(ctx, tx, seed.SampleCatalog)
		return err
	})
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		tables, err := pgx.CollectRows(rows, pgx.RowTo[string])
		if err != nil {
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

	return SeedReferenceData(pool)
}
