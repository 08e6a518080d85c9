//go:build unit || e2e

package dbtest

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// InsertValidation stores a moderation result directly, bypassing the provider.
func InsertValidation(t *testing.T, db DBLike, userID uuid.UUID, prompt, decision string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO prompt_validations (id, user_id, prompt, translated_prompt, decision) VALUES ($1, $2, $3, $3, $4)`,
		id, userID, prompt, decision)
	require.NoError(t, err)
	return id
}

// CounterUsage returns (freeUsed, adUsed); a missing row reads as zero.
func CounterUsage(t *testing.T, db DBLike, dayKey string) (int32, int32) {
	t.Helper()

	var free, ad int32
	err := db.QueryRow(context.Background(),
		`SELECT free_used, ad_used FROM daily_slot_counters WHERE day_key = $1`, dayKey).Scan(&free, &ad)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, 0
	}
	require.NoError(t, err)
	return free, ad
}

func ReservationStatus(t *testing.T, db DBLike, id uuid.UUID) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(), `SELECT status FROM reservations WHERE id = $1`, id).Scan(&status)
	require.NoError(t, err)
	return status
}

func ExpireReservation(t *testing.T, db DBLike, id uuid.UUID, at time.Time) {
	t.Helper()

	tag, err := db.Exec(context.Background(), `UPDATE reservations SET expires_at = $2 WHERE id = $1`, id, at)
	require.NoError(t, err)
	require.EqualValues(t, 1, tag.RowsAffected())
}

type RequestRow struct {
	Status      string
	ImageURL    *string
	DishID      *uuid.UUID
	FailureCode *string
}

func GetRequest(t *testing.T, db DBLike, id uuid.UUID) RequestRow {
	t.Helper()

	var r RequestRow
	err := db.QueryRow(context.Background(),
		`SELECT status, image_url, dish_id, failure_code FROM create_requests WHERE id = $1`, id).
		Scan(&r.Status, &r.ImageURL, &r.DishID, &r.FailureCode)
	require.NoError(t, err)
	return r
}

// CheckpointImage simulates a worker that crashed after persisting the image.
func CheckpointImage(t *testing.T, db DBLike, id uuid.UUID, imageURL string) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		`UPDATE create_requests SET image_url = $2, status = 'SAFETY' WHERE id = $1`, id, imageURL)
	require.NoError(t, err)
}

// SettleWithDish stores a dish for the request and points the request at it
// with the given status, the state a finalizing worker leaves behind. It
// takes no *testing.T so it can run off the test goroutine.
func SettleWithDish(ctx context.Context, db DBLike, requestID uuid.UUID, status string) (uuid.UUID, error) {
	dishID := uuid.New()
	imageURL := "https://img.example/" + dishID.String() + ".png"
	_, err := db.Exec(ctx,
		`INSERT INTO dishes (id, user_id, request_id, prompt, image_url, day_key)
		 SELECT $2, user_id, id, prompt, $3, to_char(now(), 'YYYY-MM-DD') FROM create_requests WHERE id = $1`,
		requestID, dishID, imageURL)
	if err != nil {
		return uuid.Nil, err
	}
	tag, err := db.Exec(ctx,
		`UPDATE create_requests SET dish_id = $2, image_url = $3, status = $4 WHERE id = $1`,
		requestID, dishID, imageURL, status)
	if err != nil {
		return uuid.Nil, err
	}
	if tag.RowsAffected() != 1 {
		return uuid.Nil, fmt.Errorf("request %s not found", requestID)
	}
	return dishID, nil
}

func AttachDish(t *testing.T, db DBLike, requestID uuid.UUID, status string) uuid.UUID {
	t.Helper()

	dishID, err := SettleWithDish(context.Background(), db, requestID, status)
	require.NoError(t, err)
	return dishID
}

func RequestIDByKey(t *testing.T, db DBLike, userID uuid.UUID, key string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		`SELECT id FROM create_requests WHERE user_id = $1 AND idempotency_key = $2`, userID, key).Scan(&id)
	require.NoError(t, err)
	return id
}

func CountRows(t *testing.T, db DBLike, table, where string, args ...any) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM "+table+" WHERE "+where, args...).Scan(&n)
	require.NoError(t, err)
	return n
}

// ReleaseJobs makes every queued job due now; used after a retry backoff.
func ReleaseJobs(t *testing.T, db DBLike) {
	t.Helper()

	_, err := db.Exec(context.Background(), `UPDATE jobs SET run_at = '-infinity' WHERE status = 'queued'`)
	require.NoError(t, err)
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
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
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
