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

// CreateTestShop inserts a shop open on workingDays between the given minutes of the day.
func CreateTestShop(t *testing.T, db DBLike, name string, workingDays []int16, openMinute, closeMinute int) uuid.UUID {
	t.Helper()

	shopID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO shops (id, name, working_days, open_minute, close_minute) VALUES ($1, $2, $3, $4, $5)",
		shopID, name, workingDays, openMinute, closeMinute)
	require.NoError(t, err)

	return shopID
}

// CreateTestAppointment books startsAt for durationMinutes directly, bypassing admission.
func CreateTestAppointment(t *testing.T, db DBLike, shopID uuid.UUID, startsAt time.Time, durationMinutes int, status string) uuid.UUID {
	t.Helper()

	apptID := uuid.New()
	ctx := context.Background()
	day := time.Date(startsAt.Year(), startsAt.Month(), startsAt.Day(), 0, 0, 0, 0, time.UTC)
	startMinute := startsAt.Hour()*60 + startsAt.Minute()

	_, err := db.Exec(ctx, `
		INSERT INTO appointments (id, shop_id, customer_name, customer_phone, appointment_date,
		                          start_minute, duration_minutes, starts_at, ends_at, status)
		VALUES ($1, $2, 'Fixture Customer', '000-0000-0000', $3, $4, $5, $6, $7, $8)`,
		apptID, shopID, day, startMinute, durationMinutes,
		startsAt, startsAt.Add(time.Duration(durationMinutes)*time.Minute), status)
	require.NoError(t, err)

	return apptID
}

// CountActiveAppointments counts the shop's non-cancelled appointments.
func CountActiveAppointments(t *testing.T, db DBLike, shopID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM appointments WHERE shop_id = $1 AND status <> 'cancelled'", shopID).Scan(&n)
	require.NoError(t, err)
	return n
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
