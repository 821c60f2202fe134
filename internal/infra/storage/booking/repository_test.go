package booking

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CMS-SchedulingService/internal/domain"
	"github.com/m04kA/CMS-SchedulingService/pkg/dbmetrics"
)

var errStopQuery = errors.New("stop query")

// queryRecorder фиксирует последний построенный SQL вместо выполнения
type queryRecorder struct {
	lastQuery string
}

func (q *queryRecorder) ExecContext(_ context.Context, query string, _ ...interface{}) (sql.Result, error) {
	q.lastQuery = query
	return nil, errStopQuery
}

func (q *queryRecorder) QueryContext(_ context.Context, query string, _ ...interface{}) (*sql.Rows, error) {
	q.lastQuery = query
	return nil, errStopQuery
}

func (q *queryRecorder) QueryRowContext(_ context.Context, query string, _ ...interface{}) *sql.Row {
	q.lastQuery = query
	return nil
}

type recordingTx struct {
	queryRecorder
}

func (t *recordingTx) Commit() error   { return nil }
func (t *recordingTx) Rollback() error { return nil }

func ptrInt64(v int64) *int64 { return &v }

func periodFilter(lock bool) domain.AssigneeBookingsFilter {
	start := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	return domain.AssigneeBookingsFilter{
		StaffID:       ptrInt64(7),
		StartDate:     &start,
		EndDate:       &end,
		LockForUpdate: lock,
	}
}

func TestGetByAssigneeWithFilter_RowLocking(t *testing.T) {
	t.Run("lock requested inside transaction", func(t *testing.T) {
		tx := &recordingTx{}
		repo := NewRepository(&queryRecorder{})
		ctx := dbmetrics.WithTx(context.Background(), tx)

		_, err := repo.GetByAssigneeWithFilter(ctx, periodFilter(true))
		require.ErrorIs(t, err, ErrExecQuery)
		assert.Contains(t, tx.lastQuery, "FOR UPDATE")
	})

	t.Run("advisory read inside transaction takes no locks", func(t *testing.T) {
		// Выборка check_schedule: ограниченный период внутри read-only
		// транзакции, блокировка не запрошена
		tx := &recordingTx{}
		repo := NewRepository(&queryRecorder{})
		ctx := dbmetrics.WithTx(context.Background(), tx)

		_, err := repo.GetByAssigneeWithFilter(ctx, periodFilter(false))
		require.ErrorIs(t, err, ErrExecQuery)
		assert.NotContains(t, tx.lastQuery, "FOR UPDATE")
	})

	t.Run("lock requested outside transaction is ignored", func(t *testing.T) {
		db := &queryRecorder{}
		repo := NewRepository(db)

		_, err := repo.GetByAssigneeWithFilter(context.Background(), periodFilter(true))
		require.ErrorIs(t, err, ErrExecQuery)
		assert.NotContains(t, db.lastQuery, "FOR UPDATE")
	})
}
