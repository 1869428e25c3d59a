package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lizet96/financial-data-backend/models"
)

type execCall struct {
	sql  string
	args []any
}

type fakeExecer struct {
	calls []execCall
	err   error
}

func (f *fakeExecer) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.calls = append(f.calls, execCall{sql: sql, args: args})
	return pgconn.NewCommandTag("INSERT 0 1"), f.err
}

func TestRequestLogRepository_Insert(t *testing.T) {
	db := &fakeExecer{}
	repo := NewRequestLogRepository(db)

	query := "sort_by=Revenue"
	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	err := repo.Insert(context.Background(), models.RequestLog{
		Method:       "GET",
		Path:         "/fetch_data",
		StatusCode:   200,
		ResponseTime: 12,
		IP:           "10.0.0.1",
		Query:        &query,
		LogLevel:     models.LogLevelSuccess,
		Environment:  models.EnvironmentTesting,
		PID:          42,
		URL:          "/fetch_data?sort_by=Revenue",
		Timestamp:    ts,
	})
	require.NoError(t, err)

	require.Len(t, db.calls, 1)
	assert.Contains(t, db.calls[0].sql, "INSERT INTO request_logs")
	require.Len(t, db.calls[0].args, 12)
	assert.Equal(t, "GET", db.calls[0].args[0])
	assert.Equal(t, "/fetch_data", db.calls[0].args[1])
	assert.Equal(t, 200, db.calls[0].args[2])
	assert.Equal(t, &query, db.calls[0].args[6])
	assert.Equal(t, ts, db.calls[0].args[11])
}

func TestRequestLogRepository_InsertError(t *testing.T) {
	cause := errors.New("connection reset")
	repo := NewRequestLogRepository(&fakeExecer{err: cause})

	err := repo.Insert(context.Background(), models.RequestLog{Method: "GET"})
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
}

func TestRequestLogRepository_EnsureSchema(t *testing.T) {
	db := &fakeExecer{}
	require.NoError(t, NewRequestLogRepository(db).EnsureSchema(context.Background()))
	require.Len(t, db.calls, 1)
	assert.Contains(t, db.calls[0].sql, "CREATE TABLE IF NOT EXISTS request_logs")
}
