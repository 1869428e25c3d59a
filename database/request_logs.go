package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/lizet96/financial-data-backend/models"
)

// Execer es la parte de pgxpool.Pool que usa el repositorio
type Execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

const createRequestLogsTable = `
	CREATE TABLE IF NOT EXISTS request_logs (
		id            BIGSERIAL PRIMARY KEY,
		method        VARCHAR(10)  NOT NULL,
		path          VARCHAR(500) NOT NULL,
		status_code   INTEGER      NOT NULL,
		response_time INTEGER      NOT NULL,
		user_agent    TEXT,
		ip            VARCHAR(45)  NOT NULL,
		query         TEXT,
		log_level     VARCHAR(10)  NOT NULL,
		environment   VARCHAR(20)  NOT NULL,
		pid           INTEGER      NOT NULL,
		url           TEXT         NOT NULL,
		timestamp     TIMESTAMPTZ  NOT NULL,
		created_at    TIMESTAMPTZ  NOT NULL DEFAULT NOW()
	)
`

const insertRequestLog = `
	INSERT INTO request_logs (
		method, path, status_code, response_time, user_agent, ip, query,
		log_level, environment, pid, url, timestamp
	) VALUES (
		$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
	)
`

// RequestLogRepository guarda los logs de peticiones HTTP
type RequestLogRepository struct {
	db Execer
}

func NewRequestLogRepository(db Execer) *RequestLogRepository {
	return &RequestLogRepository{db: db}
}

// EnsureSchema crea la tabla request_logs si no existe
func (r *RequestLogRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, createRequestLogsTable); err != nil {
		return fmt.Errorf("failed to create request_logs table: %w", err)
	}
	return nil
}

func (r *RequestLogRepository) Insert(ctx context.Context, entry models.RequestLog) error {
	_, err := r.db.Exec(ctx, insertRequestLog,
		entry.Method,
		entry.Path,
		entry.StatusCode,
		entry.ResponseTime,
		entry.UserAgent,
		entry.IP,
		entry.Query,
		entry.LogLevel,
		entry.Environment,
		entry.PID,
		entry.URL,
		entry.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to insert request log: %w", err)
	}
	return nil
}
