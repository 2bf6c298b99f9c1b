package repository

import (
	"database/sql"
	"fmt"

	"trafficportal/pkg/models"
)

type AccessLogRepository interface {
	Insert(entry models.AccessLogEntry) error
}

type accessLogRepository struct {
	db *sql.DB
}

func NewAccessLogRepository(db *sql.DB) AccessLogRepository {
	return &accessLogRepository{db: db}
}

func (r *accessLogRepository) Insert(entry models.AccessLogEntry) error {
	_, err := r.db.Exec(
		`INSERT INTO access_logs (session_id, user_id, endpoint, method, status_code, wan_ip)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		entry.SessionID, entry.UserID, entry.Endpoint, entry.Method, entry.StatusCode, entry.WanIP,
	)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
