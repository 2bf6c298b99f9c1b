package repository

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"trafficportal/pkg/models"
)

type SessionRepository interface {
	// Create inserts an ACTIVE session row and returns its identifier.
	Create(userID int, wanIP string) (string, error)
	// Close stamps logout_time and flips status to LOGGED_OUT. Calling
	// it again re-stamps the logout time (last write wins). Returns
	// false when no row matched.
	Close(sessionID string) (bool, error)
	Get(sessionID string) (models.Session, error)
}

type sessionRepository struct {
	db *sql.DB
}

func NewSessionRepository(db *sql.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(userID int, wanIP string) (string, error) {
	sessionID := uuid.NewString()
	_, err := r.db.Exec(
		`INSERT INTO sessions (id, user_id, wan_ip, status) VALUES ($1, $2, $3, $4)`,
		sessionID, userID, wanIP, models.SessionActive,
	)
	if err != nil {
		return "", fmt.Errorf("db error: %w", err)
	}
	return sessionID, nil
}

func (r *sessionRepository) Close(sessionID string) (bool, error) {
	res, err := r.db.Exec(
		`UPDATE sessions SET logout_time = NOW(), status = $1 WHERE id = $2`,
		models.SessionLoggedOut, sessionID,
	)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return n > 0, nil
}

func (r *sessionRepository) Get(sessionID string) (models.Session, error) {
	var s models.Session
	err := r.db.QueryRow(
		`SELECT id, user_id, wan_ip, login_time, logout_time, status
		 FROM sessions WHERE id = $1`, sessionID,
	).Scan(&s.ID, &s.UserID, &s.WanIP, &s.LoginTime, &s.LogoutTime, &s.Status)
	if err != nil {
		return models.Session{}, fmt.Errorf("db error: %w", err)
	}
	return s, nil
}
