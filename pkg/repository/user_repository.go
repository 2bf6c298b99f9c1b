package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"trafficportal/pkg/apperr"
	"trafficportal/pkg/models"
)

type UserRepository interface {
	// FindByUsername returns the user and its stored password
	// representation (plaintext legacy value or bcrypt hash).
	FindByUsername(username string) (models.User, string, error)
	Create(username, passwordRepr, displayName string) (models.User, error)
	Exists(username string) (bool, error)
}

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByUsername(username string) (models.User, string, error) {
	var user models.User
	var stored string
	err := r.db.QueryRow(
		`SELECT id, username, password, user_display_name, status, create_date
		 FROM users WHERE username = $1`,
		username,
	).Scan(&user.ID, &user.Username, &stored, &user.UserDisplayName, &user.Status, &user.CreateDate)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, "", apperr.ErrNotFound
		}
		return models.User{}, "", fmt.Errorf("db error: %w", err)
	}
	return user, stored, nil
}

func (r *userRepository) Create(username, passwordRepr, displayName string) (models.User, error) {
	if displayName == "" {
		displayName = username
	}

	var user models.User
	err := r.db.QueryRow(
		`INSERT INTO users (username, password, user_display_name, status)
		 VALUES ($1, $2, $3, 1)
		 RETURNING id, username, user_display_name, status, create_date`,
		username, passwordRepr, displayName,
	).Scan(&user.ID, &user.Username, &user.UserDisplayName, &user.Status, &user.CreateDate)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return models.User{}, apperr.ErrDuplicate
		}
		return models.User{}, fmt.Errorf("db error: %w", err)
	}
	return user, nil
}

func (r *userRepository) Exists(username string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(
		`SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`, username,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return exists, nil
}
