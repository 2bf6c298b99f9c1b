package services

import (
	"errors"
	"log"
	"strings"

	"trafficportal/pkg/apperr"
	"trafficportal/pkg/events"
	"trafficportal/pkg/models"
	"trafficportal/pkg/repository"
	"trafficportal/pkg/security"
)

// EventPublisher decouples the service from the Redis publisher. A nil
// publisher disables events.
type EventPublisher interface {
	Publish(action string, userID int, username string)
}

type AuthService interface {
	Register(req models.RegisterRequest) error
	Login(username, password, wanIP string) (models.LoginResponse, error)
	// Logout is best-effort: it never fails the request even when the
	// session close does.
	Logout(claims *security.Claims)
}

type authService struct {
	users    repository.UserRepository
	sessions repository.SessionRepository
	logs     repository.AccessLogRepository
	tokens   *security.TokenService
	events   EventPublisher
}

func NewAuthService(
	users repository.UserRepository,
	sessions repository.SessionRepository,
	logs repository.AccessLogRepository,
	tokens *security.TokenService,
	publisher EventPublisher,
) AuthService {
	return &authService{
		users:    users,
		sessions: sessions,
		logs:     logs,
		tokens:   tokens,
		events:   publisher,
	}
}

func (s *authService) Register(req models.RegisterRequest) error {
	username := strings.TrimSpace(req.Username)

	if len(username) < 3 {
		return apperr.NewBadRequest("Username must be at least 3 characters")
	}
	if len(req.Password) < 6 {
		return apperr.NewBadRequest("Password must be at least 6 characters")
	}
	if req.Password != req.ConfirmPassword {
		return apperr.NewBadRequest("Passwords do not match")
	}

	exists, err := s.users.Exists(username)
	if err != nil {
		return err
	}
	if exists {
		return apperr.NewBadRequest("Username already exists")
	}

	hashed, err := security.HashPassword(req.Password)
	if err != nil {
		return err
	}

	user, err := s.users.Create(username, hashed, req.UserDisplayName)
	if err != nil {
		if errors.Is(err, apperr.ErrDuplicate) {
			return apperr.NewBadRequest("Username already exists")
		}
		return err
	}

	s.publish(events.ActionUserRegistered, user.ID, user.Username)
	return nil
}

// Login runs the whole flow: credential check, session row, token mint,
// access-log rows for both outcomes.
func (s *authService) Login(username, password, wanIP string) (models.LoginResponse, error) {
	user, stored, err := s.users.FindByUsername(username)
	if err != nil && !errors.Is(err, apperr.ErrNotFound) {
		return models.LoginResponse{}, err
	}

	if errors.Is(err, apperr.ErrNotFound) || !security.VerifyPassword(password, stored) {
		var userID *int
		if err == nil {
			userID = &user.ID
		}
		s.logAttempt(nil, userID, wanIP, 401)
		return models.LoginResponse{}, apperr.ErrInvalidCredentials
	}

	sessionID, err := s.sessions.Create(user.ID, wanIP)
	if err != nil {
		return models.LoginResponse{}, err
	}

	token, err := s.tokens.Mint(user.Username, sessionID, user.ID)
	if err != nil {
		return models.LoginResponse{}, err
	}

	s.logAttempt(&sessionID, &user.ID, wanIP, 200)
	s.publish(events.ActionUserLogin, user.ID, user.Username)

	return models.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		SessionID:   sessionID,
	}, nil
}

func (s *authService) Logout(claims *security.Claims) {
	if claims == nil || claims.SessionID == "" {
		return
	}
	if _, err := s.sessions.Close(claims.SessionID); err != nil {
		log.Println("[AUTH] session close failed:", err)
		return
	}
	s.publish(events.ActionUserLogout, claims.UserID, claims.Subject)
}

func (s *authService) logAttempt(sessionID *string, userID *int, wanIP string, status int) {
	err := s.logs.Insert(models.AccessLogEntry{
		SessionID:  sessionID,
		UserID:     userID,
		Endpoint:   "/login",
		Method:     "POST",
		StatusCode: status,
		WanIP:      wanIP,
	})
	if err != nil {
		log.Println("[AUTH] access log insert failed:", err)
	}
}

func (s *authService) publish(action string, userID int, username string) {
	if s.events == nil {
		return
	}
	s.events.Publish(action, userID, username)
}
