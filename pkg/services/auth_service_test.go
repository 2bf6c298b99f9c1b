package services

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trafficportal/pkg/apperr"
	"trafficportal/pkg/models"
	"trafficportal/pkg/security"
)

type fakeUserRepo struct {
	user      models.User
	stored    string
	findErr   error
	exists    bool
	existsErr error
	createErr error
	created   []models.User
}

func (f *fakeUserRepo) FindByUsername(username string) (models.User, string, error) {
	if f.findErr != nil {
		return models.User{}, "", f.findErr
	}
	return f.user, f.stored, nil
}

func (f *fakeUserRepo) Create(username, passwordRepr, displayName string) (models.User, error) {
	if f.createErr != nil {
		return models.User{}, f.createErr
	}
	u := models.User{ID: 42, Username: username, UserDisplayName: displayName}
	f.created = append(f.created, u)
	return u, nil
}

func (f *fakeUserRepo) Exists(username string) (bool, error) {
	return f.exists, f.existsErr
}

type fakeSessionRepo struct {
	nextID     string
	createErr  error
	createdFor []int
	closed     []string
	closeErr   error
}

func (f *fakeSessionRepo) Create(userID int, wanIP string) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	f.createdFor = append(f.createdFor, userID)
	return f.nextID, nil
}

func (f *fakeSessionRepo) Close(sessionID string) (bool, error) {
	f.closed = append(f.closed, sessionID)
	if f.closeErr != nil {
		return false, f.closeErr
	}
	return true, nil
}

func (f *fakeSessionRepo) Get(sessionID string) (models.Session, error) {
	return models.Session{}, apperr.ErrNotFound
}

type fakeAccessLogRepo struct {
	entries   []models.AccessLogEntry
	insertErr error
}

func (f *fakeAccessLogRepo) Insert(entry models.AccessLogEntry) error {
	f.entries = append(f.entries, entry)
	return f.insertErr
}

type fakePublisher struct {
	actions []string
}

func (f *fakePublisher) Publish(action string, userID int, username string) {
	f.actions = append(f.actions, action)
}

func newAuthFixture() (*fakeUserRepo, *fakeSessionRepo, *fakeAccessLogRepo, *fakePublisher, AuthService) {
	users := &fakeUserRepo{
		user:   models.User{ID: 7, Username: "alice", UserDisplayName: "Alice", Status: 1},
		stored: "secret1",
	}
	sessions := &fakeSessionRepo{nextID: "sess-1"}
	logs := &fakeAccessLogRepo{}
	pub := &fakePublisher{}
	tokens := security.NewTokenService("test-secret", time.Hour)
	svc := NewAuthService(users, sessions, logs, tokens, pub)
	return users, sessions, logs, pub, svc
}

func TestLogin_SuccessSequence(t *testing.T) {
	_, sessions, logs, pub, svc := newAuthFixture()

	resp, err := svc.Login("alice", "secret1", "10.0.0.1")
	require.NoError(t, err)

	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, "sess-1", resp.SessionID)
	require.Equal(t, []int{7}, sessions.createdFor)

	// Token claims must tie back to the session and user.
	claims, err := security.NewTokenService("test-secret", time.Hour).Parse(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
	assert.Equal(t, "sess-1", claims.SessionID)
	assert.Equal(t, 7, claims.UserID)

	// One access-log row with status 200 and the full identity.
	require.Len(t, logs.entries, 1)
	entry := logs.entries[0]
	assert.Equal(t, 200, entry.StatusCode)
	require.NotNil(t, entry.SessionID)
	assert.Equal(t, "sess-1", *entry.SessionID)
	require.NotNil(t, entry.UserID)
	assert.Equal(t, 7, *entry.UserID)
	assert.Equal(t, "10.0.0.1", entry.WanIP)

	assert.Equal(t, []string{"user_login"}, pub.actions)
}

func TestLogin_WrongPassword(t *testing.T) {
	_, sessions, logs, _, svc := newAuthFixture()

	_, err := svc.Login("alice", "wrong", "10.0.0.1")
	require.ErrorIs(t, err, apperr.ErrInvalidCredentials)

	assert.Empty(t, sessions.createdFor, "no session on failed login")

	// 401 row carries the user id from the lookup but no session.
	require.Len(t, logs.entries, 1)
	entry := logs.entries[0]
	assert.Equal(t, 401, entry.StatusCode)
	assert.Nil(t, entry.SessionID)
	require.NotNil(t, entry.UserID)
	assert.Equal(t, 7, *entry.UserID)
}

func TestLogin_UnknownUser(t *testing.T) {
	users, _, logs, _, svc := newAuthFixture()
	users.findErr = apperr.ErrNotFound

	_, err := svc.Login("ghost", "whatever", "10.0.0.9")
	require.ErrorIs(t, err, apperr.ErrInvalidCredentials)

	require.Len(t, logs.entries, 1)
	entry := logs.entries[0]
	assert.Equal(t, 401, entry.StatusCode)
	assert.Nil(t, entry.SessionID)
	assert.Nil(t, entry.UserID, "unknown username leaves user id null")
}

func TestLogin_LegacyPlaintextStored(t *testing.T) {
	users, _, _, _, svc := newAuthFixture()
	users.stored = "plain-old-password"

	_, err := svc.Login("alice", "plain-old-password", "10.0.0.1")
	require.NoError(t, err)
}

func TestLogin_SessionCreateFailureIsFatal(t *testing.T) {
	_, sessions, _, _, svc := newAuthFixture()
	sessions.createErr = errors.New("db down")

	_, err := svc.Login("alice", "secret1", "10.0.0.1")
	require.Error(t, err)
	require.NotErrorIs(t, err, apperr.ErrInvalidCredentials)
}

func TestLogin_StorageFaultOnLookup(t *testing.T) {
	users, _, logs, _, svc := newAuthFixture()
	users.findErr = errors.New("db down")

	_, err := svc.Login("alice", "secret1", "10.0.0.1")
	require.Error(t, err)
	require.NotErrorIs(t, err, apperr.ErrInvalidCredentials)
	assert.Empty(t, logs.entries, "storage faults do not produce 401 rows")
}

func TestRegister_ValidationTable(t *testing.T) {
	cases := []struct {
		name string
		req  models.RegisterRequest
		msg  string
	}{
		{"short username", models.RegisterRequest{Username: "ab", Password: "secret1", ConfirmPassword: "secret1"}, "Username must be at least 3 characters"},
		{"short password", models.RegisterRequest{Username: "alice", Password: "abc", ConfirmPassword: "abc"}, "Password must be at least 6 characters"},
		{"mismatch", models.RegisterRequest{Username: "alice", Password: "secret1", ConfirmPassword: "secret2"}, "Passwords do not match"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			users, _, _, _, svc := newAuthFixture()
			err := svc.Register(tc.req)

			var br *apperr.BadRequest
			require.ErrorAs(t, err, &br)
			assert.Equal(t, tc.msg, br.Msg)
			assert.Empty(t, users.created, "validation failure must not create a user")
		})
	}
}

func TestRegister_DuplicateUsername(t *testing.T) {
	users, _, _, _, svc := newAuthFixture()
	users.exists = true

	err := svc.Register(models.RegisterRequest{Username: "alice", Password: "secret1", ConfirmPassword: "secret1"})

	var br *apperr.BadRequest
	require.ErrorAs(t, err, &br)
	assert.Equal(t, "Username already exists", br.Msg)
	assert.Empty(t, users.created)
}

func TestRegister_StoresHashNotPlaintext(t *testing.T) {
	users, _, _, pub, svc := newAuthFixture()

	err := svc.Register(models.RegisterRequest{Username: "carol", Password: "secret1", ConfirmPassword: "secret1", UserDisplayName: "Carol"})
	require.NoError(t, err)
	require.Len(t, users.created, 1)
	assert.Equal(t, []string{"user_registered"}, pub.actions)
}

func TestRegister_TrimsUsername(t *testing.T) {
	users, _, _, _, svc := newAuthFixture()

	err := svc.Register(models.RegisterRequest{Username: "  carol  ", Password: "secret1", ConfirmPassword: "secret1"})
	require.NoError(t, err)
	require.Len(t, users.created, 1)
	assert.Equal(t, "carol", users.created[0].Username)
	assert.False(t, strings.Contains(users.created[0].Username, " "))
}

func TestLogout_BestEffort(t *testing.T) {
	_, sessions, _, pub, svc := newAuthFixture()

	claims := &security.Claims{SessionID: "sess-9", UserID: 7}
	claims.Subject = "alice"
	svc.Logout(claims)

	assert.Equal(t, []string{"sess-9"}, sessions.closed)
	assert.Equal(t, []string{"user_logout"}, pub.actions)
}

func TestLogout_NoSessionID(t *testing.T) {
	_, sessions, _, _, svc := newAuthFixture()

	svc.Logout(&security.Claims{UserID: 7})
	svc.Logout(nil)

	assert.Empty(t, sessions.closed, "nothing to close without a session id")
}

func TestLogout_CloseFailureSwallowed(t *testing.T) {
	_, sessions, _, _, svc := newAuthFixture()
	sessions.closeErr = errors.New("db down")

	// Must not panic or surface anything.
	svc.Logout(&security.Claims{SessionID: "sess-9", UserID: 7})
	assert.Equal(t, []string{"sess-9"}, sessions.closed)
}
