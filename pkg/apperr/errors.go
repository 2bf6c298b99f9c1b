package apperr

import "errors"

var (
	// ErrNotFound means the requested row does not exist. Callers decide
	// whether that is an empty result or a failure.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate means an insert violated a uniqueness constraint.
	ErrDuplicate = errors.New("already exists")

	// ErrInvalidCredentials covers both unknown username and bad password.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrInvalidToken covers every token failure: malformed, bad
	// signature, wrong algorithm, expired.
	ErrInvalidToken = errors.New("invalid or expired token")
)

// BadRequest carries a client-facing validation message. Handlers map it
// to a 400 response with Msg as the detail.
type BadRequest struct {
	Msg string
}

func (e *BadRequest) Error() string { return e.Msg }

func NewBadRequest(msg string) error { return &BadRequest{Msg: msg} }
