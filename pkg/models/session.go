package models

import "time"

// Session status values. ACTIVE -> LOGGED_OUT is the only transition;
// rows are never deleted and never expire on their own.
const (
	SessionActive    = "ACTIVE"
	SessionLoggedOut = "LOGGED_OUT"
)

type Session struct {
	ID         string     `json:"id"`
	UserID     int        `json:"user_id"`
	WanIP      string     `json:"wan_ip"`
	LoginTime  time.Time  `json:"login_time"`
	LogoutTime *time.Time `json:"logout_time,omitempty"`
	Status     string     `json:"status"`
}

// AccessLogEntry is one append-only audit row per authenticated request.
// SessionID and UserID are nil for pre-auth failures.
type AccessLogEntry struct {
	SessionID  *string `json:"session_id"`
	UserID     *int    `json:"user_id"`
	Endpoint   string  `json:"endpoint"`
	Method     string  `json:"method"`
	StatusCode int     `json:"status_code"`
	WanIP      string  `json:"wan_ip"`
}
