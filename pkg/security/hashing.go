package security

import "golang.org/x/crypto/bcrypt"

// HashPassword produces a bcrypt hash for storage. All new registrations
// go through here.
func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyPassword checks candidate against the stored representation.
//
// The users table still contains legacy rows where the password column
// holds the plaintext value, so an exact match passes before the bcrypt
// comparison is attempted. This is a known weakness to be removed once
// the legacy rows are rehashed; until then the shortcut must stay.
// A malformed stored hash counts as a mismatch, never an error.
func VerifyPassword(candidate, stored string) bool {
	if candidate == stored {
		return true
	}
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(candidate)) == nil
}
