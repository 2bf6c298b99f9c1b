package middleware

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"trafficportal/pkg/models"
	"trafficportal/pkg/repository"
	"trafficportal/pkg/security"
)

// Paths that never produce an access-log row. The auth endpoints write
// their own rows inside the login flow; the rest carry no identity.
var exemptPaths = map[string]struct{}{
	"/":         {},
	"/login":    {},
	"/register": {},
	"/logout":   {},
	"/health":   {},
}

// AccessLog records one row per authenticated request after the response
// is produced. Token parsing is lenient and every failure is swallowed:
// logging must never change the response already computed.
func AccessLog(tokens *security.TokenService, logs repository.AccessLogRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()

		path := c.Path()
		if _, ok := exemptPaths[path]; ok {
			return err
		}

		auth := c.Get("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			return err
		}

		claims, perr := tokens.Parse(auth[7:])
		if perr != nil || claims.SessionID == "" || claims.UserID == 0 {
			return err
		}

		entry := models.AccessLogEntry{
			SessionID:  &claims.SessionID,
			UserID:     &claims.UserID,
			Endpoint:   path,
			Method:     c.Method(),
			StatusCode: c.Response().StatusCode(),
			WanIP:      OriginIP(c),
		}
		if ierr := logs.Insert(entry); ierr != nil {
			log.Println("[ACCESS-LOG] insert failed:", ierr)
		}

		return err
	}
}
