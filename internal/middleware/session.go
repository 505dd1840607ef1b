package middleware

import (
	"github.com/gofiber/fiber/v2"

	"boltresume/resume-ai/internal/models"
)

const sessionLocalsKey = "session"

// Session reads the identity cookie once per request and exposes it to
// handlers as an explicit *models.Session.
func Session(cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(sessionLocalsKey, models.NewSession(c.Cookies(cookieName)))
		return c.Next()
	}
}

// SessionFrom returns the request's session, or an anonymous one when the
// middleware did not run.
func SessionFrom(c *fiber.Ctx) *models.Session {
	if s, ok := c.Locals(sessionLocalsKey).(*models.Session); ok && s != nil {
		return s
	}
	return &models.Session{}
}

// SetSession replaces the request's session after login or logout.
func SetSession(c *fiber.Ctx, s *models.Session) {
	c.Locals(sessionLocalsKey, s)
}
