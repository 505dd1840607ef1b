package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"boltresume/resume-ai/internal/middleware"
	"boltresume/resume-ai/internal/models"
	"boltresume/resume-ai/internal/services"
)

// SessionHandler toggles the cosmetic identity cookie. The password is only
// checked for shape and is never stored or compared.
type SessionHandler struct {
	validator  *services.RequestValidator
	cookieName string
	maxAge     time.Duration
}

func NewSessionHandler(validator *services.RequestValidator, cookieName string, maxAge time.Duration) *SessionHandler {
	return &SessionHandler{
		validator:  validator,
		cookieName: cookieName,
		maxAge:     maxAge,
	}
}

// HandleGetSession handles GET /session
func (h *SessionHandler) HandleGetSession(c *fiber.Ctx) error {
	return c.JSON(middleware.SessionFrom(c))
}

// HandleLogin handles POST /session/login
func (h *SessionHandler) HandleLogin(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "Invalid request payload",
		})
	}

	if violations := h.validator.ValidateLogin(req); len(violations) > 0 {
		return RespondError(c, &services.ValidationError{Violations: violations}, "")
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    req.Email,
		Path:     "/",
		Expires:  time.Now().Add(h.maxAge),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	session := models.NewSession(req.Email)
	middleware.SetSession(c, session)

	return c.JSON(session)
}

// HandleLogout handles POST /session/logout
func (h *SessionHandler) HandleLogout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	session := models.NewSession("")
	middleware.SetSession(c, session)

	return c.JSON(session)
}
