package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/kordoba/internal/middleware"
)

// AuthHandler manages the admin login session.
type AuthHandler struct {
	auth *middleware.AdminAuth
}

// NewAuthHandler constructs AuthHandler.
func NewAuthHandler(auth *middleware.AdminAuth) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type loginRequest struct {
	Password string `json:"password"`
}

// Login verifies the admin password and sets the session cookie.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	if !h.auth.Configured() {
		return fiber.NewError(fiber.StatusInternalServerError, "admin not configured")
	}

	var payload loginRequest
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if !h.auth.VerifyPassword(payload.Password) {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid password")
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.AdminCookieName,
		Value:    h.auth.SessionToken(),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		MaxAge:   60 * 60 * 24 * 7,
		Path:     "/",
	})

	return c.JSON(fiber.Map{"success": true})
}

// Logout clears the session cookie.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.AdminCookieName,
		Value:    "",
		HTTPOnly: true,
		MaxAge:   -1,
		Path:     "/",
	})
	return c.JSON(fiber.Map{"success": true})
}

// Session reports whether the current request carries a valid admin session.
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"admin": h.auth.ValidToken(c.Cookies(middleware.AdminCookieName))},
	})
}
