package middleware

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/example/kordoba/internal/config"
)

// AdminCookieName is the session cookie checked on every admin route.
const AdminCookieName = "admin_session"

// AdminAuth implements the single-operator admin session scheme: a
// deterministic HMAC-SHA256 token over the configured password, carried in an
// HttpOnly cookie. There are no server-side sessions to store or expire.
type AdminAuth struct {
	password string
	secret   string
}

// NewAdminAuth creates an AdminAuth from the config.
func NewAdminAuth(cfg *config.Config) *AdminAuth {
	return &AdminAuth{
		password: cfg.AdminPassword,
		secret:   cfg.AdminSessionSecret,
	}
}

// Configured reports whether an admin password is set. Without one every
// admin route stays locked.
func (a *AdminAuth) Configured() bool {
	return a.password != ""
}

// VerifyPassword checks a login attempt. A bcrypt hash in the configured
// password is compared with bcrypt; anything else is compared literally.
func (a *AdminAuth) VerifyPassword(given string) bool {
	if !a.Configured() {
		return false
	}
	if strings.HasPrefix(a.password, "$2a$") || strings.HasPrefix(a.password, "$2b$") || strings.HasPrefix(a.password, "$2y$") {
		return bcrypt.CompareHashAndPassword([]byte(a.password), []byte(given)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(a.password), []byte(given)) == 1
}

// SessionToken returns the hex HMAC token a valid session cookie must carry.
func (a *AdminAuth) SessionToken() string {
	if !a.Configured() {
		return ""
	}
	mac := hmac.New(sha256.New, []byte(a.secret))
	mac.Write([]byte(a.password))
	return hex.EncodeToString(mac.Sum(nil))
}

// ValidToken checks a presented cookie value in constant time.
func (a *AdminAuth) ValidToken(token string) bool {
	expected := a.SessionToken()
	if expected == "" || token == "" {
		return false
	}
	got, err := hex.DecodeString(token)
	if err != nil {
		return false
	}
	want, _ := hex.DecodeString(expected)
	if len(got) != len(want) {
		return false
	}
	return subtle.ConstantTimeCompare(got, want) == 1
}

// RequireAdmin guards admin routes behind the session cookie.
func (a *AdminAuth) RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !a.ValidToken(c.Cookies(AdminCookieName)) {
			return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
		}
		return c.Next()
	}
}
