package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/example/kordoba/internal/config"
)

func newAuth(password string) *AdminAuth {
	return NewAdminAuth(&config.Config{
		AdminPassword:      password,
		AdminSessionSecret: "test-salt",
	})
}

func TestSessionTokenDeterministic(t *testing.T) {
	a := newAuth("s3cret")
	token := a.SessionToken()
	if token == "" {
		t.Fatal("empty token for configured auth")
	}
	if token != a.SessionToken() {
		t.Error("token not deterministic")
	}
	if len(token) != 64 {
		t.Errorf("token length = %d, want 64 hex chars", len(token))
	}

	other := NewAdminAuth(&config.Config{AdminPassword: "s3cret", AdminSessionSecret: "other-salt"})
	if other.SessionToken() == token {
		t.Error("token does not depend on the secret")
	}
}

func TestValidToken(t *testing.T) {
	a := newAuth("s3cret")
	if !a.ValidToken(a.SessionToken()) {
		t.Error("own token rejected")
	}
	if a.ValidToken("") {
		t.Error("empty token accepted")
	}
	if a.ValidToken("deadbeef") {
		t.Error("wrong token accepted")
	}
	if a.ValidToken("not-hex!") {
		t.Error("malformed token accepted")
	}

	unconfigured := newAuth("")
	if unconfigured.ValidToken(unconfigured.SessionToken()) {
		t.Error("unconfigured auth accepted a token")
	}
}

func TestVerifyPassword(t *testing.T) {
	a := newAuth("s3cret")
	if !a.VerifyPassword("s3cret") {
		t.Error("correct password rejected")
	}
	if a.VerifyPassword("wrong") {
		t.Error("wrong password accepted")
	}
	if newAuth("").VerifyPassword("") {
		t.Error("unconfigured auth accepted empty password")
	}
}

func TestVerifyPasswordBcrypt(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	a := newAuth(string(hash))
	if !a.VerifyPassword("s3cret") {
		t.Error("correct password rejected against bcrypt hash")
	}
	if a.VerifyPassword(string(hash)) {
		t.Error("hash accepted as the password itself")
	}
}

func TestRequireAdmin(t *testing.T) {
	a := newAuth("s3cret")
	app := fiber.New()
	app.Get("/admin/ping", a.RequireAdmin(), func(c *fiber.Ctx) error {
		return c.SendString("pong")
	})

	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("no cookie: status = %d, want 401", resp.StatusCode)
	}

	req = httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.AddCookie(&http.Cookie{Name: AdminCookieName, Value: a.SessionToken()})
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("valid cookie: status = %d, want 200", resp.StatusCode)
	}
}
