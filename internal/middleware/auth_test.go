package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"movie-catalog/internal/config"

	"github.com/gofiber/fiber/v2"
)

func newGatedApp() *fiber.App {
	store := NewSessionStore(config.SessionConfig{
		CookieName: "catalog_session",
		Expiration: time.Hour,
	})

	app := fiber.New()
	app.Post("/api/v1/movies", RequireAuth(store), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusCreated)
	})
	app.Get("/add", RequireAuth(store), func(c *fiber.Ctx) error {
		return c.SendString("form")
	})
	return app
}

func TestRequireAuthRejectsAnonymousAPIRequest(t *testing.T) {
	app := newGatedApp()

	req := httptest.NewRequest("POST", "/api/v1/movies", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("expected 401 for anonymous API write, got %d", resp.StatusCode)
	}
}

func TestRequireAuthRedirectsAnonymousPageRequest(t *testing.T) {
	app := newGatedApp()

	req := httptest.NewRequest("GET", "/add", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusFound {
		t.Fatalf("expected 302 redirect for anonymous page request, got %d", resp.StatusCode)
	}
	if location := resp.Header.Get("Location"); location != "/login?redirect=/add" {
		t.Errorf("unexpected redirect target %q", location)
	}
}
