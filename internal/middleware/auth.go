package middleware

import (
	"strings"

	"movie-catalog/internal/config"
	"movie-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// NewSessionStore builds the cookie-backed session store used for login
// gating. Session data lives server-side; the cookie only carries the id.
func NewSessionStore(cfg config.SessionConfig) *session.Store {
	return session.New(session.Config{
		KeyLookup:      "cookie:" + cfg.CookieName,
		Expiration:     cfg.Expiration,
		CookieHTTPOnly: true,
		CookieSecure:   cfg.Secure,
		CookieSameSite: "Lax",
	})
}

// RequireAuth gates write operations behind a logged-in session. Page
// requests are redirected to the login form; API requests get a 401.
func RequireAuth(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := store.Get(c)
		if err != nil || sess.Get("user_id") == nil {
			if strings.HasPrefix(c.Path(), "/api/") {
				return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Login required")
			}
			return c.Redirect("/login?redirect="+c.Path(), fiber.StatusFound)
		}

		c.Locals("user_id", sess.Get("user_id"))
		c.Locals("username", sess.Get("username"))
		return c.Next()
	}
}

// LoadUser copies session identity into locals when present, without
// requiring login. Pages use it to render the login/logout state.
func LoadUser(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if sess, err := store.Get(c); err == nil {
			if userID := sess.Get("user_id"); userID != nil {
				c.Locals("user_id", userID)
				c.Locals("username", sess.Get("username"))
			}
		}
		return c.Next()
	}
}

// Username returns the logged-in username or "" when anonymous.
func Username(c *fiber.Ctx) string {
	if name, ok := c.Locals("username").(string); ok {
		return name
	}
	return ""
}
