package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sol1corejz/invoicedash/internal/auth"
)

// AuthMiddleware evaluates the authorization predicate on every request.
// Session presence comes from the jwt cookie; a denied request is sent to the
// sign-in page, an authenticated request outside the dashboard is sent to the
// dashboard landing page.
func AuthMiddleware(c *fiber.Ctx) error {
	userID, err := auth.ParseUserID(c.Cookies("jwt"))
	isLoggedIn := err == nil

	// Logout must stay reachable for authenticated users.
	if c.Path() == "/logout" {
		return c.Next()
	}

	decision := auth.Decide(isLoggedIn, c.Path())

	switch decision.Verdict {
	case auth.Deny:
		return c.Redirect(auth.LoginPath, fiber.StatusSeeOther)
	case auth.Redirect:
		return c.Redirect(decision.Target, fiber.StatusSeeOther)
	}

	if isLoggedIn {
		c.Locals("userID", userID)
	}

	return c.Next()
}
