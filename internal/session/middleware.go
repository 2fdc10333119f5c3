package session

import "github.com/gofiber/fiber/v2"

const (
	localsRecord = "session_record"
	localsToken  = "session_token"
)

// Middleware rejects requests without a live session before any handler
// touches the data store, and stores the record in request locals.
func Middleware(store Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(CookieName)
		if token == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized user.")
		}

		rec, err := store.Get(c.Context(), token)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized user.")
		}

		c.Locals(localsRecord, rec)
		c.Locals(localsToken, token)
		return c.Next()
	}
}

// FromContext returns the session record placed by Middleware.
func FromContext(c *fiber.Ctx) (Record, bool) {
	rec, ok := c.Locals(localsRecord).(Record)
	return rec, ok
}

// TokenFromContext returns the raw token placed by Middleware.
func TokenFromContext(c *fiber.Ctx) string {
	token, _ := c.Locals(localsToken).(string)
	return token
}
