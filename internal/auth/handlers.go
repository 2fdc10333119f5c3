package auth

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/katedeng/photo-share-app/internal/db"
	"github.com/katedeng/photo-share-app/internal/session"
)

func RegisterRoutes(r fiber.Router, svc *Service, sessionMiddleware fiber.Handler) {
	r.Post("/admin/login", func(c *fiber.Ctx) error {
		var req LoginRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Not found")
		}

		id, token, err := svc.Login(c.Context(), req)
		if errors.Is(err, db.ErrNotFound) {
			return fiber.NewError(fiber.StatusBadRequest, "Not found")
		}
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}

		c.Cookie(&fiber.Cookie{
			Name:     session.CookieName,
			Value:    token,
			Path:     "/",
			HTTPOnly: true,
		})
		return c.JSON(fiber.Map{"_id": id.ID})
	})

	r.Post("/admin/logout", func(c *fiber.Ctx) error {
		token := c.Cookies(session.CookieName)
		if token == "" {
			return fiber.NewError(fiber.StatusBadRequest, "User is not logged in.")
		}

		if err := svc.Logout(c.Context(), token); err != nil {
			if errors.Is(err, session.ErrNoSession) {
				return fiber.NewError(fiber.StatusBadRequest, "User is not logged in.")
			}
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}

		c.Cookie(&fiber.Cookie{
			Name:    session.CookieName,
			Value:   "",
			Path:    "/",
			Expires: time.Now().Add(-time.Hour),
		})
		return c.SendString("Logout success.")
	})

	// Identity comes straight from the session record; no store round trip.
	r.Get("/loginUser", sessionMiddleware, func(c *fiber.Ctx) error {
		rec, ok := session.FromContext(c)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized user.")
		}
		return c.JSON(fiber.Map{
			"_id":        rec.UserID,
			"first_name": rec.FirstName,
			"last_name":  rec.LastName,
		})
	})
}
