package favorite

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/katedeng/photo-share-app/internal/db"
	"github.com/katedeng/photo-share-app/internal/session"
)

func RegisterRoutes(r fiber.Router, svc *Service, sessionMiddleware fiber.Handler) {
	r.Post("/add_favorites", sessionMiddleware, func(c *fiber.Ctx) error {
		var req PhotoRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Not found")
		}

		rec, _ := session.FromContext(c)
		if err := svc.Add(c.Context(), rec.UserID, req.PhotoID); err != nil {
			return favoriteError(err)
		}
		return c.SendString("Favorite photo successfully added.")
	})

	r.Post("/delete_favorites", sessionMiddleware, func(c *fiber.Ctx) error {
		var req PhotoRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Not found")
		}

		rec, _ := session.FromContext(c)
		if err := svc.Remove(c.Context(), rec.UserID, req.PhotoID); err != nil {
			return favoriteError(err)
		}
		return c.SendString("Favorite photo successfully deleted.")
	})

	r.Get("/favorites", sessionMiddleware, func(c *fiber.Ctx) error {
		rec, _ := session.FromContext(c)
		list, err := svc.List(c.Context(), rec.UserID)
		if err != nil {
			return favoriteError(err)
		}
		return c.JSON(list)
	})

	r.Post("/check_favorites", sessionMiddleware, func(c *fiber.Ctx) error {
		var req CheckRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Not found")
		}

		rec, _ := session.FromContext(c)
		result, err := svc.Check(c.Context(), rec.UserID, req.PhotoIDArr)
		if err != nil {
			return favoriteError(err)
		}
		return c.JSON(result)
	})
}

func favoriteError(err error) error {
	if errors.Is(err, db.ErrNotFound) {
		return fiber.NewError(fiber.StatusBadRequest, "Not found")
	}
	return fiber.NewError(fiber.StatusInternalServerError, err.Error())
}
