package user

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/katedeng/photo-share-app/internal/db"
)

func RegisterRoutes(r fiber.Router, svc *Service, sessionMiddleware fiber.Handler) {
	r.Get("/user/list", sessionMiddleware, func(c *fiber.Ctx) error {
		items, err := svc.List(c.Context())
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(items)
	})

	r.Get("/user/:id", sessionMiddleware, func(c *fiber.Ctx) error {
		detail, err := svc.Get(c.Context(), c.Params("id"))
		if errors.Is(err, db.ErrNotFound) {
			return fiber.NewError(fiber.StatusBadRequest, "Not found")
		}
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(detail)
	})

	r.Post("/user", func(c *fiber.Ctx) error {
		var req RegisterRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "User information not valid.")
		}

		switch err := svc.Register(c.Context(), req); {
		case errors.Is(err, ErrLoginTaken):
			return fiber.NewError(fiber.StatusBadRequest, "Username already exists.")
		case errors.Is(err, ErrInvalid):
			return fiber.NewError(fiber.StatusBadRequest, "User information not valid.")
		case err != nil:
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.SendString("User successfully registered.")
	})
}
