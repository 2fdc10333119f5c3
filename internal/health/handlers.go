package health

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/katedeng/photo-share-app/internal/db"
)

func RegisterRoutes(r fiber.Router, svc *Service) {
	r.Get("/test/:p1", func(c *fiber.Ctx) error {
		switch param := c.Params("p1"); param {
		case "info":
			info, err := svc.Info(c.Context())
			if errors.Is(err, db.ErrNotFound) {
				return fiber.NewError(fiber.StatusInternalServerError, "Missing SchemaInfo")
			}
			if err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, err.Error())
			}
			return c.JSON(info)
		case "counts":
			counts, err := svc.Counts(c.Context())
			if err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, err.Error())
			}
			return c.JSON(counts)
		default:
			return fiber.NewError(fiber.StatusBadRequest, "Bad param "+param)
		}
	})
}
