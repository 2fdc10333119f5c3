package photo

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/katedeng/photo-share-app/internal/db"
	"github.com/katedeng/photo-share-app/internal/session"
)

func RegisterRoutes(r fiber.Router, svc *Service, sessionMiddleware fiber.Handler) {
	// Mentions are written without a session check, matching the existing
	// frontend contract. Pending a product decision on public tagging.
	r.Post("/photosOfUser/mentions", func(c *fiber.Ctx) error {
		var req MentionsRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Not found")
		}

		if err := svc.AddMentions(c.Context(), req.PhotoID, req.UserIDArr); err != nil {
			if errors.Is(err, db.ErrNotFound) {
				return fiber.NewError(fiber.StatusBadRequest, "Not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.SendString("Mention successfully registered.")
	})

	r.Get("/photosOfUser/:id", sessionMiddleware, func(c *fiber.Ctx) error {
		views, err := svc.PhotosOfUser(c.Context(), c.Params("id"))
		if errors.Is(err, db.ErrNotFound) {
			return fiber.NewError(fiber.StatusBadRequest, "Not found")
		}
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(views)
	})

	r.Post("/commentsOfPhoto/:photo_id", sessionMiddleware, func(c *fiber.Ctx) error {
		var req CommentRequest
		if err := c.BodyParser(&req); err != nil || req.Comment == "" {
			return fiber.NewError(fiber.StatusBadRequest, "No comments added.")
		}

		rec, _ := session.FromContext(c)
		err := svc.AddComment(c.Context(), c.Params("photo_id"), rec.UserID, req.Comment)
		if errors.Is(err, ErrEmptyComment) {
			return fiber.NewError(fiber.StatusBadRequest, "No comments added.")
		}
		if errors.Is(err, db.ErrNotFound) {
			return fiber.NewError(fiber.StatusBadRequest, "Not found")
		}
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.SendString("Comment successfully added.")
	})

	r.Post("/photos/new", sessionMiddleware, func(c *fiber.Ctx) error {
		fileHeader, err := c.FormFile("uploadedphoto")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Processing photo error.")
		}

		file, err := fileHeader.Open()
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Processing photo error.")
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Processing photo error.")
		}

		rec, _ := session.FromContext(c)
		if _, err := svc.Upload(c.Context(), rec.UserID, fileHeader.Filename, data); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Processing photo error.")
		}
		return c.JSON(fiber.Map{"user_id": rec.UserID})
	})

	r.Get("/userMentions/:id", func(c *fiber.Ctx) error {
		mentions, err := svc.MentionsOfUser(c.Context(), c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(mentions)
	})
}
