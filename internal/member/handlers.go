package member

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service) {
	r.Post("/", func(c *fiber.Ctx) error {
		var req Member
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		m, err := svc.CreateMember(c.Context(), req)
		if err != nil {
			return mapCreateError(err)
		}
		return c.Status(fiber.StatusCreated).JSON(m)
	})

	r.Get("/", func(c *fiber.Ctx) error {
		members, err := svc.Members(c.Context())
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(members)
	})

	r.Get("/:id", func(c *fiber.Ctx) error {
		m, err := svc.GetMember(c.Context(), c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, "member not found")
		}
		return c.JSON(m)
	})

	r.Delete("/:id", func(c *fiber.Ctx) error {
		if err := svc.DeleteMember(c.Context(), c.Params("id")); err != nil {
			if errors.Is(err, ErrMemberNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "member not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.SendStatus(fiber.StatusNoContent)
	})
}

func mapCreateError(err error) error {
	switch {
	case errors.Is(err, ErrInvalidName), errors.Is(err, ErrInvalidAge), errors.Is(err, ErrInvalidLevel):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, ErrDuplicateName):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	}
	return fiber.NewError(fiber.StatusInternalServerError, err.Error())
}
