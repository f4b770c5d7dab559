package health

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service) {
	r.Post("/:id/health", func(c *fiber.Ctx) error {
		var req Record
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		req.MemberID = c.Params("id")
		rec, err := svc.RecordHealth(c.Context(), req)
		if err != nil {
			if errors.Is(err, ErrInvalidCondition) || errors.Is(err, ErrInvalidFatigue) || errors.Is(err, ErrInvalidSleep) {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(rec)
	})

	r.Get("/:id/health", func(c *fiber.Ctx) error {
		records, err := svc.Records(c.Context(), c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(records)
	})
}
