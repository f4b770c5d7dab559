package hiking

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// RegisterMemberRoutes mounts the per-member hiking record endpoints.
func RegisterMemberRoutes(r fiber.Router, svc *Service) {
	r.Post("/:id/hiking", func(c *fiber.Ctx) error {
		var req Record
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if req.MountainName == "" {
			return fiber.NewError(fiber.StatusBadRequest, "mountain_name required")
		}
		req.MemberID = c.Params("id")
		rec, err := svc.AddRecord(c.Context(), req)
		if err != nil {
			if errors.Is(err, ErrInvalidGain) || errors.Is(err, ErrInvalidDistance) {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(rec)
	})

	r.Get("/:id/hiking", func(c *fiber.Ctx) error {
		records, err := svc.Records(c.Context(), c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(records)
	})
}

// RegisterRoutes mounts record deletion and the mountain catalog.
func RegisterRoutes(hikingGroup, mountainGroup fiber.Router, svc *Service) {
	hikingGroup.Delete("/:recordID", func(c *fiber.Ctx) error {
		if err := svc.DeleteRecord(c.Context(), c.Params("recordID")); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.SendStatus(fiber.StatusNoContent)
	})

	mountainGroup.Post("/", func(c *fiber.Ctx) error {
		var req Mountain
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		m, err := svc.AddMountain(c.Context(), req)
		if err != nil {
			switch {
			case errors.Is(err, ErrMountainNameMissing), errors.Is(err, ErrInvalidElevation), errors.Is(err, ErrInvalidDistance):
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			case errors.Is(err, ErrMountainNameTaken):
				return fiber.NewError(fiber.StatusConflict, err.Error())
			}
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(m)
	})

	mountainGroup.Get("/", func(c *fiber.Ctx) error {
		mountains, err := svc.Mountains(c.Context())
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(mountains)
	})
}
