package gear

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service) {
	r.Put("/:id/gear/:itemID", func(c *fiber.Ctx) error {
		var body struct {
			Checked bool `json:"checked"`
		}
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err := svc.SetItem(c.Context(), c.Params("id"), c.Params("itemID"), body.Checked); err != nil {
			if errors.Is(err, ErrUnknownItem) {
				return fiber.NewError(fiber.StatusNotFound, err.Error())
			}
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.SendStatus(fiber.StatusNoContent)
	})

	r.Get("/:id/gear", func(c *fiber.Ctx) error {
		checklist, err := svc.Checklist(c.Context(), c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(fiber.Map{
			"checklist": checklist,
			"score":     Score(checklist),
		})
	})
}
