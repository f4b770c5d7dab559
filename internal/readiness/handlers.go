package readiness

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rokufv/itadaki/internal/member"
)

// RegisterMemberRoutes mounts the per-member readiness report on the
// members group.
func RegisterMemberRoutes(r fiber.Router, svc *Service) {
	r.Get("/:id/readiness", func(c *fiber.Ctx) error {
		b, err := svc.Bundle(c.Context(), c.Params("id"))
		if err != nil {
			if errors.Is(err, member.ErrMemberNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "member not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(b)
	})
}

// RegisterRoutes mounts the whole-team summary.
func RegisterRoutes(r fiber.Router, svc *Service) {
	r.Get("/", func(c *fiber.Ctx) error {
		summary, err := svc.TeamSummary(c.Context())
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(summary)
	})
}
