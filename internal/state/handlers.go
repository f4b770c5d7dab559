package state

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service) {
	r.Get("/", func(c *fiber.Ctx) error {
		snapshot, err := svc.Load(c.Context(), c.Query("team_id"))
		if err != nil {
			return mapStateError(err)
		}
		c.Set(fiber.HeaderCacheControl, "no-store")
		if snapshot == nil {
			return c.JSON(fiber.Map{"state": nil})
		}
		return c.JSON(fiber.Map{"state": snapshot})
	})

	r.Post("/", func(c *fiber.Ctx) error {
		var req struct {
			TeamID string          `json:"team_id"`
			State  json.RawMessage `json:"state"`
			Token  string          `json:"token"`
		}
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err := svc.Save(c.Context(), req.TeamID, req.State, req.Token); err != nil {
			return mapStateError(err)
		}
		c.Set(fiber.HeaderCacheControl, "no-store")
		return c.JSON(fiber.Map{"ok": true})
	})
}

func mapStateError(err error) error {
	switch {
	case errors.Is(err, ErrTeamIDRequired), errors.Is(err, ErrStateRequired):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, ErrUnauthorized):
		return fiber.NewError(fiber.StatusUnauthorized, err.Error())
	case errors.Is(err, ErrNotConfigured):
		return fiber.NewError(fiber.StatusServiceUnavailable, err.Error())
	}
	return fiber.NewError(fiber.StatusInternalServerError, err.Error())
}
