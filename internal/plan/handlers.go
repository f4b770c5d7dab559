package plan

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service) {
	r.Get("/:teamID", func(c *fiber.Ctx) error {
		p, err := svc.Get(c.Context(), c.Params("teamID"))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(p)
	})

	r.Put("/:teamID", func(c *fiber.Ctx) error {
		var req Meta
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err := svc.SetMeta(c.Context(), c.Params("teamID"), req); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.SendStatus(fiber.StatusNoContent)
	})

	r.Delete("/:teamID", func(c *fiber.Ctx) error {
		if err := svc.Clear(c.Context(), c.Params("teamID")); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.SendStatus(fiber.StatusNoContent)
	})

	r.Post("/:teamID/entries", func(c *fiber.Ctx) error {
		var req struct {
			Time     string `json:"time"`
			Activity string `json:"activity"`
		}
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		e, err := svc.AddEntry(c.Context(), c.Params("teamID"), req.Time, req.Activity)
		if err != nil {
			if errors.Is(err, ErrEntryIncomplete) {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(e)
	})

	r.Delete("/:teamID/entries", func(c *fiber.Ctx) error {
		if err := svc.ClearEntries(c.Context(), c.Params("teamID")); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.SendStatus(fiber.StatusNoContent)
	})

	r.Delete("/:teamID/entries/:entryID", func(c *fiber.Ctx) error {
		err := svc.DeleteEntry(c.Context(), c.Params("teamID"), c.Params("entryID"))
		if err != nil {
			if errors.Is(err, ErrEntryNotFound) {
				return fiber.NewError(fiber.StatusNotFound, err.Error())
			}
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.SendStatus(fiber.StatusNoContent)
	})

	// Destructive: replaces every entry, so the client must confirm.
	r.Post("/:teamID/generate", func(c *fiber.Ctx) error {
		if c.Query("confirm") != "true" {
			return fiber.NewError(fiber.StatusBadRequest, "confirm=true required to replace the plan")
		}
		var req struct {
			Route string `json:"route"`
			Hut   string `json:"hut"`
		}
		if err := c.BodyParser(&req); err != nil && len(c.Body()) > 0 {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		entries, err := svc.Generate(c.Context(), c.Params("teamID"), req.Route, req.Hut)
		if err != nil {
			switch {
			case errors.Is(err, ErrSelectionRequired):
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			case errors.Is(err, ErrHutNotFound):
				return fiber.NewError(fiber.StatusNotFound, err.Error())
			}
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(fiber.Map{"entries": entries})
	})

	r.Get("/:teamID/export", func(c *fiber.Ctx) error {
		text, err := svc.Export(c.Context(), c.Params("teamID"), c.Query("team_name"))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		c.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
		return c.SendString(text)
	})
}
