package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cafebazaar/teambubbles/pkg/teambubbles"
)

type handler struct {
	core teambubbles.Service
}

func (h *handler) getTeams(c *fiber.Ctx) error {
	response, err := h.core.Aggregates(c.UserContext(), &teambubbles.AggregatesRequest{})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(response.Aggregates)
}

func (h *handler) getBubbles(c *fiber.Ctx) error {
	response, err := h.core.Render(c.UserContext(), &teambubbles.RenderRequest{
		Format: c.Query("format"),
		Locale: c.Query("locale"),
	})
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, response.ContentType)
	return c.Status(fiber.StatusOK).Send(response.Data)
}
