package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"cmsapi/internal/service"
)

// SearchHandler serves the cross-collection search endpoint.
type SearchHandler struct {
	svc service.SearchService
}

func NewSearchHandler(svc service.SearchService) *SearchHandler {
	return &SearchHandler{svc: svc}
}

// Search handles GET /api/search?q=...&sections=news,events.
func (h *SearchHandler) Search() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var types []string
		if sections := c.Query("sections"); sections != "" {
			types = strings.Split(sections, ",")
		}

		result, err := h.svc.Search(c.UserContext(), c.Query("q"), types)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(result)
	}
}
