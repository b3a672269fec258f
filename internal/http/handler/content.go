package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"cmsapi/internal/model"
	"cmsapi/internal/repository"
	"cmsapi/internal/service"
)

// ContentHandler serves the CRUD surface of every content resource. The
// resource descriptor chooses the collection, filters, and pagination rules;
// one handler body covers all of them.
type ContentHandler struct {
	svc service.ContentService
}

func NewContentHandler(svc service.ContentService) *ContentHandler {
	return &ContentHandler{svc: svc}
}

// queryFilter builds the store filter from the resource's declared query
// parameters plus a fixed base filter (e.g. the public programs route pins
// status=Active).
func queryFilter(c *fiber.Ctx, res *model.Resource, base repository.Filter) repository.Filter {
	filter := append(repository.Filter{}, base...)
	for _, qf := range res.Filters {
		v := strings.TrimSpace(c.Query(qf.Param))
		if v == "" {
			continue
		}
		switch qf.Kind {
		case model.FilterFlag:
			if truthy(v) {
				filter = filter.True(qf.Field)
			}
		case model.FilterUpcoming:
			if truthy(v) {
				filter = filter.Gte(qf.Field, model.Now())
			}
		default:
			filter = filter.Eq(qf.Field, v)
		}
	}
	return filter
}

func truthy(v string) bool {
	switch strings.ToLower(v) {
	case "true", "1", "yes":
		return true
	}
	return false
}

// List serves paginated listings: ?page, ?page_size, plus the resource's
// declared filters.
func (h *ContentHandler) List(res *model.Resource, base repository.Filter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page := c.QueryInt("page", 1)
		pageSize := c.QueryInt("page_size", res.DefaultPageSize)

		result, err := h.svc.List(c.UserContext(), res, queryFilter(c, res, base), page, pageSize)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(result)
	}
}

// ListAll serves unpaginated listings (team, faqs, static content, contacts)
// as a bare JSON array.
func (h *ContentHandler) ListAll(res *model.Resource, base repository.Filter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := h.svc.ListAll(c.UserContext(), res, queryFilter(c, res, base))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(items)
	}
}

func (h *ContentHandler) Get(res *model.Resource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rec, err := h.svc.Get(c.UserContext(), res, c.Params("id"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(rec)
	}
}

func (h *ContentHandler) Create(res *model.Resource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var payload model.Record
		if err := c.BodyParser(&payload); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body must be a JSON object")
		}
		rec, err := h.svc.Create(c.UserContext(), res, payload)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(rec)
	}
}

func (h *ContentHandler) Update(res *model.Resource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var payload model.Record
		if err := c.BodyParser(&payload); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body must be a JSON object")
		}
		rec, err := h.svc.Update(c.UserContext(), res, c.Params("id"), payload)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(rec)
	}
}

func (h *ContentHandler) Delete(res *model.Resource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := h.svc.Delete(c.UserContext(), res, c.Params("id")); err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(successPayload{Success: true, Message: "Deleted successfully"})
	}
}

// MarkContactRead sets a contact submission's status to the canonical Read
// value.
func (h *ContentHandler) MarkContactRead() fiber.Handler {
	return func(c *fiber.Ctx) error {
		_, err := h.svc.Update(c.UserContext(), model.Contacts, c.Params("id"),
			model.Record{"status": model.ContactStatusRead})
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"message": "Contact marked as read"})
	}
}
