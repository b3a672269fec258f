package handler

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"cmsapi/internal/model"
	"cmsapi/internal/service"
)

// formMessages are the per-form-type thank-you texts. Unknown types get the
// generic fallback.
var formMessages = map[string]string{
	"Proposal":    "Your proposal has been submitted successfully. Our team will review and contact you soon.",
	"LOR Request": "Your LOR request has been received. We will process it within 5 business days.",
	"Application": "Your application has been submitted. Check your email for further instructions.",
	"Partnership": "Thank you for your interest in partnering with us. We will respond within 2 weeks.",
}

const (
	contactThanks     = "Thank you for your message! We will get back to you within 24 hours."
	genericFormThanks = "Your submission has been received successfully."
)

// FormsHandler serves the public contact and typed-form submission endpoints.
type FormsHandler struct {
	svc service.ContentService
}

func NewFormsHandler(svc service.ContentService) *FormsHandler {
	return &FormsHandler{svc: svc}
}

// SubmitContact handles POST /api/contact.
func (h *FormsHandler) SubmitContact() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var payload model.Record
		if err := c.BodyParser(&payload); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body must be a JSON object")
		}
		if _, err := h.svc.Create(c.UserContext(), model.Contacts, payload); err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(successPayload{Success: true, Message: contactThanks})
	}
}

// SubmitForm handles POST /api/forms/:formType; the path segment overrides any
// formType in the body.
func (h *FormsHandler) SubmitForm() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var payload model.Record
		if err := c.BodyParser(&payload); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body must be a JSON object")
		}
		formType, err := url.PathUnescape(c.Params("formType"))
		if err != nil {
			formType = c.Params("formType")
		}
		payload["formType"] = formType

		if _, err := h.svc.Create(c.UserContext(), model.Contacts, payload); err != nil {
			return writeServiceError(c, err)
		}

		message, ok := formMessages[formType]
		if !ok {
			message = genericFormThanks
		}
		return c.JSON(successPayload{Success: true, Message: message})
	}
}
