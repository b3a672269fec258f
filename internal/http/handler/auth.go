package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"cmsapi/internal/http/middleware"
	"cmsapi/internal/service"
)

// AuthHandler serves admin login and logout.
type AuthHandler struct {
	svc service.AuthService
}

func NewAuthHandler(svc service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login handles POST /api/admin/login. Bad credentials answer 200 with
// success=false, which the admin frontend has always keyed on.
func (h *AuthHandler) Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req loginRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body must be a JSON object")
		}
		if req.Username == "" || req.Password == "" {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "username and password are required")
		}

		result, err := h.svc.Login(c.UserContext(), req.Username, req.Password)
		if err != nil {
			if errors.Is(err, service.ErrInvalidCredentials) {
				return c.JSON(successPayload{Success: false, Message: "Invalid credentials"})
			}
			return writeServiceError(c, err)
		}
		return c.JSON(result)
	}
}

// Logout handles POST /api/admin/logout. Runs behind the admin gate; the raw
// token is taken from locals for session bookkeeping.
func (h *AuthHandler) Logout() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if token, ok := c.Locals(middleware.AdminTokenLocalKey).(string); ok {
			h.svc.Logout(c.UserContext(), token)
		}
		return c.JSON(successPayload{Success: true, Message: "Logged out successfully"})
	}
}
