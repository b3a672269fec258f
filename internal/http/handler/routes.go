package handler

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"

	"cmsapi/internal/auth"
	"cmsapi/internal/http/middleware"
	"cmsapi/internal/model"
	"cmsapi/internal/repository"
)

// Handlers bundles everything RegisterRoutes wires into the route table.
type Handlers struct {
	Content *ContentHandler
	Media   *MediaHandler
	Search  *SearchHandler
	Auth    *AuthHandler
	Stats   *StatsHandler
	Forms   *FormsHandler
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Keep handlers minimal and free of business logic; the resource descriptors
// in the model package drive the per-collection behavior.
func RegisterRoutes(app *fiber.App, db *sql.DB, h *Handlers, verifier auth.TokenVerifier) {
	// Serve OpenAPI spec and Swagger UI
	app.Get("/openapi.yaml", func(c *fiber.Ctx) error {
		c.Type("yaml")
		return c.SendFile("openapi.yaml")
	})
	app.Get("/docs", func(c *fiber.Ctx) error {
		html := `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.ui = SwaggerUIBundle({
      url: '/openapi.yaml',
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis],
      layout: 'BaseLayout'
    });
  </script>
</body>
</html>`
		return c.Type("html").SendString(html)
	})

	// Health endpoint: checks DB connectivity only
	app.Get("/health", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	})

	// Simple liveness probe
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	// Stored uploads. Records reference images as /gallery/<name> or
	// /team/<name>; the /uploads prefix is kept for older clients.
	serveUpload := h.Media.ServeUpload()
	app.Get("/uploads/*", serveUpload)
	app.Get("/gallery/*", serveUpload)
	app.Get("/team/*", serveUpload)

	api := app.Group("/api")

	// Wakeup ping for uptime monitors
	api.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "ok",
			"message":   "OIA Website API - Medi-Caps University",
			"version":   "2.0",
			"timestamp": model.Now(),
		})
	})
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy", "service": "OIA Website API v2.0"})
	})

	// Public read surface. The programs listing pins status=Active; the admin
	// listing below sees everything.
	activeOnly := repository.Filter{}.Eq("status", "Active")
	none := repository.Filter{}

	api.Get("/programs", h.Content.List(model.Programs, activeOnly))
	api.Get("/programs/:id", h.Content.Get(model.Programs))
	api.Get("/news", h.Content.List(model.News, none))
	api.Get("/news/:id", h.Content.Get(model.News))
	api.Get("/partnerships", h.Content.List(model.Partnerships, none))
	api.Get("/partnerships/:id", h.Content.Get(model.Partnerships))
	api.Get("/team", h.Content.ListAll(model.Team, none))
	api.Get("/team/:id", h.Content.Get(model.Team))
	api.Get("/events", h.Content.List(model.Events, none))
	api.Get("/events/:id", h.Content.Get(model.Events))
	api.Get("/gallery", h.Content.List(model.Gallery, none))
	api.Get("/gallery/:id", h.Content.Get(model.Gallery))
	api.Get("/faqs", h.Content.ListAll(model.FAQs, none))
	api.Get("/static-content", h.Content.ListAll(model.StaticContent, none))
	api.Get("/static-content/:id", h.Content.Get(model.StaticContent))

	api.Get("/search", h.Search.Search())
	api.Get("/stats", h.Stats.Basic())
	api.Get("/stats/extended", h.Stats.Extended())

	api.Post("/contact", h.Forms.SubmitContact())
	api.Post("/forms/:formType", h.Forms.SubmitForm())

	// Admin surface. Login stays outside the token gate.
	api.Post("/admin/login", h.Auth.Login())

	admin := api.Group("/admin", middleware.RequireAdmin(verifier))

	admin.Post("/logout", h.Auth.Logout())

	admin.Get("/programs", h.Content.List(model.Programs, none))
	admin.Post("/programs", h.Content.Create(model.Programs))
	admin.Put("/programs/:id", h.Content.Update(model.Programs))
	admin.Delete("/programs/:id", h.Content.Delete(model.Programs))

	admin.Post("/news", h.Content.Create(model.News))
	admin.Put("/news/:id", h.Content.Update(model.News))
	admin.Delete("/news/:id", h.Content.Delete(model.News))

	admin.Post("/partnerships", h.Content.Create(model.Partnerships))
	admin.Put("/partnerships/:id", h.Content.Update(model.Partnerships))
	admin.Delete("/partnerships/:id", h.Content.Delete(model.Partnerships))

	admin.Post("/team", h.Media.CreateTeamMember())
	admin.Put("/team/:id", h.Media.UpdateTeamMember())
	admin.Delete("/team/:id", h.Content.Delete(model.Team))

	admin.Post("/events", h.Content.Create(model.Events))
	admin.Put("/events/:id", h.Content.Update(model.Events))
	admin.Delete("/events/:id", h.Content.Delete(model.Events))

	admin.Post("/gallery", h.Media.CreateGalleryImage())
	admin.Put("/gallery/:id", h.Media.UpdateGalleryImage())
	admin.Delete("/gallery/:id", h.Content.Delete(model.Gallery))

	admin.Post("/faqs", h.Content.Create(model.FAQs))
	admin.Put("/faqs/:id", h.Content.Update(model.FAQs))
	admin.Delete("/faqs/:id", h.Content.Delete(model.FAQs))

	admin.Post("/static-content", h.Content.Create(model.StaticContent))
	admin.Put("/static-content/:id", h.Content.Update(model.StaticContent))
	admin.Delete("/static-content/:id", h.Content.Delete(model.StaticContent))

	admin.Get("/contacts", h.Content.ListAll(model.Contacts, none))
	admin.Put("/contacts/:id/read", h.Content.MarkContactRead())
	admin.Delete("/contacts/:id", h.Content.Delete(model.Contacts))

	admin.Get("/stats-config", h.Stats.GetConfig())
	admin.Put("/stats-config", h.Stats.UpdateConfig())
}
