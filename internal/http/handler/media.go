package handler

import (
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"cmsapi/internal/model"
	"cmsapi/internal/service"
)

// MediaHandler serves the multipart content routes (gallery and team carry an
// image alongside their fields) and streams stored uploads back out.
type MediaHandler struct {
	content service.ContentService
	media   service.MediaService
}

func NewMediaHandler(content service.ContentService, media service.MediaService) *MediaHandler {
	return &MediaHandler{content: content, media: media}
}

// formFile returns the optional uploaded file under the given field.
func formFile(c *fiber.Ctx, field string) *multipart.FileHeader {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil
	}
	return fh
}

// formPresent reports whether a multipart form value was sent at all,
// distinguishing "absent" from "empty string". Team image removal hangs on
// that distinction.
func formPresent(c *fiber.Ctx, field string) bool {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return false
	}
	_, ok := form.Value[field]
	return ok
}

func formNumber(v string) (float64, bool) {
	n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// storeUpload pushes the file into object storage under section and returns
// its site-relative path.
func (h *MediaHandler) storeUpload(c *fiber.Ctx, fh *multipart.FileHeader, section string) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
	}
	defer f.Close()

	ct := fh.Header.Get("Content-Type")
	path, err := h.media.UploadImage(c.UserContext(), section, f, fh.Filename, ct, fh.Size)
	if err != nil {
		return "", writeServiceError(c, err)
	}
	return path, nil
}

// CreateGalleryImage handles POST /api/admin/gallery (multipart; file
// required).
func (h *MediaHandler) CreateGalleryImage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh := formFile(c, "file")
		if fh == nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}
		path, err := h.storeUpload(c, fh, "gallery")
		if err != nil {
			return err
		}

		title := c.FormValue("title")
		payload := model.Record{
			"title":       title,
			"description": c.FormValue("description"),
			"image":       path,
			"alt":         title,
			"category":    c.FormValue("category"),
			"is_featured": truthy(c.FormValue("is_featured")),
			"is_active":   truthy(c.FormValue("is_active", "true")),
		}
		if n, ok := formNumber(c.FormValue("order", "0")); ok {
			payload["order"] = n
		}

		rec, err := h.content.Create(c.UserContext(), model.Gallery, payload)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(rec)
	}
}

// UpdateGalleryImage handles PUT /api/admin/gallery/:id (multipart; every
// field optional, a new file replaces the stored image).
func (h *MediaHandler) UpdateGalleryImage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		payload := model.Record{}

		if fh := formFile(c, "file"); fh != nil {
			path, err := h.storeUpload(c, fh, "gallery")
			if err != nil {
				return err
			}
			payload["image"] = path
			if title := c.FormValue("title"); title != "" {
				payload["alt"] = title
			}
		} else if imageURL := c.FormValue("image_url"); imageURL != "" {
			payload["image"] = imageURL
		}

		for _, field := range []string{"title", "description", "category"} {
			if formPresent(c, field) {
				payload[field] = c.FormValue(field)
			}
		}
		if formPresent(c, "order") {
			if n, ok := formNumber(c.FormValue("order")); ok {
				payload["order"] = n
			}
		}
		for _, field := range []string{"is_featured", "is_active"} {
			if formPresent(c, field) {
				payload[field] = truthy(c.FormValue(field))
			}
		}

		rec, err := h.content.Update(c.UserContext(), model.Gallery, c.Params("id"), payload)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(rec)
	}
}

// CreateTeamMember handles POST /api/admin/team (multipart; the profile
// picture is optional and may instead arrive as an image_url value).
func (h *MediaHandler) CreateTeamMember() fiber.Handler {
	return func(c *fiber.Ctx) error {
		payload := model.Record{
			"name":          c.FormValue("name"),
			"role":          c.FormValue("role"),
			"bio":           c.FormValue("bio"),
			"email":         c.FormValue("email"),
			"phone":         c.FormValue("phone"),
			"department":    c.FormValue("department"),
			"is_leadership": truthy(c.FormValue("is_leadership")),
			"is_active":     truthy(c.FormValue("is_active", "true")),
		}
		if n, ok := formNumber(c.FormValue("order", "0")); ok {
			payload["order"] = n
		}

		if fh := formFile(c, "file"); fh != nil {
			path, err := h.storeUpload(c, fh, "team")
			if err != nil {
				return err
			}
			payload["image"] = path
		} else if imageURL := c.FormValue("image_url"); imageURL != "" {
			payload["image"] = "/" + strings.TrimPrefix(imageURL, "/")
		}

		rec, err := h.content.Create(c.UserContext(), model.Team, payload)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(rec)
	}
}

// UpdateTeamMember handles PUT /api/admin/team/:id. Sending image_url as an
// empty string removes the stored image: the object is deleted best-effort
// and the record keeps an empty image field.
func (h *MediaHandler) UpdateTeamMember() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		payload := model.Record{}

		if fh := formFile(c, "file"); fh != nil {
			path, err := h.storeUpload(c, fh, "team")
			if err != nil {
				return err
			}
			payload["image"] = path
		} else if formPresent(c, "image_url") {
			imageURL := strings.TrimSpace(c.FormValue("image_url"))
			if imageURL != "" {
				payload["image"] = "/" + strings.TrimPrefix(imageURL, "/")
			} else {
				current, err := h.content.Get(c.UserContext(), model.Team, id)
				if err != nil {
					return writeServiceError(c, err)
				}
				if old := current.String("image"); old != "" {
					// Removal of the stored object is best-effort; the record
					// update goes ahead regardless.
					_ = h.media.RemoveImage(c.UserContext(), old)
				}
				payload["image"] = ""
			}
		}

		for _, field := range []string{"name", "role", "bio", "email", "phone", "department"} {
			if formPresent(c, field) {
				payload[field] = c.FormValue(field)
			}
		}
		if formPresent(c, "order") {
			if n, ok := formNumber(c.FormValue("order")); ok {
				payload["order"] = n
			}
		}
		for _, field := range []string{"is_leadership", "is_active"} {
			if formPresent(c, field) {
				payload[field] = truthy(c.FormValue(field))
			}
		}

		rec, err := h.content.Update(c.UserContext(), model.Team, id, payload)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(rec)
	}
}

// ServeUpload streams a stored image. Mounted at /uploads/*, /gallery/* and
// /team/*; records reference images as /gallery/<name> or /team/<name>, and
// the /uploads prefix is accepted for compatibility.
func (h *MediaHandler) ServeUpload() fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := strings.TrimPrefix(c.Path(), "/uploads")

		rc, info, err := h.media.Open(c.UserContext(), path)
		if err != nil {
			return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "file not found")
		}
		if info.ContentType != "" {
			c.Set(fiber.HeaderContentType, info.ContentType)
		}
		return c.SendStream(rc, int(info.Size))
	}
}
