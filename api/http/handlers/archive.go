package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/mkravets/resume-editor/api/http/presenter"
	"github.com/mkravets/resume-editor/pkg/archive"
	"github.com/mkravets/resume-editor/pkg/export"
	"github.com/mkravets/resume-editor/pkg/resume"
)

// ArchiveHandler serves the export/persistence boundary: local download of
// the serialized aggregate and single-attempt saves to the archive backend.
type ArchiveHandler struct {
	store *resume.Store
	repo  archive.Repository
	now   func() time.Time
}

func NewArchiveHandler(store *resume.Store, repo archive.Repository) *ArchiveHandler {
	return &ArchiveHandler{store: store, repo: repo, now: time.Now}
}

// Export offers the serialized resume as a downloadable JSON document named
// `{name-or-fallback}_{date}.json`.
// @Summary Download the resume as JSON
// @Tags    archive
// @Produce application/json
// @Success 200 {object} resume.Resume
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /resume/export [get]
func (h *ArchiveHandler) Export(c *fiber.Ctx) error {
	snap := h.store.Snapshot()
	data, err := export.Serialize(snap)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to serialize resume")
	}
	c.Attachment(export.Filename(snap, h.now().UTC()))
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	return c.Send(data)
}

// Save persists the serialized resume to the archive. One attempt, no retry:
// a failing backend is reported straight back to the caller.
// @Summary Save the resume
// @Tags    archive
// @Produce json
// @Success 201 {object} map[string]any
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /resume/save [post]
func (h *ArchiveHandler) Save(c *fiber.Ctx) error {
	snap := h.store.Snapshot()
	data, err := export.Serialize(snap)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to serialize resume")
	}
	now := h.now().UTC()
	rec := archive.Record{
		ID:       archive.NewID(now),
		Name:     snap.PersonalInfo.Name,
		SavedAt:  now,
		Document: data,
	}
	if err := h.repo.Save(c.Context(), rec); err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to save resume")
	}
	return presenter.JSON(c, http.StatusCreated, fiber.Map{
		"message": "Resume saved successfully",
		"id":      rec.ID,
		"savedAt": rec.SavedAt,
	})
}

// List returns saved resumes, newest first.
// @Summary List saved resumes
// @Tags    archive
// @Produce json
// @Param   limit  query int false "page size (default 50, max 200)"
// @Param   offset query int false "page offset"
// @Success 200 {object} map[string][]archive.Summary
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /resumes [get]
func (h *ArchiveHandler) List(c *fiber.Ctx) error {
	limit, offset := parseLimitOffset(c, 50)
	items, err := h.repo.List(c.Context(), limit, offset)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to list saved resumes")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"resumes": items})
}

// Get returns one saved resume with its document body.
// @Summary Fetch a saved resume
// @Tags    archive
// @Produce json
// @Param   id path string true "saved resume id"
// @Success 200 {object} archive.Record
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /resumes/{id} [get]
func (h *ArchiveHandler) Get(c *fiber.Ctx) error {
	rec, err := h.repo.Get(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, archive.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "resume not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to load saved resume")
	}
	return presenter.JSON(c, http.StatusOK, rec)
}
