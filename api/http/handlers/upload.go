package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/mkravets/resume-editor/api/http/presenter"
	"github.com/mkravets/resume-editor/pkg/extract"
	"github.com/mkravets/resume-editor/pkg/importer"
	"github.com/mkravets/resume-editor/pkg/resume"
)

// UploadHandler turns uploaded files into resume store content: structured
// JSON goes through shape validation, PDF/DOCX through text extraction and
// the parsing heuristic.
type UploadHandler struct {
	store *resume.Store
	// Limit uploaded file size read into memory (bytes)
	maxBytes int64
}

func NewUploadHandler(store *resume.Store, maxBytes int64) *UploadHandler {
	return &UploadHandler{store: store, maxBytes: maxBytes}
}

// Import populates the resume from an uploaded file.
// Unsupported types are rejected before any extraction attempt; rejected
// imports leave the resume exactly as it was.
// @Summary Import a resume file
// @Description Accepts a .json resume document or a .pdf/.docx file to run text extraction on.
// @Tags    resume
// @Accept  multipart/form-data
// @Produce json
// @Param   file formData file true "resume file (.json, .pdf or .docx)"
// @Success 200 {object} resume.Resume
// @Failure 400 {object} presenter.ErrorResponse "unsupported type, malformed document or invalid structure"
// @Failure 422 {object} presenter.ErrorResponse "no text could be extracted"
// @Router  /resume/import [post]
func (h *UploadHandler) Import(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil || fh == nil {
		return presenter.Error(c, http.StatusBadRequest, "file is required (json, pdf or docx)")
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if ext != ".json" && ext != ".pdf" && ext != ".docx" {
		return presenter.Error(c, http.StatusBadRequest, "unsupported file format: only json, pdf and docx are allowed")
	}
	data, err := h.readUpload(fh)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}

	if ext == ".json" {
		if err := importer.ImportJSON(h.store, data); err != nil {
			return presenter.Error(c, http.StatusBadRequest, fmt.Sprintf("import rejected: %v", err))
		}
		return presenter.JSON(c, http.StatusOK, h.store.Snapshot())
	}

	text, err := extract.FileText(fh.Filename, data)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, fmt.Sprintf("failed to read resume: %v", err))
	}
	if err := importer.ImportText(h.store, text); err != nil {
		if errors.Is(err, extract.ErrNoText) {
			return presenter.Error(c, http.StatusUnprocessableEntity, "no text could be extracted from the file")
		}
		return presenter.Error(c, http.StatusBadRequest, fmt.Sprintf("import rejected: %v", err))
	}
	return presenter.JSON(c, http.StatusOK, h.store.Snapshot())
}

// Parse extracts plain text from an uploaded file without touching the
// resume. Useful for clients that run their own parsing.
// @Summary Extract text from a resume file
// @Tags    resume
// @Accept  multipart/form-data
// @Produce json
// @Param   file formData file true "resume file (.pdf or .docx)"
// @Success 200 {object} map[string]string
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /resume/parse [post]
func (h *UploadHandler) Parse(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil || fh == nil {
		return presenter.Error(c, http.StatusBadRequest, "file is required (pdf or docx)")
	}
	data, err := h.readUpload(fh)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	text, err := extract.FileText(fh.Filename, data)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, fmt.Sprintf("failed to parse resume: %v", err))
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"text": text})
}

func (h *UploadHandler) readUpload(fh *multipart.FileHeader) ([]byte, error) {
	file, err := fh.Open()
	if err != nil {
		return nil, errors.New("failed to open uploaded file")
	}
	defer file.Close()
	return readAtMost(file, h.maxBytes)
}

func readAtMost(f multipart.File, max int64) ([]byte, error) {
	limited := io.LimitReader(f, max+1)
	b, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(b)) > max {
		return nil, fmt.Errorf("file too large: limit is %d bytes", max)
	}
	return b, nil
}
