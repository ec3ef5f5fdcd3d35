package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/mkravets/resume-editor/api/http/presenter"
	"github.com/mkravets/resume-editor/pkg/enhance"
)

// EnhanceHandler fronts the AI-enhancement gateway. A failed enhancement is
// reported to the caller and nothing else changes: applying the suggestion is
// a separate, explicit edit.
type EnhanceHandler struct {
	svc *enhance.Service
}

func NewEnhanceHandler(svc *enhance.Service) *EnhanceHandler {
	return &EnhanceHandler{svc: svc}
}

type enhanceRequest struct {
	Section enhance.Section `json:"section" validate:"required,oneof=personal_info summary experience education skills"`
	Content string          `json:"content" validate:"required"`
}

type enhanceResponse struct {
	EnhancedContent string `json:"enhanced_content"`
}

// Enhance returns improved text for one resume section.
// @Summary Enhance a resume section
// @Tags    enhance
// @Accept  json
// @Produce json
// @Param   input body enhanceRequest true "section and current text"
// @Success 200 {object} enhanceResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 502 {object} presenter.ErrorResponse "language model unavailable"
// @Router  /resume/enhance [post]
func (h *EnhanceHandler) Enhance(c *fiber.Ctx) error {
	var req enhanceRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validate.Struct(req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "section must be one of personal_info, summary, experience, education, skills and content must not be empty")
	}
	improved, err := h.svc.Enhance(c.Context(), req.Section, req.Content)
	if err != nil {
		return presenter.Error(c, http.StatusBadGateway, err.Error())
	}
	return presenter.JSON(c, http.StatusOK, enhanceResponse{EnhancedContent: improved})
}
