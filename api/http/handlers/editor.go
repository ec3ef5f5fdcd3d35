package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/mkravets/resume-editor/api/http/presenter"
	"github.com/mkravets/resume-editor/pkg/resume"
)

var validate = validator.New()

// EditorHandler exposes the resume store's mutation API over HTTP. Every
// mutation responds with the fresh aggregate so the client never needs a
// follow-up read.
type EditorHandler struct {
	store *resume.Store
}

func NewEditorHandler(store *resume.Store) *EditorHandler {
	return &EditorHandler{store: store}
}

func (h *EditorHandler) snapshot(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, h.store.Snapshot())
}

// Get returns the current resume aggregate.
// @Summary Current resume
// @Tags    resume
// @Produce json
// @Success 200 {object} resume.Resume
// @Router  /resume [get]
func (h *EditorHandler) Get(c *fiber.Ctx) error {
	return h.snapshot(c)
}

// LoadDemo replaces the aggregate with the built-in sample resume.
// @Summary Load the demo resume
// @Tags    resume
// @Produce json
// @Success 200 {object} resume.Resume
// @Router  /resume/demo [post]
func (h *EditorHandler) LoadDemo(c *fiber.Ctx) error {
	h.store.Replace(resume.Demo())
	return h.snapshot(c)
}

// Reset clears the aggregate back to its empty state.
// @Summary Reset the resume
// @Tags    resume
// @Produce json
// @Success 200 {object} resume.Resume
// @Router  /resume/reset [post]
func (h *EditorHandler) Reset(c *fiber.Ctx) error {
	h.store.Reset()
	return h.snapshot(c)
}

// UpdatePersonalInfo merges partial contact-block edits.
// @Summary Update personal info
// @Tags    resume
// @Accept  json
// @Produce json
// @Param   input body resume.PersonalInfoPatch true "fields to merge"
// @Success 200 {object} resume.Resume
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /resume/personal-info [patch]
func (h *EditorHandler) UpdatePersonalInfo(c *fiber.Ctx) error {
	var patch resume.PersonalInfoPatch
	if err := c.BodyParser(&patch); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	h.store.UpdatePersonalInfo(patch)
	return h.snapshot(c)
}

type summaryRequest struct {
	Summary string `json:"summary"`
}

// UpdateSummary replaces the summary text.
// @Summary Replace the summary
// @Tags    resume
// @Accept  json
// @Produce json
// @Param   input body summaryRequest true "new summary"
// @Success 200 {object} resume.Resume
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /resume/summary [put]
func (h *EditorHandler) UpdateSummary(c *fiber.Ctx) error {
	var req summaryRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	h.store.SetSummary(req.Summary)
	return h.snapshot(c)
}

// AddExperience appends a work-history entry.
// @Summary Add experience entry
// @Tags    resume
// @Accept  json
// @Produce json
// @Param   input body resume.Experience true "entry (id is assigned by the store)"
// @Success 201 {object} resume.Resume
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /resume/experience [post]
func (h *EditorHandler) AddExperience(c *fiber.Ctx) error {
	var e resume.Experience
	if err := c.BodyParser(&e); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	h.store.AddExperience(e)
	return presenter.JSON(c, http.StatusCreated, h.store.Snapshot())
}

// UpdateExperience merges partial edits into one entry; unknown ids are ignored.
// @Summary Update experience entry
// @Tags    resume
// @Accept  json
// @Produce json
// @Param   id    path string                  true "entry id"
// @Param   input body resume.ExperiencePatch true "fields to merge"
// @Success 200 {object} resume.Resume
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /resume/experience/{id} [patch]
func (h *EditorHandler) UpdateExperience(c *fiber.Ctx) error {
	var patch resume.ExperiencePatch
	if err := c.BodyParser(&patch); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	h.store.UpdateExperience(c.Params("id"), patch)
	return h.snapshot(c)
}

// RemoveExperience deletes one entry; unknown ids are ignored.
// @Summary Remove experience entry
// @Tags    resume
// @Produce json
// @Param   id path string true "entry id"
// @Success 200 {object} resume.Resume
// @Router  /resume/experience/{id} [delete]
func (h *EditorHandler) RemoveExperience(c *fiber.Ctx) error {
	h.store.RemoveExperience(c.Params("id"))
	return h.snapshot(c)
}

// AddEducation appends an education entry.
// @Summary Add education entry
// @Tags    resume
// @Accept  json
// @Produce json
// @Param   input body resume.Education true "entry (id is assigned by the store)"
// @Success 201 {object} resume.Resume
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /resume/education [post]
func (h *EditorHandler) AddEducation(c *fiber.Ctx) error {
	var e resume.Education
	if err := c.BodyParser(&e); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	h.store.AddEducation(e)
	return presenter.JSON(c, http.StatusCreated, h.store.Snapshot())
}

// UpdateEducation merges partial edits into one entry; unknown ids are ignored.
// @Summary Update education entry
// @Tags    resume
// @Accept  json
// @Produce json
// @Param   id    path string                 true "entry id"
// @Param   input body resume.EducationPatch true "fields to merge"
// @Success 200 {object} resume.Resume
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /resume/education/{id} [patch]
func (h *EditorHandler) UpdateEducation(c *fiber.Ctx) error {
	var patch resume.EducationPatch
	if err := c.BodyParser(&patch); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	h.store.UpdateEducation(c.Params("id"), patch)
	return h.snapshot(c)
}

// RemoveEducation deletes one entry; unknown ids are ignored.
// @Summary Remove education entry
// @Tags    resume
// @Produce json
// @Param   id path string true "entry id"
// @Success 200 {object} resume.Resume
// @Router  /resume/education/{id} [delete]
func (h *EditorHandler) RemoveEducation(c *fiber.Ctx) error {
	h.store.RemoveEducation(c.Params("id"))
	return h.snapshot(c)
}

type skillRequest struct {
	Name  string            `json:"name" validate:"required"`
	Level resume.SkillLevel `json:"level" validate:"omitempty,oneof=Beginner Intermediate Advanced Expert"`
}

// AddSkill appends a skill. The proficiency scale is closed; an empty level
// defaults to Intermediate.
// @Summary Add skill
// @Tags    resume
// @Accept  json
// @Produce json
// @Param   input body skillRequest true "skill"
// @Success 201 {object} resume.Resume
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /resume/skills [post]
func (h *EditorHandler) AddSkill(c *fiber.Ctx) error {
	var req skillRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validate.Struct(req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "name is required and level must be one of Beginner, Intermediate, Advanced, Expert")
	}
	if req.Level == "" {
		req.Level = resume.LevelIntermediate
	}
	h.store.AddSkill(resume.Skill{Name: req.Name, Level: req.Level})
	return presenter.JSON(c, http.StatusCreated, h.store.Snapshot())
}

type skillPatchRequest struct {
	Name  *string            `json:"name"`
	Level *resume.SkillLevel `json:"level" validate:"omitempty,oneof=Beginner Intermediate Advanced Expert"`
}

// UpdateSkill merges partial edits into one skill; unknown ids are ignored.
// @Summary Update skill
// @Tags    resume
// @Accept  json
// @Produce json
// @Param   id    path string            true "entry id"
// @Param   input body skillPatchRequest true "fields to merge"
// @Success 200 {object} resume.Resume
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /resume/skills/{id} [patch]
func (h *EditorHandler) UpdateSkill(c *fiber.Ctx) error {
	var req skillPatchRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validate.Struct(req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "level must be one of Beginner, Intermediate, Advanced, Expert")
	}
	h.store.UpdateSkill(c.Params("id"), resume.SkillPatch{Name: req.Name, Level: req.Level})
	return h.snapshot(c)
}

// RemoveSkill deletes one skill; unknown ids are ignored.
// @Summary Remove skill
// @Tags    resume
// @Produce json
// @Param   id path string true "entry id"
// @Success 200 {object} resume.Resume
// @Router  /resume/skills/{id} [delete]
func (h *EditorHandler) RemoveSkill(c *fiber.Ctx) error {
	h.store.RemoveSkill(c.Params("id"))
	return h.snapshot(c)
}

// AddProject appends a project entry.
// @Summary Add project
// @Tags    resume
// @Accept  json
// @Produce json
// @Param   input body resume.Project true "entry (id is assigned by the store)"
// @Success 201 {object} resume.Resume
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /resume/projects [post]
func (h *EditorHandler) AddProject(c *fiber.Ctx) error {
	var p resume.Project
	if err := c.BodyParser(&p); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	h.store.AddProject(p)
	return presenter.JSON(c, http.StatusCreated, h.store.Snapshot())
}

// UpdateProject merges partial edits into one project; unknown ids are ignored.
// @Summary Update project
// @Tags    resume
// @Accept  json
// @Produce json
// @Param   id    path string              true "entry id"
// @Param   input body resume.ProjectPatch true "fields to merge"
// @Success 200 {object} resume.Resume
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /resume/projects/{id} [patch]
func (h *EditorHandler) UpdateProject(c *fiber.Ctx) error {
	var patch resume.ProjectPatch
	if err := c.BodyParser(&patch); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	h.store.UpdateProject(c.Params("id"), patch)
	return h.snapshot(c)
}

// RemoveProject deletes one project; unknown ids are ignored.
// @Summary Remove project
// @Tags    resume
// @Produce json
// @Param   id path string true "entry id"
// @Success 200 {object} resume.Resume
// @Router  /resume/projects/{id} [delete]
func (h *EditorHandler) RemoveProject(c *fiber.Ctx) error {
	h.store.RemoveProject(c.Params("id"))
	return h.snapshot(c)
}
