package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/nocv-se/nocv-backend/internal/dto"
	"github.com/nocv-se/nocv-backend/internal/middleware"
	"github.com/nocv-se/nocv-backend/internal/model"
	"github.com/nocv-se/nocv-backend/internal/usecase"
	"github.com/nocv-se/nocv-backend/internal/util"
)

type AssessmentHandler struct {
	uc *usecase.AssessmentUsecase
}

func NewAssessmentHandler(uc *usecase.AssessmentUsecase) *AssessmentHandler {
	return &AssessmentHandler{uc: uc}
}

func (h *AssessmentHandler) RegisterRoutes(api fiber.Router) {
	// One generation at a time per client; each call is a paid LLM request.
	generationLimiter := middleware.RateLimiter(1, 4*time.Second)
	api.Post("/assessments/screening", generationLimiter, h.GenerateScreening)
	api.Post("/assessments/final", generationLimiter, h.GenerateFinal)
	api.Get("/applications/:id/assessments", h.List)
	api.Get("/applications/:id/assessments/latest", h.Latest)
	api.Patch("/assessments/:id", h.Update)
}

type generateRequest struct {
	ApplicationID  string `json:"application_id" validate:"required,uuid"`
	TranscriptText string `json:"transcript_text" validate:"required"`
	RoleKey        string `json:"role_key" validate:"required"`
}

func (h *AssessmentHandler) GenerateScreening(c *fiber.Ctx) error {
	return h.generate(c, model.AssessmentTypeScreening)
}

func (h *AssessmentHandler) GenerateFinal(c *fiber.Ctx) error {
	return h.generate(c, model.AssessmentTypeFinal)
}

func (h *AssessmentHandler) generate(c *fiber.Ctx, stage string) error {
	var req generateRequest
	if err := parseBody(c, &req); err != nil {
		return fail(c, err)
	}

	out, err := h.uc.Generate(c.UserContext(), usecase.GenerateInput{
		ApplicationID:  req.ApplicationID,
		TranscriptText: req.TranscriptText,
		RoleKey:        req.RoleKey,
		Stage:          stage,
	})
	if err != nil {
		return fail(c, err)
	}

	data := fiber.Map{"assessment": dto.NewAssessmentDTO(out.Assessment)}
	if out.Presentation != nil {
		data["presentation"] = dto.NewPresentationRefDTO(out.Presentation)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Bedömningen har skapats",
		Data:    data,
	})
}

func (h *AssessmentHandler) List(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("page_size", 20)

	assessments, total, err := h.uc.List(c.Params("id"), page, pageSize)
	if err != nil {
		return fail(c, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message:    "Bedömningar hämtade",
		Data:       dto.NewAssessmentDTOs(assessments),
		Pagination: buildPagination(page, pageSize, total, len(assessments)),
	})
}

func (h *AssessmentHandler) Latest(c *fiber.Ctx) error {
	assessment, err := h.uc.Latest(c.Params("id"), c.Query("type"))
	if err != nil {
		return fail(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Bedömning hämtad",
		Data:    dto.NewAssessmentDTO(assessment),
	})
}

type assessmentPatchRequest struct {
	Summary              *string           `json:"summary"`
	TechnicalAssessment  *string           `json:"technical_assessment"`
	SoftSkillsAssessment *string           `json:"soft_skills_assessment"`
	Strengths            []dto.StrengthDTO `json:"strengths"`
	Concerns             []string          `json:"concerns"`
}

func (h *AssessmentHandler) Update(c *fiber.Ctx) error {
	var req assessmentPatchRequest
	if err := parseBody(c, &req); err != nil {
		return fail(c, err)
	}

	patch := usecase.AssessmentPatch{
		Summary:              req.Summary,
		TechnicalAssessment:  req.TechnicalAssessment,
		SoftSkillsAssessment: req.SoftSkillsAssessment,
		Concerns:             req.Concerns,
	}
	if req.Strengths != nil {
		patch.Strengths = make([]model.Strength, 0, len(req.Strengths))
		for _, s := range req.Strengths {
			patch.Strengths = append(patch.Strengths, model.Strength{Point: s.Point, Evidence: s.Evidence})
		}
	}

	assessment, err := h.uc.UpdateEditable(c.Params("id"), patch)
	if err != nil {
		return fail(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Bedömningen har uppdaterats",
		Data:    dto.NewAssessmentDTO(assessment),
	})
}
