package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/nocv-se/nocv-backend/internal/dto"
	"github.com/nocv-se/nocv-backend/internal/middleware"
	"github.com/nocv-se/nocv-backend/internal/usecase"
	"github.com/nocv-se/nocv-backend/internal/util"
)

type PresentationHandler struct {
	uc *usecase.PresentationUsecase
}

func NewPresentationHandler(uc *usecase.PresentationUsecase) *PresentationHandler {
	return &PresentationHandler{uc: uc}
}

// RegisterPublicRoutes mounts the share-link surface. The token in the path is
// the sole authorization; unpublished links answer 404.
func (h *PresentationHandler) RegisterPublicRoutes(app fiber.Router) {
	optional := middleware.OptionalAuth()
	app.Get("/presentations/:shareToken", optional, h.GetByToken)
	app.Get("/p/:shareToken", optional, h.GetDocument)
}

func (h *PresentationHandler) RegisterRoutes(api fiber.Router) {
	api.Patch("/presentations/:id", h.UpdateOverlay)
	api.Post("/presentations/:id/publish", h.Publish)
	api.Post("/presentations/:id/archive", h.Archive)
}

func (h *PresentationHandler) GetByToken(c *fiber.Ctx) error {
	presentation, err := h.uc.GetByToken(c.Params("shareToken"), middleware.IsAdmin(c))
	if err != nil {
		return fail(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Presentation hämtad",
		Data:    dto.NewPresentationDTO(presentation),
	})
}

// GetDocument serves the rendered HTML page behind a share link. Search
// engines and referrer leakage are blocked at the header level too, matching
// the meta tags inside the document.
func (h *PresentationHandler) GetDocument(c *fiber.Ctx) error {
	presentation, err := h.uc.GetByToken(c.Params("shareToken"), middleware.IsAdmin(c))
	if err != nil {
		return fail(c, err)
	}
	c.Set("X-Robots-Tag", "noindex, nofollow")
	c.Set("Referrer-Policy", "no-referrer")
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(presentation.Document)
}

type overlayRequest struct {
	RecruiterNotes  *string        `json:"recruiter_notes"`
	SoftValuesNotes *string        `json:"soft_values_notes"`
	SkillScores     map[string]int `json:"skill_scores"`
}

func (h *PresentationHandler) UpdateOverlay(c *fiber.Ctx) error {
	var req overlayRequest
	if err := parseBody(c, &req); err != nil {
		return fail(c, err)
	}

	presentation, err := h.uc.UpdateOverlay(c.Params("id"), usecase.OverlayPatch{
		RecruiterNotes:  req.RecruiterNotes,
		SoftValuesNotes: req.SoftValuesNotes,
		SkillScores:     req.SkillScores,
	})
	if err != nil {
		return fail(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Presentationen har uppdaterats",
		Data:    dto.NewPresentationDTO(presentation),
	})
}

func (h *PresentationHandler) Publish(c *fiber.Ctx) error {
	presentation, err := h.uc.Publish(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Presentationen har publicerats",
		Data:    dto.NewPresentationDTO(presentation),
	})
}

func (h *PresentationHandler) Archive(c *fiber.Ctx) error {
	presentation, err := h.uc.Archive(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Presentationen har arkiverats",
		Data:    dto.NewPresentationDTO(presentation),
	})
}
