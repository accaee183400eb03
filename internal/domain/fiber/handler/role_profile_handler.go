package handler

import (
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/nocv-se/nocv-backend/internal/apperr"
	"github.com/nocv-se/nocv-backend/internal/dto"
	"github.com/nocv-se/nocv-backend/internal/usecase"
	"github.com/nocv-se/nocv-backend/internal/util"
)

const maxTranscriptUploadBytes = 10 * 1024 * 1024

type RoleProfileHandler struct {
	uc        *usecase.RoleProfileUsecase
	uploadDir string
}

func NewRoleProfileHandler(uc *usecase.RoleProfileUsecase) *RoleProfileHandler {
	return &RoleProfileHandler{uc: uc, uploadDir: "./uploads/transcripts/"}
}

func (h *RoleProfileHandler) RegisterRoutes(api fiber.Router) {
	api.Post("/transcripts/extract", h.ExtractTranscript)
	api.Post("/role-profiles/embeddings", h.RebuildEmbeddings)
	api.Post("/role-suggestions", h.Suggest)
}

// ExtractTranscript accepts an interview transcript exported as PDF and
// returns its OCR text, ready to be submitted to a generation endpoint.
func (h *RoleProfileHandler) ExtractTranscript(c *fiber.Ctx) error {
	file, err := c.FormFile("transcript")
	if err != nil {
		return fail(c, apperr.Validation("transkriptfil saknas"))
	}
	if file.Size > maxTranscriptUploadBytes {
		return fail(c, apperr.Validation("transkriptfilen är för stor (max 10MB)"))
	}
	if strings.ToLower(filepath.Ext(file.Filename)) != ".pdf" {
		return fail(c, apperr.Validation("endast PDF-filer stöds"))
	}

	savePath, err := h.saveUpload(c, file)
	if err != nil {
		return fail(c, err)
	}
	defer os.Remove(savePath)

	text, err := util.ExtractTranscriptPDF(savePath)
	if err != nil {
		return fail(c, apperr.Validation("kunde inte läsa transkriptet: %v", err))
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Transkriptet har lästs in",
		Data:    fiber.Map{"transcript_text": text},
	})
}

// saveUpload stores the upload under a fresh temp name. Concurrent uploads
// with the same client filename must not share a path.
func (h *RoleProfileHandler) saveUpload(c *fiber.Ctx, file *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		return "", err
	}
	tmp, err := os.CreateTemp(h.uploadDir, "transcript-*.pdf")
	if err != nil {
		return "", err
	}
	savePath := tmp.Name()
	tmp.Close()
	if err := c.SaveFile(file, savePath); err != nil {
		os.Remove(savePath)
		return "", err
	}
	return savePath, nil
}

func (h *RoleProfileHandler) RebuildEmbeddings(c *fiber.Ctx) error {
	updated, failed, err := h.uc.RebuildEmbeddings(c.UserContext())
	if err != nil {
		return fail(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Inbäddningar har uppdaterats",
		Data:    fiber.Map{"updated": updated, "failed": failed},
	})
}

type suggestRequest struct {
	TranscriptText string `json:"transcript_text" validate:"required"`
	TopK           int    `json:"top_k"`
}

func (h *RoleProfileHandler) Suggest(c *fiber.Ctx) error {
	var req suggestRequest
	if err := parseBody(c, &req); err != nil {
		return fail(c, err)
	}

	profiles, err := h.uc.Suggest(c.UserContext(), req.TranscriptText, req.TopK)
	if err != nil {
		return fail(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Roller föreslagna",
		Data:    dto.NewRoleSuggestionDTOs(profiles),
	})
}
