package handler

import (
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"jobhunter/internal/delivery/http/middleware"
	"jobhunter/internal/pkg/response"
	"jobhunter/internal/usecase"
)

// ResumeHandler re-tailors the resume of an existing application. No new
// follow-up questions are generated on regeneration.
type ResumeHandler struct {
	uc usecase.ResumeUsecase
}

type generateResumeRequest struct {
	ApplicationID string `json:"application_id"`
}

func NewResumeHandler(uc usecase.ResumeUsecase) *ResumeHandler {
	return &ResumeHandler{uc: uc}
}

func (h *ResumeHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/resume/generate", h.Generate)
}

func (h *ResumeHandler) Generate(c fiber.Ctx) error {
	var req generateResumeRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	id, err := uuid.Parse(req.ApplicationID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid application id", nil, err)
	}

	tailored, err := h.uc.Regenerate(c.Context(), id)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{"resume": tailored})
}
