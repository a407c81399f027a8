package handler

import (
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"jobhunter/internal/delivery/http/middleware"
	"jobhunter/internal/pkg/response"
	"jobhunter/internal/usecase"
)

type MatchHandler struct {
	uc usecase.MatchUsecase
}

type matchRequest struct {
	JobIDs []string `json:"job_ids"`
}

func NewMatchHandler(uc usecase.MatchUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/match", h.Run)
}

func (h *MatchHandler) Run(c fiber.Ctx) error {
	var req matchRequest
	if len(c.Body()) > 0 {
		if err := c.Bind().Body(&req); err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
		}
	}

	ids := make([]uuid.UUID, 0, len(req.JobIDs))
	for _, raw := range req.JobIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, err)
		}
		ids = append(ids, id)
	}

	scored, err := h.uc.ScoreJobs(c.Context(), ids)
	if err != nil {
		return err
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{"scored": scored})
}
