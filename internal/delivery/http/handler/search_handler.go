package handler

import (
	"github.com/gofiber/fiber/v3"

	"jobhunter/internal/pkg/response"
	"jobhunter/internal/usecase"
)

// SearchHandler triggers an on-demand run over every active search config.
// The same run is executed on a schedule by the worker.
type SearchHandler struct {
	uc usecase.SearchUsecase
}

func NewSearchHandler(uc usecase.SearchUsecase) *SearchHandler {
	return &SearchHandler{uc: uc}
}

func (h *SearchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/search", h.Run)
}

func (h *SearchHandler) Run(c fiber.Ctx) error {
	summary, err := h.uc.RunAll(c.Context())
	if err != nil {
		return err
	}

	data := map[string]any{
		"found":    summary.Found,
		"inserted": summary.Inserted,
		"failures": summary.Failures,
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}
