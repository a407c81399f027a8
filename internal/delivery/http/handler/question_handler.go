package handler

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	"jobhunter/internal/delivery/http/dto"
	"jobhunter/internal/delivery/http/middleware"
	"jobhunter/internal/pkg/response"
	"jobhunter/internal/repository"
)

type QuestionHandler struct {
	repo repository.QuestionRepository
}

type answerQuestionRequest struct {
	Answer string `json:"answer"`
}

func NewQuestionHandler(repo repository.QuestionRepository) *QuestionHandler {
	return &QuestionHandler{repo: repo}
}

func (h *QuestionHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Post("/:id/answer", h.Answer)
	r.Post("/:id/dismiss", h.Dismiss)
}

func (h *QuestionHandler) List(c fiber.Ctx) error {
	status := c.Query("status", repository.QuestionStatusPending)
	questions, err := h.repo.List(c.Context(), status)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromQuestions(questions))
}

func (h *QuestionHandler) Answer(c fiber.Ctx) error {
	id, err := parsePathUUID(c, "id")
	if err != nil {
		return err
	}

	var req answerQuestionRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if strings.TrimSpace(req.Answer) == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "Answer is required", nil, nil)
	}

	question, err := h.repo.Answer(c.Context(), id, req.Answer)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromQuestion(question))
}

func (h *QuestionHandler) Dismiss(c fiber.Ctx) error {
	id, err := parsePathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.repo.Dismiss(c.Context(), id); err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}
