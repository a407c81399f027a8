package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"jobhunter/internal/delivery/http/dto"
	"jobhunter/internal/delivery/http/middleware"
	"jobhunter/internal/pkg/response"
	"jobhunter/internal/repository"
	"jobhunter/internal/usecase"
)

type JobsHandler struct {
	uc usecase.JobUsecase
}

type updateJobStatusRequest struct {
	Status string `json:"status"`
}

func NewJobsHandler(uc usecase.JobUsecase) *JobsHandler {
	return &JobsHandler{uc: uc}
}

func (h *JobsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Get("/:id", h.Get)
	r.Patch("/:id", h.UpdateStatus)
}

func (h *JobsHandler) List(c fiber.Ctx) error {
	minScore, err := parseQueryIntStrict(c, "min_score", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	limit, err := parseQueryIntStrict(c, "limit", 20)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	offset, err := parseQueryIntStrict(c, "offset", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	jobs, err := h.uc.List(c.Context(), repository.JobFilter{
		Status:   c.Query("status"),
		MinScore: minScore,
		Source:   c.Query("source"),
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		return err
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromJobs(jobs))
}

func (h *JobsHandler) Get(c fiber.Ctx) error {
	id, err := parsePathUUID(c, "id")
	if err != nil {
		return err
	}

	job, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return err
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromJob(job))
}

func (h *JobsHandler) UpdateStatus(c fiber.Ctx) error {
	id, err := parsePathUUID(c, "id")
	if err != nil {
		return err
	}

	var req updateJobStatusRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	job, err := h.uc.UpdateStatus(c.Context(), id, req.Status)
	if err != nil {
		return err
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromJob(job))
}

func parseQueryIntStrict(c fiber.Ctx, key string, defaultVal int) (int, error) {
	s := c.Query(key)
	if s == "" {
		return defaultVal, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	return v, nil
}

func parsePathUUID(c fiber.Ctx, key string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(key))
	if err != nil {
		return uuid.Nil, middleware.NewAppError(fiber.StatusBadRequest, "Invalid id", nil, err)
	}
	return id, nil
}
