package handler

import (
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"jobhunter/internal/delivery/http/dto"
	"jobhunter/internal/delivery/http/middleware"
	"jobhunter/internal/pkg/response"
	"jobhunter/internal/repository"
	"jobhunter/internal/usecase"
)

type ApplicationHandler struct {
	repo repository.ApplicationRepository
	uc   usecase.ResumeUsecase
}

type createApplicationRequest struct {
	JobID string `json:"job_id"`
}

type updateApplicationRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

func NewApplicationHandler(repo repository.ApplicationRepository, uc usecase.ResumeUsecase) *ApplicationHandler {
	return &ApplicationHandler{repo: repo, uc: uc}
}

func (h *ApplicationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Get("/:id", h.Get)
	r.Post("/", h.Create)
	r.Patch("/:id", h.UpdateStatus)
}

func (h *ApplicationHandler) List(c fiber.Ctx) error {
	apps, err := h.repo.List(c.Context(), c.Query("status"))
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromApplications(apps))
}

func (h *ApplicationHandler) Get(c fiber.Ctx) error {
	id, err := parsePathUUID(c, "id")
	if err != nil {
		return err
	}

	app, err := h.repo.GetByID(c.Context(), id)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromApplication(app))
}

// Create starts an application for a job and tailors a resume for it in
// one step. Fails with 409 when the job already has an application.
func (h *ApplicationHandler) Create(c fiber.Ctx) error {
	var req createApplicationRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	jobID, err := uuid.Parse(req.JobID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, err)
	}

	app, tailored, err := h.uc.CreateApplication(c.Context(), jobID)
	if err != nil {
		return err
	}

	data := map[string]any{
		"application": dto.FromApplication(app),
		"resume":      tailored,
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, data)
}

func (h *ApplicationHandler) UpdateStatus(c fiber.Ctx) error {
	id, err := parsePathUUID(c, "id")
	if err != nil {
		return err
	}

	var req updateApplicationRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if !validApplicationStatus(req.Status) {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid application status", nil, nil)
	}

	if err := h.repo.UpdateStatus(c.Context(), id, req.Status, req.Notes); err != nil {
		return err
	}

	app, err := h.repo.GetByID(c.Context(), id)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromApplication(app))
}

func validApplicationStatus(status string) bool {
	switch status {
	case repository.ApplicationStatusDraft,
		repository.ApplicationStatusSubmitted,
		repository.ApplicationStatusRejected,
		repository.ApplicationStatusInterview,
		repository.ApplicationStatusOffer:
		return true
	}
	return false
}
