package handler

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	"jobhunter/internal/delivery/http/dto"
	"jobhunter/internal/delivery/http/middleware"
	"jobhunter/internal/pkg/response"
	"jobhunter/internal/repository"
)

type SearchConfigHandler struct {
	repo repository.SearchConfigRepository
}

type searchConfigRequest struct {
	Name             string   `json:"name"`
	Keywords         []string `json:"keywords"`
	ExcludedKeywords []string `json:"excluded_keywords"`
	Locations        []string `json:"locations"`
	RemoteOnly       bool     `json:"remote_only"`
	SalaryMin        float64  `json:"salary_min"`
	SalaryCurrency   string   `json:"salary_currency"`
	JobSources       []string `json:"job_sources"`
	IsActive         *bool    `json:"is_active"`
}

func NewSearchConfigHandler(repo repository.SearchConfigRepository) *SearchConfigHandler {
	return &SearchConfigHandler{repo: repo}
}

func (h *SearchConfigHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Get("/:id", h.Get)
	r.Post("/", h.Create)
	r.Put("/:id", h.Update)
	r.Delete("/:id", h.Delete)
}

func (h *SearchConfigHandler) List(c fiber.Ctx) error {
	configs, err := h.repo.List(c.Context())
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromSearchConfigs(configs))
}

func (h *SearchConfigHandler) Get(c fiber.Ctx) error {
	id, err := parsePathUUID(c, "id")
	if err != nil {
		return err
	}

	cfg, err := h.repo.GetByID(c.Context(), id)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromSearchConfig(cfg))
}

func (h *SearchConfigHandler) Create(c fiber.Ctx) error {
	req, err := bindSearchConfigRequest(c)
	if err != nil {
		return err
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	cfg, err := h.repo.Create(c.Context(), repository.SearchConfig{
		Name:             req.Name,
		Keywords:         req.Keywords,
		ExcludedKeywords: req.ExcludedKeywords,
		Locations:        req.Locations,
		RemoteOnly:       req.RemoteOnly,
		SalaryMin:        req.SalaryMin,
		SalaryCurrency:   req.SalaryCurrency,
		JobSources:       req.JobSources,
		IsActive:         active,
	})
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, dto.FromSearchConfig(cfg))
}

func (h *SearchConfigHandler) Update(c fiber.Ctx) error {
	id, err := parsePathUUID(c, "id")
	if err != nil {
		return err
	}

	req, err := bindSearchConfigRequest(c)
	if err != nil {
		return err
	}

	existing, err := h.repo.GetByID(c.Context(), id)
	if err != nil {
		return err
	}

	existing.Name = req.Name
	existing.Keywords = req.Keywords
	existing.ExcludedKeywords = req.ExcludedKeywords
	existing.Locations = req.Locations
	existing.RemoteOnly = req.RemoteOnly
	existing.SalaryMin = req.SalaryMin
	existing.SalaryCurrency = req.SalaryCurrency
	existing.JobSources = req.JobSources
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}

	if err := h.repo.Update(c.Context(), existing); err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromSearchConfig(existing))
}

func (h *SearchConfigHandler) Delete(c fiber.Ctx) error {
	id, err := parsePathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.repo.Delete(c.Context(), id); err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func bindSearchConfigRequest(c fiber.Ctx) (searchConfigRequest, error) {
	var req searchConfigRequest
	if err := c.Bind().Body(&req); err != nil {
		return searchConfigRequest{}, middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if strings.TrimSpace(req.Name) == "" {
		return searchConfigRequest{}, middleware.NewAppError(fiber.StatusBadRequest, "Name is required", nil, nil)
	}
	if len(req.Keywords) == 0 {
		return searchConfigRequest{}, middleware.NewAppError(fiber.StatusBadRequest, "At least one keyword is required", nil, nil)
	}
	return req, nil
}
