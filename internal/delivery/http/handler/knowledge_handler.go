package handler

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	"jobhunter/internal/delivery/http/dto"
	"jobhunter/internal/delivery/http/middleware"
	"jobhunter/internal/pkg/response"
	"jobhunter/internal/repository"
)

type KnowledgeHandler struct {
	repo repository.KnowledgeRepository
}

type createKnowledgeRequest struct {
	Category string `json:"category"`
	Key      string `json:"key"`
	Value    string `json:"value"`
	Source   string `json:"source"`
}

type updateKnowledgeRequest struct {
	Value string `json:"value"`
}

func NewKnowledgeHandler(repo repository.KnowledgeRepository) *KnowledgeHandler {
	return &KnowledgeHandler{repo: repo}
}

func (h *KnowledgeHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Patch("/:id", h.Update)
	r.Delete("/:id", h.Delete)
}

func (h *KnowledgeHandler) List(c fiber.Ctx) error {
	entries, err := h.repo.List(c.Context(), c.Query("category"))
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromKnowledgeEntries(entries))
}

func (h *KnowledgeHandler) Create(c fiber.Ctx) error {
	var req createKnowledgeRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if strings.TrimSpace(req.Category) == "" || strings.TrimSpace(req.Key) == "" || strings.TrimSpace(req.Value) == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "Category, key and value are required", nil, nil)
	}

	source := req.Source
	if source == "" {
		source = repository.KnowledgeSourceUserAnswer
	}

	entry, err := h.repo.Create(c.Context(), repository.KnowledgeEntry{
		Category: req.Category,
		Key:      req.Key,
		Value:    req.Value,
		Source:   source,
	})
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, dto.FromKnowledgeEntry(entry))
}

func (h *KnowledgeHandler) Update(c fiber.Ctx) error {
	id, err := parsePathUUID(c, "id")
	if err != nil {
		return err
	}

	var req updateKnowledgeRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if strings.TrimSpace(req.Value) == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "Value is required", nil, nil)
	}

	entry, err := h.repo.Update(c.Context(), id, req.Value)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromKnowledgeEntry(entry))
}

func (h *KnowledgeHandler) Delete(c fiber.Ctx) error {
	id, err := parsePathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.repo.Delete(c.Context(), id); err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}
