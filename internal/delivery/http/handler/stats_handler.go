package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"

	"jobhunter/internal/delivery/http/dto"
	"jobhunter/internal/pkg/response"
	"jobhunter/internal/repository"
)

const (
	statsCacheKey = "stats:snapshot"
	statsCacheTTL = 60 * time.Second
)

// StatsCache is the slice of the redis cache the stats handler needs. A
// nil cache disables caching entirely.
type StatsCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

type StatsHandler struct {
	repo  repository.StatsRepository
	cache StatsCache
}

func NewStatsHandler(repo repository.StatsRepository, cache StatsCache) *StatsHandler {
	return &StatsHandler{repo: repo, cache: cache}
}

func (h *StatsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/stats", h.Stats)
}

func (h *StatsHandler) Stats(c fiber.Ctx) error {
	if h.cache != nil {
		var cached dto.StatsResponse
		hit, err := h.cache.GetJSON(c.Context(), statsCacheKey, &cached)
		if err == nil && hit {
			return response.Success(c, fiber.StatusOK, response.MessageOK, cached)
		}
	}

	stats, err := h.repo.Snapshot(c.Context())
	if err != nil {
		return err
	}

	out := dto.FromStats(stats)
	if h.cache != nil {
		_ = h.cache.SetJSON(c.Context(), statsCacheKey, out, statsCacheTTL)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}
