package v1

import (
	"github.com/gofiber/fiber/v3"

	"jobhunter/internal/delivery/http/handler"
	"jobhunter/internal/delivery/http/middleware"
)

type Handlers struct {
	Auth          *handler.AuthHandler
	Jobs          *handler.JobsHandler
	Search        *handler.SearchHandler
	Match         *handler.MatchHandler
	SearchConfigs *handler.SearchConfigHandler
	Knowledge     *handler.KnowledgeHandler
	Questions     *handler.QuestionHandler
	Applications  *handler.ApplicationHandler
	Resume        *handler.ResumeHandler
	Stats         *handler.StatsHandler
	AuthMw        *middleware.AuthMiddleware
}

func Register(r fiber.Router, h Handlers) {
	if r == nil {
		return
	}

	if h.Auth != nil {
		h.Auth.RegisterRoutes(r.Group("/auth"))
	}

	protected := r
	if h.AuthMw != nil {
		protected = r.Group("", h.AuthMw.Middleware())
	}

	jobs := protected.Group("/jobs")
	if h.Jobs != nil {
		h.Jobs.RegisterRoutes(jobs)
	}
	if h.Search != nil {
		h.Search.RegisterRoutes(jobs)
	}
	if h.Match != nil {
		h.Match.RegisterRoutes(jobs)
	}
	if h.SearchConfigs != nil {
		h.SearchConfigs.RegisterRoutes(protected.Group("/search-configs"))
	}
	if h.Knowledge != nil {
		h.Knowledge.RegisterRoutes(protected.Group("/knowledge"))
	}
	if h.Questions != nil {
		h.Questions.RegisterRoutes(protected.Group("/questions"))
	}
	if h.Applications != nil {
		h.Applications.RegisterRoutes(protected.Group("/applications"))
	}
	if h.Resume != nil {
		h.Resume.RegisterRoutes(protected)
	}
	if h.Stats != nil {
		h.Stats.RegisterRoutes(protected)
	}
}
