package routes

import (
	"github.com/gofiber/fiber/v3"

	"jobhunter/internal/delivery/http/handler"
	"jobhunter/internal/delivery/http/middleware"
	v1 "jobhunter/internal/delivery/http/routes/v1"
	"jobhunter/internal/ws"
)

type Registry struct {
	Health        *handler.HealthHandler
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
	WS            *ws.Handler
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerWS(app)
	r.registerAPI(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	if r.Health != nil {
		r.Health.RegisterRoutes(app)
	}
}

func (r *Registry) registerWS(app *fiber.App) {
	if r.WS != nil {
		app.Get("/ws", r.WS.HandleEventsWS)
	}
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	v1.Register(api.Group("/v1"), v1.Handlers{
		Auth:          r.Auth,
		Jobs:          r.Jobs,
		Search:        r.Search,
		Match:         r.Match,
		SearchConfigs: r.SearchConfigs,
		Knowledge:     r.Knowledge,
		Questions:     r.Questions,
		Applications:  r.Applications,
		Resume:        r.Resume,
		Stats:         r.Stats,
		AuthMw:        r.AuthMw,
	})
}
