package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"

	"jobhunter/internal/config"
	"jobhunter/internal/database/migration"
	"jobhunter/internal/delivery/http/handler"
	"jobhunter/internal/delivery/http/middleware"
	"jobhunter/internal/delivery/http/routes"
	"jobhunter/internal/ws"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	c, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, err
	}

	migCtx, migCancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer migCancel()
	runner := migration.NewDirRunner("migrations")
	if err := runner.Run(migCtx, c.DB.SQLDB()); err != nil {
		_ = c.Close()
		return nil, nil, fmt.Errorf("migrations: %w", err)
	}

	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})
	registerGlobalMiddleware(f, c)
	registerRoutes(f, c)

	go c.Hub.Run()

	cleanup := func() error { return c.Close() }
	return &App{Fiber: f, Container: c}, cleanup, nil
}

func registerGlobalMiddleware(f *fiber.App, c *Container) {
	f.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())
	f.Use(middleware.NewErrorMiddleware(c.Logger).Middleware())
}

func registerRoutes(f *fiber.App, c *Container) {
	registry := &routes.Registry{
		Health:        handler.NewHealthHandler(c.DB),
		Auth:          handler.NewAuthHandler(c.AuthUC),
		Jobs:          handler.NewJobsHandler(c.JobUC),
		Search:        handler.NewSearchHandler(c.SearchUC),
		Match:         handler.NewMatchHandler(c.MatchUC),
		SearchConfigs: handler.NewSearchConfigHandler(c.SearchConfigs),
		Knowledge:     handler.NewKnowledgeHandler(c.Knowledge),
		Questions:     handler.NewQuestionHandler(c.Questions),
		Applications:  handler.NewApplicationHandler(c.Applications, c.ResumeUC),
		Resume:        handler.NewResumeHandler(c.ResumeUC),
		Stats:         handler.NewStatsHandler(c.Stats, c.Cache),
		AuthMw:        middleware.NewAuthMiddleware(c.JWT),
		WS:            ws.NewHandler(c.Hub, c.Logger),
	}
	registry.Register(f)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
