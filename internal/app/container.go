package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"jobhunter/internal/aggregator"
	"jobhunter/internal/ai"
	"jobhunter/internal/config"
	"jobhunter/internal/database"
	dbpostgres "jobhunter/internal/database/postgres"
	"jobhunter/internal/infrastructure/cache"
	"jobhunter/internal/jobsource"
	"jobhunter/internal/pkg/jwt"
	"jobhunter/internal/repository"
	"jobhunter/internal/usecase"
	"jobhunter/internal/ws"
)

// Container owns every long-lived dependency. Both the server and the
// worker build one and pick the pieces they need.
type Container struct {
	Config config.Config
	Logger *zap.Logger
	DB     database.DB
	Cache  *cache.Redis
	Hub    *ws.Hub
	JWT    jwt.Service

	Jobs          repository.JobRepository
	SearchConfigs repository.SearchConfigRepository
	Knowledge     repository.KnowledgeRepository
	Applications  repository.ApplicationRepository
	Questions     repository.QuestionRepository
	Stats         repository.StatsRepository

	AuthUC   usecase.AuthUsecase
	JobUC    usecase.JobUsecase
	SearchUC usecase.SearchUsecase
	MatchUC  usecase.MatchUsecase
	ResumeUC usecase.ResumeUsecase
}

func NewContainer(cfg config.Config) (*Container, error) {
	logger, err := newLogger(cfg.App.Environment)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	redisCache := cache.NewRedis(cfg.Redis, logger)
	hub := ws.NewHub(logger)
	notifier := ws.NewEventNotifier(hub)

	registry := jobsource.NewRegistry(cfg.Sources, logger)
	boards := aggregator.New(registry, logger)
	aiClient := ai.NewClient(cfg.AI, logger)

	jwtSvc := jwt.NewHMACService(
		cfg.Auth.AccessSecret,
		cfg.Auth.RefreshSecret,
		cfg.Auth.AccessExpiresIn,
		cfg.Auth.RefreshExpiresIn,
	)

	jobRepo := repository.NewPostgresJobRepository(db)
	configRepo := repository.NewPostgresSearchConfigRepository(db)
	knowledgeRepo := repository.NewPostgresKnowledgeRepository(db)
	applicationRepo := repository.NewPostgresApplicationRepository(db)
	questionRepo := repository.NewPostgresQuestionRepository(db)
	statsRepo := repository.NewPostgresStatsRepository(db)

	return &Container{
		Config: cfg,
		Logger: logger,
		DB:     db,
		Cache:  redisCache,
		Hub:    hub,
		JWT:    jwtSvc,

		Jobs:          jobRepo,
		SearchConfigs: configRepo,
		Knowledge:     knowledgeRepo,
		Applications:  applicationRepo,
		Questions:     questionRepo,
		Stats:         statsRepo,

		AuthUC:   usecase.NewAuthUsecase(cfg.Auth.PasswordHash, jwtSvc),
		JobUC:    usecase.NewJobUsecase(jobRepo),
		SearchUC: usecase.NewSearchUsecase(configRepo, jobRepo, boards, notifier, logger),
		MatchUC:  usecase.NewMatchUsecase(jobRepo, knowledgeRepo, aiClient, notifier, logger),
		ResumeUC: usecase.NewResumeUsecase(applicationRepo, jobRepo, knowledgeRepo, aiClient, logger),
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.Logger != nil {
		_ = c.Logger.Sync()
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
