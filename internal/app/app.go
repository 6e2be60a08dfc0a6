package app

import (
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"nextintern-api/config"
	"nextintern-api/internal/metrics"
	"nextintern-api/internal/services"
	"nextintern-api/internal/storage/postgres"
)

// Application holds core application dependencies.
type Application struct {
	Config      *config.Config
	DBPool      *pgxpool.Pool
	RedisClient *redis.Client
	Validator   *validator.Validate
	Metrics     *metrics.Metrics

	UserService             services.UserService
	OpportunityService      services.OpportunityService
	ApplicationService      services.ApplicationService
	CandidateService        services.CandidateService
	IndustryService         services.IndustryService
	SavedOpportunityService services.SavedOpportunityService
}

// New wires repositories and services on top of the shared pool and clients.
func New(cfg *config.Config, dbPool *pgxpool.Pool, redisClient *redis.Client, validate *validator.Validate, m *metrics.Metrics) *Application {
	userRepo := postgres.NewUserRepo(dbPool)
	candidateRepo := postgres.NewCandidateRepo(dbPool)
	industryRepo := postgres.NewIndustryRepo(dbPool)
	opportunityRepo := postgres.NewOpportunityRepo(dbPool)
	applicationRepo := postgres.NewApplicationRepo(dbPool)
	savedRepo := postgres.NewSavedOpportunityRepo(dbPool)

	return &Application{
		Config:      cfg,
		DBPool:      dbPool,
		RedisClient: redisClient,
		Validator:   validate,
		Metrics:     m,

		UserService: services.NewUserService(
			dbPool, userRepo, candidateRepo, industryRepo,
			redisClient, cfg.JWT.Secret, cfg.JWT.Expiration, cfg.JWT.RefreshExpiration,
		),
		OpportunityService: services.NewOpportunityService(opportunityRepo, industryRepo, candidateRepo, savedRepo, m),
		ApplicationService: services.NewApplicationService(
			dbPool, applicationRepo, opportunityRepo, candidateRepo, industryRepo, userRepo, m,
		),
		CandidateService:        services.NewCandidateService(candidateRepo),
		IndustryService:         services.NewIndustryService(industryRepo),
		SavedOpportunityService: services.NewSavedOpportunityService(savedRepo, opportunityRepo, industryRepo, candidateRepo),
	}
}
