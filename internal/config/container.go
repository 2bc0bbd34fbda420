package config

import (
	"freewise-server/internal/domain"
	"freewise-server/internal/repository"
	"freewise-server/internal/review"
	"freewise-server/internal/service"
	"freewise-server/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config         domain.Config
	Logger         domain.Logger
	SupabaseClient domain.SupabaseClient

	HighlightRepository     domain.HighlightRepository
	BookRepository          domain.BookRepository
	ReviewSessionRepository domain.ReviewSessionRepository
	SettingsRepository      domain.SettingsRepository

	HighlightService domain.HighlightService
	BookService      domain.BookService
	SettingsService  domain.SettingsService
	ReviewService    domain.ReviewService
	DashboardService domain.DashboardService
	ExportService    *service.ExportService
}

// NewContainer creates a new dependency injection container
func NewContainer() *Container {
	config := NewConfig()
	appLogger := logger.NewLogger(config.GetLogLevel())

	// Initialize Supabase client and repositories
	supabaseClient := repository.NewSupabaseClient(config, appLogger)
	highlightRepo := repository.NewHighlightRepository(supabaseClient, appLogger)
	bookRepo := repository.NewBookRepository(supabaseClient, appLogger)
	sessionRepo := repository.NewReviewSessionRepository(supabaseClient, appLogger)
	settingsRepo := repository.NewSettingsRepository(supabaseClient, appLogger)

	// Review core: selector plus the process-wide in-memory queue store
	selector := review.NewSelector(nil)
	queueStore := review.NewMemoryStore()

	return &Container{
		Config:         config,
		Logger:         appLogger,
		SupabaseClient: supabaseClient,

		HighlightRepository:     highlightRepo,
		BookRepository:          bookRepo,
		ReviewSessionRepository: sessionRepo,
		SettingsRepository:      settingsRepo,

		HighlightService: service.NewHighlightService(highlightRepo, appLogger),
		BookService:      service.NewBookService(bookRepo, appLogger),
		SettingsService:  service.NewSettingsService(settingsRepo, appLogger),
		ReviewService: service.NewReviewService(
			highlightRepo, bookRepo, sessionRepo, settingsRepo,
			queueStore, selector, config.GetSessionIdleThreshold(), appLogger,
		),
		DashboardService: service.NewDashboardService(highlightRepo, bookRepo, sessionRepo, appLogger),
		ExportService:    service.NewExportService(highlightRepo, bookRepo, appLogger),
	}
}
