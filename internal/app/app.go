package app

import (
	"fmt"

	"github.com/campusmeet/sportsapp/internal/config"
	"github.com/campusmeet/sportsapp/internal/db"
	"github.com/campusmeet/sportsapp/internal/repository"
	"github.com/campusmeet/sportsapp/internal/service"
	"github.com/jmoiron/sqlx"
)

type App struct {
	Cfg            *config.Config
	DB             *sqlx.DB
	AuthService    *service.AuthService
	SessionService *service.SessionService
	SlotService    *service.SlotService
	EmailService   *service.EmailService
	ContentService *service.ContentService
}

func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Repositories
	userRepository := repository.NewUserRepository(database)
	sessionRepository := repository.NewSessionRepository(database)
	slotRepository := repository.NewTimeSlotRepository(database)

	// Services
	emailService := service.NewEmailService(
		cfg.ResendAPIKey,
		cfg.EmailFrom,
		cfg.AppURL,
		cfg.AppName,
		cfg.IsDevelopment(),
	)
	authService := service.NewAuthService(userRepository, emailService, cfg.EmailDomain)
	sessionService := service.NewSessionService(sessionRepository, cfg.SessionTTL, cfg.IsProduction())
	slotService := service.NewSlotService(slotRepository)
	contentService := service.NewContentService(cfg.ContentPath)

	err = contentService.LoadPages()
	if err != nil {
		return nil, fmt.Errorf("failed to load content pages: %v", err)
	}

	return &App{
		Cfg:            cfg,
		DB:             database,
		AuthService:    authService,
		SessionService: sessionService,
		SlotService:    slotService,
		EmailService:   emailService,
		ContentService: contentService,
	}, nil
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
