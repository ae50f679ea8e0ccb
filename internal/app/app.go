package app

import (
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/wellnessbuddy/api/internal/config"
	"github.com/wellnessbuddy/api/internal/db"
	"github.com/wellnessbuddy/api/internal/repository"
	"github.com/wellnessbuddy/api/internal/service"
	"github.com/wellnessbuddy/api/internal/storage"
)

type App struct {
	Cfg             *config.Config
	DB              *sqlx.DB
	AuthService     *service.AuthService
	EmailService    *service.EmailService
	GoalService     *service.GoalService
	JournalService  *service.JournalService
	ExpenseService  *service.ExpenseService
	ClubService     *service.ClubService
	TemplateService *service.TemplateService
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
	otpRepository := repository.NewOTPRepository(database)
	goalRepository := repository.NewGoalRepository(database)
	journalRepository := repository.NewJournalEntryRepository(database)
	expenseRepository := repository.NewExpenseRepository(database)
	clubRepository := repository.NewClubRepository(database)
	membershipRepository := repository.NewMembershipRepository(database)
	templateRepository := repository.NewContractTemplateRepository(database)

	// Storage
	fileStorage, err := storage.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %v", err)
	}

	// Services
	emailService := service.NewEmailService(
		cfg.ResendAPIKey,
		cfg.EmailFrom,
		cfg.AppName,
		cfg.IsDevelopment(),
	)
	authService := service.NewAuthService(
		userRepository,
		otpRepository,
		emailService,
		cfg.JWTSecret,
		cfg.JWTExpiry,
		cfg.OTPExpiry,
	)
	goalService := service.NewGoalService(goalRepository)
	journalService := service.NewJournalService(journalRepository, goalRepository)
	expenseService := service.NewExpenseService(expenseRepository, goalRepository)
	clubService := service.NewClubService(clubRepository, membershipRepository)
	templateService := service.NewTemplateService(templateRepository, fileStorage, cfg.ContentPath)

	// Seed contract templates from bundled markdown. Missing content is not
	// fatal; the write endpoints still work.
	err = templateService.SyncContent()
	if err != nil {
		slog.Warn("failed to sync contract template content", "error", err)
	}

	return &App{
		Cfg:             cfg,
		DB:              database,
		AuthService:     authService,
		EmailService:    emailService,
		GoalService:     goalService,
		JournalService:  journalService,
		ExpenseService:  expenseService,
		ClubService:     clubService,
		TemplateService: templateService,
	}, nil
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
