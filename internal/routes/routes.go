package routes

import (
	"net/http"

	"github.com/wellnessbuddy/api/internal/app"
	"github.com/wellnessbuddy/api/internal/handler"
	"github.com/wellnessbuddy/api/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	health := handler.NewHealthHandler(app.DB)
	auth := handler.NewAuthHandler(app.AuthService)
	goal := handler.NewGoalHandler(app.GoalService)
	journal := handler.NewJournalHandler(app.JournalService)
	expense := handler.NewExpenseHandler(app.ExpenseService)
	club := handler.NewClubHandler(app.ClubService)
	template := handler.NewTemplateHandler(app.TemplateService)

	mux := http.NewServeMux()

	// ============================================================================
	// PUBLIC ROUTES
	// ============================================================================

	mux.HandleFunc("GET /api/v1/health", health.Health)

	// Auth (rate limited)
	rateLimiter := middleware.RateLimitAuth()
	mux.HandleFunc("POST /api/v1/auth/otp", rateLimiter(auth.RequestOTP))
	mux.HandleFunc("POST /api/v1/auth/verify", rateLimiter(auth.VerifyOTP))

	// Contract templates (public reads)
	mux.HandleFunc("GET /api/v1/legal/templates", template.List)
	mux.HandleFunc("GET /api/v1/legal/templates/{id}", template.Get)

	// ============================================================================
	// PROTECTED ROUTES
	// ============================================================================

	requireAuth := middleware.RequireAuth(app.AuthService)

	// Goals
	mux.HandleFunc("GET /api/v1/goals", requireAuth(goal.List))
	mux.HandleFunc("POST /api/v1/goals", requireAuth(goal.Create))
	mux.HandleFunc("GET /api/v1/goals/{id}", requireAuth(goal.Get))
	mux.HandleFunc("PUT /api/v1/goals/{id}", requireAuth(goal.Update))
	mux.HandleFunc("PATCH /api/v1/goals/{id}", requireAuth(goal.Update))
	mux.HandleFunc("DELETE /api/v1/goals/{id}", requireAuth(goal.Delete))

	// Journal / workouts (same storage, split by ?type=)
	mux.HandleFunc("GET /api/v1/journal", requireAuth(journal.List))
	mux.HandleFunc("POST /api/v1/journal", requireAuth(journal.Create))
	mux.HandleFunc("GET /api/v1/journal/{id}", requireAuth(journal.Get))
	mux.HandleFunc("PUT /api/v1/journal/{id}", requireAuth(journal.Update))
	mux.HandleFunc("PATCH /api/v1/journal/{id}", requireAuth(journal.Update))
	mux.HandleFunc("DELETE /api/v1/journal/{id}", requireAuth(journal.Delete))

	// Expenses
	mux.HandleFunc("GET /api/v1/expenses", requireAuth(expense.List))
	mux.HandleFunc("POST /api/v1/expenses", requireAuth(expense.Create))
	mux.HandleFunc("GET /api/v1/expenses/{id}", requireAuth(expense.Get))
	mux.HandleFunc("PATCH /api/v1/expenses/{id}", requireAuth(expense.Update))
	mux.HandleFunc("DELETE /api/v1/expenses/{id}", requireAuth(expense.Delete))

	// Clubs
	mux.HandleFunc("GET /api/v1/clubs", requireAuth(club.List))
	mux.HandleFunc("POST /api/v1/clubs", requireAuth(club.Create))
	mux.HandleFunc("GET /api/v1/clubs/{id}", requireAuth(club.Get))
	mux.HandleFunc("PATCH /api/v1/clubs/{id}", requireAuth(club.Update))
	mux.HandleFunc("DELETE /api/v1/clubs/{id}", requireAuth(club.Delete))

	// Memberships
	mux.HandleFunc("GET /api/v1/memberships", requireAuth(club.ListMemberships))
	mux.HandleFunc("POST /api/v1/memberships", requireAuth(club.CreateMembership))
	mux.HandleFunc("DELETE /api/v1/memberships/{id}", requireAuth(club.DeleteMembership))

	// Contract templates (authenticated writes)
	mux.HandleFunc("POST /api/v1/contract-templates", requireAuth(template.Create))
	mux.HandleFunc("PATCH /api/v1/contract-templates/{id}", requireAuth(template.Update))
	mux.HandleFunc("DELETE /api/v1/contract-templates/{id}", requireAuth(template.Delete))

	// Global middleware - executed in order (top to bottom)
	return middleware.Chain(
		mux,
		middleware.RequestLogging,
	)
}
