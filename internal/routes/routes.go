package routes

import (
	"io/fs"
	"net/http"

	"github.com/campusmeet/sportsapp/assets"
	"github.com/campusmeet/sportsapp/internal/app"
	"github.com/campusmeet/sportsapp/internal/handler"
	"github.com/campusmeet/sportsapp/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	auth := handler.NewAuthHandler(app.AuthService, app.SessionService)
	dashboard := handler.NewDashboardHandler()
	slot := handler.NewSlotHandler(app.SlotService, app.SessionService)
	pages := handler.NewPagesHandler(app.ContentService)

	mux := http.NewServeMux()

	// ============================================================================
	// PUBLIC ROUTES
	// ============================================================================

	// Static files (signup/login/dashboard pages and their scripts)
	sub, _ := fs.Sub(assets.PublicFS, "public")
	mux.Handle("GET /", http.FileServer(http.FS(sub)))

	// Info pages
	mux.HandleFunc("GET /pages/{page}", pages.ShowPage)

	// Auth flow (rate limited)
	rateLimiter := middleware.RateLimitAuth()

	mux.HandleFunc("POST /signup", rateLimiter(auth.Signup))
	mux.HandleFunc("GET /verify", auth.Verify)
	mux.HandleFunc("GET /login", auth.LoginPage)
	mux.HandleFunc("POST /login", rateLimiter(auth.Login))
	mux.HandleFunc("POST /logout", auth.Logout)

	// ============================================================================
	// PROTECTED ROUTES
	// ============================================================================

	// Pages (redirect to login when unauthenticated)
	mux.HandleFunc("GET /dashboard", middleware.RequireAuth(dashboard.DashboardPage))

	// API (401 when unauthenticated)
	mux.HandleFunc("GET /me", middleware.RequireAuthAPI(dashboard.Me))
	mux.HandleFunc("GET /sports", middleware.RequireAuthAPI(dashboard.Sports))
	mux.HandleFunc("POST /select-sport", middleware.RequireAuthAPI(slot.SelectSport))
	mux.HandleFunc("GET /selected-sport", middleware.RequireAuthAPI(slot.SelectedSport))
	mux.HandleFunc("POST /add-time", middleware.RequireAuthAPI(slot.AddTime))
	mux.HandleFunc("GET /get-times", middleware.RequireAuthAPI(slot.GetTimes))

	return middleware.Chain(mux,
		middleware.RequestLogging,
		middleware.SessionMiddleware(app.SessionService),
	)
}
