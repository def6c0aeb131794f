package http

import (
	"log/slog"
	"os"

	"github.com/SakshiM24/Employee-Attendance-System/internal/config"
	"github.com/SakshiM24/Employee-Attendance-System/internal/handler/http/middleware"
	"github.com/SakshiM24/Employee-Attendance-System/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	attendanceHandler AttendanceHandler,
	dashboardHandler DashboardHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-tracker"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/checkin", attendanceHandler.CheckIn)
				r.Post("/checkout", attendanceHandler.CheckOut)
				r.Get("/my-history", attendanceHandler.MyHistory)
				r.Get("/my-summary", attendanceHandler.MySummary)
				r.Get("/today", attendanceHandler.Today)

				// Manager only
				r.Group(func(r chi.Router) {
					r.Use(middleware.ManagerOnly)
					r.Get("/all", attendanceHandler.ListAll)
					r.Get("/employee/{id}", attendanceHandler.EmployeeHistory)
					r.Get("/summary", attendanceHandler.TeamSummary)
					r.Get("/today-status", attendanceHandler.TodayStatus)
					r.Get("/export", attendanceHandler.Export)
				})
			})

			r.Route("/dashboard", func(r chi.Router) {
				r.Get("/employee", dashboardHandler.Employee)

				// Manager only
				r.Group(func(r chi.Router) {
					r.Use(middleware.ManagerOnly)
					r.Get("/manager", dashboardHandler.Manager)
					r.Get("/team-overview", dashboardHandler.TeamOverview)
				})
			})
		})
	})
	return r
}
