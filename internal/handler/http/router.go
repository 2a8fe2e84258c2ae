package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/staffpoint/presence-backend-go/internal/config"
	"github.com/staffpoint/presence-backend-go/internal/handler/http/middleware"
	"github.com/staffpoint/presence-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	presenceHandler PresenceHandler,
	employeeHandler EmployeeHandler,
	orgHandler OrgHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "presence-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
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
			r.Route("/oauth/callback", func(r chi.Router) {
				r.Get("/google", authHandler.OAuthCallbackGoogle)
			})

			r.Route("/login", func(r chi.Router) {
				r.Post("/", authHandler.Login)
				r.Route("/oauth", func(r chi.Router) {
					r.Get("/google", authHandler.LoginWithGoogle)
				})
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/profile", employeeHandler.GetProfile)

			r.Route("/calendar", func(r chi.Router) {
				r.Get("/events", presenceHandler.CalendarEvents)
			})

			r.Route("/events", func(r chi.Router) {
				r.Post("/", presenceHandler.CreateEvent)
				r.Get("/", presenceHandler.ListEvents)
				r.Delete("/{id}", presenceHandler.DeleteEvent)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Put("/{id}/status", presenceHandler.UpdateEventStatus)
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.ListEmployees)
				r.Get("/{id}", employeeHandler.GetEmployee)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", employeeHandler.CreateEmployee)
					r.Put("/{id}", employeeHandler.UpdateEmployee)
					r.Delete("/{id}", employeeHandler.DeleteEmployee)
				})
			})

			r.Route("/positions", func(r chi.Router) {
				r.Get("/", orgHandler.ListPositions)
				r.Get("/{id}", orgHandler.GetPosition)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", orgHandler.CreatePosition)
					r.Put("/{id}", orgHandler.UpdatePosition)
					r.Delete("/{id}", orgHandler.DeletePosition)
				})
			})

			r.Route("/departments", func(r chi.Router) {
				r.Get("/", orgHandler.ListDepartments)
				r.Get("/{id}", orgHandler.GetDepartment)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", orgHandler.CreateDepartment)
					r.Put("/{id}", orgHandler.UpdateDepartment)
					r.Delete("/{id}", orgHandler.DeleteDepartment)
				})
			})

			r.Route("/teams", func(r chi.Router) {
				r.Get("/", orgHandler.ListTeams)
				r.Get("/{id}", orgHandler.GetTeam)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", orgHandler.CreateTeam)
					r.Put("/{id}", orgHandler.UpdateTeam)
					r.Delete("/{id}", orgHandler.DeleteTeam)
				})
			})

			r.Route("/projects", func(r chi.Router) {
				r.Get("/", orgHandler.ListProjects)
				r.Get("/{id}", orgHandler.GetProject)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", orgHandler.CreateProject)
					r.Put("/{id}", orgHandler.UpdateProject)
					r.Delete("/{id}", orgHandler.DeleteProject)
				})
			})
		})
	})
	return r
}
