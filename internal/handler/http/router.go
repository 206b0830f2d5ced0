package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/punchclock-hq/punchclock-backend/internal/handler/http/middleware"
	"github.com/punchclock-hq/punchclock-backend/internal/pkg/jwt"
)

type RouterConfig struct {
	FrontendURL string
	Env         string
}

func NewRouter(
	cfg RouterConfig,
	jwtService jwt.Service,
	authHandler AuthHandler,
	timeclockHandler TimeclockHandler,
	employeeHandler EmployeeHandler,
	timesheetHandler TimesheetHandler,
	punchLogHandler PunchLogHandler,
	holidayHandler HolidayHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "punchclock-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
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
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// The punch clock terminal authenticates with secret codes only.
		r.Route("/clock", func(r chi.Router) {
			r.Post("/punch", timeclockHandler.Punch)
			r.Post("/status", timeclockHandler.Status)
		})

		r.Post("/holidays", holidayHandler.Submit)
		r.Post("/holidays/{id}/cancel", holidayHandler.Cancel)

		// Admin dashboard, requires an access token.
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.List)
				r.Post("/", employeeHandler.Create)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", employeeHandler.Get)
					r.Put("/", employeeHandler.Update)
					r.Delete("/", employeeHandler.Delete)

					r.Get("/timesheet", timesheetHandler.Get)

					r.Route("/events", func(r chi.Router) {
						r.Get("/", punchLogHandler.List)
						r.Put("/{index}", punchLogHandler.Replace)
						r.Delete("/{index}", punchLogHandler.Delete)
					})
				})
			})

			r.Get("/roster", timesheetHandler.Roster)
			r.Get("/anomalies", timesheetHandler.Anomalies)

			// Flat routes: the /holidays prefix already carries the public
			// submit and cancel endpoints, so no subrouter is mounted here.
			r.Get("/holidays", holidayHandler.List)
			r.Get("/holidays/{id}", holidayHandler.Get)
			r.Post("/holidays/{id}/approve", holidayHandler.Approve)
			r.Post("/holidays/{id}/reject", holidayHandler.Reject)
		})
	})
	return r
}
