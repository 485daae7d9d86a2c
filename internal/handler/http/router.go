package http

import (
	"log/slog"
	"os"

	"github.com/absensi-dosen/absensi-backend-go/internal/domain/lecturer"
	"github.com/absensi-dosen/absensi-backend-go/internal/handler/http/middleware"
	"github.com/absensi-dosen/absensi-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type RouterConfig struct {
	Env            string
	FrontendOrigin string
	LogLevel       slog.Level
}

type Handlers struct {
	Auth          AuthHandler
	User          UserHandler
	Attendance    AttendanceHandler
	Clarification ClarificationHandler
	Leave         LeaveHandler
	Report        ReportHandler
	File          FileHandler
}

func NewRouter(cfg RouterConfig, JWTService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(cfg.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "absensi-dosen"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendOrigin},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  cfg.LogLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService))

			r.Post("/auth/logout", h.Auth.Logout)
			r.Get("/auth/me", h.Auth.Me)

			r.Get("/clarifications/history", h.Clarification.History)

			r.With(middleware.RequireRole(lecturer.RoleKajur, lecturer.RoleAdmin)).
				Get("/lecturers/{nip}/summary", h.Attendance.LecturerSummary)

			r.Route("/dosen", func(r chi.Router) {
				r.Use(middleware.RequireRole(lecturer.RoleDosen))
				r.Get("/dashboard", h.Attendance.Dashboard)
				r.Post("/clarifications", h.Clarification.Submit)
				r.Get("/leave-history", h.Leave.MyHistory)
			})

			r.Route("/kajur", func(r chi.Router) {
				r.Use(middleware.RequireRole(lecturer.RoleKajur))
				r.Get("/dashboard", h.Attendance.KajurDashboard)
				r.Post("/clarifications/{id}/approve", h.Clarification.Approve)
				r.Post("/clarifications/{id}/reject", h.Clarification.Reject)
			})

			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.RequireRole(lecturer.RoleAdmin))

				r.Route("/users", func(r chi.Router) {
					r.Get("/", h.User.List)
					r.Post("/", h.User.Create)
					r.Put("/{nip}/leave-quota", h.User.UpdateLeaveQuota)
					r.Put("/{nip}/department", h.User.UpdateDepartment)
				})

				r.Route("/leaves", func(r chi.Router) {
					r.Get("/", h.Leave.ListAll)
					r.Post("/", h.Leave.Apply)
				})

				r.Route("/reports/monthly", func(r chi.Router) {
					r.Get("/", h.Report.Monthly)
					r.Get("/download", h.Report.Download)
				})
			})
		})
	})

	// Evidence files
	r.Group(func(r chi.Router) {
		r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
		r.Use(middleware.AuthRequired(JWTService))
		r.Get("/uploads/*", h.File.Serve)
	})

	return r
}
