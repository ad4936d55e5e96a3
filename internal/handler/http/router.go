package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/gulfhr/payroll-backend-go/internal/config"
	"github.com/gulfhr/payroll-backend-go/internal/handler/http/middleware"
	"github.com/gulfhr/payroll-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth       AuthHandler
	Employee   EmployeeHandler
	Attendance AttendanceHandler
	Leave      LeaveHandler
	Payroll    PayrollHandler
	Indemnity  IndemnityHandler
	Report     ReportHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "gulfhr-payroll"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/token", h.Auth.Token)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.List)
				r.Post("/", h.Employee.Create)
				r.Get("/{empID}", h.Employee.Get)
				r.Put("/{empID}", h.Employee.Update)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/", h.Attendance.ListByMonth)
				r.Post("/", h.Attendance.Create)
			})

			r.Get("/leaves", h.Leave.ListByMonth)

			r.Route("/payroll", func(r chi.Router) {
				r.Post("/generate", h.Payroll.Generate)
				r.Get("/", h.Payroll.ListByMonth)
				r.Get("/{id}", h.Payroll.GetRecord)
				r.Put("/{id}", h.Payroll.UpdateRecord)
			})

			r.Route("/indemnity", func(r chi.Router) {
				r.Post("/recalculate", h.Indemnity.Recalculate)
				r.Get("/", h.Indemnity.List)
				r.Post("/{empID}/pay", h.Indemnity.MarkPaid)
			})

			r.Get("/reports/monthly", h.Report.Monthly)
		})
	})

	return r
}
