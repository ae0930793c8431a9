package http

import (
	"log/slog"
	"os"

	"github.com/cmlabs-hris/timekeeping-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/timekeeping-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	JWTService jwt.Service,
	timesheetHandler TimesheetHandler,
	timeclockHandler TimeclockHandler,
	scheduleHandler ScheduleHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "timekeeping-cmlabs"),
		slog.String("version", "v1.0.0"),
		slog.String("env", "development"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
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
		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/scans", func(r chi.Router) {
				r.Post("/", timeclockHandler.IngestScan)
				r.Get("/me", timeclockHandler.ListMyScans)
				r.Get("/employees/{employeeID}", timeclockHandler.ListScans)
			})

			r.Route("/shifts", func(r chi.Router) {
				r.Get("/", scheduleHandler.ListWorkShifts)
				r.Get("/{shiftID}", scheduleHandler.GetWorkShift)
			})

			r.Route("/timesheets", func(r chi.Router) {
				r.Get("/me/monthly", timesheetHandler.GetMyMonthlyTimesheet)

				r.Route("/employees/{employeeID}", func(r chi.Router) {
					r.Get("/daily", timesheetHandler.GetDayRecord)
					r.Get("/monthly", timesheetHandler.GetMonthlyTimesheet)
					r.Get("/overtime", timesheetHandler.GetOvertimeBreakdown)
					r.Get("/leave", timesheetHandler.GetLeaveBreakdown)
					r.Get("/contract-period", timesheetHandler.GetContractPeriod)
				})
			})
		})
	})

	return r
}
