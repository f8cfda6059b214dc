package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/fichaje-hq/fichaje-backend-go/internal/handler/http/middleware"
	"github.com/fichaje-hq/fichaje-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	scheduleHandler ScheduleHandler,
	attendanceHandler AttendanceHandler,
	vacationHandler VacationHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "fichaje-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
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
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/employees/{employeeID}", func(r chi.Router) {
				r.Route("/schedules", func(r chi.Router) {
					r.Get("/", scheduleHandler.ListFixedSchedules)
					r.Post("/", scheduleHandler.CreateFixedSchedule)
				})

				r.Get("/assignments", scheduleHandler.ListWeeklyAssignments)
				r.Get("/exceptions", scheduleHandler.ListDailyExceptions)

				r.Route("/effective-schedule", func(r chi.Router) {
					r.Get("/", scheduleHandler.GetEffectiveSchedule)
					r.Get("/range", scheduleHandler.GetEffectiveScheduleRange)
				})
				r.Get("/effective-breaks", scheduleHandler.GetEffectiveBreaks)

				r.Post("/planify-year", scheduleHandler.PlanifyYear)
				r.Get("/conflicts", scheduleHandler.ValidateScheduleConflicts)
				r.Get("/stats", scheduleHandler.GetSchedulingStats)
				r.Get("/break-report", scheduleHandler.GetBreakReport)

				r.Get("/attendance", attendanceHandler.ListRecords)
				r.Get("/vacations", vacationHandler.ListByEmployee)
			})

			r.Route("/schedules/{id}", func(r chi.Router) {
				r.Put("/", scheduleHandler.UpdateFixedSchedule)
				r.Delete("/", scheduleHandler.DeleteFixedSchedule)
			})

			r.Route("/templates", func(r chi.Router) {
				r.Get("/", scheduleHandler.ListTemplates)
				r.Post("/", scheduleHandler.CreateTemplate)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", scheduleHandler.GetTemplate)
					r.Put("/", scheduleHandler.UpdateTemplate)
					r.Delete("/", scheduleHandler.DeleteTemplate)
					r.Post("/days", scheduleHandler.CreateTemplateDay)
				})
			})

			r.Route("/template-days/{id}", func(r chi.Router) {
				r.Put("/", scheduleHandler.UpdateTemplateDay)
				r.Delete("/", scheduleHandler.DeleteTemplateDay)
				r.Post("/apply-breaks", scheduleHandler.ApplyTemplateBreaks)
			})

			r.Route("/assignments", func(r chi.Router) {
				r.Post("/", scheduleHandler.CreateWeeklyAssignment)
				r.Delete("/{id}", scheduleHandler.DeleteWeeklyAssignment)
			})

			r.Route("/exceptions", func(r chi.Router) {
				r.Post("/", scheduleHandler.CreateDailyException)
				r.Route("/{id}", func(r chi.Router) {
					r.Put("/", scheduleHandler.UpdateDailyException)
					r.Delete("/", scheduleHandler.DeleteDailyException)
					r.Post("/approve", scheduleHandler.ApproveDailyException)
				})
			})

			r.Route("/breaks", func(r chi.Router) {
				r.Post("/", scheduleHandler.CreateBreak)
				r.Route("/{id}", func(r chi.Router) {
					r.Put("/", scheduleHandler.UpdateBreak)
					r.Delete("/", scheduleHandler.DeleteBreak)
				})
				r.Route("/parent/{parentType}/{parentID}", func(r chi.Router) {
					r.Get("/", scheduleHandler.ListBreaksForParent)
					r.Get("/validate", scheduleHandler.ValidateParentBreaks)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/check-in", attendanceHandler.CheckIn)
				r.Post("/check-out", attendanceHandler.CheckOut)
			})

			r.Route("/vacations", func(r chi.Router) {
				r.Post("/", vacationHandler.Create)
				r.Post("/{id}/approve", vacationHandler.Approve)
				r.Post("/{id}/reject", vacationHandler.Reject)
			})
		})
	})
	return r
}
