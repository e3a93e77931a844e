package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/peopledesk/hris-backend-go/internal/domain/user"
	"github.com/peopledesk/hris-backend-go/internal/handler/http/middleware"
	"github.com/peopledesk/hris-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth        AuthHandler
	Employee    EmployeeHandler
	Master      MasterHandler
	Attendance  AttendanceHandler
	Leave       LeaveHandler
	Recruitment RecruitmentHandler
	Event       EventHandler
	Audit       AuditHandler
}

func NewRouter(jwtService jwt.Service, h Handlers, frontendURL string, env string) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "peopledesk-hris"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
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
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.Refresh)
			r.Post("/logout", h.Auth.Logout)
			r.Get("/login/oauth/google", h.Auth.LoginWithGoogle)
			r.Get("/oauth/callback/google", h.Auth.OAuthCallbackGoogle)
		})

		// Everything below requires a valid access token.
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionEmployeeView)).Get("/", h.Employee.List)
				r.With(middleware.RequirePermission(user.PermissionEmployeeView)).Get("/{id}", h.Employee.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionEmployeeManage))
					r.Post("/", h.Employee.Create)
					r.Put("/{id}", h.Employee.Update)
					r.Post("/{id}/archive", h.Employee.Archive)
					r.Post("/{id}/unarchive", h.Employee.Unarchive)
				})
			})

			r.Route("/departments", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionEmployeeView)).Get("/", h.Master.ListDepartments)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionEmployeeManage))
					r.Post("/", h.Master.CreateDepartment)
					r.Put("/{id}", h.Master.UpdateDepartment)
					r.Delete("/{id}", h.Master.DeleteDepartment)
				})
			})

			r.Route("/positions", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionEmployeeView)).Get("/", h.Master.ListPositions)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionEmployeeManage))
					r.Post("/", h.Master.CreatePosition)
					r.Put("/{id}", h.Master.UpdatePosition)
					r.Delete("/{id}", h.Master.DeletePosition)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				// Anyone signed in may clock their own record.
				r.Post("/clock-in", h.Attendance.ClockIn)
				r.Post("/clock-out", h.Attendance.ClockOut)

				r.With(middleware.RequirePermission(user.PermissionAttendanceView)).
					Get("/daily", h.Attendance.DailyReport)
				r.With(middleware.RequirePermission(user.PermissionAttendanceView)).
					Get("/history/{employeeID}", h.Attendance.History)
			})

			r.Route("/leave", func(r chi.Router) {
				r.Route("/types", func(r chi.Router) {
					r.With(middleware.RequirePermission(user.PermissionLeaveView)).Get("/", h.Leave.ListTypes)
					r.With(middleware.RequirePermission(user.PermissionLeaveManage)).Post("/", h.Leave.CreateType)
				})

				r.Route("/requests", func(r chi.Router) {
					r.With(middleware.RequirePermission(user.PermissionLeaveView)).Get("/", h.Leave.List)
					r.With(middleware.RequirePermission(user.PermissionLeaveView)).Get("/{id}", h.Leave.Get)
					r.Post("/", h.Leave.CreateRequest)

					r.Group(func(r chi.Router) {
						r.Use(middleware.RequirePermission(user.PermissionLeaveManage))
						r.Post("/{id}/approve", h.Leave.Approve)
						r.Post("/{id}/reject", h.Leave.Reject)
					})
				})
			})

			r.Route("/recruitment", func(r chi.Router) {
				r.Route("/openings", func(r chi.Router) {
					r.With(middleware.RequirePermission(user.PermissionRecruitmentView)).Get("/", h.Recruitment.ListOpenings)

					r.Group(func(r chi.Router) {
						r.Use(middleware.RequirePermission(user.PermissionRecruitmentManage))
						r.Post("/", h.Recruitment.CreateOpening)
						r.Put("/{id}", h.Recruitment.UpdateOpening)
					})
				})

				r.Route("/applicants", func(r chi.Router) {
					r.With(middleware.RequirePermission(user.PermissionRecruitmentView)).Get("/", h.Recruitment.ListApplicants)
					r.With(middleware.RequirePermission(user.PermissionRecruitmentView)).Get("/{id}/interviews", h.Recruitment.ListInterviews)

					r.Group(func(r chi.Router) {
						r.Use(middleware.RequirePermission(user.PermissionRecruitmentManage))
						r.Post("/", h.Recruitment.CreateApplicant)
						r.Patch("/{id}/status", h.Recruitment.UpdateApplicantStatus)
						r.Post("/{id}/hire", h.Recruitment.Hire)
						r.Post("/{id}/interviews", h.Recruitment.ScheduleInterview)
					})
				})
			})

			r.Route("/events", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionRecruitmentView)).Get("/", h.Event.List)
				r.With(middleware.RequirePermission(user.PermissionRecruitmentView)).Get("/categories", h.Event.CategoryCounts)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionEventsManage))
					r.Post("/", h.Event.Create)
					r.Put("/{id}", h.Event.Update)
					r.Delete("/{id}", h.Event.Delete)
				})
			})

			r.With(middleware.RequirePermission(user.PermissionLogsView)).
				Get("/logs", h.Audit.List)
		})
	})

	return r
}
