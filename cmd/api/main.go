package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/peopledesk/hris-backend-go/internal/config"
	appHTTP "github.com/peopledesk/hris-backend-go/internal/handler/http"
	"github.com/peopledesk/hris-backend-go/internal/pkg/cron"
	"github.com/peopledesk/hris-backend-go/internal/pkg/database"
	"github.com/peopledesk/hris-backend-go/internal/pkg/jwt"
	"github.com/peopledesk/hris-backend-go/internal/pkg/oauth"
	"github.com/peopledesk/hris-backend-go/internal/repository/postgresql"
	attendanceService "github.com/peopledesk/hris-backend-go/internal/service/attendance"
	auditService "github.com/peopledesk/hris-backend-go/internal/service/audit"
	authService "github.com/peopledesk/hris-backend-go/internal/service/auth"
	employeeService "github.com/peopledesk/hris-backend-go/internal/service/employee"
	eventService "github.com/peopledesk/hris-backend-go/internal/service/event"
	leaveService "github.com/peopledesk/hris-backend-go/internal/service/leave"
	masterService "github.com/peopledesk/hris-backend-go/internal/service/master"
	recruitmentService "github.com/peopledesk/hris-backend-go/internal/service/recruitment"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	// Repositories
	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	positionRepo := postgresql.NewPositionRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveTypeRepo := postgresql.NewLeaveTypeRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	jobOpeningRepo := postgresql.NewJobOpeningRepository(db)
	applicantRepo := postgresql.NewApplicantRepository(db)
	interviewRepo := postgresql.NewInterviewRepository(db)
	eventRepo := postgresql.NewEventRepository(db)
	auditLogRepo := postgresql.NewAuditLogRepository(db)
	loginAttemptRepo := postgresql.NewLoginAttemptRepository(db)

	// Infrastructure services
	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleSvc := oauth.NewGoogleService(
		cfg.OAuth2Google.ClientID,
		cfg.OAuth2Google.ClientSecret,
		cfg.OAuth2Google.RedirectURL,
		cfg.OAuth2Google.Scopes,
	)

	// Domain services
	auditSvc := auditService.NewAuditService(auditLogRepo)
	authSvc := authService.NewAuthService(userRepo, loginAttemptRepo, jwtSvc, googleSvc, auditSvc, cfg.GoogleLoginEnabled())
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, departmentRepo, positionRepo, auditSvc)
	masterSvc := masterService.NewMasterService(departmentRepo, positionRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, leaveRequestRepo, auditSvc)
	leaveSvc := leaveService.NewLeaveService(leaveTypeRepo, leaveRequestRepo, employeeRepo, auditSvc)
	recruitmentSvc := recruitmentService.NewRecruitmentService(db, jobOpeningRepo, applicantRepo, interviewRepo, employeeRepo, auditSvc)
	eventSvc := eventService.NewEventService(eventRepo, auditSvc)

	// Background maintenance
	scheduler := cron.NewScheduler()
	cron.RegisterAttendanceJobs(scheduler, attendanceRepo, 16*time.Hour)
	scheduler.AddJob("prune_revoked_tokens", time.Hour, func(ctx context.Context) error {
		jwtSvc.PruneRevoked(time.Now())
		return nil
	})
	scheduler.Start()
	defer scheduler.Stop()

	handlers := appHTTP.Handlers{
		Auth:        appHTTP.NewAuthHandler(authSvc, jwtSvc),
		Employee:    appHTTP.NewEmployeeHandler(employeeSvc),
		Master:      appHTTP.NewMasterHandler(masterSvc),
		Attendance:  appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:       appHTTP.NewLeaveHandler(leaveSvc),
		Recruitment: appHTTP.NewRecruitmentHandler(recruitmentSvc),
		Event:       appHTTP.NewEventHandler(eventSvc),
		Audit:       appHTTP.NewAuditHandler(auditSvc),
	}

	router := appHTTP.NewRouter(jwtSvc, handlers, cfg.App.FrontendURL, cfg.App.Env)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	log.Println("Listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server error: ", err)
	}
}
