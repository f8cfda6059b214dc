package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/fichaje-hq/fichaje-backend-go/internal/config"
	appHTTP "github.com/fichaje-hq/fichaje-backend-go/internal/handler/http"
	"github.com/fichaje-hq/fichaje-backend-go/internal/pkg/database"
	"github.com/fichaje-hq/fichaje-backend-go/internal/pkg/jwt"
	"github.com/fichaje-hq/fichaje-backend-go/internal/repository/postgresql"
	attendanceService "github.com/fichaje-hq/fichaje-backend-go/internal/service/attendance"
	scheduleService "github.com/fichaje-hq/fichaje-backend-go/internal/service/schedule"
	vacationService "github.com/fichaje-hq/fichaje-backend-go/internal/service/vacation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), int32(cfg.Database.MaxConns), int32(cfg.Database.MinConns))
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	fixedScheduleRepo := postgresql.NewFixedScheduleRepository(db)
	templateRepo := postgresql.NewTemplateRepository(db)
	templateDayRepo := postgresql.NewTemplateDayRepository(db)
	assignmentRepo := postgresql.NewWeeklyAssignmentRepository(db)
	exceptionRepo := postgresql.NewDailyExceptionRepository(db)
	breakRepo := postgresql.NewBreakRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	vacationRepo := postgresql.NewVacationRepository(db)
	txRunner := postgresql.NewTxRunner(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret)

	schedules := scheduleService.NewScheduleService(
		txRunner,
		fixedScheduleRepo,
		templateRepo,
		templateDayRepo,
		assignmentRepo,
		exceptionRepo,
		breakRepo,
	)
	attendances := attendanceService.NewAttendanceService(attendanceRepo, schedules)
	vacations := vacationService.NewVacationService(txRunner, vacationRepo, exceptionRepo)

	scheduleHandler := appHTTP.NewScheduleHandler(schedules)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendances)
	vacationHandler := appHTTP.NewVacationHandler(vacations)

	router := appHTTP.NewRouter(jwtService, scheduleHandler, attendanceHandler, vacationHandler)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	log.Println("Server listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server error: ", err)
	}
}
