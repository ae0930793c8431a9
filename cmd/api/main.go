package main

import (
	"fmt"
	"net/http"

	"github.com/cmlabs-hris/timekeeping-go/internal/config"
	appHTTP "github.com/cmlabs-hris/timekeeping-go/internal/handler/http"
	"github.com/cmlabs-hris/timekeeping-go/internal/pkg/database"
	"github.com/cmlabs-hris/timekeeping-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/timekeeping-go/internal/repository/postgresql"
	scheduleService "github.com/cmlabs-hris/timekeeping-go/internal/service/schedule"
	timeclockService "github.com/cmlabs-hris/timekeeping-go/internal/service/timeclock"
	timesheetService "github.com/cmlabs-hris/timekeeping-go/internal/service/timesheet"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	scanEventRepo := postgresql.NewScanEventRepository(db)
	workShiftRepo := postgresql.NewWorkShiftRepository(db)
	shiftAssignmentRepo := postgresql.NewShiftAssignmentRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	overtimeRequestRepo := postgresql.NewOvertimeRequestRepository(db)
	contractRepo := postgresql.NewContractRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	engine := timesheetService.NewEngine(timesheetService.Config{
		WorkedDayHours:        cfg.Engine.WorkedDayHours,
		SufficiencyTolerance:  cfg.Engine.SufficiencyTolerance,
		FallbackStandardHours: cfg.Engine.FallbackStandardHours,
		FallbackShiftStart:    cfg.Engine.FallbackShiftStart,
		FallbackShiftEnd:      cfg.Engine.FallbackShiftEnd,
	})

	timesheetSvc := timesheetService.NewTimesheetService(
		engine,
		scanEventRepo,
		workShiftRepo,
		shiftAssignmentRepo,
		leaveRequestRepo,
		overtimeRequestRepo,
		contractRepo,
	)
	timeclockSvc := timeclockService.NewTimeclockService(scanEventRepo)
	scheduleSvc := scheduleService.NewScheduleService(workShiftRepo)

	timesheetHandler := appHTTP.NewTimesheetHandler(timesheetSvc)
	timeclockHandler := appHTTP.NewTimeclockHandler(timeclockSvc)
	scheduleHandler := appHTTP.NewScheduleHandler(scheduleSvc)

	router := appHTTP.NewRouter(
		JWTService,
		timesheetHandler,
		timeclockHandler,
		scheduleHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
