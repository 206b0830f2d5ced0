package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/punchclock-hq/punchclock-backend/internal/config"
	appHTTP "github.com/punchclock-hq/punchclock-backend/internal/handler/http"
	"github.com/punchclock-hq/punchclock-backend/internal/pkg/cron"
	"github.com/punchclock-hq/punchclock-backend/internal/pkg/database"
	"github.com/punchclock-hq/punchclock-backend/internal/pkg/jwt"
	"github.com/punchclock-hq/punchclock-backend/internal/repository/postgresql"
	authService "github.com/punchclock-hq/punchclock-backend/internal/service/auth"
	employeeService "github.com/punchclock-hq/punchclock-backend/internal/service/employee"
	holidayService "github.com/punchclock-hq/punchclock-backend/internal/service/holiday"
	punchlogService "github.com/punchclock-hq/punchclock-backend/internal/service/punchlog"
	timeclockService "github.com/punchclock-hq/punchclock-backend/internal/service/timeclock"
	timesheetService "github.com/punchclock-hq/punchclock-backend/internal/service/timesheet"
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
	defer db.Close()

	loc := cfg.Location()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	punchLogRepo := postgresql.NewPunchLogRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	userRepo := postgresql.NewUserRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	authSvc := authService.NewAuthService(userRepo, JWTService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	timeclockSvc := timeclockService.NewTimeclockService(employeeRepo, punchLogRepo, loc)
	timesheetSvc := timesheetService.NewTimesheetService(employeeRepo, punchLogRepo, loc)
	punchlogSvc := punchlogService.NewPunchLogService(employeeRepo, punchLogRepo, loc)
	holidaySvc := holidayService.NewHolidayService(holidayRepo, employeeRepo)

	authHandler := appHTTP.NewAuthHandler(JWTService, authSvc)
	timeclockHandler := appHTTP.NewTimeclockHandler(timeclockSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	timesheetHandler := appHTTP.NewTimesheetHandler(timesheetSvc)
	punchLogHandler := appHTTP.NewPunchLogHandler(punchlogSvc)
	holidayHandler := appHTTP.NewHolidayHandler(holidaySvc)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			FrontendURL: cfg.App.FrontendURL,
			Env:         cfg.App.Env,
		},
		JWTService,
		authHandler,
		timeclockHandler,
		employeeHandler,
		timesheetHandler,
		punchLogHandler,
		holidayHandler,
	)

	scheduler := cron.NewScheduler()
	cron.RegisterEarningsJob(scheduler, timesheetSvc, cfg.App.EarningsRefreshInterval)
	scheduler.Start()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-stop
		scheduler.Stop()
		os.Exit(0)
	}()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
