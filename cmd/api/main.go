package main

import (
	"fmt"
	"net/http"

	"github.com/SakshiM24/Employee-Attendance-System/internal/config"
	appHTTP "github.com/SakshiM24/Employee-Attendance-System/internal/handler/http"
	"github.com/SakshiM24/Employee-Attendance-System/internal/pkg/database"
	"github.com/SakshiM24/Employee-Attendance-System/internal/pkg/jwt"
	"github.com/SakshiM24/Employee-Attendance-System/internal/repository/postgresql"
	attendanceService "github.com/SakshiM24/Employee-Attendance-System/internal/service/attendance"
	serviceAuth "github.com/SakshiM24/Employee-Attendance-System/internal/service/auth"
	dashboardService "github.com/SakshiM24/Employee-Attendance-System/internal/service/dashboard"
	reportService "github.com/SakshiM24/Employee-Attendance-System/internal/service/report"
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

	userRepo := postgresql.NewUserRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	authService := serviceAuth.NewAuthService(db, userRepo, JWTService)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, userRepo)
	dashboardSvc := dashboardService.NewDashboardService(attendanceRepo, userRepo)
	reportSvc := reportService.NewReportService(attendanceRepo)

	authHandler := appHTTP.NewAuthHandler(authService)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc, reportSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc, attendanceSvc)

	router := appHTTP.NewRouter(
		cfg,
		JWTService,
		authHandler,
		attendanceHandler,
		dashboardHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
