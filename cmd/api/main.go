package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gulfhr/payroll-backend-go/internal/config"
	appHTTP "github.com/gulfhr/payroll-backend-go/internal/handler/http"
	"github.com/gulfhr/payroll-backend-go/internal/pkg/cron"
	"github.com/gulfhr/payroll-backend-go/internal/pkg/database"
	"github.com/gulfhr/payroll-backend-go/internal/pkg/jwt"
	"github.com/gulfhr/payroll-backend-go/internal/repository/postgresql"
	attendanceService "github.com/gulfhr/payroll-backend-go/internal/service/attendance"
	employeeService "github.com/gulfhr/payroll-backend-go/internal/service/employee"
	indemnityService "github.com/gulfhr/payroll-backend-go/internal/service/indemnity"
	leaveService "github.com/gulfhr/payroll-backend-go/internal/service/leave"
	payrollService "github.com/gulfhr/payroll-backend-go/internal/service/payroll"
	reportService "github.com/gulfhr/payroll-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	indemnityRepo := postgresql.NewIndemnityRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRepo)
	payrollSvc := payrollService.NewPayrollService(db, payrollRepo, employeeRepo, attendanceRepo)
	indemnitySvc := indemnityService.NewIndemnityService(indemnityRepo, employeeRepo, nil)
	reportSvc := reportService.NewReportService(employeeRepo, attendanceRepo, payrollRepo, nil)

	scheduler := cron.NewScheduler()
	if err := cron.RegisterIndemnityRecalc(scheduler, indemnitySvc, cfg.Cron.IndemnityRecalcInterval); err != nil {
		log.Fatal("Failed to register indemnity recalc job: ", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(cfg, jwtService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(jwtService, cfg.JWT.APIKey),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		Payroll:    appHTTP.NewPayrollHandler(payrollSvc),
		Indemnity:  appHTTP.NewIndemnityHandler(indemnitySvc),
		Report:     appHTTP.NewReportHandler(reportSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
