package main

import (
	"fmt"
	"net/http"

	"github.com/pontohr/ponto-backend-go/internal/config"
	"github.com/pontohr/ponto-backend-go/internal/domain/payroll"
	appHTTP "github.com/pontohr/ponto-backend-go/internal/handler/http"
	"github.com/pontohr/ponto-backend-go/internal/pkg/database"
	"github.com/pontohr/ponto-backend-go/internal/pkg/jwt"
	"github.com/pontohr/ponto-backend-go/internal/repository/postgresql"
	authService "github.com/pontohr/ponto-backend-go/internal/service/auth"
	employeeService "github.com/pontohr/ponto-backend-go/internal/service/employee"
	payrollService "github.com/pontohr/ponto-backend-go/internal/service/payroll"
	punchService "github.com/pontohr/ponto-backend-go/internal/service/punch"
	timesheetService "github.com/pontohr/ponto-backend-go/internal/service/timesheet"
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

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	punchRepo := postgresql.NewPunchRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	policy := payroll.Policy{
		StandardShift:       cfg.Payroll.StandardShift,
		WorkingDaysPerMonth: cfg.Payroll.WorkingDaysPerMonth,
		OvertimeMultiplier:  cfg.Payroll.OvertimeMultiplier,
		INSSRate:            cfg.Payroll.INSSRate,
		TransportRate:       cfg.Payroll.TransportRate,
		FGTSRate:            cfg.Payroll.FGTSRate,
		FGTSPenaltyRate:     cfg.Payroll.FGTSPenaltyRate,
	}

	authSvc := authService.NewAuthService(db, userRepo, employeeRepo, JWTService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	punchSvc := punchService.NewPunchService(punchRepo, employeeRepo)
	timesheetSvc := timesheetService.NewTimesheetService(punchRepo, employeeRepo, policy.StandardShift)
	payrollSvc := payrollService.NewPayrollService(punchRepo, employeeRepo, policy)

	authHandler := appHTTP.NewAuthHandler(JWTService, authSvc)
	punchHandler := appHTTP.NewPunchHandler(punchSvc, timesheetSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		punchHandler,
		employeeHandler,
		payrollHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
