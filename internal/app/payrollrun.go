package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/toluwaf/PayrollManagement-sub000/internal/cycle"
	"github.com/toluwaf/PayrollManagement-sub000/internal/payrollrun"
	"github.com/toluwaf/PayrollManagement-sub000/internal/store/fixture"
)

// RunPayroll wires the fixture stores to the run service from
// environment configuration and executes one batch run.
//
// Required: PAYROLL_EMPLOYEES_FILE, PAYROLL_PERIOD.
// Optional: PAYROLL_SETTINGS_FILE (built-in defaults when unset),
// PAYROLL_CYCLE (default monthly), PAYROLL_AS_OF (YYYY-MM-DD, default
// today), PAYROLL_OUTPUT_DIR (default ./payslips).
func RunPayroll() error {
	logger := zap.L().Named("app.payrollrun")

	employeesFile := os.Getenv("PAYROLL_EMPLOYEES_FILE")
	if employeesFile == "" {
		return fmt.Errorf("PAYROLL_EMPLOYEES_FILE is required")
	}
	period := os.Getenv("PAYROLL_PERIOD")
	if period == "" {
		return fmt.Errorf("PAYROLL_PERIOD is required")
	}

	cycleType := cycle.TypeMonthly
	if v := os.Getenv("PAYROLL_CYCLE"); v != "" {
		cycleType = cycle.Type(v)
	}

	asOf := time.Now().UTC()
	if v := os.Getenv("PAYROLL_AS_OF"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			return fmt.Errorf("PAYROLL_AS_OF: %w", err)
		}
		asOf = parsed
	}

	outputDir := os.Getenv("PAYROLL_OUTPUT_DIR")
	if outputDir == "" {
		outputDir = "payslips"
	}

	employees, err := fixture.LoadEmployeeStore(employeesFile)
	if err != nil {
		return err
	}

	settings := fixture.DefaultSettingsStore()
	if settingsFile := os.Getenv("PAYROLL_SETTINGS_FILE"); settingsFile != "" {
		settings, err = fixture.LoadSettingsStore(settingsFile)
		if err != nil {
			return err
		}
	}

	sink, err := fixture.NewFileSink(outputDir)
	if err != nil {
		return err
	}

	svc := payrollrun.NewService(employees, settings, sink)
	summary, err := svc.Run(context.Background(), payrollrun.RunRequest{
		CycleType: cycleType,
		Period:    period,
		AsOf:      asOf,
	})
	if err != nil {
		return err
	}

	logger.Info("run written",
		zap.String("run_id", summary.RunID),
		zap.String("output_dir", outputDir),
		zap.Int("succeeded", summary.Succeeded),
		zap.Int("failed", len(summary.Failures)),
		zap.String("total_gross", summary.TotalGross.String()),
		zap.String("total_net", summary.TotalNet.String()),
	)
	return nil
}
