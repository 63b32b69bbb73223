package payrollrun

import (
	"context"
	"runtime"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/toluwaf/PayrollManagement-sub000/internal/adjustment"
	"github.com/toluwaf/PayrollManagement-sub000/internal/payslip"
	"github.com/toluwaf/PayrollManagement-sub000/internal/tax"
)

// EmployeeStore supplies the employee snapshots and their pending
// period adjustments.
type EmployeeStore interface {
	ListEmployees(ctx context.Context) ([]payslip.EmployeeSnapshot, error)
	AdjustmentsFor(ctx context.Context, employeeID string) (adjustment.Spec, error)
}

// SettingsStore supplies the settings snapshot a run computes against.
type SettingsStore interface {
	Settings(ctx context.Context) (tax.Settings, error)
}

// ResultSink receives the computed payslip results. Save is called
// sequentially in employee-store order.
type ResultSink interface {
	Save(ctx context.Context, runID string, result payslip.Result) error
}

type Service interface {
	Run(ctx context.Context, req RunRequest) (RunSummary, error)
}

type service struct {
	employees   EmployeeStore
	settings    SettingsStore
	sink        ResultSink
	parallelism int
	log         *zap.Logger
}

func NewService(employees EmployeeStore, settings SettingsStore, sink ResultSink) Service {
	return &service{
		employees:   employees,
		settings:    settings,
		sink:        sink,
		parallelism: runtime.GOMAXPROCS(0),
		log:         zap.L().Named("payrollrun"),
	}
}

// Run computes one payslip per employee. Computations fan out across a
// bounded worker group; a failing employee is recorded and logged but
// never aborts the run. Store or sink errors do abort it.
func (s *service) Run(ctx context.Context, req RunRequest) (RunSummary, error) {
	startedAt := time.Now().UTC()
	runID := uuid.NewString()

	settings, err := s.settings.Settings(ctx)
	if err != nil {
		return RunSummary{}, err
	}
	snapshots, err := s.employees.ListEmployees(ctx)
	if err != nil {
		return RunSummary{}, err
	}

	assembler, err := payslip.NewAssembler(settings, payslip.RunContext{
		CycleType:     req.CycleType,
		Period:        req.Period,
		EmployeeCount: len(snapshots),
		AsOf:          req.AsOf,
	})
	if err != nil {
		return RunSummary{}, err
	}

	s.log.Info("starting payroll run",
		zap.String("run_id", runID),
		zap.String("period", req.Period),
		zap.String("cycle", string(req.CycleType)),
		zap.Int("employees", len(snapshots)),
	)

	// Slots are per-index so workers never share state; ordering is
	// re-established from the snapshot list after the group finishes.
	type slot struct {
		result  payslip.Result
		failure *Failure
	}
	slots := make([]slot, len(snapshots))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.parallelism)
	for i, snapshot := range snapshots {
		i, snapshot := i, snapshot
		g.Go(func() error {
			spec, err := s.employees.AdjustmentsFor(gctx, snapshot.EmployeeID)
			if err != nil {
				return err
			}
			result, err := assembler.Compute(snapshot, spec)
			if err != nil {
				s.log.Warn("employee computation failed",
					zap.String("run_id", runID),
					zap.String("employee_id", snapshot.EmployeeID),
					zap.Error(err),
				)
				slots[i] = slot{failure: &Failure{
					EmployeeID: snapshot.EmployeeID,
					Reason:     err.Error(),
				}}
				return nil
			}
			slots[i] = slot{result: result}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return RunSummary{}, err
	}

	summary := RunSummary{
		RunID:         runID,
		Period:        req.Period,
		CycleType:     req.CycleType,
		EmployeeCount: len(snapshots),
		StartedAt:     startedAt,
	}
	for _, sl := range slots {
		if sl.failure != nil {
			summary.Failures = append(summary.Failures, *sl.failure)
			continue
		}
		if err := s.sink.Save(ctx, runID, sl.result); err != nil {
			return RunSummary{}, err
		}
		summary.Results = append(summary.Results, sl.result)
		summary.Succeeded++
		summary.TotalGross = summary.TotalGross.Add(sl.result.GrossSalary)
		summary.TotalDeductions = summary.TotalDeductions.Add(sl.result.TotalDeductions)
		summary.TotalNet = summary.TotalNet.Add(sl.result.NetSalary)
		summary.EmployerContributions = summary.EmployerContributions.Add(sl.result.EmployerContributions)
	}
	summary.CompletedAt = time.Now().UTC()

	s.log.Info("payroll run complete",
		zap.String("run_id", runID),
		zap.Int("succeeded", summary.Succeeded),
		zap.Int("failed", len(summary.Failures)),
		zap.String("total_net", summary.TotalNet.String()),
	)
	return summary, nil
}
