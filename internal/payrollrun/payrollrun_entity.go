package payrollrun

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/toluwaf/PayrollManagement-sub000/internal/cycle"
	"github.com/toluwaf/PayrollManagement-sub000/internal/payslip"
)

// RunRequest describes one batch computation: every employee in the
// stores, one cycle and period, one calculation date.
type RunRequest struct {
	CycleType cycle.Type
	Period    string
	AsOf      time.Time
}

// Failure records one employee whose computation failed. A failure
// never aborts the run.
type Failure struct {
	EmployeeID string `json:"employeeId"`
	Reason     string `json:"reason"`
}

// RunSummary is the aggregate outcome of one run. Results keep the
// employee store's ordering regardless of computation order.
type RunSummary struct {
	RunID         string     `json:"runId"`
	Period        string     `json:"period"`
	CycleType     cycle.Type `json:"cycleType"`
	EmployeeCount int        `json:"employeeCount"`
	Succeeded     int        `json:"succeeded"`

	TotalGross            decimal.Decimal `json:"totalGross"`
	TotalDeductions       decimal.Decimal `json:"totalDeductions"`
	TotalNet              decimal.Decimal `json:"totalNet"`
	EmployerContributions decimal.Decimal `json:"employerContributions"`

	Results  []payslip.Result `json:"results"`
	Failures []Failure        `json:"failures,omitempty"`

	StartedAt   time.Time `json:"startedAt"`
	CompletedAt time.Time `json:"completedAt"`
}
