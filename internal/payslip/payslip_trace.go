package payslip

import (
	"github.com/shopspring/decimal"
)

// Trace is an optional structured record of the calculation stages,
// returned alongside the result instead of written to a hidden log so
// the computation stays a pure function.
type Trace struct {
	EmployeeID string      `json:"employeeId"`
	Period     string      `json:"period"`
	Steps      []TraceStep `json:"steps"`
}

// TraceStep is one recorded stage outcome.
type TraceStep struct {
	Stage  string          `json:"stage"`
	Detail string          `json:"detail"`
	Amount decimal.Decimal `json:"amount"`
}

func (t *Trace) add(stage, detail string, amount decimal.Decimal) {
	if t == nil {
		return
	}
	t.Steps = append(t.Steps, TraceStep{Stage: stage, Detail: detail, Amount: amount})
}
