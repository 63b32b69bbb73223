package cycleerrors

import (
	"github.com/toluwaf/PayrollManagement-sub000/internal/shared/apperror"
)

var (
	ErrInvalidCycleType = apperror.New(
		apperror.CodeInvalidCycle,
		"unrecognized pay cycle type",
	)
	ErrInvalidPeriod = apperror.New(
		apperror.CodeInvalidPeriod,
		"malformed period for pay cycle",
	)
)
