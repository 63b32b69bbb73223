package taxerrors

import (
	"github.com/toluwaf/PayrollManagement-sub000/internal/shared/apperror"
)

var (
	ErrInvalidSettings = apperror.New(
		apperror.CodeInvalidSettings,
		"tax settings failed validation",
	)
	ErrInvalidBracketTable = apperror.New(
		apperror.CodeInvalidSettings,
		"tax brackets must tile [0, inf) with no gap or overlap",
	)
	ErrInvalidRate = apperror.New(
		apperror.CodeInvalidSettings,
		"statutory rates must be fractions between 0 and 1",
	)
	ErrInvalidRelief = apperror.New(
		apperror.CodeInvalidSettings,
		"relief configuration values must be non-negative",
	)
)
