package apperror

const (
	// Input errors
	CodeInvalidCycle  = "INVALID_CYCLE"
	CodeInvalidPeriod = "INVALID_PERIOD"
	CodeInvalidInput  = "INVALID_INPUT"

	// Configuration errors
	CodeInvalidSettings = "INVALID_SETTINGS"

	// Infrastructure errors
	CodeStoreFailure  = "STORE_FAILURE"
	CodeInternalError = "INTERNAL_ERROR"
)
