package main

import (
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/toluwaf/PayrollManagement-sub000/internal/app"
)

func main() {
	_ = godotenv.Load()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	if err := app.RunPayroll(); err != nil {
		logger.Fatal("payroll run failed", zap.Error(err))
	}
}
