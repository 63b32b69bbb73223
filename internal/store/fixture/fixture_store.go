// Package fixture backs the payroll run stores with JSON files. It is
// the batch-mode data source: employee snapshots and their period
// adjustments in one file, the settings snapshot in another.
package fixture

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/toluwaf/PayrollManagement-sub000/internal/adjustment"
	"github.com/toluwaf/PayrollManagement-sub000/internal/payslip"
	"github.com/toluwaf/PayrollManagement-sub000/internal/shared/apperror"
	"github.com/toluwaf/PayrollManagement-sub000/internal/tax"
)

type employeeRecord struct {
	payslip.EmployeeSnapshot
	// Adjustments uses the permissive DTO decoding so files written by
	// older exporters (flat loan amounts, bare overtime hours) load as-is.
	Adjustments *adjustment.SpecDTO `json:"adjustments,omitempty"`
}

// EmployeeStore serves snapshots loaded from a JSON array of employee
// records. It is immutable after load.
type EmployeeStore struct {
	snapshots   []payslip.EmployeeSnapshot
	adjustments map[string]adjustment.Spec
}

// LoadEmployeeStore reads and decodes the employee fixture file.
func LoadEmployeeStore(path string) (*EmployeeStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.CodeStoreFailure, "read employee fixture")
	}

	var records []employeeRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, apperror.Wrap(err, apperror.CodeStoreFailure, "decode employee fixture")
	}

	store := &EmployeeStore{
		snapshots:   make([]payslip.EmployeeSnapshot, 0, len(records)),
		adjustments: make(map[string]adjustment.Spec, len(records)),
	}
	for _, record := range records {
		store.snapshots = append(store.snapshots, record.EmployeeSnapshot)
		if record.Adjustments != nil {
			store.adjustments[record.EmployeeID] = record.Adjustments.ToSpec()
		}
	}
	return store, nil
}

func (s *EmployeeStore) ListEmployees(ctx context.Context) ([]payslip.EmployeeSnapshot, error) {
	out := make([]payslip.EmployeeSnapshot, len(s.snapshots))
	copy(out, s.snapshots)
	return out, nil
}

// AdjustmentsFor returns the employee's period adjustments, or the zero
// spec when the fixture carries none.
func (s *EmployeeStore) AdjustmentsFor(ctx context.Context, employeeID string) (adjustment.Spec, error) {
	return s.adjustments[employeeID], nil
}

// SettingsStore serves one settings snapshot loaded from a JSON file,
// validated at load time so a run never starts against a bad table.
type SettingsStore struct {
	settings tax.Settings
}

// LoadSettingsStore reads, decodes, and validates the settings file.
func LoadSettingsStore(path string) (*SettingsStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.CodeStoreFailure, "read settings fixture")
	}

	var settings tax.Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, apperror.Wrap(err, apperror.CodeStoreFailure, "decode settings fixture")
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &SettingsStore{settings: settings}, nil
}

// DefaultSettingsStore serves the built-in settings snapshot, for runs
// with no settings file.
func DefaultSettingsStore() *SettingsStore {
	return &SettingsStore{settings: tax.DefaultSettings()}
}

func (s *SettingsStore) Settings(ctx context.Context) (tax.Settings, error) {
	return s.settings, nil
}

// FileSink writes each result as pretty-printed JSON under dir, one
// file per employee named <runID>-<employeeID>.json.
type FileSink struct {
	dir string
}

func NewFileSink(dir string) (*FileSink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, apperror.Wrap(err, apperror.CodeStoreFailure, "create output directory")
	}
	return &FileSink{dir: dir}, nil
}

func (s *FileSink) Save(ctx context.Context, runID string, result payslip.Result) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return apperror.Wrap(err, apperror.CodeStoreFailure, "encode result")
	}
	path := filepath.Join(s.dir, fmt.Sprintf("%s-%s.json", runID, result.EmployeeID))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return apperror.Wrap(err, apperror.CodeStoreFailure, "write result")
	}
	return nil
}

// MemorySink collects results in memory, keyed by run ID.
type MemorySink struct {
	results map[string][]payslip.Result
}

func NewMemorySink() *MemorySink {
	return &MemorySink{results: make(map[string][]payslip.Result)}
}

func (s *MemorySink) Save(ctx context.Context, runID string, result payslip.Result) error {
	s.results[runID] = append(s.results[runID], result)
	return nil
}

// Results returns the results saved for one run, in save order.
func (s *MemorySink) Results(runID string) []payslip.Result {
	return s.results[runID]
}
