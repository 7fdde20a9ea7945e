package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
	m "hdrcheck.dev/pkg/hdrcheck/internal/model"
)

// ReportFileName is the name of the persisted check report inside the reports directory.
const ReportFileName = "report.yaml"

// ErrNoReport is returned by LoadReport when nothing has been saved yet.
var ErrNoReport = errors.New("no saved report")

// ReportStore persists check reports between runs.
type ReportStore interface {
	SaveReport(dir m.Path, report m.Report) error
	LoadReport(dir m.Path) (m.Report, error)
}

type reportStore struct{}

// NewReportStore returns a ReportStore that writes YAML files.
func NewReportStore() ReportStore {
	return &reportStore{}
}

// SaveReport writes report to <dir>/report.yaml, creating dir if needed.
func (rs *reportStore) SaveReport(dir m.Path, report m.Report) error {
	if dir == "" {
		return fmt.Errorf("reports directory is empty")
	}

	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		return fmt.Errorf("create reports directory: %w", err)
	}

	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	path := filepath.Join(string(dir), ReportFileName)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}

// LoadReport reads the report saved under dir.
func (rs *reportStore) LoadReport(dir m.Path) (m.Report, error) {
	path := filepath.Join(string(dir), ReportFileName)

	// #nosec G304 - the reports directory is user configuration
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return m.Report{}, fmt.Errorf("%w in %s", ErrNoReport, dir)
		}

		return m.Report{}, fmt.Errorf("read report: %w", err)
	}

	var report m.Report
	if err := yaml.Unmarshal(data, &report); err != nil {
		return m.Report{}, fmt.Errorf("decode report %s: %w", path, err)
	}

	return report, nil
}
