package adapter

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	m "sabot.dev/pkg/sabot/internal/model"
)

// ReportStore persists batch mutation reports as a yaml manifest.
type ReportStore interface {
	SaveReports(path m.Path, reports []m.PatchReport) error
	LoadReports(path m.Path) ([]m.PatchReport, error)
}

type yamlReportStore struct{}

// NewReportStore creates the yaml-backed ReportStore.
func NewReportStore() ReportStore {
	return &yamlReportStore{}
}

// SaveReports marshals the reports and writes them, creating the parent
// directory first.
func (s *yamlReportStore) SaveReports(path m.Path, reports []m.PatchReport) error {
	data, err := yaml.Marshal(reports)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(string(path)); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	return os.WriteFile(string(path), data, 0o644)
}

// LoadReports reads a previously written manifest.
func (s *yamlReportStore) LoadReports(path m.Path) ([]m.PatchReport, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return nil, err
	}

	var reports []m.PatchReport
	if err := yaml.Unmarshal(data, &reports); err != nil {
		return nil, err
	}

	return reports, nil
}
