package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	m "jsreduce.dev/pkg/jsreduce/internal/model"
)

const reportSuffix = ".report.yaml"

// ReportStore persists minimization reports as one YAML file per testcase.
type ReportStore interface {
	SaveReports(ctx context.Context, dir m.Path, reports []m.Report) error
	LoadReports(ctx context.Context, dir m.Path) ([]m.Report, error)
}

type reportStore struct {
	fs SourceFSAdapter
}

// NewReportStore returns a ReportStore writing through fs.
func NewReportStore(fs SourceFSAdapter) ReportStore {
	return &reportStore{fs: fs}
}

// ReportFileName returns the file name a report is stored under.
func ReportFileName(report m.Report) string {
	base := strings.TrimSuffix(filepath.Base(string(report.Testcase)), filepath.Ext(string(report.Testcase)))

	hash := report.Hash
	if len(hash) > 8 {
		hash = hash[:8]
	}

	if hash == "" {
		return base + reportSuffix
	}

	return base + "-" + hash + reportSuffix
}

func (s *reportStore) SaveReports(ctx context.Context, dir m.Path, reports []m.Report) error {
	if err := s.fs.MkdirAll(ctx, dir); err != nil {
		slog.Error("Failed to create reports dir", "dir", dir, "error", err)
		return fmt.Errorf("failed to create reports dir: %w", err)
	}

	for _, report := range reports {
		data, err := yaml.Marshal(report)
		if err != nil {
			return fmt.Errorf("failed to encode report for %s: %w", report.Testcase, err)
		}

		path := s.fs.JoinPath(ctx, string(dir), ReportFileName(report))
		if err := s.fs.WriteFile(ctx, path, data, 0o600); err != nil {
			slog.Error("Failed to write report", "path", path, "error", err)
			return fmt.Errorf("failed to write report %s: %w", path, err)
		}
	}

	return nil
}

func (s *reportStore) LoadReports(ctx context.Context, dir m.Path) ([]m.Report, error) {
	var reports []m.Report

	err := s.fs.Walk(ctx, dir, false, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() || !strings.HasSuffix(path, reportSuffix) {
			return nil
		}

		data, err := s.fs.ReadFile(ctx, m.Path(path))
		if err != nil {
			return fmt.Errorf("failed to read report %s: %w", path, err)
		}

		var report m.Report
		if err := yaml.Unmarshal(data, &report); err != nil {
			return fmt.Errorf("failed to decode report %s: %w", path, err)
		}

		reports = append(reports, report)

		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(reports, func(i, j int) bool { return reports[i].Testcase < reports[j].Testcase })

	return reports, nil
}
