package cron

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/br70-Solution/voxia-app/config"
	"github.com/br70-Solution/voxia-app/internal/delivery/dto"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

type stubExporter struct {
	data []byte
	err  error
}

func (s stubExporter) Export(ctx context.Context) ([]byte, error) {
	return s.data, s.err
}

type stubChecker struct {
	items []dto.StockItemResponse
	err   error
}

func (s stubChecker) LowStock(ctx context.Context) ([]dto.StockItemResponse, error) {
	return s.items, s.err
}

func newTestJobs(backup config.BackupConfig, stock config.StockConfig, exporter Exporter, checker StockChecker) (*Jobs, *test.Hook) {
	log, hook := test.NewNullLogger()
	return NewJobs(log, backup, stock, exporter, checker), hook
}

func TestBackupWritesWorkbook(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "backups")
	jobs, _ := newTestJobs(config.BackupConfig{Enabled: true, At: "02:00", Dir: dir}, config.StockConfig{},
		stubExporter{data: []byte("PK-workbook")}, stubChecker{})
	jobs.now = func() time.Time { return time.Date(2024, time.May, 15, 2, 0, 0, 0, time.UTC) }

	path, err := jobs.Backup()
	if err != nil {
		t.Fatalf("Backup: %v", err)
	}
	if want := filepath.Join(dir, "voxia-backup-20240515-020000.xlsx"); path != want {
		t.Fatalf("path = %q, want %q", path, want)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "PK-workbook" {
		t.Fatalf("backup content = %q", data)
	}
}

func TestBackupReportsExportFailure(t *testing.T) {
	boom := errors.New("boom")
	dir := filepath.Join(t.TempDir(), "backups")
	jobs, _ := newTestJobs(config.BackupConfig{Dir: dir}, config.StockConfig{}, stubExporter{err: boom}, stubChecker{})

	if _, err := jobs.Backup(); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Fatalf("backup directory created despite the failed export")
	}
}

func TestCheckLowStockLogsEachItem(t *testing.T) {
	checker := stubChecker{items: []dto.StockItemResponse{
		{ID: "STK-003", Name: "Piles 13", Quantity: 2, MinQuantity: 5},
		{ID: "STK-007", Name: "Dômes", Quantity: 0, MinQuantity: 1},
	}}
	jobs, hook := newTestJobs(config.BackupConfig{}, config.StockConfig{}, stubExporter{}, checker)

	n, err := jobs.CheckLowStock()
	if err != nil {
		t.Fatalf("CheckLowStock: %v", err)
	}
	if n != 2 {
		t.Fatalf("n = %d, want 2", n)
	}

	var warned []string
	for _, entry := range hook.AllEntries() {
		if entry.Level == logrus.WarnLevel && entry.Message == "Low stock" {
			warned = append(warned, entry.Data["id"].(string))
		}
	}
	if len(warned) != 2 || warned[0] != "STK-003" || warned[1] != "STK-007" {
		t.Fatalf("warnings = %v", warned)
	}
}

func TestCheckLowStockReportsFailure(t *testing.T) {
	boom := errors.New("boom")
	jobs, hook := newTestJobs(config.BackupConfig{}, config.StockConfig{}, stubExporter{}, stubChecker{err: boom})

	if _, err := jobs.CheckLowStock(); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
	if len(hook.AllEntries()) != 0 {
		t.Fatalf("unexpected log entries: %d", len(hook.AllEntries()))
	}
}

func TestStartSchedulesEnabledJobs(t *testing.T) {
	cases := []struct {
		name   string
		backup config.BackupConfig
		stock  config.StockConfig
		want   int
	}{
		{"none", config.BackupConfig{}, config.StockConfig{}, 0},
		{"backup", config.BackupConfig{Enabled: true, At: "02:00", Dir: t.TempDir()}, config.StockConfig{}, 1},
		{"both", config.BackupConfig{Enabled: true, At: "02:00", Dir: t.TempDir()}, config.StockConfig{AlertInterval: time.Hour}, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			jobs, _ := newTestJobs(tc.backup, tc.stock, stubExporter{}, stubChecker{})
			if err := jobs.Start(); err != nil {
				t.Fatalf("Start: %v", err)
			}
			defer jobs.Stop()

			if got := len(jobs.scheduler.Jobs()); got != tc.want {
				t.Fatalf("%d jobs scheduled, want %d", got, tc.want)
			}
		})
	}
}

func TestStartRejectsBadBackupTime(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	jobs := NewJobs(log, config.BackupConfig{Enabled: true, At: "25h"}, config.StockConfig{}, stubExporter{}, stubChecker{})

	if err := jobs.Start(); err == nil {
		jobs.Stop()
		t.Fatalf("Start accepted an invalid backup time")
	}
}
