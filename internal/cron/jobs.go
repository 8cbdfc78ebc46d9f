// Package cron runs the clinic's background jobs: the nightly workbook backup
// and the periodic low-stock check.
package cron

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/br70-Solution/voxia-app/config"
	"github.com/br70-Solution/voxia-app/internal/delivery/dto"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
)

const jobTimeout = 2 * time.Minute

// Exporter produces the full-data workbook.
type Exporter interface {
	Export(ctx context.Context) ([]byte, error)
}

// StockChecker lists the items at or below their minimum quantity.
type StockChecker interface {
	LowStock(ctx context.Context) ([]dto.StockItemResponse, error)
}

type Jobs struct {
	log       *logrus.Logger
	backup    config.BackupConfig
	stock     config.StockConfig
	exporter  Exporter
	checker   StockChecker
	scheduler *gocron.Scheduler
	now       func() time.Time
}

func NewJobs(log *logrus.Logger, backup config.BackupConfig, stock config.StockConfig, exporter Exporter, checker StockChecker) *Jobs {
	return &Jobs{
		log:       log,
		backup:    backup,
		stock:     stock,
		exporter:  exporter,
		checker:   checker,
		scheduler: gocron.NewScheduler(time.Local),
		now:       time.Now,
	}
}

// Start registers the enabled jobs and runs the scheduler in the background.
func (j *Jobs) Start() error {
	j.scheduler.SingletonModeAll()

	if j.backup.Enabled {
		_, err := j.scheduler.Every(1).Day().At(j.backup.At).Do(func() {
			if _, err := j.Backup(); err != nil {
				j.log.Warnf("Failed to write backup: %+v", err)
			}
		})
		if err != nil {
			return fmt.Errorf("failed to schedule backup at %q: %w", j.backup.At, err)
		}
	}

	if j.stock.AlertInterval > 0 {
		_, err := j.scheduler.Every(j.stock.AlertInterval).Do(func() {
			if _, err := j.CheckLowStock(); err != nil {
				j.log.Warnf("Failed to check stock levels: %+v", err)
			}
		})
		if err != nil {
			return fmt.Errorf("failed to schedule stock check: %w", err)
		}
	}

	j.scheduler.StartAsync()
	j.log.Infof("Background jobs started (%d scheduled)", len(j.scheduler.Jobs()))
	return nil
}

func (j *Jobs) Stop() {
	j.scheduler.Stop()
}

// Backup writes the export workbook into the backup directory and returns
// the file path.
func (j *Jobs) Backup() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	workbook, err := j.exporter.Export(ctx)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(j.backup.Dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	name := "voxia-backup-" + j.now().Format("20060102-150405") + ".xlsx"
	path := filepath.Join(j.backup.Dir, name)
	if err := os.WriteFile(path, workbook, 0o644); err != nil {
		return "", fmt.Errorf("failed to write backup: %w", err)
	}

	j.log.WithField("path", path).Info("Backup written")
	return path, nil
}

// CheckLowStock logs one warning per item needing a restock and returns
// how many there were.
func (j *Jobs) CheckLowStock() (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	items, err := j.checker.LowStock(ctx)
	if err != nil {
		return 0, err
	}

	for _, item := range items {
		j.log.WithFields(logrus.Fields{
			"id":          item.ID,
			"name":        item.Name,
			"quantity":    item.Quantity,
			"minQuantity": item.MinQuantity,
		}).Warn("Low stock")
	}
	return len(items), nil
}
