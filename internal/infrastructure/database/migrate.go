package database

import (
	"embed"
	"errors"
	"fmt"

	"github.com/br70-Solution/voxia-app/internal/domain/entity"

	"github.com/golang-migrate/migrate/v4"
	pgxmigrate "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Models lists every table, parents before children.
func Models() []interface{} {
	return []interface{}{
		&entity.User{},
		&entity.Patient{},
		&entity.HearingAid{},
		&entity.Audiogram{},
		&entity.PatientDevice{},
		&entity.Appointment{},
		&entity.Invoice{},
		&entity.Expense{},
		&entity.StockItem{},
	}
}

// Migrate brings the schema up to date. PostgreSQL runs the versioned SQL
// migrations; SQLite is created from the models.
func Migrate(db *gorm.DB, log *logrus.Logger) error {
	if db.Dialector.Name() != DriverPostgres {
		if err := db.AutoMigrate(Models()...); err != nil {
			return fmt.Errorf("failed to auto migrate: %w", err)
		}
		return nil
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	driver, err := pgxmigrate.WithInstance(sqlDB, &pgxmigrate.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to open migrations: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "pgx5", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info("Database schema is up to date")
			return nil
		}
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	version, _, _ := m.Version()
	log.Infof("Database migrated to version %d", version)
	return nil
}
