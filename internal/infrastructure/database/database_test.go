package database

import (
	"strings"
	"testing"

	"github.com/br70-Solution/voxia-app/config"

	"github.com/sirupsen/logrus/hooks/test"
)

func TestConnectionLogsToGivenLogger(t *testing.T) {
	log, hook := test.NewNullLogger()
	global := test.NewGlobal()
	defer global.Reset()

	db, err := NewConnection(config.DBConfig{Driver: DriverSQLite, Path: ":memory:"}, log, true)
	if err != nil {
		t.Fatalf("NewConnection: %v", err)
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}()
	if err := Migrate(db, log); err != nil {
		t.Fatalf("Migrate: %v", err)
	}

	opened, sql := false, false
	for _, entry := range hook.AllEntries() {
		if strings.Contains(entry.Message, "Successfully opened SQLite database") {
			opened = true
		}
		if strings.Contains(entry.Message, "CREATE TABLE") {
			sql = true
		}
	}
	if !opened {
		t.Fatalf("connection message not written to the given logger")
	}
	if !sql {
		t.Fatalf("verbose SQL not written to the given logger")
	}
	if n := len(global.AllEntries()); n != 0 {
		t.Fatalf("%d entries written to the standard logger", n)
	}
}

func TestUnknownDriver(t *testing.T) {
	log, _ := test.NewNullLogger()
	if _, err := NewConnection(config.DBConfig{Driver: "oracle"}, log, false); err == nil {
		t.Fatalf("unknown driver accepted")
	}
}

func TestModelsCoverEveryTable(t *testing.T) {
	if n := len(Models()); n != 9 {
		t.Fatalf("Models() = %d tables, want 9", n)
	}
}
