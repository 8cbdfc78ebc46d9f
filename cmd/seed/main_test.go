package main

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/br70-Solution/voxia-app/cmd/bootstrap"
	"github.com/br70-Solution/voxia-app/config"
	"github.com/br70-Solution/voxia-app/internal/fixtures"
	"github.com/br70-Solution/voxia-app/internal/infrastructure/cache"
	"github.com/br70-Solution/voxia-app/internal/infrastructure/database"
	"github.com/br70-Solution/voxia-app/pkg/client"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"golang.org/x/crypto/bcrypt"
)

func newServer(t *testing.T, log *logrus.Logger) *httptest.Server {
	t.Helper()

	cfg := &config.Config{
		DB:    config.DBConfig{Driver: database.DriverSQLite, Path: ":memory:"},
		Redis: config.RedisConfig{CacheTTL: time.Minute},
		JWT:   config.JWTConfig{Secret: "test-secret", AccessExpiry: time.Minute, RefreshExpiry: time.Hour},
		Auth:  config.AuthConfig{Enabled: true, BcryptCost: bcrypt.MinCost},
	}

	db, err := database.NewConnection(cfg.DB, log, false)
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	if err := database.Migrate(db, log); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	container := bootstrap.NewContainer(cfg, db, log, cache.NewMemory(), cache.NewMemory())
	if _, err := container.Seed.Seed(context.Background(), fixtures.Demo(time.Now())); err != nil {
		t.Fatalf("seed: %v", err)
	}

	srv := httptest.NewServer(container.Handler)
	t.Cleanup(func() {
		srv.Close()
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return srv
}

func TestRunSeedsServer(t *testing.T) {
	log, hook := test.NewNullLogger()
	srv := newServer(t, log)

	cfg := seedConfig{APIURL: srv.URL + "/api", Email: "admin@audiocare.fr", Password: fixtures.DemoPassword}
	demo := &client.SeedRequest{
		Expenses: []client.NewExpense{{ID: "e1", Date: "2025-01-01", Category: "loyer"}},
	}
	result, err := run(t.Context(), cfg, log, demo)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(result.Replaced) != 1 || result.Replaced["expenses"] != 1 {
		t.Fatalf("replaced = %v", result.Replaced)
	}
	for _, entry := range hook.AllEntries() {
		if entry.Level == logrus.WarnLevel {
			t.Fatalf("unexpected warning: %s", entry.Message)
		}
	}

	api := client.New(cfg.APIURL)
	if _, err := api.Login(t.Context(), cfg.Email, cfg.Password); err != nil {
		t.Fatalf("login: %v", err)
	}
	expenses, err := api.Expenses().List(t.Context())
	if err != nil {
		t.Fatalf("list expenses: %v", err)
	}
	if len(expenses) != 1 || expenses[0].ID != "e1" {
		t.Fatalf("expenses = %+v", expenses)
	}
}

func TestRunWithoutValidLogin(t *testing.T) {
	log, hook := test.NewNullLogger()
	srv := newServer(t, log)

	cfg := seedConfig{APIURL: srv.URL + "/api", Email: "admin@audiocare.fr", Password: "wrong"}
	if _, err := run(t.Context(), cfg, log, &client.SeedRequest{Expenses: []client.NewExpense{}}); err == nil {
		t.Fatalf("seed without a token accepted by a server with auth enabled")
	}

	warned := false
	for _, entry := range hook.AllEntries() {
		if entry.Level == logrus.WarnLevel && strings.HasPrefix(entry.Message, "Login failed") {
			warned = true
		}
	}
	if !warned {
		t.Fatalf("failed login not reported")
	}
}

func TestRunUnreachableServer(t *testing.T) {
	log, _ := test.NewNullLogger()
	srv := httptest.NewServer(nil)
	url := srv.URL
	srv.Close()

	_, err := run(t.Context(), seedConfig{APIURL: url + "/api"}, log, fixtures.Demo(time.Now()))
	if err == nil || !strings.Contains(err.Error(), "not reachable") {
		t.Fatalf("err = %v, want unreachable", err)
	}
}
