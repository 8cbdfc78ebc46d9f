// Command seed replaces the data of a running server with the demo dataset.
package main

import (
	"context"
	"fmt"
	"time"

	"github.com/br70-Solution/voxia-app/internal/fixtures"
	"github.com/br70-Solution/voxia-app/pkg/client"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type seedConfig struct {
	APIURL   string
	Email    string
	Password string
}

func loadConfig() seedConfig {
	viper.SetDefault("SEED_API_URL", client.DefaultBaseURL)
	viper.SetDefault("SEED_EMAIL", "admin@audiocare.fr")
	viper.SetDefault("SEED_PASSWORD", fixtures.DemoPassword)
	viper.AutomaticEnv()

	return seedConfig{
		APIURL:   viper.GetString("SEED_API_URL"),
		Email:    viper.GetString("SEED_EMAIL"),
		Password: viper.GetString("SEED_PASSWORD"),
	}
}

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	result, err := run(ctx, loadConfig(), log, fixtures.Demo(time.Now()))
	if err != nil {
		log.Fatal(err)
	}

	for table, count := range result.Replaced {
		log.WithField("table", table).Infof("Replaced with %d rows", count)
	}
	log.Info("Seed complete")
}

// run logs in when it can and sends demo to the server.
func run(ctx context.Context, cfg seedConfig, log *logrus.Logger, demo *client.SeedRequest) (*client.SeedResponse, error) {
	api := client.New(cfg.APIURL, client.WithTimeout(30*time.Second))

	if err := api.Health(ctx); err != nil {
		return nil, fmt.Errorf("server is not reachable: %w", err)
	}

	// An empty database has no account yet; seeding then only works with auth disabled.
	if _, err := api.Login(ctx, cfg.Email, cfg.Password); err != nil {
		log.Warnf("Login failed, seeding without a token: %v", err)
	}

	result, err := api.Seed(ctx, demo)
	if err != nil {
		return nil, fmt.Errorf("failed to seed: %w", err)
	}
	return result, nil
}
