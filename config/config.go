package config

import (
	"errors"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App    AppConfig
	DB     DBConfig
	Redis  RedisConfig
	JWT    JWTConfig
	Auth   AuthConfig
	Backup BackupConfig
	Stock  StockConfig
}

type AppConfig struct {
	Port       string
	Env        string
	CORSOrigin string
}

type DBConfig struct {
	Driver   string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	Path     string
	AutoSeed bool
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	CacheTTL time.Duration
}

// Enabled reports whether a Redis server was configured.
func (c RedisConfig) Enabled() bool {
	return c.Host != ""
}

type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

type AuthConfig struct {
	Enabled    bool
	BcryptCost int
}

type BackupConfig struct {
	Enabled bool
	At      string
	Dir     string
}

type StockConfig struct {
	AlertInterval time.Duration
}

func (c AppConfig) IsDevelopment() bool {
	return c.Env == "" || c.Env == "development"
}

func setDefaults() {
	viper.SetDefault("APP_PORT", "3001")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("CORS_ORIGIN", "*")
	viper.SetDefault("DB_DRIVER", "sqlite")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_PATH", "database.sqlite")
	viper.SetDefault("DB_AUTO_SEED", true)
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("CACHE_TTL", "5m")
	viper.SetDefault("JWT_SECRET", "change-me")
	viper.SetDefault("JWT_ACCESS_EXPIRY", "15m")
	viper.SetDefault("JWT_REFRESH_EXPIRY", "168h")
	viper.SetDefault("AUTH_ENABLED", true)
	viper.SetDefault("BCRYPT_COST", 10)
	viper.SetDefault("BACKUP_ENABLED", true)
	viper.SetDefault("BACKUP_AT", "02:00")
	viper.SetDefault("BACKUP_DIR", "backups")
	viper.SetDefault("STOCK_ALERT_INTERVAL", "1h")
}

func LoadConfig() (*Config, error) {
	setDefaults()
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// The environment alone is enough; a missing .env is not an error.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	accessExpiry, err := time.ParseDuration(viper.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 15 * time.Minute
	}

	refreshExpiry, err := time.ParseDuration(viper.GetString("JWT_REFRESH_EXPIRY"))
	if err != nil {
		refreshExpiry = 7 * 24 * time.Hour
	}

	cacheTTL, err := time.ParseDuration(viper.GetString("CACHE_TTL"))
	if err != nil {
		cacheTTL = 5 * time.Minute
	}

	alertInterval, err := time.ParseDuration(viper.GetString("STOCK_ALERT_INTERVAL"))
	if err != nil {
		alertInterval = time.Hour
	}

	config := &Config{
		App: AppConfig{
			Port:       viper.GetString("APP_PORT"),
			Env:        viper.GetString("APP_ENV"),
			CORSOrigin: viper.GetString("CORS_ORIGIN"),
		},
		DB: DBConfig{
			Driver:   viper.GetString("DB_DRIVER"),
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
			Path:     viper.GetString("DB_PATH"),
			AutoSeed: viper.GetBool("DB_AUTO_SEED"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
			CacheTTL: cacheTTL,
		},
		JWT: JWTConfig{
			Secret:        viper.GetString("JWT_SECRET"),
			AccessExpiry:  accessExpiry,
			RefreshExpiry: refreshExpiry,
		},
		Auth: AuthConfig{
			Enabled:    viper.GetBool("AUTH_ENABLED"),
			BcryptCost: viper.GetInt("BCRYPT_COST"),
		},
		Backup: BackupConfig{
			Enabled: viper.GetBool("BACKUP_ENABLED"),
			At:      viper.GetString("BACKUP_AT"),
			Dir:     viper.GetString("BACKUP_DIR"),
		},
		Stock: StockConfig{
			AlertInterval: alertInterval,
		},
	}

	return config, nil
}
