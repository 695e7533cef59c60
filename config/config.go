package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App AppConfig
	DB  DBConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type DBConfig struct {
	// Driver selects the storage engine: "sqlite" (default) or "postgres".
	Driver string

	// Path is the sqlite database file.
	Path string

	Host     string
	Port     string
	User     string
	Password string
	Name     string

	// MaxOpenConns bounds the shared connection pool.
	MaxOpenConns int

	// AcquireTimeout bounds how long an operation may wait for a pooled
	// connection before failing as a retryable resource-exhaustion error.
	AcquireTimeout time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("DB_DRIVER", "sqlite")
	viper.SetDefault("DB_PATH", "laboratory.sqlite")
	viper.SetDefault("DB_MAX_OPEN_CONNS", 5)
	viper.SetDefault("DB_ACQUIRE_TIMEOUT", "10s")

	// A missing .env is fine; environment variables still apply.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		DB: DBConfig{
			Driver:         viper.GetString("DB_DRIVER"),
			Path:           viper.GetString("DB_PATH"),
			Host:           viper.GetString("DB_HOST"),
			Port:           viper.GetString("DB_PORT"),
			User:           viper.GetString("DB_USER"),
			Password:       viper.GetString("DB_PASSWORD"),
			Name:           viper.GetString("DB_NAME"),
			MaxOpenConns:   viper.GetInt("DB_MAX_OPEN_CONNS"),
			AcquireTimeout: viper.GetDuration("DB_ACQUIRE_TIMEOUT"),
		},
	}

	return config, nil
}
