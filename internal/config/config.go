package config

import (
	"github.com/spf13/viper"
)

type (
	Config struct {
		Database
		Logging
	}

	Database struct {
		Path string
	}
	Logging struct {
		Level string
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("log_level", "info")

	return &Config{
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Logging: Logging{
			Level: v.GetString("LOG_LEVEL"),
		},
	}
}
