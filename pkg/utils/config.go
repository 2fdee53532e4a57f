package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Auth     AuthConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type AuthConfig struct {
	// Fixed admin credential pair. Placeholder auth model, not per-user accounts.
	AdminUsername string
	AdminPassword string
	SessionExpiryHours int
	// PublicBrowsing leaves GET list/detail views for buses, routes, trips and
	// passengers open without a session. Bookings are always gated.
	PublicBrowsing bool
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("ADMIN_USERNAME", "admin")
	viper.SetDefault("ADMIN_PASSWORD", "admin123")
	viper.SetDefault("SESSION_EXPIRY_HOURS", 24)
	viper.SetDefault("PUBLIC_BROWSING", true)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Auth: AuthConfig{
			AdminUsername:      viper.GetString("ADMIN_USERNAME"),
			AdminPassword:      viper.GetString("ADMIN_PASSWORD"),
			SessionExpiryHours: viper.GetInt("SESSION_EXPIRY_HOURS"),
			PublicBrowsing:     viper.GetBool("PUBLIC_BROWSING"),
		},
	}

	return config, nil
}
