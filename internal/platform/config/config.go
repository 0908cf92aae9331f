package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Cfg holds the loaded application configuration.
var Cfg *Config

// Config mirrors the structure of config.yaml.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	HallOfHate HallOfHateConfig `mapstructure:"hallofhate"`
	NBA        NBAConfig        `mapstructure:"nba"`
}

// ServerConfig defines the HTTP server settings.
type ServerConfig struct {
	Mode    string     `mapstructure:"mode"`
	Address string     `mapstructure:"address"`
	Swagger bool       `mapstructure:"swagger"`
	Cors    CorsConfig `mapstructure:"cors"`
}

// CorsConfig defines the CORS settings for the browser frontend.
type CorsConfig struct {
	AllowedOrigins []string `mapstructure:"allowedOrigins"`
}

// DatabaseConfig selects and configures the relational store.
type DatabaseConfig struct {
	Driver   string         `mapstructure:"driver"`
	Sqlite   SqliteConfig   `mapstructure:"sqlite"`
	Postgres PostgresConfig `mapstructure:"postgres"`
}

// SqliteConfig defines the SQLite settings (local development default).
type SqliteConfig struct {
	Path string `mapstructure:"path"`
}

// PostgresConfig defines the Postgres settings (deployed form).
type PostgresConfig struct {
	DSN string `mapstructure:"dsn"`
}

// HallOfHateConfig defines settings for the villain gallery.
type HallOfHateConfig struct {
	// FramesPath points at the JSON file with the named frame styles.
	FramesPath string `mapstructure:"framesPath"`
}

// NBAConfig defines the stats.nba.com tracker settings.
type NBAConfig struct {
	Season          string `mapstructure:"season"`
	CacheTTLSeconds int    `mapstructure:"cacheTTLSeconds"`
	BaseURL         string `mapstructure:"baseURL"`
}

// LoadConfig locates, loads and parses config.yaml. Environment variables
// (dots replaced by underscores, e.g. SERVER_ADDRESS) override file values.
func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.swagger", true)
	v.SetDefault("server.cors.allowedOrigins", []string{"http://localhost:5173"})
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.sqlite.path", "corderos.db")
	v.SetDefault("hallofhate.framesPath", "config/frames.json")
	v.SetDefault("nba.season", "2025-26")
	v.SetDefault("nba.cacheTTLSeconds", 900)
	v.SetDefault("nba.baseURL", "https://stats.nba.com/stats")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing file is fine: defaults plus env cover local runs.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	Cfg = &cfg
	return Cfg, nil
}
