// Package config reads service configuration from the environment via Viper.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config groups the runtime configuration of the service binaries. Every
// value can be set through a CPGO_* environment variable or an optional
// cpgo.yaml file in the working directory.
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	DB      DBConfig
	Catalog CatalogConfig
	Log     LogConfig
}

// AppConfig identifies the running service.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig is the listen address of the API server.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr returns the host:port listen address.
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// DBConfig holds the PostgreSQL connection string. Empty means the service
// runs without persistence and only the calculation endpoints are available.
type DBConfig struct {
	DatabaseURL string
}

// CatalogConfig points at a YAML rate catalog. Empty means the built-in
// catalog of the current year.
type CatalogConfig struct {
	Path string
}

// LogConfig controls logging verbosity.
type LogConfig struct {
	Level string
}

// Load reads configuration from CPGO_* environment variables, falling back
// to an optional cpgo.yaml and then to defaults.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("cpgo")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/cpgo")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("leer archivo de configuracion: %w", err)
		}
	}

	v.SetEnvPrefix("CPGO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("env", "development")
	v.SetDefault("name", "cpgo")
	v.SetDefault("http.host", "0.0.0.0")
	v.SetDefault("http.port", 8080)
	v.SetDefault("database.url", "")
	v.SetDefault("catalogo.path", "")
	v.SetDefault("log.level", "info")

	cfg := &Config{
		App: AppConfig{
			Env:  v.GetString("env"),
			Name: v.GetString("name"),
		},
		HTTP: HTTPConfig{
			Host: v.GetString("http.host"),
			Port: v.GetInt("http.port"),
		},
		DB: DBConfig{
			DatabaseURL: v.GetString("database.url"),
		},
		Catalog: CatalogConfig{
			Path: v.GetString("catalogo.path"),
		},
		Log: LogConfig{
			Level: v.GetString("log.level"),
		},
	}
	return cfg, nil
}
