// Package config provides configuration management.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// AppFs is the filesystem used for configuration and query files.
var AppFs = afero.NewOsFs()

// Config represents application configuration.
type Config struct {
	Debug   bool
	Output  string
	Color   bool
	Storage StorageConfig
	History HistoryConfig
}

// StorageConfig represents where definitions and responses are read from.
type StorageConfig struct {
	Type     string
	BasePath string
}

// HistoryConfig represents the compiled query history database.
type HistoryConfig struct {
	Enabled        bool
	Provider       string
	URL            string
	MaxConnections int
	ConnectTimeout int
}

// Output formats.
const (
	OutputText     = "text"
	OutputHTML     = "html"
	OutputMarkdown = "markdown"
)

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Output: OutputText,
		Color:  true,
		Storage: StorageConfig{
			Type:     "filesystem",
			BasePath: ".",
		},
		History: HistoryConfig{
			Provider:       "sqlite",
			URL:            "olap_history.db",
			MaxConnections: 5,
			ConnectTimeout: 10,
		},
	}
}

// Load loads configuration from the config file, .env files and the environment.
func Load(v *viper.Viper) (*Config, error) {
	// Find home directory
	home, err := homedir.Dir()
	if err != nil {
		return nil, err
	}

	v.SetConfigName(".olap")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath(home)
	v.AddConfigPath(filepath.Join(home, ".config", "olap"))

	v.SetFs(AppFs)

	v.SetEnvPrefix("OLAP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Config file is optional
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	loadEnvFiles()

	return fromViper(v), nil
}

func setDefaults(v *viper.Viper) {
	def := Default()
	v.SetDefault("debug", def.Debug)
	v.SetDefault("output", def.Output)
	v.SetDefault("color", def.Color)
	v.SetDefault("storage.type", def.Storage.Type)
	v.SetDefault("storage.base_path", def.Storage.BasePath)
	v.SetDefault("history.enabled", def.History.Enabled)
	v.SetDefault("history.provider", def.History.Provider)
	v.SetDefault("history.url", def.History.URL)
	v.SetDefault("history.max_connections", def.History.MaxConnections)
	v.SetDefault("history.connect_timeout", def.History.ConnectTimeout)
}

// loadEnvFiles loads .env and then .env.local, which takes precedence.
func loadEnvFiles() {
	if _, err := AppFs.Stat(".env"); err == nil {
		_ = godotenv.Load()
	}
	if _, err := AppFs.Stat(".env.local"); err == nil {
		_ = godotenv.Overload(".env.local")
	}
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{
		Debug:  v.GetBool("debug"),
		Output: v.GetString("output"),
		Color:  v.GetBool("color"),
		Storage: StorageConfig{
			Type:     v.GetString("storage.type"),
			BasePath: v.GetString("storage.base_path"),
		},
		History: HistoryConfig{
			Enabled:        v.GetBool("history.enabled"),
			Provider:       v.GetString("history.provider"),
			URL:            v.GetString("history.url"),
			MaxConnections: v.GetInt("history.max_connections"),
			ConnectTimeout: v.GetInt("history.connect_timeout"),
		},
	}

	// DATABASE_URL replaces a URL left at its default
	if url := os.Getenv("DATABASE_URL"); url != "" && cfg.History.URL == Default().History.URL {
		cfg.History.URL = url
	}

	return cfg
}

// Save writes the configuration to $HOME/.config/olap/.olap.yaml.
func Save(v *viper.Viper, cfg *Config) (string, error) {
	v.Set("debug", cfg.Debug)
	v.Set("output", cfg.Output)
	v.Set("color", cfg.Color)
	v.Set("history.enabled", cfg.History.Enabled)
	v.Set("history.provider", cfg.History.Provider)
	v.Set("history.url", cfg.History.URL)

	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}

	configPath := filepath.Join(home, ".config", "olap")
	if err := AppFs.MkdirAll(configPath, 0755); err != nil {
		return "", err
	}

	configFile := filepath.Join(configPath, ".olap.yaml")
	return configFile, v.WriteConfigAs(configFile)
}
