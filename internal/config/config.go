// file: internal/config/config.go
// version: 2.0.0
// guid: 7b8c9d0e-1f2a-3b4c-5d6e-7f8a9b0c1d2e

package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Defaults applied when neither flags, environment nor config file set a value.
const (
	DefaultStoragePath   = "library.json"
	DefaultBackupDir     = "backups"
	DefaultMaxBackups    = 10
	DefaultLogLevel      = "info"
	DefaultWatchDebounce = 500 * time.Millisecond
)

// Config holds application configuration
type Config struct {
	StoragePath   string        `yaml:"storage_path"`
	BackupDir     string        `yaml:"backup_dir"`
	MaxBackups    int           `yaml:"max_backups"`
	LogLevel      string        `yaml:"log_level"`
	WatchDebounce time.Duration `yaml:"watch_debounce"`
}

var AppConfig Config

// InitConfig initializes the application configuration from viper
func InitConfig() {
	viper.SetDefault("storage_path", DefaultStoragePath)
	viper.SetDefault("backup_dir", DefaultBackupDir)
	viper.SetDefault("max_backups", DefaultMaxBackups)
	viper.SetDefault("log_level", DefaultLogLevel)
	viper.SetDefault("watch_debounce", DefaultWatchDebounce)

	AppConfig = Config{
		StoragePath:   strings.TrimSpace(viper.GetString("storage_path")),
		BackupDir:     strings.TrimSpace(viper.GetString("backup_dir")),
		MaxBackups:    viper.GetInt("max_backups"),
		LogLevel:      strings.ToLower(strings.TrimSpace(viper.GetString("log_level"))),
		WatchDebounce: viper.GetDuration("watch_debounce"),
	}
	AppConfig.normalize()
}

// normalize replaces blank or out of range values with defaults.
func (c *Config) normalize() {
	if c.StoragePath == "" {
		c.StoragePath = DefaultStoragePath
	}
	if c.BackupDir == "" {
		c.BackupDir = DefaultBackupDir
	}
	if c.MaxBackups < 0 {
		c.MaxBackups = 0
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.WatchDebounce <= 0 {
		c.WatchDebounce = DefaultWatchDebounce
	}
}

// Default returns a Config with every field at its default.
func Default() Config {
	c := Config{MaxBackups: DefaultMaxBackups}
	c.normalize()
	return c
}
