package config

import (
	"fmt"
	"time"
)

type (
	// APIServerConfig is the root configuration for the inventory API server.
	APIServerConfig struct {
		Server     ServerConfig     `yaml:"server"`
		Database   DatabaseConfig   `yaml:"database"`
		Media      MediaConfig      `yaml:"media"`
		Logger     LoggerConfig     `yaml:"logger"`
		JWT        JWTConfig        `yaml:"jwt"`
		SuperAdmin SuperAdminConfig `yaml:"super_admin"`
		I18n       I18nConfig       `yaml:"i18n"`
	}

	// ServerConfig holds the HTTP listener configuration.
	ServerConfig struct {
		Port int `yaml:"port"`
	}

	// DatabaseConfig holds the relational database configuration.
	DatabaseConfig struct {
		Type     string `yaml:"type"`     // postgres, mysql, sqlite
		Host     string `yaml:"host"`     // localhost
		Port     int    `yaml:"port"`     // 5432 (postgres), 3306 (mysql)
		User     string `yaml:"user"`     // database user
		Password string `yaml:"password"` // database password
		DBName   string `yaml:"dbname"`   // database name, or file path for sqlite
		SSLMode  string `yaml:"sslmode"`  // disable (postgres only)
	}

	// MediaConfig holds the uploaded-file storage configuration.
	MediaConfig struct {
		Type    string `yaml:"type"`     // disk
		Path    string `yaml:"path"`     // base directory for disk storage
		BaseURL string `yaml:"base_url"` // public URL prefix for stored files
	}

	// JWTConfig holds the token service configuration.
	JWTConfig struct {
		SecretKey       string        `yaml:"secret_key"`
		Duration        time.Duration `yaml:"duration"`
		RefreshDuration time.Duration `yaml:"refresh_duration"`
	}

	// SuperAdminConfig identifies the bootstrap superuser created on startup.
	SuperAdminConfig struct {
		Email    string `yaml:"email"`
		Nombre   string `yaml:"nombre"`
		Password string `yaml:"password"`
	}

	// I18nConfig points at the translation bundle directory.
	I18nConfig struct {
		Path string `yaml:"path"`
	}

	// LoggerConfig controls log output.
	LoggerConfig struct {
		Level      string `yaml:"level"`       // debug, info, warn, error
		Format     string `yaml:"format"`      // json, console
		Output     string `yaml:"output"`      // stdout, file
		FilePath   string `yaml:"file_path"`   // path to log file when output is file
		MaxSize    int    `yaml:"max_size"`    // max size of log file in MB
		MaxBackups int    `yaml:"max_backups"` // max number of backup files
		MaxAge     int    `yaml:"max_age"`     // max age of backup files in days
		Compress   bool   `yaml:"compress"`    // whether to compress backup files
		Color      bool   `yaml:"color"`       // whether to use color in console output
		Stacktrace bool   `yaml:"stacktrace"`  // whether to include stacktrace in error logs
	}
)

// GetDSN returns the database connection string for the configured driver.
func (c *DatabaseConfig) GetDSN() string {
	switch c.Type {
	case "postgres":
		return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
			c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode)
	case "mysql":
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			c.User, c.Password, c.Host, c.Port, c.DBName)
	case "sqlite":
		// For SQLite, DBName is the file path.
		return c.DBName
	default:
		return ""
	}
}
