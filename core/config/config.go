package config

import (
	"os"
	"path/filepath"
	"strings"
)

// Config holds all application configuration in a structured way.
type Config struct {
	App       AppConfig
	MCP       MCPConfig
	Paths     PathsConfig
	Database  DatabaseConfig
	Extension ExtensionConfig
	Report    ReportConfig
	ChatLog   ChatLogConfig
}

type AppConfig struct {
	Version            string
	Port               string
	Debug              bool
	Environment        string
	BasicAuth          []string
	BasePath           string
	TrustedProxies     []string
	BaseUrl            string
	CorsAllowedOrigins []string
	ServerID           string
	CountryHeader      string
}

type MCPConfig struct {
	Port string
	Host string
}

type PathsConfig struct {
	BaseDir  string
	Statics  string
	Storages string
}

type DatabaseConfig struct {
	Driver          string
	Host            string
	Port            int
	User            string
	Password        string
	Name            string // File path for SQLite, DB Name for Postgres
	URI             string // Overrides the discrete fields when set
	SettingsBackend string // "database" or "valkey"
	ValkeyEnabled   bool
	ValkeyAddress   string
	ValkeyPassword  string
	ValkeyDB        int
	ValkeyKeyPrefix string
}

// ExtensionConfig toggles the premium capability set (business-hours scheduler,
// country blocker, contact form, conversational bot integration).
type ExtensionConfig struct {
	Enabled bool
}

type ReportConfig struct {
	PurgeSpec  string
	WeeklySpec string
}

// ChatLogConfig sizes the worker pool that writes chat log entries.
type ChatLogConfig struct {
	Workers   int
	QueueSize int
}

// Global provides access to the loaded configuration globally.
var Global *Config

// LoadConfig loads configuration from Environment Variables or defaults.
func LoadConfig() (*Config, error) {
	baseDir := getEnv("APP_BASE_DIR", "storages")

	debug := false
	if v := os.Getenv("APP_DEBUG"); v == "true" || v == "1" || v == "on" {
		debug = true
	}

	var basicAuth []string
	if v := os.Getenv("APP_BASIC_AUTH"); v != "" {
		basicAuth = strings.Split(v, ",")
	}

	corsOrigins := []string{"http://localhost:3000"}
	if v := os.Getenv("APP_CORS_ALLOWED_ORIGINS"); v != "" {
		corsOrigins = strings.Split(v, ",")
	}

	appCfg := AppConfig{
		Version:            "v1.0.0",
		Port:               getEnv("APP_PORT", "3000"),
		Debug:              debug,
		Environment:        getEnv("APP_ENV", "development"),
		BasicAuth:          basicAuth,
		BasePath:           getEnv("APP_BASE_PATH", ""),
		BaseUrl:            getEnv("APP_BASE_URL", "http://localhost:3000"),
		CorsAllowedOrigins: corsOrigins,
		ServerID:           getEnv("SERVER_ID", ""),
		CountryHeader:      getEnv("APP_COUNTRY_HEADER", "CF-IPCountry"),
	}
	if v := os.Getenv("APP_TRUSTED_PROXIES"); v != "" {
		appCfg.TrustedProxies = strings.Split(v, ",")
	}

	pathsCfg := PathsConfig{
		BaseDir:  baseDir,
		Statics:  getEnv("PATH_STATICS", "statics"),
		Storages: baseDir,
	}

	dbCfg := DatabaseConfig{
		Driver:          getEnv("DB_DRIVER", "sqlite"),
		Name:            getEnv("DB_NAME", filepath.Join(pathsCfg.Storages, "chatbox.db")),
		Host:            getEnv("DB_HOST", "localhost"),
		Port:            getEnvInt("DB_PORT", 5432),
		User:            getEnv("DB_USER", "postgres"),
		Password:        getEnv("DB_PASSWORD", ""),
		URI:             getEnv("DB_URI", ""),
		SettingsBackend: strings.ToLower(getEnv("SETTINGS_BACKEND", "database")),
		ValkeyEnabled:   getEnvBool("VALKEY_ENABLED", false),
		ValkeyAddress:   getEnv("VALKEY_ADDRESS", "localhost:6379"),
		ValkeyPassword:  getEnv("VALKEY_PASSWORD", ""),
		ValkeyDB:        getEnvInt("VALKEY_DB", 0),
		ValkeyKeyPrefix: getEnv("VALKEY_KEY_PREFIX", "chatbox:"),
	}

	cfg := &Config{
		App:       appCfg,
		MCP:       MCPConfig{Port: getEnv("MCP_PORT", "8080"), Host: getEnv("MCP_HOST", "localhost")},
		Paths:     pathsCfg,
		Database:  dbCfg,
		Extension: ExtensionConfig{Enabled: getEnvBool("EXTENSION_ENABLED", false)},
		Report: ReportConfig{
			PurgeSpec:  getEnv("REPORT_PURGE_SPEC", "@daily"),
			WeeklySpec: getEnv("REPORT_WEEKLY_SPEC", "0 8 * * 1"),
		},
		ChatLog: ChatLogConfig{
			Workers:   getEnvInt("CHATLOG_WORKERS", 4),
			QueueSize: getEnvInt("CHATLOG_QUEUE_SIZE", 250),
		},
	}

	Global = cfg
	return cfg, nil
}
