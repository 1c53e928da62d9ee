package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/feral-file/ff-nft-issuer/internal/minter"
)

// StorageDriver selects the store implementation
type StorageDriver string

const (
	StorageDriverPostgres StorageDriver = "postgres"
	StorageDriverMemory   StorageDriver = "memory"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`     // Maximum number of open connections to the database
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`     // Maximum number of idle connections in the pool
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`  // Maximum amount of time a connection may be reused (e.g., "5m", "1h")
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"` // Maximum amount of time a connection may be idle (e.g., "10m", "30m")
}

// StorageConfig selects where the collection state lives
type StorageConfig struct {
	Driver StorageDriver `mapstructure:"driver"`
}

// MinterConfig holds the issuer behaviour switches
type MinterConfig struct {
	AllowSeparatorInURI bool              `mapstructure:"allow_separator_in_uri"`
	LookupMode          minter.LookupMode `mapstructure:"lookup_mode"`
}

// NATSConfig holds NATS JetStream configuration
type NATSConfig struct {
	URL             string        `mapstructure:"url"`
	StreamName      string        `mapstructure:"stream_name"`
	SubjectPrefix   string        `mapstructure:"subject_prefix"`
	MaxReconnects   int           `mapstructure:"max_reconnects"`
	ReconnectWait   time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName  string        `mapstructure:"connection_name"`
	DuplicateWindow time.Duration `mapstructure:"duplicate_window"`
	CreateStream    bool          `mapstructure:"create_stream"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTPublicKey string   `mapstructure:"jwt_public_key"`
	APIKeys      []string `mapstructure:"api_keys"`
}

// WorkerConfig holds worker configuration
type WorkerConfig struct {
	WorkerPoolSize int `mapstructure:"pool_size"`
}

// BackoffConfig holds retry configuration
type BackoffConfig struct {
	InitialInterval time.Duration `mapstructure:"initial_interval"`
	MaxInterval     time.Duration `mapstructure:"max_interval"`
	MaxElapsedTime  time.Duration `mapstructure:"max_elapsed_time"`
}

// RelayConfig holds event relay configuration
type RelayConfig struct {
	ConsumerName string        `mapstructure:"consumer_name"`
	BatchSize    int           `mapstructure:"batch_size"`
	PollInterval time.Duration `mapstructure:"poll_interval"`
	Worker       WorkerConfig  `mapstructure:"worker"`
	Backoff      BackoffConfig `mapstructure:"backoff"`
}

// APIConfig holds configuration for API server
type APIConfig struct {
	BaseConfig `mapstructure:",squash"`
	Server     ServerConfig   `mapstructure:"server"`
	Database   DatabaseConfig `mapstructure:"database"`
	Storage    StorageConfig  `mapstructure:"storage"`
	Minter     MinterConfig   `mapstructure:"minter"`
	Auth       AuthConfig     `mapstructure:"auth"`
}

// EventRelayConfig holds configuration for event-relay
type EventRelayConfig struct {
	BaseConfig `mapstructure:",squash"`
	Database   DatabaseConfig `mapstructure:"database"`
	NATS       NATSConfig     `mapstructure:"nats"`
	Relay      RelayConfig    `mapstructure:"relay"`
}

// LoadAPIConfig loads configuration for API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	// Set defaults
	v.SetDefault("debug", false)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("server.idle_timeout", 120)
	setDatabaseDefaults(v)
	v.SetDefault("storage.driver", string(StorageDriverPostgres))
	v.SetDefault("minter.allow_separator_in_uri", false)
	v.SetDefault("minter.lookup_mode", string(minter.LookupModeScan))

	if err := readInConfig(v); err != nil {
		return nil, err
	}

	var cfg APIConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Storage.validate(&cfg.Database); err != nil {
		return nil, err
	}
	if !minter.IsValidLookupMode(cfg.Minter.LookupMode) {
		return nil, fmt.Errorf("invalid minter.lookup_mode %q", cfg.Minter.LookupMode)
	}

	return &cfg, nil
}

// LoadEventRelayConfig loads configuration for event-relay
func LoadEventRelayConfig(configFile string, envPath string) (*EventRelayConfig, error) {
	v := configureViper("event-relay", configFile, envPath)

	// Set defaults
	setDatabaseDefaults(v)
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.stream_name", "NFT_EVENTS")
	v.SetDefault("nats.subject_prefix", "nft.events")
	v.SetDefault("nats.connection_name", "ff-nft-issuer-event-relay")
	v.SetDefault("nats.duplicate_window", "2m")
	v.SetDefault("nats.create_stream", true)
	v.SetDefault("relay.consumer_name", "event-relay")
	v.SetDefault("relay.batch_size", 100)
	v.SetDefault("relay.poll_interval", "1s")
	v.SetDefault("relay.worker.pool_size", 10)
	v.SetDefault("relay.backoff.initial_interval", "500ms")
	v.SetDefault("relay.backoff.max_interval", "30s")
	v.SetDefault("relay.backoff.max_elapsed_time", "0s")

	if err := readInConfig(v); err != nil {
		return nil, err
	}

	var cfg EventRelayConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate required fields
	if cfg.Database.Host == "" {
		return nil, errors.New("database.host is required")
	}
	if cfg.NATS.URL == "" {
		return nil, errors.New("nats.url is required")
	}
	if cfg.Relay.BatchSize <= 0 {
		return nil, errors.New("relay.batch_size must be positive")
	}

	return &cfg, nil
}

func setDatabaseDefaults(v *viper.Viper) {
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "5m")
	v.SetDefault("database.conn_max_idle_time", "10m")
}

// readInConfig reads the config file; a missing file falls back to environment variables
func readInConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

func (s *StorageConfig) validate(db *DatabaseConfig) error {
	switch s.Driver {
	case StorageDriverMemory:
		return nil
	case StorageDriverPostgres:
		if db.Host == "" {
			return errors.New("database.host is required for the postgres storage driver")
		}
		return nil
	default:
		return fmt.Errorf("invalid storage.driver %q", s.Driver)
	}
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	// Load environment variables
	loadEnv(envPath, service)

	// Set config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// Search for config.yaml in multiple locations:
		// 1. Current directory
		v.AddConfigPath(".")
		// 2. Service-specific directory (e.g., cmd/api/)
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		// 3. Config directory
		v.AddConfigPath("config/")
	}

	// Set environment variables
	v.SetEnvPrefix("FF_ISSUER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind all environment variables
	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		// Database
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		// Storage
		"storage.driver",
		// Minter
		"minter.allow_separator_in_uri",
		"minter.lookup_mode",
		// NATS
		"nats.url",
		"nats.stream_name",
		"nats.subject_prefix",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
		"nats.duplicate_window",
		"nats.create_stream",
		// Relay
		"relay.consumer_name",
		"relay.batch_size",
		"relay.poll_interval",
		"relay.worker.pool_size",
		"relay.backoff.initial_interval",
		"relay.backoff.max_interval",
		"relay.backoff.max_elapsed_time",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		// Auth
		"auth.jwt_public_key",
		"auth.api_keys",
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	// Always try shared base first, then local, then optional per-service local.
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	// Default to config directory
	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // Overload lets later files override earlier ones
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}
