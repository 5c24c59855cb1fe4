package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// FileEnv names the environment variable holding an optional YAML config
// file. Environment variables override values from the file.
const FileEnv = "CONFIG_FILE"

type Config struct {
	Backend  BackendConfig  `yaml:"backend"`
	Server   ServerConfig   `yaml:"server"`
	Redis    RedisConfig    `yaml:"redis"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	Database DatabaseConfig `yaml:"database"`
	Mock     MockConfig     `yaml:"mock"`
	Log      LogConfig      `yaml:"log"`
}

type BackendConfig struct {
	URL         string        `yaml:"url"`
	Timeout     time.Duration `yaml:"timeout"`
	ReadRetries int           `yaml:"read_retries"`
	RetryDelay  time.Duration `yaml:"retry_delay"`
}

type ServerConfig struct {
	Port      string  `yaml:"port"`
	MockPort  string  `yaml:"mock_port"`
	RateLimit float64 `yaml:"rate_limit"`
	RateBurst int     `yaml:"rate_burst"`
}

type RedisConfig struct {
	Addr string `yaml:"addr"`
}

type KafkaConfig struct {
	Broker  string `yaml:"broker"`
	GroupID string `yaml:"group_id"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	Port     string `yaml:"port"`
	SSLMode  string `yaml:"sslmode"`
}

type MockConfig struct {
	Seed bool `yaml:"seed"`
}

type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

func Default() Config {
	return Config{
		Backend: BackendConfig{
			URL:         "http://localhost:3001/api",
			Timeout:     10 * time.Second,
			ReadRetries: 2,
			RetryDelay:  500 * time.Millisecond,
		},
		Server: ServerConfig{
			Port:      "3000",
			MockPort:  "3001",
			RateLimit: 20,
			RateBurst: 40,
		},
		Kafka:    KafkaConfig{GroupID: "go-hris-admin-salary"},
		Database: DatabaseConfig{Port: "5432", SSLMode: "disable"},
		Log:      LogConfig{Level: "info"},
	}
}

// Load builds the configuration from defaults, the CONFIG_FILE YAML file when
// set, then the environment.
func Load() (Config, error) {
	cfg := Default()

	if path := strings.TrimSpace(os.Getenv(FileEnv)); path != "" {
		if err := loadFile(filepath.Clean(path), &cfg); err != nil {
			return cfg, err
		}
	}
	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	var errs []error

	setString(&cfg.Backend.URL, "BACKEND_URL")
	errs = append(errs,
		setDuration(&cfg.Backend.Timeout, "HTTP_TIMEOUT"),
		setInt(&cfg.Backend.ReadRetries, "READ_RETRIES"),
		setDuration(&cfg.Backend.RetryDelay, "READ_RETRY_DELAY"),
	)

	setString(&cfg.Server.Port, "PORT")
	setString(&cfg.Server.MockPort, "MOCK_PORT")
	errs = append(errs,
		setFloat(&cfg.Server.RateLimit, "RATE_LIMIT"),
		setInt(&cfg.Server.RateBurst, "RATE_BURST"),
	)

	setString(&cfg.Redis.Addr, "REDIS_ADDR")
	setString(&cfg.Kafka.Broker, "KAFKA_BROKER")
	setString(&cfg.Kafka.GroupID, "KAFKA_GROUP_ID")

	setString(&cfg.Database.Host, "DB_HOST")
	setString(&cfg.Database.User, "DB_USER")
	setString(&cfg.Database.Password, "DB_PASSWORD")
	setString(&cfg.Database.Name, "DB_NAME")
	setString(&cfg.Database.Port, "DB_PORT")
	setString(&cfg.Database.SSLMode, "DB_SSLMODE")

	errs = append(errs, setBool(&cfg.Mock.Seed, "MOCK_SEED"))

	setString(&cfg.Log.Level, "LOG_LEVEL")
	errs = append(errs, setBool(&cfg.Log.Development, "LOG_DEV"))

	return errors.Join(errs...)
}

// Validate rejects settings the services cannot start with.
func (c Config) Validate() error {
	var errs []error
	u, err := url.Parse(c.Backend.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("BACKEND_URL %q is not an absolute URL", c.Backend.URL))
	}
	if c.Backend.Timeout <= 0 {
		errs = append(errs, errors.New("HTTP_TIMEOUT must be positive"))
	}
	if c.Backend.ReadRetries < 0 {
		errs = append(errs, errors.New("READ_RETRIES must not be negative"))
	}
	if c.Server.Port == "" {
		errs = append(errs, errors.New("PORT is required"))
	}
	return errors.Join(errs...)
}

// DSN is the postgres connection string, empty when no database is set.
func (d DatabaseConfig) DSN() string {
	if d.Host == "" {
		return ""
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode,
	)
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		*dst = strings.TrimSpace(v)
	}
}

func setInt(dst *int, key string) error {
	v, ok := lookup(key)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = n
	return nil
}

func setFloat(dst *float64, key string) error {
	v, ok := lookup(key)
	if !ok {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = f
	return nil
}

func setBool(dst *bool, key string) error {
	v, ok := lookup(key)
	if !ok {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = b
	return nil
}

// setDuration accepts Go durations ("1500ms") or a bare number of seconds.
func setDuration(dst *time.Duration, key string) error {
	v, ok := lookup(key)
	if !ok {
		return nil
	}
	if secs, err := strconv.Atoi(v); err == nil {
		*dst = time.Duration(secs) * time.Second
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = d
	return nil
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}
