package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const DefaultPath = "config/config.yaml"

const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

type ServerConfig struct {
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	Mode            string        `yaml:"mode"` // gin mode: debug | release | test
}

type DatabaseConfig struct {
	DSN             string        `yaml:"url"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
	ConnectTimeout  time.Duration `yaml:"connect_timeout"`
	AutoMigrate     bool          `yaml:"auto_migrate"`
}

type JWTConfig struct {
	Secret    string        `yaml:"secret"`
	Issuer    string        `yaml:"issuer"`
	ExpiresIn time.Duration `yaml:"expires_in"`
}

type LogConfig struct {
	Level    string `yaml:"level"`
	Encoding string `yaml:"encoding"`
}

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type EmailConfig struct {
	SMTPHost     string `yaml:"smtp_host"`
	SMTPPort     int    `yaml:"smtp_port"`
	SMTPUser     string `yaml:"smtp_user"`
	SMTPPassword string `yaml:"smtp_password"`
	FromEmail    string `yaml:"from_email"`
}

// Enabled reports whether outgoing mail is configured.
func (e EmailConfig) Enabled() bool {
	return e.SMTPHost != "" && e.FromEmail != ""
}

type Config struct {
	Server       ServerConfig   `yaml:"server"`
	Store        string         `yaml:"store"`
	Database     DatabaseConfig `yaml:"database"`
	JWT          JWTConfig      `yaml:"jwt"`
	BcryptRounds int            `yaml:"bcrypt_rounds"`
	Log          LogConfig      `yaml:"log"`
	CORS         CORSConfig     `yaml:"cors"`
	Email        EmailConfig    `yaml:"email"`
}

// Load reads the YAML file at path (missing file is fine), then .env, then environment
// overrides, and fills defaults.
func Load(path string) (*Config, error) {
	cfg := defaults()

	if path != "" {
		f, err := os.Open(path)
		switch {
		case err == nil:
			decodeErr := yaml.NewDecoder(f).Decode(cfg)
			f.Close()
			if decodeErr != nil && !errors.Is(decodeErr, io.EOF) {
				return nil, fmt.Errorf("parse %s: %w", path, decodeErr)
			}
		case errors.Is(err, os.ErrNotExist):
		default:
			return nil, fmt.Errorf("open %s: %w", path, err)
		}
	}

	_ = godotenv.Load(".env")
	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// MustLoad panics if configuration cannot be loaded.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            5000,
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			ShutdownTimeout: 15 * time.Second,
			Mode:            "release",
		},
		Store: StorePostgres,
		Database: DatabaseConfig{
			MaxOpenConns:    25,
			MaxIdleConns:    10,
			ConnMaxLifetime: time.Hour,
			ConnectTimeout:  5 * time.Second,
			AutoMigrate:     true,
		},
		JWT: JWTConfig{
			Issuer:    "taskboard",
			ExpiresIn: 7 * 24 * time.Hour,
		},
		BcryptRounds: 12,
		Log: LogConfig{
			Level:    "info",
			Encoding: "json",
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"http://localhost:3000"},
		},
		Email: EmailConfig{
			SMTPPort: 587,
		},
	}
}

func applyEnv(cfg *Config) {
	cfg.Server.Host = getString("SERVER_HOST", cfg.Server.Host)
	cfg.Server.Port = getInt("PORT", cfg.Server.Port)
	cfg.Server.Mode = getString("GIN_MODE", cfg.Server.Mode)
	cfg.Server.ShutdownTimeout = getDuration("SHUTDOWN_TIMEOUT", cfg.Server.ShutdownTimeout)

	cfg.Store = getString("STORE", cfg.Store)
	cfg.Database.DSN = getString("DATABASE_URL", cfg.Database.DSN)
	cfg.Database.MaxOpenConns = getInt("DB_MAX_OPEN_CONNS", cfg.Database.MaxOpenConns)
	cfg.Database.MaxIdleConns = getInt("DB_MAX_IDLE_CONNS", cfg.Database.MaxIdleConns)
	cfg.Database.AutoMigrate = getBool("RUN_MIGRATIONS", cfg.Database.AutoMigrate)

	cfg.JWT.Secret = getString("JWT_SECRET", cfg.JWT.Secret)
	cfg.JWT.Issuer = getString("JWT_ISSUER", cfg.JWT.Issuer)
	cfg.JWT.ExpiresIn = getDuration("JWT_EXPIRE", cfg.JWT.ExpiresIn)
	cfg.BcryptRounds = getInt("BCRYPT_ROUNDS", cfg.BcryptRounds)

	cfg.Log.Level = getString("LOG_LEVEL", cfg.Log.Level)
	cfg.Log.Encoding = getString("LOG_ENCODING", cfg.Log.Encoding)

	if v := os.Getenv("CLIENT_URL"); v != "" {
		cfg.CORS.AllowedOrigins = splitList(v)
	}

	cfg.Email.SMTPHost = getString("SMTP_HOST", cfg.Email.SMTPHost)
	cfg.Email.SMTPPort = getInt("SMTP_PORT", cfg.Email.SMTPPort)
	cfg.Email.SMTPUser = getString("SMTP_USER", cfg.Email.SMTPUser)
	cfg.Email.SMTPPassword = getString("SMTP_PASSWORD", cfg.Email.SMTPPassword)
	cfg.Email.FromEmail = getString("SMTP_FROM", cfg.Email.FromEmail)
}

// Validate rejects configurations the server cannot run with.
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return errors.New("jwt secret is required (jwt.secret or JWT_SECRET)")
	}
	if c.JWT.ExpiresIn <= 0 {
		return errors.New("jwt expiry must be positive")
	}
	switch c.Store {
	case StorePostgres:
		if c.Database.DSN == "" {
			return errors.New("database url is required (database.url or DATABASE_URL)")
		}
	case StoreMemory:
	default:
		return fmt.Errorf("unknown store %q", c.Store)
	}
	return nil
}

// Address returns the HTTP listen address.
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func getString(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.ParseBool(val); err == nil {
			return parsed
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
		if seconds, err := strconv.Atoi(val); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return fallback
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
