package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// ServerConfig holds listener settings. RateLimit caps completion-backed
// requests per client within RateWindow; zero disables the limit.
type ServerConfig struct {
	Port           string
	Env            string
	AllowedOrigins []string
	RateLimit      int
	RateWindow     time.Duration
}

type DBConfig struct {
	Driver          string // postgres | sqlite
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// CompletionConfig configures the generative text client.
type CompletionConfig struct {
	APIKey     string
	Model      string
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int
	RetryDelay time.Duration
}

type MailConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

type QueueConfig struct {
	URL string
}

type LogConfig struct {
	Level string
}

type UploadConfig struct {
	Atomic      bool
	MaxFileSize int64
}

type Config struct {
	ServiceName string
	Server      ServerConfig
	DB          DBConfig
	Completion  CompletionConfig
	Mail        MailConfig
	Queue       QueueConfig
	Log         LogConfig
	Upload      UploadConfig
}

// Load reads an optional .env file and then the process environment.
func Load(serviceName string) *Config {
	// .env is optional
	_ = godotenv.Load()

	return &Config{
		ServiceName: serviceName,
		Server: ServerConfig{
			Port:           getEnv("SERVER_PORT", "8080"),
			Env:            getEnv("APP_ENV", "development"),
			AllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://127.0.0.1:3000"}),
			RateLimit:      getEnvAsInt("AI_RATE_LIMIT", 30),
			RateWindow:     getEnvAsDuration("AI_RATE_WINDOW", time.Minute),
		},
		DB: DBConfig{
			Driver:          getEnv("DB_DRIVER", "postgres"),
			URL:             getEnv("DATABASE_URL", ""),
			MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		},
		Completion: CompletionConfig{
			APIKey:     getEnv("GEMINI_API_KEY", ""),
			Model:      getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
			BaseURL:    getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),
			Timeout:    getEnvAsDuration("COMPLETION_TIMEOUT", 60*time.Second),
			MaxRetries: getEnvAsInt("COMPLETION_MAX_RETRIES", 2),
			RetryDelay: getEnvAsDuration("COMPLETION_RETRY_DELAY", 500*time.Millisecond),
		},
		Mail: MailConfig{
			Host:     getEnv("MAIL_HOST", "localhost"),
			Port:     getEnvAsInt("MAIL_PORT", 587),
			User:     getEnv("MAIL_USER", ""),
			Password: getEnv("MAIL_PASS", ""),
			From:     getEnv("MAIL_FROM", getEnv("MAIL_USER", "")),
		},
		Queue: QueueConfig{
			URL: getEnv("AMQP_URL", ""),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Upload: UploadConfig{
			Atomic:      getEnvAsBool("UPLOAD_ATOMIC", false),
			MaxFileSize: int64(getEnvAsInt("UPLOAD_MAX_FILE_SIZE", 10<<20)),
		},
	}
}

// Fields describes the configuration for startup logging. Secrets are left out.
func (c *Config) Fields() []zap.Field {
	return []zap.Field{
		zap.String("service", c.ServiceName),
		zap.String("environment", c.Server.Env),
		zap.String("server_port", c.Server.Port),
		zap.String("db_driver", c.DB.Driver),
		zap.String("completion_model", c.Completion.Model),
		zap.Bool("completion_key_set", c.Completion.APIKey != ""),
		zap.String("mail_host", c.Mail.Host),
		zap.Bool("queue_enabled", c.Queue.URL != ""),
		zap.Bool("upload_atomic", c.Upload.Atomic),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, err := strconv.ParseBool(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, err := time.ParseDuration(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	raw := strings.TrimSpace(getEnv(key, ""))
	if raw == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
