package config

import (
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Cache     CacheConfig
	Analytics AnalyticsConfig
	Insights  InsightsConfig
	Archive   ArchiveConfig
}

type ServerConfig struct {
	Port           string
	Mode           string
	ReadTimeout    int
	WriteTimeout   int
	AllowedOrigins []string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type CacheConfig struct {
	Enabled          bool
	RedisURL         string
	RedisHost        string
	RedisPort        string
	RedisPassword    string
	RedisDB          int
	ReportTTLSeconds int
}

// AnalyticsConfig carries the tunables of the analytics engine. Defaults
// match the product's fixed assumptions; overriding them is for operations,
// not per-request behavior.
type AnalyticsConfig struct {
	CustomerWindowMonths int
	InventoryWindowDays  int
	ChurnThresholdDays   int
	LeadTimeDays         int
	ServiceZScore        float64
	Workers              int
}

// InsightsConfig controls the external text-generation collaborator. When
// Enabled is false the engine only ever uses its deterministic fallback.
type InsightsConfig struct {
	Enabled bool
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// ArchiveConfig controls the S3-compatible report snapshot archive.
type ArchiveConfig struct {
	Enabled   bool
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

var (
	once     sync.Once
	instance *Config
)

func Load() *Config {
	once.Do(func() {
		// Load .env file if it exists
		_ = godotenv.Load()

		viper.SetDefault("SERVER_PORT", "8080")
		viper.SetDefault("SERVER_MODE", "debug")
		viper.SetDefault("SERVER_READ_TIMEOUT", 15)
		viper.SetDefault("SERVER_WRITE_TIMEOUT", 30)
		viper.SetDefault("SERVER_ALLOWED_ORIGINS", []string{"*"})
		viper.SetDefault("DB_HOST", "localhost")
		viper.SetDefault("DB_PORT", "5432")
		viper.SetDefault("DB_USER", "postgres")
		viper.SetDefault("DB_PASSWORD", "postgres")
		viper.SetDefault("DB_NAME", "posai")
		viper.SetDefault("DB_SSLMODE", "disable")
		viper.SetDefault("CACHE_ENABLED", false)
		viper.SetDefault("REDIS_URL", "")
		viper.SetDefault("REDIS_HOST", "127.0.0.1")
		viper.SetDefault("REDIS_PORT", "6379")
		viper.SetDefault("REDIS_PASSWORD", "")
		viper.SetDefault("REDIS_DB", 0)
		viper.SetDefault("CACHE_REPORT_TTL_SECONDS", 300)
		viper.SetDefault("ANALYTICS_CUSTOMER_WINDOW_MONTHS", 6)
		viper.SetDefault("ANALYTICS_INVENTORY_WINDOW_DAYS", 30)
		viper.SetDefault("ANALYTICS_CHURN_THRESHOLD_DAYS", 90)
		viper.SetDefault("ANALYTICS_LEAD_TIME_DAYS", 7)
		viper.SetDefault("ANALYTICS_SERVICE_Z_SCORE", 1.65)
		viper.SetDefault("ANALYTICS_WORKERS", 0)
		viper.SetDefault("INSIGHTS_ENABLED", false)
		viper.SetDefault("INSIGHTS_BASE_URL", "")
		viper.SetDefault("INSIGHTS_API_KEY", "")
		viper.SetDefault("INSIGHTS_MODEL", "")
		viper.SetDefault("INSIGHTS_TIMEOUT_SECONDS", 30)
		viper.SetDefault("ARCHIVE_ENABLED", false)
		viper.SetDefault("ARCHIVE_ENDPOINT", "")
		viper.SetDefault("ARCHIVE_ACCESS_KEY", "")
		viper.SetDefault("ARCHIVE_SECRET_KEY", "")
		viper.SetDefault("ARCHIVE_BUCKET", "posai-reports")
		viper.SetDefault("ARCHIVE_USE_SSL", true)

		viper.AutomaticEnv()

		instance = &Config{
			Server: ServerConfig{
				Port:           viper.GetString("SERVER_PORT"),
				Mode:           viper.GetString("SERVER_MODE"),
				ReadTimeout:    viper.GetInt("SERVER_READ_TIMEOUT"),
				WriteTimeout:   viper.GetInt("SERVER_WRITE_TIMEOUT"),
				AllowedOrigins: viper.GetStringSlice("SERVER_ALLOWED_ORIGINS"),
			},
			Database: DatabaseConfig{
				Host:     viper.GetString("DB_HOST"),
				Port:     viper.GetString("DB_PORT"),
				User:     viper.GetString("DB_USER"),
				Password: viper.GetString("DB_PASSWORD"),
				DBName:   viper.GetString("DB_NAME"),
				SSLMode:  viper.GetString("DB_SSLMODE"),
			},
			Cache: CacheConfig{
				Enabled:          viper.GetBool("CACHE_ENABLED"),
				RedisURL:         viper.GetString("REDIS_URL"),
				RedisHost:        viper.GetString("REDIS_HOST"),
				RedisPort:        viper.GetString("REDIS_PORT"),
				RedisPassword:    viper.GetString("REDIS_PASSWORD"),
				RedisDB:          viper.GetInt("REDIS_DB"),
				ReportTTLSeconds: viper.GetInt("CACHE_REPORT_TTL_SECONDS"),
			},
			Analytics: AnalyticsConfig{
				CustomerWindowMonths: viper.GetInt("ANALYTICS_CUSTOMER_WINDOW_MONTHS"),
				InventoryWindowDays:  viper.GetInt("ANALYTICS_INVENTORY_WINDOW_DAYS"),
				ChurnThresholdDays:   viper.GetInt("ANALYTICS_CHURN_THRESHOLD_DAYS"),
				LeadTimeDays:         viper.GetInt("ANALYTICS_LEAD_TIME_DAYS"),
				ServiceZScore:        viper.GetFloat64("ANALYTICS_SERVICE_Z_SCORE"),
				Workers:              viper.GetInt("ANALYTICS_WORKERS"),
			},
			Insights: InsightsConfig{
				Enabled: viper.GetBool("INSIGHTS_ENABLED"),
				BaseURL: viper.GetString("INSIGHTS_BASE_URL"),
				APIKey:  viper.GetString("INSIGHTS_API_KEY"),
				Model:   viper.GetString("INSIGHTS_MODEL"),
				Timeout: time.Duration(viper.GetInt("INSIGHTS_TIMEOUT_SECONDS")) * time.Second,
			},
			Archive: ArchiveConfig{
				Enabled:   viper.GetBool("ARCHIVE_ENABLED"),
				Endpoint:  viper.GetString("ARCHIVE_ENDPOINT"),
				AccessKey: viper.GetString("ARCHIVE_ACCESS_KEY"),
				SecretKey: viper.GetString("ARCHIVE_SECRET_KEY"),
				Bucket:    viper.GetString("ARCHIVE_BUCKET"),
				UseSSL:    viper.GetBool("ARCHIVE_USE_SSL"),
			},
		}
	})

	return instance
}
