package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Redis configuration struct.
type RedisConfiguration struct {
	Host     string
	Port     string
	Password string
}

// Enabled reports if a redis host was configured.
func (r RedisConfiguration) Enabled() bool {
	return r.Host != ""
}

// Database configuration struct.
type DatabaseConfiguration struct {
	URL            string
	MigrationsPath string
}

// Enabled reports if a database url was configured.
func (d DatabaseConfiguration) Enabled() bool {
	return d.URL != ""
}

// Bucket configuration for the log uploads.
type BucketConfiguration struct {
	Region       string
	Endpoint     string
	AccessKey    string
	AccessSecret string
	LogBucket    string
}

// Enabled reports if the log bucket can be used.
func (b BucketConfiguration) Enabled() bool {
	return b.LogBucket != "" && b.AccessKey != "" && b.AccessSecret != ""
}

// Single rate limit window.
type LimitWindow struct {
	Count         int
	ResetInterval time.Duration
}

// Riot rate limits for the key in use.
type LimitsConfiguration struct {
	Lower  LimitWindow
	Higher LimitWindow
}

// Analysis configuration, the knobs of a fetch cycle and of the views.
type AnalysisConfiguration struct {
	Platform       string
	MatchCount     int
	PageSize       int
	SessionTTL     time.Duration
	Cooldown       time.Duration
	DDragonVersion string
	VersionRefresh time.Duration
}

// Server configuration.
type ServerConfiguration struct {
	Port           string
	GRPCHealthPort string
}

// Default values.
const (
	DefaultPlatform       = "EUW1"
	DefaultMatchCount     = 30
	MaxMatchCount         = 100
	DefaultPageSize       = 10
	DefaultSessionTTL     = 30 * time.Minute
	DefaultCooldown       = 10 * time.Second
	DefaultDDragonVersion = "14.12.1"
	DefaultVersionRefresh = 6 * time.Hour
)

var (
	ApiKey   string
	Analysis AnalysisConfiguration
	Bucket   BucketConfiguration
	Database DatabaseConfiguration
	Limits   LimitsConfiguration
	Redis    RedisConfiguration
	Server   ServerConfiguration
)

// Load the variables.
func LoadEnv() {
	ApiKey = os.Getenv("RIOT_API_KEY")

	// Load the Redis configuration.
	Redis.Host = os.Getenv("REDIS_HOST")
	Redis.Port = getEnvOrDefault("REDIS_PORT", "6379")
	Redis.Password = os.Getenv("REDIS_PASSWORD")

	Database.URL = os.Getenv("POSTGRES_URL")
	Database.MigrationsPath = getEnvOrDefault("POSTGRES_MIGRATIONS_PATH", "migrations")

	Bucket.Region = os.Getenv("BUCKET_REGION")
	Bucket.Endpoint = os.Getenv("BUCKET_ENDPOINT")
	Bucket.AccessKey = os.Getenv("BUCKET_ACCESS_KEY")
	Bucket.AccessSecret = os.Getenv("BUCKET_ACCESS_SECRET")
	Bucket.LogBucket = os.Getenv("BUCKET_LOG_BUCKET")

	// Development keys: 20 requests every second, 100 every two minutes.
	Limits.Lower = LimitWindow{
		Count:         getPositiveIntOrDefault("LIMIT_LOWER_COUNT", 20),
		ResetInterval: getPositiveDurationOrDefault("LIMIT_LOWER_RESET", time.Second),
	}
	Limits.Higher = LimitWindow{
		Count:         getPositiveIntOrDefault("LIMIT_HIGHER_COUNT", 100),
		ResetInterval: getPositiveDurationOrDefault("LIMIT_HIGHER_RESET", 2*time.Minute),
	}

	Analysis.Platform = strings.ToUpper(getEnvOrDefault("RIOT_PLATFORM", DefaultPlatform))
	Analysis.MatchCount = ClampMatchCount(getIntOrDefault("MATCH_COUNT", DefaultMatchCount))
	Analysis.PageSize = getIntOrDefault("PAGE_SIZE", DefaultPageSize)
	if Analysis.PageSize <= 0 {
		Analysis.PageSize = DefaultPageSize
	}
	Analysis.SessionTTL = getDurationOrDefault("SESSION_TTL", DefaultSessionTTL)
	Analysis.Cooldown = getDurationOrDefault("ANALYSIS_COOLDOWN", DefaultCooldown)
	Analysis.DDragonVersion = getEnvOrDefault("DDRAGON_VERSION", DefaultDDragonVersion)
	Analysis.VersionRefresh = getDurationOrDefault("DDRAGON_REFRESH", DefaultVersionRefresh)

	Server.Port = getEnvOrDefault("SERVER_PORT", "8080")
	Server.GRPCHealthPort = getEnvOrDefault("GRPC_HEALTH_PORT", "50051")
}

// ClampMatchCount keeps a requested match count inside what the match-v5 endpoint accepts.
func ClampMatchCount(count int) int {
	if count <= 0 {
		return DefaultMatchCount
	}
	return min(count, MaxMatchCount)
}

func getEnvOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getIntOrDefault(key string, fallback int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return value
}

func getDurationOrDefault(key string, fallback time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return value
}

func getPositiveIntOrDefault(key string, fallback int) int {
	if value := getIntOrDefault(key, fallback); value > 0 {
		return value
	}
	return fallback
}

func getPositiveDurationOrDefault(key string, fallback time.Duration) time.Duration {
	if value := getDurationOrDefault(key, fallback); value > 0 {
		return value
	}
	return fallback
}
