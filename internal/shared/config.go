package shared

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

type Config struct {
	AppEnv          string        `yaml:"app_env"`
	LogLevel        string        `yaml:"log_level"`
	HTTPAddr        string        `yaml:"http_addr"`
	HTTPTimeout     time.Duration `yaml:"http_timeout"`
	MetricsAddr     string        `yaml:"metrics_addr"`
	MySQLDSN        string        `yaml:"mysql_dsn"`
	RedisAddr       string        `yaml:"redis_addr"`
	RedisDB         int           `yaml:"redis_db"`
	RedisPass       string        `yaml:"redis_password"`
	MarketplaceBase string        `yaml:"marketplace_base_url"`
	MarketplaceKey  string        `yaml:"marketplace_api_key"`
	MarketplaceRPS  int           `yaml:"marketplace_rps"`
	Workers         int           `yaml:"import_workers"`
	ReviewCount     int           `yaml:"import_review_count"`
	FreelancerIDs   []int64       `yaml:"freelancer_ids"`
	CacheTTL        time.Duration `yaml:"cache_ttl"`
}

func defaults() Config {
	return Config{
		AppEnv:          "prod",
		LogLevel:        "info",
		HTTPAddr:        ":8080",
		HTTPTimeout:     5 * time.Second,
		MetricsAddr:     ":9100",
		MySQLDSN:        "root:root@tcp(localhost:3306)/talent?parseTime=true&charset=utf8mb4,utf8&loc=UTC",
		RedisAddr:       "localhost:6379",
		MarketplaceBase: "https://api.marketplace.local/v1",
		MarketplaceRPS:  5,
		Workers:         8,
		ReviewCount:     200,
		CacheTTL:        15 * time.Minute,
	}
}

// Load builds the config from defaults, then the YAML file named by CONFIG_FILE
// (if any), then environment variables. A broken config file is fatal.
func Load() Config {
	c, err := LoadFrom(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}
	if c.MarketplaceKey == "" {
		log.Warn().Msg("MARKETPLACE_API_KEY is empty")
	}
	return c
}

func LoadFrom(path string) (Config, error) {
	c := defaults()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(b, &c); err != nil {
			return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	c.AppEnv = env("APP_ENV", c.AppEnv)
	c.LogLevel = env("LOG_LEVEL", c.LogLevel)
	c.HTTPAddr = env("HTTP_ADDR", c.HTTPAddr)
	c.HTTPTimeout = seconds("HTTP_TIMEOUT_SECONDS", c.HTTPTimeout)
	c.MetricsAddr = env("METRICS_ADDR", c.MetricsAddr)
	c.MySQLDSN = env("MYSQL_DSN", c.MySQLDSN)
	c.RedisAddr = env("REDIS_ADDR", c.RedisAddr)
	c.RedisDB = atoi("REDIS_DB", c.RedisDB)
	c.RedisPass = env("REDIS_PASSWORD", c.RedisPass)
	c.MarketplaceBase = env("MARKETPLACE_BASE_URL", c.MarketplaceBase)
	c.MarketplaceKey = env("MARKETPLACE_API_KEY", c.MarketplaceKey)
	c.MarketplaceRPS = atoi("MARKETPLACE_RPS", c.MarketplaceRPS)
	c.Workers = atoi("IMPORT_WORKERS", c.Workers)
	c.ReviewCount = atoi("IMPORT_REVIEW_COUNT", c.ReviewCount)
	c.CacheTTL = seconds("CACHE_TTL_SECONDS", c.CacheTTL)
	if v := os.Getenv("FREELANCER_IDS"); v != "" {
		ids, err := ParseIDs(v)
		if err != nil {
			return Config{}, err
		}
		c.FreelancerIDs = ids
	}

	if c.Workers < 1 {
		c.Workers = 1
	}
	if c.MarketplaceRPS < 1 {
		c.MarketplaceRPS = 1
	}
	return c, nil
}

// ParseIDs reads a comma separated list of positive freelancer IDs. Blank entries are skipped.
func ParseIDs(s string) ([]int64, error) {
	var out []int64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.ParseInt(part, 10, 64)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid freelancer id %q", part)
		}
		out = append(out, n)
	}
	return out, nil
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func atoi(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func seconds(k string, def time.Duration) time.Duration {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n) * time.Second
		}
	}
	return def
}
