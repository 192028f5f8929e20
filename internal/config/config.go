package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/blackout-luminera/guild-xp-ranking/internal/constants"
	"github.com/blackout-luminera/guild-xp-ranking/internal/util"
	"github.com/blackout-luminera/guild-xp-ranking/pkg/errors"
	"github.com/joho/godotenv"
)

type Config struct {
	Guild   GuildConfig
	Ranking RankingConfig
	Output  OutputConfig
	Sources SourcesConfig
	HTTP    HTTPConfig
	Redis   RedisConfig
	Logging LoggingConfig
}

type GuildConfig struct {
	Name  string
	World string
}

type RankingConfig struct {
	TopN     int
	Timezone string
}

type OutputConfig struct {
	Path string
}

// SourcesConfig holds the endpoints of both external sources. GuildStatsURLTemplate
// takes the query-escaped guild name through a single %s verb.
type SourcesConfig struct {
	GuildStatsURLTemplate string
	TibiaDataBaseURL      string
}

type HTTPConfig struct {
	Timeout   time.Duration
	UserAgent string
}

// RedisConfig controls the optional snapshot mirror. Disabled by default.
type RedisConfig struct {
	Enabled     bool
	Host        string
	Port        int
	Password    string
	DB          int
	SnapshotKey string
}

type LoggingConfig struct {
	Level string
	File  string
}

// Default returns the documented defaults without reading the environment.
func Default() *Config {
	return &Config{
		Guild: GuildConfig{
			Name:  constants.Defaults.GuildName,
			World: constants.Defaults.World,
		},
		Ranking: RankingConfig{
			TopN:     constants.Defaults.TopN,
			Timezone: constants.Defaults.Timezone,
		},
		Output: OutputConfig{
			Path: constants.Defaults.OutputPath,
		},
		Sources: SourcesConfig{
			GuildStatsURLTemplate: constants.Sources.GuildStatsURLTemplate,
			TibiaDataBaseURL:      constants.Sources.TibiaDataBaseURL,
		},
		HTTP: HTTPConfig{
			Timeout:   constants.HTTPConfig.Timeout,
			UserAgent: constants.HTTPConfig.UserAgent,
		},
		Redis: RedisConfig{
			Enabled:     false,
			Host:        "localhost",
			Port:        6379,
			DB:          0,
			SnapshotKey: constants.Defaults.RedisSnapshotKey,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	def := Default()
	cfg := &Config{
		Guild: GuildConfig{
			Name:  getEnv("GUILD_NAME", def.Guild.Name),
			World: getEnv("GUILD_WORLD", def.Guild.World),
		},
		Ranking: RankingConfig{
			TopN:     getEnvInt("RANKING_TOP_N", def.Ranking.TopN),
			Timezone: getEnv("RANKING_TIMEZONE", def.Ranking.Timezone),
		},
		Output: OutputConfig{
			Path: getEnv("OUTPUT_PATH", def.Output.Path),
		},
		Sources: SourcesConfig{
			GuildStatsURLTemplate: getEnv("GUILDSTATS_URL_TEMPLATE", def.Sources.GuildStatsURLTemplate),
			TibiaDataBaseURL:      getEnv("TIBIADATA_BASE_URL", def.Sources.TibiaDataBaseURL),
		},
		HTTP: HTTPConfig{
			Timeout:   time.Duration(getEnvInt("HTTP_TIMEOUT_SECONDS", int(def.HTTP.Timeout/time.Second))) * time.Second,
			UserAgent: getEnv("HTTP_USER_AGENT", def.HTTP.UserAgent),
		},
		Redis: RedisConfig{
			Enabled:     getEnvBool("REDIS_ENABLED", def.Redis.Enabled),
			Host:        getEnv("REDIS_HOST", def.Redis.Host),
			Port:        getEnvInt("REDIS_PORT", def.Redis.Port),
			Password:    getEnv("REDIS_PASSWORD", def.Redis.Password),
			DB:          getEnvInt("REDIS_DB", def.Redis.DB),
			SnapshotKey: getEnv("REDIS_SNAPSHOT_KEY", def.Redis.SnapshotKey),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", def.Logging.Level),
			File:  getEnv("LOG_FILE", def.Logging.File),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.Guild.Name) == "" {
		return errors.NewValidationError("GUILD_NAME is required", "guild.name", c.Guild.Name)
	}
	if strings.TrimSpace(c.Guild.World) == "" {
		return errors.NewValidationError("GUILD_WORLD is required", "guild.world", c.Guild.World)
	}
	if c.Ranking.TopN <= 0 {
		return errors.NewValidationError("RANKING_TOP_N must be positive", "ranking.top_n", c.Ranking.TopN)
	}
	if _, err := util.LoadLocation(c.Ranking.Timezone); err != nil {
		return errors.NewValidationError("RANKING_TIMEZONE is not a known time zone", "ranking.timezone", c.Ranking.Timezone)
	}
	if strings.TrimSpace(c.Output.Path) == "" {
		return errors.NewValidationError("OUTPUT_PATH is required", "output.path", c.Output.Path)
	}
	if strings.Count(c.Sources.GuildStatsURLTemplate, "%s") != 1 {
		return errors.NewValidationError("GUILDSTATS_URL_TEMPLATE must contain exactly one %s", "sources.guildstats_url_template", c.Sources.GuildStatsURLTemplate)
	}
	if c.Sources.TibiaDataBaseURL == "" {
		return errors.NewValidationError("TIBIADATA_BASE_URL is required", "sources.tibiadata_base_url", c.Sources.TibiaDataBaseURL)
	}
	if c.HTTP.Timeout <= 0 {
		return errors.NewValidationError("HTTP_TIMEOUT_SECONDS must be positive", "http.timeout", c.HTTP.Timeout)
	}
	if c.Redis.Enabled && c.Redis.SnapshotKey == "" {
		return errors.NewValidationError("REDIS_SNAPSHOT_KEY is required when REDIS_ENABLED", "redis.snapshot_key", c.Redis.SnapshotKey)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
