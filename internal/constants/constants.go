package constants

import "time"

var Defaults = struct {
	GuildName        string
	World            string
	TopN             int
	Timezone         string
	OutputPath       string
	RedisSnapshotKey string
}{
	GuildName:        "Blackout",
	World:            "Luminera",
	TopN:             50,
	Timezone:         "America/Sao_Paulo",
	OutputPath:       "dados/ranking.json",
	RedisSnapshotKey: "guild:ranking:snapshot",
}

var Sources = struct {
	GuildStatsURLTemplate string
	TibiaDataBaseURL      string
}{
	GuildStatsURLTemplate: "https://guildstats.eu/guild=%s&op=3",
	TibiaDataBaseURL:      "https://api.tibiadata.com/v4",
}

var HTTPConfig = struct {
	Timeout   time.Duration
	UserAgent string
}{
	Timeout:   30 * time.Second,
	UserAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36",
}

var RedisConfig = struct {
	DialTimeout  time.Duration
	WriteTimeout time.Duration
}{
	DialTimeout:  5 * time.Second,
	WriteTimeout: 3 * time.Second,
}
