package app

import (
	"context"
	"fmt"

	"github.com/blackout-luminera/guild-xp-ranking/internal/config"
	"github.com/blackout-luminera/guild-xp-ranking/internal/service"
	"github.com/blackout-luminera/guild-xp-ranking/internal/service/cache"
	"github.com/blackout-luminera/guild-xp-ranking/internal/snapshot"
	"github.com/blackout-luminera/guild-xp-ranking/internal/util"
	"go.uber.org/zap"
)

// Container bundles the assembled pipeline with the resources it holds open.
type Container struct {
	Config   *config.Config
	Logger   *zap.Logger
	Pipeline *Pipeline

	closers []func()
}

// Build wires both sources, the writer and the optional Redis mirror from cfg.
// A mirror that cannot connect is dropped with a warning; the run goes on.
func Build(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger must not be nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	loc, err := util.LoadLocation(cfg.Ranking.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load time zone %q: %w", cfg.Ranking.Timezone, err)
	}

	httpClient := service.NewHTTPClient(cfg.HTTP.Timeout, cfg.HTTP.UserAgent)
	statistics := service.NewGuildStatsScraper(httpClient, cfg.Sources.GuildStatsURLTemplate, logger)
	directory := service.NewTibiaDataClient(httpClient, cfg.Sources.TibiaDataBaseURL, logger)
	writer := snapshot.NewWriter(cfg.Output.Path, logger)

	pipeline := NewPipeline(PipelineOptions{
		Guild:    cfg.Guild.Name,
		World:    cfg.Guild.World,
		TopN:     cfg.Ranking.TopN,
		Location: loc,
	}, statistics, directory, writer, logger)

	container := &Container{
		Config:   cfg,
		Logger:   logger,
		Pipeline: pipeline,
	}

	if cfg.Redis.Enabled {
		mirror, err := cache.NewSnapshotMirror(ctx, cache.MirrorConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Key:      cfg.Redis.SnapshotKey,
		}, logger)
		if err != nil {
			logger.Warn("Snapshot mirror disabled", zap.Error(err))
		} else {
			pipeline.WithPublisher(mirror)
			container.closers = append(container.closers, func() {
				_ = mirror.Close()
			})
		}
	}

	return container, nil
}

// Close releases resources in reverse order of acquisition.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	c.closers = nil
}
