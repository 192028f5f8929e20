package service

import (
	"bytes"
	"context"
	"fmt"
	"net/url"

	"github.com/blackout-luminera/guild-xp-ranking/internal/domain"
	"github.com/blackout-luminera/guild-xp-ranking/pkg/errors"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const guildStatsSource = "guildstats"

// GuildStatsScraper reads the experience table from the guild statistics page.
type GuildStatsScraper struct {
	httpClient  *resty.Client
	urlTemplate string
	logger      *zap.Logger
}

func NewGuildStatsScraper(httpClient *resty.Client, urlTemplate string, logger *zap.Logger) *GuildStatsScraper {
	return &GuildStatsScraper{
		httpClient:  httpClient,
		urlTemplate: urlTemplate,
		logger:      logger,
	}
}

func (s *GuildStatsScraper) URL(guild string) string {
	return fmt.Sprintf(s.urlTemplate, url.QueryEscape(guild))
}

// FetchExperienceTable downloads and parses the statistics page. Any transport
// failure or non-2xx status is returned as a *errors.FetchError.
func (s *GuildStatsScraper) FetchExperienceTable(ctx context.Context, guild string) ([]domain.ExperienceRecord, error) {
	pageURL := s.URL(guild)

	s.logger.Info("Fetching experience table", zap.String("url", pageURL))

	resp, err := s.httpClient.R().
		SetContext(ctx).
		SetHeader("Accept", "text/html").
		Get(pageURL)
	if err != nil {
		return nil, errors.NewFetchError(guildStatsSource, pageURL, 0, err)
	}

	if !resp.IsSuccess() {
		return nil, errors.NewFetchError(guildStatsSource, pageURL, resp.StatusCode(), nil)
	}

	records, stats, err := ParseExperienceTable(bytes.NewReader(resp.Body()))
	if err != nil {
		return nil, errors.NewParseError("HTML parse failed", guildStatsSource, err)
	}

	if len(records) == 0 {
		s.logger.Warn("No member rows found - page structure may have changed",
			zap.String("url", pageURL),
			zap.Int("rows", stats.Rows))
	}

	if stats.Duplicates > 0 {
		s.logger.Warn("Duplicate character rows dropped",
			zap.Int("duplicates", stats.Duplicates))
	}

	s.logger.Info("Experience table fetched",
		zap.Int("members", len(records)),
		zap.Int("rows", stats.Rows),
		zap.Int("skipped", stats.Skipped))

	return records, nil
}
