package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/blackout-luminera/guild-xp-ranking/internal/domain"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

type tibiaDataMember struct {
	Name     string `json:"name"`
	Vocation string `json:"vocation"`
	Level    int    `json:"level"`
}

type tibiaDataGuildResponse struct {
	Guild *struct {
		Members *[]tibiaDataMember `json:"members"`
	} `json:"guild"`
}

// TibiaDataClient reads the guild roster used to enrich the experience table.
type TibiaDataClient struct {
	httpClient *resty.Client
	baseURL    string
	logger     *zap.Logger
}

func NewTibiaDataClient(httpClient *resty.Client, baseURL string, logger *zap.Logger) *TibiaDataClient {
	return &TibiaDataClient{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		logger:     logger,
	}
}

func (c *TibiaDataClient) URL(guild string) string {
	return c.baseURL + "/guild/" + url.PathEscape(guild)
}

// FetchDirectory never fails: the roster only enriches records, so any problem
// is logged and an empty directory is returned.
func (c *TibiaDataClient) FetchDirectory(ctx context.Context, guild string) domain.Directory {
	dir, err := c.fetchDirectory(ctx, guild)
	if err != nil {
		c.logger.Warn("Guild directory unavailable, continuing without vocations",
			zap.String("guild", guild),
			zap.Error(err))
		return domain.Directory{}
	}

	c.logger.Info("Guild directory loaded", zap.Int("members", len(dir)))
	return dir
}

func (c *TibiaDataClient) fetchDirectory(ctx context.Context, guild string) (domain.Directory, error) {
	reqURL := c.URL(guild)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get(reqURL)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode())
	}

	return ParseDirectory(resp.Body())
}

// ParseDirectory builds a directory from a guild payload. The first member with
// a given lower-cased name wins; members without a name are ignored.
func ParseDirectory(body []byte) (domain.Directory, error) {
	var payload tibiaDataGuildResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode guild payload: %w", err)
	}
	if payload.Guild == nil || payload.Guild.Members == nil {
		return nil, fmt.Errorf("guild payload has no member list")
	}

	members := *payload.Guild.Members
	dir := make(domain.Directory, len(members))
	for _, m := range members {
		if m.Name == "" {
			continue
		}
		key := domain.NameKey(m.Name)
		if _, exists := dir[key]; exists {
			continue
		}
		dir[key] = domain.DirectoryEntry{Vocation: m.Vocation, Level: m.Level}
	}
	return dir, nil
}
