package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/blackout-luminera/guild-xp-ranking/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const guildPayload = `{
  "guild": {
    "name": "Blackout",
    "members": [
      {"name": "Ana", "vocation": "Elder Druid", "level": 300, "status": "online"},
      {"name": "Bob the Knight", "vocation": "Elite Knight", "level": 150},
      {"name": "", "vocation": "Sorcerer", "level": 8}
    ]
  },
  "information": {"api": {"version": 4}}
}`

func newDirectoryServer(t *testing.T, status int, body string) (*httptest.Server, func() string) {
	t.Helper()
	var mu sync.Mutex
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		path = r.URL.EscapedPath()
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, func() string {
		mu.Lock()
		defer mu.Unlock()
		return path
	}
}

func TestTibiaDataClientFetchDirectory(t *testing.T) {
	srv, path := newDirectoryServer(t, http.StatusOK, guildPayload)
	client := NewTibiaDataClient(NewHTTPClient(5*time.Second, "test-agent"), srv.URL+"/v4/", zap.NewNop())

	dir := client.FetchDirectory(context.Background(), "Black Out")

	assert.Equal(t, "/v4/guild/Black%20Out", path())
	assert.Equal(t, domain.Directory{
		"ana":            {Vocation: "Elder Druid", Level: 300},
		"bob the knight": {Vocation: "Elite Knight", Level: 150},
	}, dir)
}

func TestTibiaDataClientFailuresYieldEmptyDirectory(t *testing.T) {
	cases := map[string]struct {
		status int
		body   string
	}{
		"server error":     {http.StatusInternalServerError, guildPayload},
		"not found":        {http.StatusNotFound, `{"error":"not found"}`},
		"invalid json":     {http.StatusOK, `{"guild": {"members": [`},
		"missing guild":    {http.StatusOK, `{"information": {}}`},
		"missing members":  {http.StatusOK, `{"guild": {"name": "Blackout"}}`},
		"null members":     {http.StatusOK, `{"guild": {"members": null}}`},
		"wrong level type": {http.StatusOK, `{"guild": {"members": [{"name": "Ana", "level": "high"}]}}`},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			srv, _ := newDirectoryServer(t, tc.status, tc.body)
			client := NewTibiaDataClient(NewHTTPClient(5*time.Second, "test-agent"), srv.URL, zap.NewNop())

			dir := client.FetchDirectory(context.Background(), "Blackout")

			require.NotNil(t, dir)
			assert.Empty(t, dir)
		})
	}
}

func TestTibiaDataClientUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := srv.URL
	srv.Close()

	client := NewTibiaDataClient(NewHTTPClient(time.Second, "test-agent"), addr, zap.NewNop())

	assert.Empty(t, client.FetchDirectory(context.Background(), "Blackout"))
}

func TestParseDirectoryDuplicateNamesFirstWins(t *testing.T) {
	body := []byte(`{"guild": {"members": [
		{"name": "Ana", "vocation": "Druid", "level": 100},
		{"name": "ANA", "vocation": "Knight", "level": 200}
	]}}`)

	dir, err := ParseDirectory(body)

	require.NoError(t, err)
	assert.Equal(t, domain.Directory{"ana": {Vocation: "Druid", Level: 100}}, dir)
}

func TestParseDirectoryEmptyMemberList(t *testing.T) {
	dir, err := ParseDirectory([]byte(`{"guild": {"members": []}}`))

	require.NoError(t, err)
	assert.Empty(t, dir)
}
