package snapshot

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/blackout-luminera/guild-xp-ranking/internal/domain"
	rankingerrors "github.com/blackout-luminera/guild-xp-ranking/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var saoPaulo = time.FixedZone("BRT", -3*60*60)

func sampleSnapshot() domain.Snapshot {
	records := []domain.ExperienceRecord{{Name: "Ana"}, {Name: "Bob"}, {Name: "Çåø"}}
	rankings := domain.Rankings{
		Yesterday: []domain.RankingEntry{{Rank: 1, Name: "Çåø", Vocation: "Druid", Level: 300, Points: 5000}},
	}
	at := time.Date(2026, 10, 18, 21, 7, 9, 0, time.UTC)
	return Build("Blackout", "Luminera", records, rankings, at, saoPaulo)
}

func TestBuild(t *testing.T) {
	snap := sampleSnapshot()

	assert.Equal(t, "Blackout", snap.Guild)
	assert.Equal(t, "Luminera", snap.World)
	assert.Equal(t, 3, snap.TotalMembers)
	assert.Equal(t, "2026-10-18 18:07:09", snap.LastUpdate)
	assert.Equal(t, "18/10/2026 às 18:07", snap.LastUpdateDisplay)
	assert.NotNil(t, snap.Rankings.SevenDays)
	assert.NotNil(t, snap.Rankings.ThirtyDays)
}

func TestEncodeKeyOrderAndLiterals(t *testing.T) {
	snap := sampleSnapshot()
	snap.Guild = "Black & <Out>"

	data, err := Encode(snap)
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, `"guild": "Black & <Out>"`)
	assert.Contains(t, out, `"name": "Çåø"`)
	assert.Contains(t, out, `"7days": []`)

	keys := []string{`"guild"`, `"world"`, `"last_update"`, `"last_update_display"`, `"total_members"`, `"rankings"`, `"yesterday"`, `"7days"`, `"30days"`}
	last := -1
	for _, key := range keys {
		idx := strings.Index(out, key)
		require.Greater(t, idx, last, "key %s out of order", key)
		last = idx
	}

	entryKeys := []string{`"rank"`, `"name"`, `"vocation"`, `"level"`, `"points"`, `"is_extra"`}
	last = strings.Index(out, `"yesterday"`)
	for _, key := range entryKeys {
		idx := strings.Index(out[last:], key)
		require.GreaterOrEqual(t, idx, 0, "key %s missing", key)
		last += idx
	}
}

func TestWriterCreatesDirectoryAndReplacesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dados", "ranking.json")
	w := NewWriter(path, zap.NewNop())

	first := sampleSnapshot()
	require.NoError(t, w.Write(first))

	second := sampleSnapshot()
	second.TotalMembers = 99
	require.NoError(t, w.Write(second))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"total_members": 99`)

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestWriterFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "dados")
	require.NoError(t, os.WriteFile(blocker, []byte("not a directory"), 0o644))

	w := NewWriter(filepath.Join(blocker, "ranking.json"), zap.NewNop())
	err := w.Write(sampleSnapshot())

	require.Error(t, err)
	var writeErr *rankingerrors.WriteError
	require.True(t, errors.As(err, &writeErr))
	assert.Equal(t, filepath.Join(blocker, "ranking.json"), writeErr.Path)
}
