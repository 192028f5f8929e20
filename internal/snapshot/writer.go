package snapshot

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/blackout-luminera/guild-xp-ranking/internal/domain"
	"github.com/blackout-luminera/guild-xp-ranking/internal/util"
	"github.com/blackout-luminera/guild-xp-ranking/pkg/errors"
	"go.uber.org/zap"
)

const (
	LastUpdateLayout        = "2006-01-02 15:04:05"
	LastUpdateDisplayLayout = "02/01/2006 às 15:04"
)

// Build assembles the snapshot. Both timestamps come from the same instant and
// total_members counts every merged record, ranked or not.
func Build(guild, world string, records []domain.ExperienceRecord, rankings domain.Rankings, at time.Time, loc *time.Location) domain.Snapshot {
	for _, metric := range domain.Metrics {
		if rankings.For(metric) == nil {
			rankings.Set(metric, []domain.RankingEntry{})
		}
	}

	return domain.Snapshot{
		Guild:             guild,
		World:             world,
		LastUpdate:        util.FormatIn(at, loc, LastUpdateLayout),
		LastUpdateDisplay: util.FormatIn(at, loc, LastUpdateDisplayLayout),
		TotalMembers:      len(records),
		Rankings:          rankings,
	}
}

// Encode renders the snapshot as indented JSON without escaping non-ASCII or HTML characters.
func Encode(snap domain.Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type Writer struct {
	path   string
	logger *zap.Logger
}

func NewWriter(path string, logger *zap.Logger) *Writer {
	return &Writer{path: path, logger: logger}
}

func (w *Writer) Path() string {
	return w.path
}

// Write replaces the snapshot file atomically: the document is written next to
// the destination and renamed over it.
func (w *Writer) Write(snap domain.Snapshot) error {
	data, err := Encode(snap)
	if err != nil {
		return errors.NewWriteError("failed to encode snapshot", w.path, err)
	}

	if err := os.MkdirAll(filepath.Dir(w.path), 0o755); err != nil {
		return errors.NewWriteError("failed to create output directory", w.path, err)
	}

	tmpFile := w.path + ".tmp"
	if err := os.WriteFile(tmpFile, data, 0o644); err != nil {
		_ = os.Remove(tmpFile)
		return errors.NewWriteError("failed to write snapshot", w.path, err)
	}
	if err := os.Rename(tmpFile, w.path); err != nil {
		_ = os.Remove(tmpFile)
		return errors.NewWriteError("failed to finalize snapshot", w.path, err)
	}

	w.logger.Info("Snapshot written",
		zap.String("path", w.path),
		zap.Int("bytes", len(data)),
		zap.Int("total_members", snap.TotalMembers))

	return nil
}
