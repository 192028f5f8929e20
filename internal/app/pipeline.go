package app

import (
	"context"
	"time"

	"github.com/blackout-luminera/guild-xp-ranking/internal/domain"
	"github.com/blackout-luminera/guild-xp-ranking/internal/ranking"
	"github.com/blackout-luminera/guild-xp-ranking/internal/snapshot"
	"github.com/sourcegraph/conc"
	"go.uber.org/zap"
)

// StatisticsFetcher loads the experience table. Its error aborts the run.
type StatisticsFetcher interface {
	FetchExperienceTable(ctx context.Context, guild string) ([]domain.ExperienceRecord, error)
}

// DirectoryFetcher loads the roster. It has no error channel: a failed fetch
// is an empty directory.
type DirectoryFetcher interface {
	FetchDirectory(ctx context.Context, guild string) domain.Directory
}

type SnapshotWriter interface {
	Write(snap domain.Snapshot) error
	Path() string
}

type SnapshotPublisher interface {
	Publish(ctx context.Context, document []byte, at time.Time) error
}

type PipelineOptions struct {
	Guild    string
	World    string
	TopN     int
	Location *time.Location
}

// Pipeline runs one fetch, merge, rank and write cycle.
type Pipeline struct {
	opts       PipelineOptions
	statistics StatisticsFetcher
	directory  DirectoryFetcher
	writer     SnapshotWriter
	publisher  SnapshotPublisher
	now        func() time.Time
	logger     *zap.Logger
}

// Result describes a completed run.
type Result struct {
	Snapshot    domain.Snapshot
	Path        string
	Unmatched   []string
	Suggestions []ranking.Suggestion
}

func NewPipeline(opts PipelineOptions, statistics StatisticsFetcher, directory DirectoryFetcher, writer SnapshotWriter, logger *zap.Logger) *Pipeline {
	if opts.Location == nil {
		opts.Location = time.Local
	}
	return &Pipeline{
		opts:       opts,
		statistics: statistics,
		directory:  directory,
		writer:     writer,
		now:        time.Now,
		logger:     logger,
	}
}

// WithPublisher mirrors every written snapshot. Publishing failures are logged only.
func (p *Pipeline) WithPublisher(publisher SnapshotPublisher) *Pipeline {
	p.publisher = publisher
	return p
}

// WithClock replaces the generation clock.
func (p *Pipeline) WithClock(now func() time.Time) *Pipeline {
	p.now = now
	return p
}

func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	p.logger.Info("Updating ranking",
		zap.String("guild", p.opts.Guild),
		zap.String("world", p.opts.World),
		zap.Int("top_n", p.opts.TopN))

	var (
		dir      domain.Directory
		records  []domain.ExperienceRecord
		fetchErr error
		wg       conc.WaitGroup
	)
	wg.Go(func() {
		dir = p.directory.FetchDirectory(ctx, p.opts.Guild)
	})
	wg.Go(func() {
		records, fetchErr = p.statistics.FetchExperienceTable(ctx, p.opts.Guild)
	})
	wg.Wait()

	if fetchErr != nil {
		return nil, fetchErr
	}
	if dir == nil {
		dir = domain.Directory{}
	}

	merged := ranking.Merge(records, dir)
	unmatched := ranking.Unmatched(merged, dir)
	suggestions := ranking.SuggestMatches(unmatched, dir)

	p.logger.Info("Vocations applied",
		zap.Int("members", len(merged)),
		zap.Int("directory", len(dir)),
		zap.Int("unmatched", len(unmatched)))
	for _, s := range suggestions {
		p.logger.Debug("Unmatched member resembles directory entry",
			zap.String("name", s.Name),
			zap.String("candidate", s.Candidate),
			zap.Float64("score", s.Score))
	}

	rankings := ranking.BuildRankings(merged, p.opts.TopN)
	generatedAt := p.now()
	snap := snapshot.Build(p.opts.Guild, p.opts.World, merged, rankings, generatedAt, p.opts.Location)

	if err := p.writer.Write(snap); err != nil {
		return nil, err
	}

	if p.publisher != nil {
		if document, err := snapshot.Encode(snap); err != nil {
			p.logger.Warn("Snapshot mirror skipped", zap.Error(err))
		} else if err := p.publisher.Publish(ctx, document, generatedAt); err != nil {
			p.logger.Warn("Snapshot mirror failed, file snapshot is unaffected", zap.Error(err))
		}
	}

	for _, metric := range domain.Metrics {
		p.logger.Info("Ranking built",
			zap.String("metric", metric.Key()),
			zap.Int("entries", len(snap.Rankings.For(metric))))
	}

	return &Result{
		Snapshot:    snap,
		Path:        p.writer.Path(),
		Unmatched:   unmatched,
		Suggestions: suggestions,
	}, nil
}
