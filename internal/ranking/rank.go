package ranking

import (
	"cmp"
	"slices"

	"github.com/blackout-luminera/guild-xp-ranking/internal/domain"
)

// Rank builds the top-N leaderboard for one metric.
//
// Only strictly positive values qualify. Records are ordered by value, highest
// first; equal values keep their relative input order. Ranks are 1..len.
func Rank(records []domain.ExperienceRecord, metric domain.Metric, topN int) []domain.RankingEntry {
	if topN <= 0 {
		return []domain.RankingEntry{}
	}

	eligible := make([]domain.ExperienceRecord, 0, len(records))
	for _, rec := range records {
		if metric.Value(rec) > 0 {
			eligible = append(eligible, rec)
		}
	}

	slices.SortStableFunc(eligible, func(a, b domain.ExperienceRecord) int {
		return cmp.Compare(metric.Value(b), metric.Value(a))
	})

	if len(eligible) > topN {
		eligible = eligible[:topN]
	}

	entries := make([]domain.RankingEntry, 0, len(eligible))
	for i, rec := range eligible {
		entries = append(entries, domain.RankingEntry{
			Rank:     i + 1,
			Name:     rec.Name,
			Vocation: rec.Vocation,
			Level:    rec.Level,
			Points:   metric.Value(rec),
			IsExtra:  rec.IsExtra,
		})
	}
	return entries
}

// BuildRankings ranks the records once per metric.
func BuildRankings(records []domain.ExperienceRecord, topN int) domain.Rankings {
	var rankings domain.Rankings
	for _, metric := range domain.Metrics {
		rankings.Set(metric, Rank(records, metric, topN))
	}
	return rankings
}
