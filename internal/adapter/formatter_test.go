package adapter

import (
	"strings"
	"testing"

	"github.com/blackout-luminera/guild-xp-ranking/internal/domain"
	"github.com/blackout-luminera/guild-xp-ranking/internal/ranking"
	"github.com/stretchr/testify/assert"
)

func sampleSnapshot() domain.Snapshot {
	return domain.Snapshot{
		Guild:             "Blackout",
		World:             "Luminera",
		LastUpdateDisplay: "18/10/2026 às 12:30",
		TotalMembers:      3,
		Rankings: domain.Rankings{
			Yesterday: []domain.RankingEntry{
				{Rank: 1, Name: "Ana", Vocation: "Druid", Level: 300, Points: 1234567},
				{Rank: 2, Name: "Bob", Level: 50, Points: 10},
			},
			SevenDays:  []domain.RankingEntry{},
			ThirtyDays: []domain.RankingEntry{},
		},
	}
}

func TestFormatPoints(t *testing.T) {
	f := NewReportFormatter(0)

	assert.Equal(t, "1.234.567", f.FormatPoints(1234567))
	assert.Equal(t, "999", f.FormatPoints(999))
}

func TestFormatSummary(t *testing.T) {
	out := NewReportFormatter(0).FormatSummary(sampleSnapshot(), "dados/ranking.json")

	assert.Contains(t, out, "Blackout (Luminera)")
	assert.Contains(t, out, "Ontem")
	assert.Contains(t, out, "Ana")
	assert.Contains(t, out, "1.234.567")
	assert.Contains(t, out, "Salvo em: dados/ranking.json")
}

func TestFormatRankingLimit(t *testing.T) {
	snap := sampleSnapshot()

	out := NewReportFormatter(1).FormatRanking(domain.MetricYesterday, snap.Rankings.Yesterday)

	assert.Contains(t, out, "Ana")
	assert.NotContains(t, out, "Bob")
	assert.Contains(t, out, "+1")
}

func TestFormatRankingEmptyVocation(t *testing.T) {
	snap := sampleSnapshot()

	out := NewReportFormatter(0).FormatRanking(domain.MetricYesterday, snap.Rankings.Yesterday)

	lines := strings.Split(out, "\n")
	var bobLine string
	for _, line := range lines {
		if strings.Contains(line, "Bob") {
			bobLine = line
		}
	}
	assert.Contains(t, bobLine, "-")
}

func TestFormatUnmatched(t *testing.T) {
	f := NewReportFormatter(0)

	assert.Equal(t, "", f.FormatUnmatched(nil, nil))

	out := f.FormatUnmatched([]string{"Lord Paladim", "Zed"}, []ranking.Suggestion{
		{Name: "Lord Paladim", Candidate: "lord paladin", Score: 0.97},
	})
	assert.Contains(t, out, "lord paladin")
	assert.Contains(t, out, "Zed")
}
