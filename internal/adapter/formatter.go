package adapter

import (
	"fmt"
	"strings"

	"github.com/blackout-luminera/guild-xp-ranking/internal/domain"
	"github.com/blackout-luminera/guild-xp-ranking/internal/ranking"
	"github.com/jedib0t/go-pretty/v6/table"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var metricTitles = map[domain.Metric]string{
	domain.MetricYesterday: "Ontem",
	domain.Metric7Days:     "7 dias",
	domain.Metric30Days:    "30 dias",
}

// ReportFormatter renders the operator report printed after a run.
type ReportFormatter struct {
	printer *message.Printer
	limit   int
}

// NewReportFormatter shows at most limit entries per ranking; limit <= 0 shows all.
func NewReportFormatter(limit int) *ReportFormatter {
	return &ReportFormatter{
		printer: message.NewPrinter(language.BrazilianPortuguese),
		limit:   limit,
	}
}

// FormatSummary lists how many characters made each ranking and who leads it.
func (f *ReportFormatter) FormatSummary(snap domain.Snapshot, path string) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.SetTitle(fmt.Sprintf("%s (%s) - %s", snap.Guild, snap.World, snap.LastUpdateDisplay))
	t.AppendHeader(table.Row{"Ranking", "Jogadores", "Líder", "Pontos"})

	for _, metric := range domain.Metrics {
		entries := snap.Rankings.For(metric)
		leader, points := "-", "-"
		if len(entries) > 0 {
			leader = entries[0].Name
			points = f.FormatPoints(entries[0].Points)
		}
		t.AppendRow(table.Row{metricTitles[metric], len(entries), leader, points})
	}

	t.AppendFooter(table.Row{"Membros", snap.TotalMembers, "", ""})

	var sb strings.Builder
	sb.WriteString(t.Render())
	if path != "" {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("Salvo em: %s", path))
	}
	return sb.String()
}

func (f *ReportFormatter) FormatRanking(metric domain.Metric, entries []domain.RankingEntry) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.SetTitle(metricTitles[metric])
	t.AppendHeader(table.Row{"#", "Nome", "Vocação", "Level", "Pontos"})

	shown := entries
	if f.limit > 0 && len(shown) > f.limit {
		shown = shown[:f.limit]
	}
	for _, e := range shown {
		vocation := e.Vocation
		if vocation == "" {
			vocation = "-"
		}
		t.AppendRow(table.Row{e.Rank, e.Name, vocation, e.Level, f.FormatPoints(e.Points)})
	}
	if len(shown) < len(entries) {
		t.AppendFooter(table.Row{"", fmt.Sprintf("+%d", len(entries)-len(shown)), "", "", ""})
	}
	return t.Render()
}

// FormatUnmatched lists names the directory did not know, with any close candidate.
func (f *ReportFormatter) FormatUnmatched(unmatched []string, suggestions []ranking.Suggestion) string {
	if len(unmatched) == 0 {
		return ""
	}

	candidates := make(map[string]string, len(suggestions))
	for _, s := range suggestions {
		candidates[s.Name] = s.Candidate
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.SetTitle("Sem vocação")
	t.AppendHeader(table.Row{"Nome", "Parecido com"})
	for _, name := range unmatched {
		candidate := candidates[name]
		if candidate == "" {
			candidate = "-"
		}
		t.AppendRow(table.Row{name, candidate})
	}
	return t.Render()
}

// FormatPoints groups thousands the pt-BR way, e.g. 1.234.567.
func (f *ReportFormatter) FormatPoints(points int64) string {
	return f.printer.Sprintf("%d", points)
}
