package domain

import (
	"fmt"
	"strings"
)

// Metric selects which experience delta a ranking is built from.
type Metric int

const (
	MetricYesterday Metric = iota
	Metric7Days
	Metric30Days
)

// Metrics lists every metric in snapshot order.
var Metrics = []Metric{MetricYesterday, Metric7Days, Metric30Days}

// Key returns the JSON key the metric's ranking is stored under.
func (m Metric) Key() string {
	switch m {
	case MetricYesterday:
		return "yesterday"
	case Metric7Days:
		return "7days"
	case Metric30Days:
		return "30days"
	default:
		return fmt.Sprintf("metric(%d)", int(m))
	}
}

func (m Metric) String() string {
	return m.Key()
}

// Value reads the metric from a record.
func (m Metric) Value(r ExperienceRecord) int64 {
	switch m {
	case MetricYesterday:
		return r.ExpYesterday
	case Metric7Days:
		return r.Exp7Days
	case Metric30Days:
		return r.Exp30Days
	default:
		return 0
	}
}

type RankingEntry struct {
	Rank     int    `json:"rank"`
	Name     string `json:"name"`
	Vocation string `json:"vocation"`
	Level    int    `json:"level"`
	Points   int64  `json:"points"`
	IsExtra  bool   `json:"is_extra"`
}

type Rankings struct {
	Yesterday  []RankingEntry `json:"yesterday"`
	SevenDays  []RankingEntry `json:"7days"`
	ThirtyDays []RankingEntry `json:"30days"`
}

// For returns the ranking stored for a metric.
func (r Rankings) For(m Metric) []RankingEntry {
	switch m {
	case MetricYesterday:
		return r.Yesterday
	case Metric7Days:
		return r.SevenDays
	case Metric30Days:
		return r.ThirtyDays
	default:
		return nil
	}
}

// Set stores a ranking under its metric.
func (r *Rankings) Set(m Metric, entries []RankingEntry) {
	switch m {
	case MetricYesterday:
		r.Yesterday = entries
	case Metric7Days:
		r.SevenDays = entries
	case Metric30Days:
		r.ThirtyDays = entries
	}
}

// NameKey is the case-insensitive key both sources are joined on.
func NameKey(name string) string {
	return strings.ToLower(name)
}
