package ranking

import "github.com/blackout-luminera/guild-xp-ranking/internal/domain"

// Merge enriches statistics records with directory data. The directory always
// wins for vocation; level is only filled when the table did not provide one.
// The input slice is left untouched and the result has the same length and order.
func Merge(records []domain.ExperienceRecord, dir domain.Directory) []domain.ExperienceRecord {
	merged := make([]domain.ExperienceRecord, len(records))
	for i, rec := range records {
		if entry, ok := dir.Lookup(rec.Name); ok {
			rec.Vocation = entry.Vocation
			if rec.Level == 0 {
				rec.Level = entry.Level
			}
		}
		merged[i] = rec
	}
	return merged
}

// Unmatched returns the names that have no directory entry, in record order.
func Unmatched(records []domain.ExperienceRecord, dir domain.Directory) []string {
	names := make([]string, 0)
	for _, rec := range records {
		if _, ok := dir.Lookup(rec.Name); !ok {
			names = append(names, rec.Name)
		}
	}
	return names
}
