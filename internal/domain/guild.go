package domain

// DirectoryEntry is the roster data the directory source holds for one character.
type DirectoryEntry struct {
	Vocation string `json:"vocation"`
	Level    int    `json:"level"`
}

// Directory maps lower-cased character names to their roster entry.
type Directory map[string]DirectoryEntry

func (d Directory) Lookup(name string) (DirectoryEntry, bool) {
	entry, ok := d[NameKey(name)]
	return entry, ok
}

// ExperienceRecord is one member row from the statistics page, enriched by the directory.
type ExperienceRecord struct {
	Name         string `json:"name"`
	Level        int    `json:"level"`
	ExpYesterday int64  `json:"exp_yesterday"`
	Exp7Days     int64  `json:"exp_7days"`
	Exp30Days    int64  `json:"exp_30days"`
	Vocation     string `json:"vocation"`
	IsExtra      bool   `json:"is_extra"`
}
