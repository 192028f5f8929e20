package domain

// Snapshot is the single document a run produces. Field order is the on-disk key order.
type Snapshot struct {
	Guild             string   `json:"guild"`
	World             string   `json:"world"`
	LastUpdate        string   `json:"last_update"`
	LastUpdateDisplay string   `json:"last_update_display"`
	TotalMembers      int      `json:"total_members"`
	Rankings          Rankings `json:"rankings"`
}
