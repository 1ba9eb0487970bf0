package tournament

// Tournament is a club competition. Participants is a headcount only:
// registration never records who registered. Status is free text and
// empty for every seeded tournament.
type Tournament struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Date         string `json:"date"`
	Participants int    `json:"participants"`
	Status       string `json:"status"`
}

// Register adds one participant.
// PRE: none
// POST: Participants increased by exactly one
// INVARIANT: there is no capacity limit
func (t *Tournament) Register() {
	t.Participants++
}

// HasEntrants reports whether anyone has registered.
func (t Tournament) HasEntrants() bool {
	return t.Participants > 0
}
