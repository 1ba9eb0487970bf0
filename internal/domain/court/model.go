package court

// Court is a bookable padel court with its open slots.
type Court struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Availability []string `json:"availability"`
}

// Offers reports whether slot is one of the court's listed times.
func (c Court) Offers(slot string) bool {
	for _, s := range c.Availability {
		if s == slot {
			return true
		}
	}
	return false
}

// Defaults are the courts offered in the member booking dialog.
func Defaults() []Court {
	return []Court{
		{ID: "1", Name: "Pista 1", Availability: []string{"09:00", "10:00", "11:00"}},
		{ID: "2", Name: "Pista 2", Availability: []string{"14:00", "15:00", "16:00"}},
		{ID: "3", Name: "Pista 3", Availability: []string{"09:00", "10:00", "11:00"}},
	}
}

// FindByName returns the court with the given display name.
func FindByName(courts []Court, name string) (Court, bool) {
	for _, c := range courts {
		if c.Name == name {
			return c, true
		}
	}
	return Court{}, false
}
