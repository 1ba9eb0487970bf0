package settings

// Settings is the club settings form. Submitting it has no persistent effect.
type Settings struct {
	ClubName  string `json:"clubName"`
	ClubEmail string `json:"clubEmail"`
}

// Default returns the values the settings tab is pre-filled with.
func Default() Settings {
	return Settings{
		ClubName:  "Padel Cygnus",
		ClubEmail: "info@padelcygnus.com",
	}
}
