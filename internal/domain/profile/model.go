package profile

// Profile is the member's contact card. Edits are display-only and never stored.
type Profile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Default is the profile every member dashboard starts with.
func Default() Profile {
	return Profile{
		Name:  "John Doe",
		Email: "john@example.com",
		Phone: "+1 234 567 890",
	}
}
