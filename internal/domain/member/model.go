package member

// Membership types shown in the admin members table.
const (
	MembershipPremium  = "Premium"
	MembershipStandard = "Estándar"
)

// Member is a club member as listed in the admin dashboard.
// Creation performs no validation: the add-member dialog accepts any input.
type Member struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	MembershipType string `json:"membershipType"`
}

// New builds a Member, defaulting the membership type to Estándar.
// PRE: id is non-empty
// POST: MembershipType is never empty
func New(id, name, email string) Member {
	return Member{
		ID:             id,
		Name:           name,
		Email:          email,
		MembershipType: MembershipStandard,
	}
}

// IsPremium reports whether the member holds a premium membership.
func (m Member) IsPremium() bool {
	return m.MembershipType == MembershipPremium
}
