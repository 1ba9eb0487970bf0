package notification

// Notification types drive the badge colour on the dashboard.
const (
	TypeInfo    = "info"
	TypeWarning = "warning"
	TypeSuccess = "success"
)

// Notification is a dismissible dashboard message.
// Time is a display string such as "hace 5 minutos"; it is never parsed.
type Notification struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Time    string `json:"time"`
	Type    string `json:"type"`
}

// EffectiveType returns Type, defaulting to info.
func (n Notification) EffectiveType() string {
	switch n.Type {
	case TypeWarning, TypeSuccess:
		return n.Type
	}
	return TypeInfo
}
