package entities

// Meeting type constants
const (
	MeetingTypeInternal = "internal"
	MeetingTypeExternal = "external"
)

// Classification is the routing signal produced by the first analysis pass
type Classification struct {
	MeetingType string `json:"meeting_type"`
	ClientName  string `json:"client_name"`
}

// Normalize enforces the classification invariant: internal meetings never
// carry a client name, even when the model returned one.
func (c *Classification) Normalize() {
	if c.MeetingType == MeetingTypeInternal {
		c.ClientName = "N/A"
	}
	if c.ClientName == "" {
		c.ClientName = "N/A"
	}
}

// IsExternal reports whether this meeting was classified as external with a
// resolved client name.
func (c Classification) IsExternal() bool {
	return c.MeetingType == MeetingTypeExternal && c.ClientName != "" && c.ClientName != "N/A"
}
