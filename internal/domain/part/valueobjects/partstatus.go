package valueobjects

// PartStatus represents the usability state of a part.
type PartStatus string

const (
	PartStatusActive   PartStatus = "active"
	PartStatusUnusable PartStatus = "unusable"
)

var validPartStatuses = map[PartStatus]bool{
	PartStatusActive:   true,
	PartStatusUnusable: true,
}

// String returns the string representation.
func (s PartStatus) String() string {
	return string(s)
}

// IsValid checks if the status is valid.
func (s PartStatus) IsValid() bool {
	return validPartStatuses[s]
}
