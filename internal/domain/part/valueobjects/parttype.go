// Package valueobjects provides value objects for the part domain.
package valueobjects

// PartType represents the hardware category of a part.
type PartType string

const (
	PartTypeCPU     PartType = "CPU"
	PartTypeMonitor PartType = "Monitor"
	PartTypeMouse   PartType = "Mouse"
)

var validPartTypes = map[PartType]bool{
	PartTypeCPU:     true,
	PartTypeMonitor: true,
	PartTypeMouse:   true,
}

// String returns the string representation.
func (t PartType) String() string {
	return string(t)
}

// IsValid checks if the part type is valid.
func (t PartType) IsValid() bool {
	return validPartTypes[t]
}

// ValidPartTypes returns the list of accepted part types.
func ValidPartTypes() []PartType {
	return []PartType{PartTypeCPU, PartTypeMonitor, PartTypeMouse}
}
