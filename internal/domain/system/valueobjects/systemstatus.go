// Package valueobjects provides value objects for the system domain.
package valueobjects

// SystemStatus represents the allocation state of a system.
type SystemStatus string

const (
	SystemStatusUnassigned  SystemStatus = "unassigned"
	SystemStatusAssigned    SystemStatus = "assigned"
	SystemStatusDeallocated SystemStatus = "deallocated"
)

var validSystemStatuses = map[SystemStatus]bool{
	SystemStatusUnassigned:  true,
	SystemStatusAssigned:    true,
	SystemStatusDeallocated: true,
}

// String returns the string representation.
func (s SystemStatus) String() string {
	return string(s)
}

// IsValid checks if the status is valid.
func (s SystemStatus) IsValid() bool {
	return validSystemStatuses[s]
}
