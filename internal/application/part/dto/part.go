// Package dto provides data transfer objects for the part domain.
package dto

import (
	"quartermaster/internal/domain/part"
)

// PartDTO represents the data transfer object for hardware parts.
type PartDTO struct {
	ID             string         `json:"id"`
	Type           string         `json:"type"`
	Barcode        string         `json:"barcode"`
	SerialNumber   string         `json:"serial_number"`
	Brand          string         `json:"brand"`
	Model          string         `json:"model"`
	Specs          map[string]any `json:"specs,omitempty"`
	Status         string         `json:"status"`
	UnusableReason *string        `json:"unusable_reason,omitempty"`
	Assigned       bool           `json:"assigned"`
	CreatedAt      string         `json:"created_at"`
	UpdatedAt      string         `json:"updated_at"`
}

// ToPartDTO converts a domain part to DTO.
func ToPartDTO(p *part.Part) *PartDTO {
	if p == nil {
		return nil
	}

	return &PartDTO{
		ID:             p.SID(),
		Type:           p.Type().String(),
		Barcode:        p.Barcode(),
		SerialNumber:   p.SerialNumber(),
		Brand:          p.Brand(),
		Model:          p.Model(),
		Specs:          p.Specs(),
		Status:         p.Status().String(),
		UnusableReason: p.UnusableReason(),
		Assigned:       p.IsAssigned(),
		CreatedAt:      p.CreatedAt().Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:      p.UpdatedAt().Format("2006-01-02T15:04:05Z07:00"),
	}
}

// ToPartDTOs converts a slice of domain parts to DTOs.
func ToPartDTOs(parts []*part.Part) []*PartDTO {
	dtos := make([]*PartDTO, len(parts))
	for i, p := range parts {
		dtos[i] = ToPartDTO(p)
	}
	return dtos
}
