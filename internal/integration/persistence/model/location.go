// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/Somebud0180/rInventory-sub001/internal/domain/entity"
)

// LocationModel represents the locations table in the database. The color is
// stored in its canonical 4-byte R,G,B,A form; blobs that fail to decode
// fall back to white when mapped to the entity.
type LocationModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(50);not null"`
	ColorData    []byte    `gorm:"type:blob"`
	SortOrder    int       `gorm:"not null;default:0;index"`
	DisplayInRow bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// TableName returns the table name for the LocationModel.
func (LocationModel) TableName() string {
	return "locations"
}

// ToEntity converts a LocationModel to a domain Location entity.
func (m *LocationModel) ToEntity() *entity.Location {
	return &entity.Location{
		ID:           m.ID,
		Name:         m.Name,
		Color:        entity.ColorFromBytes(m.ColorData, entity.ColorWhite),
		SortOrder:    m.SortOrder,
		DisplayInRow: m.DisplayInRow,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// LocationFromEntity creates a LocationModel from a domain Location entity.
func LocationFromEntity(location *entity.Location) *LocationModel {
	return &LocationModel{
		ID:           location.ID,
		Name:         location.Name,
		ColorData:    location.Color.Bytes(),
		SortOrder:    location.SortOrder,
		DisplayInRow: location.DisplayInRow,
		CreatedAt:    location.CreatedAt,
		UpdatedAt:    location.UpdatedAt,
	}
}
