// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/Somebud0180/rInventory-sub001/internal/domain/entity"
)

// ItemModel represents the items table in the database. The symbol color is
// stored in its canonical 4-byte R,G,B,A form.
type ItemModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name            string     `gorm:"type:varchar(100);not null;default:''"`
	Quantity        *int64     `gorm:""`
	ImageData       []byte     `gorm:"type:blob"`
	SymbolName      string     `gorm:"type:varchar(100);not null;default:''"`
	SymbolColorData []byte     `gorm:"type:blob"`
	SortOrder       int        `gorm:"not null;default:0;index"`
	CategoryID      *uuid.UUID `gorm:"type:uuid;index"`
	LocationID      *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt       time.Time  `gorm:"not null"`
	ModifiedAt      time.Time  `gorm:"not null"`
}

// TableName returns the table name for the ItemModel.
func (ItemModel) TableName() string {
	return "items"
}

// ToEntity converts an ItemModel to a domain Item entity.
func (m *ItemModel) ToEntity() *entity.Item {
	var symbolColor *entity.Color
	if len(m.SymbolColorData) > 0 {
		c := entity.ColorFromBytes(m.SymbolColorData, entity.ColorAccent)
		symbolColor = &c
	}

	return &entity.Item{
		ID:          m.ID,
		Name:        m.Name,
		Quantity:    m.Quantity,
		ImageData:   m.ImageData,
		SymbolName:  m.SymbolName,
		SymbolColor: symbolColor,
		SortOrder:   m.SortOrder,
		CategoryID:  m.CategoryID,
		LocationID:  m.LocationID,
		CreatedAt:   m.CreatedAt,
		ModifiedAt:  m.ModifiedAt,
	}
}

// ItemFromEntity creates an ItemModel from a domain Item entity.
func ItemFromEntity(item *entity.Item) *ItemModel {
	var symbolColorData []byte
	if item.SymbolColor != nil {
		symbolColorData = item.SymbolColor.Bytes()
	}

	return &ItemModel{
		ID:              item.ID,
		Name:            item.Name,
		Quantity:        item.Quantity,
		ImageData:       item.ImageData,
		SymbolName:      item.SymbolName,
		SymbolColorData: symbolColorData,
		SortOrder:       item.SortOrder,
		CategoryID:      item.CategoryID,
		LocationID:      item.LocationID,
		CreatedAt:       item.CreatedAt,
		ModifiedAt:      item.ModifiedAt,
	}
}
