package entities

import (
	"github.com/google/uuid"
)

type Trip struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	Name       string    `json:"name"`
	IsComplete bool      `json:"is_complete"`

	User           *User           `gorm:"foreignKey:UserID"`
	TripCategories []*TripCategory `gorm:"foreignKey:TripID;constraint:OnDelete:CASCADE"`
	Items          []*TripItem     `gorm:"foreignKey:TripID;constraint:OnDelete:CASCADE"`
	Timestamp
}

// TripCategory records which categories a trip was built from. CategoryName
// is copied at creation time and never synced with the source category.
type TripCategory struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	TripID       uuid.UUID  `json:"trip_id"`
	CategoryID   *uuid.UUID `json:"category_id,omitempty"`
	CategoryName string     `json:"category_name"`

	Trip     *Trip       `gorm:"foreignKey:TripID"`
	Category *Category   `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
	Items    []*TripItem `gorm:"foreignKey:TripCategoryID"`
	Timestamp
}

type TripItem struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	TripID           uuid.UUID  `json:"trip_id"`
	TripCategoryID   *uuid.UUID `json:"trip_category_id,omitempty"`
	Name             string     `json:"name"`
	IsPacked         bool       `json:"is_packed"`
	IsCustom         bool       `json:"is_custom"`
	SourceCategoryID *uuid.UUID `json:"source_category_id,omitempty"`

	Trip           *Trip         `gorm:"foreignKey:TripID"`
	TripCategory   *TripCategory `gorm:"foreignKey:TripCategoryID;constraint:OnDelete:SET NULL"`
	SourceCategory *Category     `gorm:"foreignKey:SourceCategoryID;constraint:OnDelete:SET NULL"`
	Timestamp
}
