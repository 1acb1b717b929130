package entities

import (
	"github.com/google/uuid"
)

type Category struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID uuid.UUID `json:"user_id"`
	Name   string    `json:"name"`

	User  *User           `gorm:"foreignKey:UserID"`
	Items []*CategoryItem `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
	Timestamp
}

type CategoryItem struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	CategoryID uuid.UUID `json:"category_id"`
	Name       string    `json:"name"`

	Category *Category `gorm:"foreignKey:CategoryID"`
	Timestamp
}
