package models

import "time"

type Guide struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"size:255"`
	Description string `json:"description" gorm:"type:text"`
	Category    string `json:"category" gorm:"size:60;index"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
