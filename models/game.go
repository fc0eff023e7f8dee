package models

import "time"

type Game struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Title       string `json:"title" gorm:"size:255"`
	Subtitle    string `json:"subtitle" gorm:"size:255"`
	Type        string `json:"type" gorm:"size:60"`
	Image       string `json:"image" gorm:"size:120"`
	TimeDisplay string `json:"time_display" gorm:"column:time_display;size:60"`
	Description string `json:"description" gorm:"type:text"`

	// Tag strings matched by containment against the user quiz preferences.
	Ages        string `json:"ages" gorm:"size:120"`
	Time        string `json:"time" gorm:"size:120"`
	DoorType    string `json:"door_type" gorm:"column:door_type;size:120"`
	EnergyLevel string `json:"energy_level" gorm:"column:energy_level;size:120"`
	Stuff       string `json:"stuff" gorm:"size:120"`

	// Populated per request, not stored.
	Inventory []Inventory `json:"inventory" gorm:"-"`
	IsSaved   bool        `json:"isSaved" gorm:"-"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
