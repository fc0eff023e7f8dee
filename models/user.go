package models

import "time"

type User struct {
	ID       uint    `json:"-" gorm:"primaryKey"`
	Email    string  `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Name     string  `json:"name" gorm:"uniqueIndex;size:120;not null"`
	Password string  `json:"-"` // bcrypt hash; empty for social accounts
	APIToken string  `json:"api_token" gorm:"column:api_token;uniqueIndex;size:80;not null"`
	FcmToken *string `json:"fcm_token" gorm:"column:fcm_token;size:255"`
	Avatar   *string `json:"avatar" gorm:"size:120"`
	Role     string  `json:"role" gorm:"size:20"` // Mother | Father | Other

	// Quiz preferences matched against game tags; not part of the profile payload.
	DoorType    string `json:"-" gorm:"column:door_type;size:120"`
	Ages        string `json:"-" gorm:"size:120"`
	Time        string `json:"-" gorm:"size:120"`
	EnergyLevel string `json:"-" gorm:"column:energy_level;size:120"`
	Stuff       string `json:"-" gorm:"size:120"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
