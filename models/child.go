package models

import "time"

type Child struct {
	ID       uint    `json:"id" gorm:"primaryKey"`
	Name     string  `json:"name" gorm:"size:120;not null"`
	Gender   string  `json:"gender" gorm:"size:10"` // Boy | Girl | Neutral
	Birth    string  `json:"birth" gorm:"size:20"`
	Avatar   *string `json:"avatar" gorm:"size:120"`
	APIToken string  `json:"-" gorm:"column:api_token;index;size:80;not null"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
