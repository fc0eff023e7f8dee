package models

import "time"

type Memory struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Name     string `json:"name" gorm:"size:255"`
	Note     string `json:"note" gorm:"type:text"`
	Color    string `json:"color" gorm:"size:20"`
	Date     string `json:"date" gorm:"size:20"`
	Image    string `json:"image" gorm:"size:120"`
	ChildID  uint   `json:"-" gorm:"column:childId;index"`
	APIToken string `json:"-" gorm:"column:api_token;index;size:80;not null"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (Memory) TableName() string { return "memories" }
