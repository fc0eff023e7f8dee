package models

import "time"

type Inventory struct {
	ID     uint   `json:"id" gorm:"primaryKey"`
	Name   string `json:"name" gorm:"size:255"`
	Image  string `json:"image" gorm:"size:120"`
	GameID uint   `json:"gameId" gorm:"column:gameId;index"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (Inventory) TableName() string { return "inventories" }
