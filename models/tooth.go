package models

import "time"

// Tooth rows exist only for teeth marked as dropped; deleting the row un-marks
// it. The composite unique index keeps the toggle race-free.
type Tooth struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	ToothID  string `json:"toothId" gorm:"column:toothId;size:20;not null;uniqueIndex:idx_teeth_owner_child_tooth"`
	ChildID  string `json:"-" gorm:"column:childId;size:20;not null;uniqueIndex:idx_teeth_owner_child_tooth"`
	APIToken string `json:"-" gorm:"column:api_token;size:80;not null;uniqueIndex:idx_teeth_owner_child_tooth"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (Tooth) TableName() string { return "teeth" }
