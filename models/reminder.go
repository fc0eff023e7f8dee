package models

import "time"

// Reminder.Date holds either a literal "dd/mm/yyyy" date or a comma-joined
// weekday list ("Monday,Tuesday"). Readers discriminate by parse probe, see
// handlers.ReminderHandler.
type Reminder struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Name     string `json:"name" gorm:"size:255"`
	Note     string `json:"note" gorm:"type:text"`
	Time     string `json:"time" gorm:"size:10"` // HH:mm
	Date     string `json:"-" gorm:"size:120"`
	Repeat   bool   `json:"repeat"`
	Color    string `json:"color" gorm:"size:20"` // Orange, Blue, LightBlue, Green, Purple, Yellow, Pink, NotColor
	Type     string `json:"type" gorm:"size:20"`  // Custom | Template
	State    string `json:"state" gorm:"size:5"`  // On | Off
	APIToken string `json:"-" gorm:"column:api_token;index;size:80;not null"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
