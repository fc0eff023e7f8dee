package models

import "time"

// Code is an ephemeral email verification code. Reissuing deletes the prior
// row for the email, so at most one code is active per address.
type Code struct {
	ID    uint   `json:"-" gorm:"primaryKey"`
	Email string `json:"email" gorm:"size:255;index"`
	Code  string `json:"code" gorm:"size:10"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
