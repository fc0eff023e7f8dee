package models

import "time"

// SaveGame marks a game as saved for a user; existence is the boolean.
type SaveGame struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	GameID   string `json:"gameId" gorm:"column:gameId;size:20;not null;uniqueIndex:idx_saved_games_owner_game"`
	APIToken string `json:"-" gorm:"column:api_token;size:80;not null;uniqueIndex:idx_saved_games_owner_game"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (SaveGame) TableName() string { return "savedGames" }
