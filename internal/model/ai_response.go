package model

import "time"

// AIResponse is an append-only record of one completed upstream exchange.
// It is created or deleted, never updated.
type AIResponse struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	Prompt     string    `gorm:"type:text;not null" json:"prompt"`
	Response   string    `gorm:"type:text;not null" json:"response"`
	Model      string    `gorm:"size:50;not null" json:"model"`
	TokensUsed *int      `json:"tokens_used"`
	CreatedAt  time.Time `json:"created_at"`
}
