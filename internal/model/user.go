package model

import "time"

type User struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Username  string     `gorm:"size:50;not null;uniqueIndex" json:"username"`
	Email     string     `gorm:"size:100;not null;uniqueIndex" json:"email"`
	FullName  *string    `gorm:"size:100" json:"full_name"`
	IsActive  bool       `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `gorm:"autoUpdateTime:false" json:"updated_at"`

	Posts       []Post       `gorm:"foreignKey:AuthorID;constraint:OnDelete:RESTRICT" json:"-"`
	AIResponses []AIResponse `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT" json:"-"`
}
