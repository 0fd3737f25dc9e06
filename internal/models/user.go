package models

import "time"

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id" example:"1"`
	Username     string    `gorm:"uniqueIndex;not null" json:"username" example:"amanda"`
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
