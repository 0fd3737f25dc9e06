package models

import "time"

type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id" example:"1"`
	UserName  string    `gorm:"not null" json:"user_name" example:"Amanda"`
	Rating    int       `json:"rating" example:"5"`
	Comment   string    `gorm:"type:text" json:"comment" example:"Mind-bending."`
	MovieID   uint      `gorm:"index;not null" json:"movie_id" example:"1"`
	CreatedAt time.Time `json:"created_at"`
}

func (Review) TableName() string {
	return "reviews"
}
