package models

import "time"

type Show struct {
	ID          uint      `gorm:"primaryKey" json:"id" example:"1"`
	Title       string    `gorm:"not null;index" json:"title" example:"Severance"`
	Year        int       `gorm:"index" json:"year" example:"2022"`
	Description string    `gorm:"type:text" json:"description" example:"Employees undergo a procedure..."`
	DirectorID  uint      `gorm:"index;not null" json:"director_id" example:"2"`
	Director    *Director `gorm:"foreignKey:DirectorID" json:"director,omitempty"`
	Genres      []Genre   `gorm:"many2many:show_genres;" json:"genres,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Show) TableName() string {
	return "shows"
}
