package models

import "time"

type Genre struct {
	ID        uint      `gorm:"primaryKey" json:"id" example:"3"`
	Name      string    `gorm:"uniqueIndex;not null" json:"name" example:"Sci-Fi"`
	Movies    []Movie   `gorm:"many2many:movie_genres;" json:"movies,omitempty"`
	Shows     []Show    `gorm:"many2many:show_genres;" json:"shows,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Genre) TableName() string {
	return "genres"
}
