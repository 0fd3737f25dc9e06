package models

import "time"

type Movie struct {
	ID          uint      `gorm:"primaryKey" json:"id" example:"1"`
	Title       string    `gorm:"not null;index" json:"title" example:"Inception"`
	Year        int       `gorm:"index" json:"year" example:"2010"`
	Description string    `gorm:"type:text" json:"description" example:"A thief who steals corporate secrets..."`
	ImageURL    string    `json:"image_url,omitempty" example:"https://storage.example.com/movies/inception.jpg"`
	DirectorID  uint      `gorm:"index;not null" json:"director_id" example:"1"`
	Director    *Director `gorm:"foreignKey:DirectorID" json:"director,omitempty"`
	Genres      []Genre   `gorm:"many2many:movie_genres;" json:"genres,omitempty"`
	Reviews     []Review  `gorm:"foreignKey:MovieID" json:"reviews,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Movie) TableName() string {
	return "movies"
}
