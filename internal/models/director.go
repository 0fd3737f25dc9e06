package models

import "time"

type Director struct {
	ID        uint      `gorm:"primaryKey" json:"id" example:"1"`
	Name      string    `gorm:"not null;index" json:"name" example:"Christopher Nolan"`
	BirthDate string    `json:"birth_date,omitempty" example:"1970-07-30"`
	Movies    []Movie   `gorm:"foreignKey:DirectorID" json:"movies,omitempty"`
	Shows     []Show    `gorm:"foreignKey:DirectorID" json:"shows,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Director) TableName() string {
	return "directors"
}
