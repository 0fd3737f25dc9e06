package handlers

type ShowRequest struct {
	Title       string `json:"title"`
	Year        int    `json:"year"`
	Description string `json:"description"`
	DirectorID  uint   `json:"director_id"`
	GenreIDs    []uint `json:"genre_ids"`
}
