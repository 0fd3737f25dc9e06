package handlers

type MovieRequest struct {
	Title       string `json:"title"`
	Year        int    `json:"year"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	DirectorID  uint   `json:"director_id"`
	GenreIDs    []uint `json:"genre_ids"`
}

type ReviewRequest struct {
	UserName string `json:"user_name"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
}
