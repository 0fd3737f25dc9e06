package handlers

import (
	"errors"
	"strconv"

	"movie-catalog/internal/services"
	"movie-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type MovieHandler struct {
	service services.CatalogService
	storage *services.MediaStorage
	logger  *logrus.Logger
}

func NewMovieHandler(service services.CatalogService, storage *services.MediaStorage, logger *logrus.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		storage: storage,
		logger:  logger,
	}
}

// GetAllMovies godoc
// @Summary Get all movies
// @Description Get all movies with their director, genres and reviews, ordered by title
// @Tags movies
// @Accept json
// @Produce json
// @Success 200 {object} utils.StandardResponse "List of movies"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /movies [get]
func (h *MovieHandler) GetAllMovies(c *fiber.Ctx) error {
	movies, err := h.service.GetAllMovies(c.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to get movies")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve movies")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Movies retrieved successfully", movies)
}

// GetMovieByID godoc
// @Summary Get movie by ID
// @Description Get a single movie by its ID
// @Tags movies
// @Accept json
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} utils.StandardResponse "Movie details"
// @Failure 400 {object} utils.StandardResponse "Invalid movie ID"
// @Failure 404 {object} utils.StandardResponse "Movie not found"
// @Router /movies/{id} [get]
func (h *MovieHandler) GetMovieByID(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}

	movie, err := h.service.GetMovieByID(c.Context(), uint(id))
	if err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Failed to get movie")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve movie")
	}
	if movie == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Movie not found")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Movie retrieved successfully", movie)
}

// CreateMovie godoc
// @Summary Create a new movie
// @Description Create a movie referencing an existing director; unknown genre ids are ignored
// @Tags movies
// @Accept json
// @Produce json
// @Param movie body MovieRequest true "Movie request object"
// @Success 201 {object} utils.StandardResponse "Movie created successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid request body or unknown director"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /movies [post]
func (h *MovieHandler) CreateMovie(c *fiber.Ctx) error {
	var req MovieRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	movie, err := h.service.CreateMovie(c.Context(), services.MovieInput{
		Title:       req.Title,
		Year:        req.Year,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		DirectorID:  req.DirectorID,
		GenreIDs:    req.GenreIDs,
	})
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Director not found")
		}
		h.logger.WithError(err).Error("Failed to create movie")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Movie created successfully", movie)
}

// UpdateMovie godoc
// @Summary Update a movie
// @Description Replace every field of an existing movie, including its genre set
// @Tags movies
// @Accept json
// @Produce json
// @Param id path int true "Movie ID"
// @Param movie body MovieRequest true "Movie request object"
// @Success 200 {object} utils.StandardResponse "Movie updated successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid request or unknown director"
// @Failure 404 {object} utils.StandardResponse "Movie not found"
// @Router /movies/{id} [put]
func (h *MovieHandler) UpdateMovie(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}

	var req MovieRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	movie, err := h.service.UpdateMovie(c.Context(), uint(id), services.MovieInput{
		Title:       req.Title,
		Year:        req.Year,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		DirectorID:  req.DirectorID,
		GenreIDs:    req.GenreIDs,
	})
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Director not found")
		}
		h.logger.WithError(err).WithField("id", id).Error("Failed to update movie")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}
	if movie == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Movie not found")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Movie updated successfully", movie)
}

// DeleteMovie godoc
// @Summary Delete a movie
// @Description Delete a movie and its reviews; the director and genres remain
// @Tags movies
// @Accept json
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} utils.StandardResponse "Movie deleted successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid movie ID"
// @Failure 404 {object} utils.StandardResponse "Movie not found"
// @Router /movies/{id} [delete]
func (h *MovieHandler) DeleteMovie(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}

	movie, err := h.service.GetMovieByID(c.Context(), uint(id))
	if err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Failed to load movie for delete")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete movie")
	}

	deleted, err := h.service.DeleteMovie(c.Context(), uint(id))
	if err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Failed to delete movie")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete movie")
	}
	if !deleted {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Movie not found")
	}

	if h.storage != nil && movie != nil {
		if err := h.storage.DeletePoster(movie.ImageURL); err != nil {
			h.logger.WithError(err).Warn("Failed to delete poster for removed movie")
		}
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Movie deleted successfully", nil)
}

// AddReview godoc
// @Summary Add a review to a movie
// @Description Attach a review to an existing movie
// @Tags movies
// @Accept json
// @Produce json
// @Param id path int true "Movie ID"
// @Param review body ReviewRequest true "Review request object"
// @Success 201 {object} utils.StandardResponse "Review added successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid request"
// @Failure 404 {object} utils.StandardResponse "Movie not found"
// @Router /movies/{id}/reviews [post]
func (h *MovieHandler) AddReview(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}

	var req ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	review, err := h.service.AddReview(c.Context(), uint(id), req.Rating, req.Comment, req.UserName)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Movie not found")
		}
		h.logger.WithError(err).WithField("movie_id", id).Error("Failed to add review")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to add review")
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Review added successfully", review)
}

// GetAllDirectors godoc
// @Summary Get all directors
// @Tags lookups
// @Produce json
// @Success 200 {object} utils.StandardResponse "List of directors"
// @Router /directors [get]
func (h *MovieHandler) GetAllDirectors(c *fiber.Ctx) error {
	directors, err := h.service.GetAllDirectors(c.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to get directors")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve directors")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Directors retrieved successfully", directors)
}

// GetAllGenres godoc
// @Summary Get all genres
// @Tags lookups
// @Produce json
// @Success 200 {object} utils.StandardResponse "List of genres"
// @Router /genres [get]
func (h *MovieHandler) GetAllGenres(c *fiber.Ctx) error {
	genres, err := h.service.GetAllGenres(c.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to get genres")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve genres")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Genres retrieved successfully", genres)
}
