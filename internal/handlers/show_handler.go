package handlers

import (
	"errors"
	"strconv"

	"movie-catalog/internal/services"
	"movie-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ShowHandler struct {
	service services.CatalogService
	logger  *logrus.Logger
}

func NewShowHandler(service services.CatalogService, logger *logrus.Logger) *ShowHandler {
	return &ShowHandler{
		service: service,
		logger:  logger,
	}
}

// GetAllShows godoc
// @Summary Get all shows
// @Tags shows
// @Produce json
// @Success 200 {object} utils.StandardResponse "List of shows"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /shows [get]
func (h *ShowHandler) GetAllShows(c *fiber.Ctx) error {
	shows, err := h.service.GetAllShows(c.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to get shows")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve shows")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Shows retrieved successfully", shows)
}

// GetShowByID godoc
// @Summary Get show by ID
// @Tags shows
// @Produce json
// @Param id path int true "Show ID"
// @Success 200 {object} utils.StandardResponse "Show details"
// @Failure 404 {object} utils.StandardResponse "Show not found"
// @Router /shows/{id} [get]
func (h *ShowHandler) GetShowByID(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid show ID")
	}

	show, err := h.service.GetShowByID(c.Context(), uint(id))
	if err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Failed to get show")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve show")
	}
	if show == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Show not found")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Show retrieved successfully", show)
}

// CreateShow godoc
// @Summary Create a new show
// @Tags shows
// @Accept json
// @Produce json
// @Param show body ShowRequest true "Show request object"
// @Success 201 {object} utils.StandardResponse "Show created successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid request or unknown director"
// @Router /shows [post]
func (h *ShowHandler) CreateShow(c *fiber.Ctx) error {
	var req ShowRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	show, err := h.service.CreateShow(c.Context(), services.ShowInput{
		Title:       req.Title,
		Year:        req.Year,
		Description: req.Description,
		DirectorID:  req.DirectorID,
		GenreIDs:    req.GenreIDs,
	})
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Director not found")
		}
		h.logger.WithError(err).Error("Failed to create show")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Show created successfully", show)
}

// UpdateShow godoc
// @Summary Update a show
// @Tags shows
// @Accept json
// @Produce json
// @Param id path int true "Show ID"
// @Param show body ShowRequest true "Show request object"
// @Success 200 {object} utils.StandardResponse "Show updated successfully"
// @Failure 404 {object} utils.StandardResponse "Show not found"
// @Router /shows/{id} [put]
func (h *ShowHandler) UpdateShow(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid show ID")
	}

	var req ShowRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	show, err := h.service.UpdateShow(c.Context(), uint(id), services.ShowInput{
		Title:       req.Title,
		Year:        req.Year,
		Description: req.Description,
		DirectorID:  req.DirectorID,
		GenreIDs:    req.GenreIDs,
	})
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Director not found")
		}
		h.logger.WithError(err).WithField("id", id).Error("Failed to update show")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}
	if show == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Show not found")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Show updated successfully", show)
}

// DeleteShow godoc
// @Summary Delete a show
// @Tags shows
// @Produce json
// @Param id path int true "Show ID"
// @Success 200 {object} utils.StandardResponse "Show deleted successfully"
// @Failure 404 {object} utils.StandardResponse "Show not found"
// @Router /shows/{id} [delete]
func (h *ShowHandler) DeleteShow(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid show ID")
	}

	deleted, err := h.service.DeleteShow(c.Context(), uint(id))
	if err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Failed to delete show")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete show")
	}
	if !deleted {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Show not found")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Show deleted successfully", nil)
}
