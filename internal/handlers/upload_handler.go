package handlers

import (
	"movie-catalog/internal/services"
	"movie-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type UploadHandler struct {
	storage *services.MediaStorage
	logger  *logrus.Logger
}

func NewUploadHandler(storage *services.MediaStorage, logger *logrus.Logger) *UploadHandler {
	return &UploadHandler{
		storage: storage,
		logger:  logger,
	}
}

// GetPresignedURL godoc
// @Summary Get presigned URL for a poster upload
// @Description Generate a presigned PUT URL for uploading a poster image; store the returned public_url as the movie's image_url
// @Tags upload
// @Accept json
// @Produce json
// @Param filename query string true "Filename"
// @Success 200 {object} utils.StandardResponse
// @Failure 400 {object} utils.StandardResponse
// @Failure 500 {object} utils.StandardResponse
// @Router /upload/presign [get]
func (h *UploadHandler) GetPresignedURL(c *fiber.Ctx) error {
	filename := c.Query("filename")
	if filename == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "filename is required")
	}

	presignedURL, publicURL, err := h.storage.PresignPosterUpload(filename)
	if err != nil {
		h.logger.WithError(err).Error("Failed to generate presigned URL")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to generate presigned URL")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Presigned URL generated successfully", fiber.Map{
		"presigned_url": presignedURL,
		"public_url":    publicURL,
	})
}
