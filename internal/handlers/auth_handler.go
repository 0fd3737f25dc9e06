package handlers

import (
	"errors"

	"movie-catalog/internal/services"
	"movie-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	service services.AuthService
	store   *session.Store
	logger  *logrus.Logger
}

type AuthRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func NewAuthHandler(service services.AuthService, store *session.Store, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		store:   store,
		logger:  logger,
	}
}

func (h *AuthHandler) startSession(c *fiber.Ctx, userID uint, username string) error {
	sess, err := h.store.Get(c)
	if err != nil {
		return err
	}
	sess.Set("user_id", userID)
	sess.Set("username", username)
	return sess.Save()
}

// Register godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body AuthRequest true "Username and password"
// @Success 201 {object} utils.StandardResponse "User registered"
// @Failure 400 {object} utils.StandardResponse "Invalid credentials or username taken"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req AuthRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	user, err := h.service.Register(c.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrUsernameTaken) || errors.Is(err, services.ErrInvalidCredentials) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
		}
		h.logger.WithError(err).Error("Failed to register user")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to register user")
	}

	if err := h.startSession(c, user.ID, user.Username); err != nil {
		h.logger.WithError(err).Error("Failed to start session")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to start session")
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "User registered successfully", user)
}

// Login godoc
// @Summary Log in
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body AuthRequest true "Username and password"
// @Success 200 {object} utils.StandardResponse "Logged in"
// @Failure 401 {object} utils.StandardResponse "Invalid username or password"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req AuthRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	user, err := h.service.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, err.Error())
		}
		h.logger.WithError(err).Error("Failed to log in user")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to log in")
	}

	if err := h.startSession(c, user.ID, user.Username); err != nil {
		h.logger.WithError(err).Error("Failed to start session")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to start session")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Logged in successfully", user)
}

// Logout godoc
// @Summary Log out
// @Tags auth
// @Produce json
// @Success 200 {object} utils.StandardResponse "Logged out"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sess, err := h.store.Get(c)
	if err == nil {
		if err := sess.Destroy(); err != nil {
			h.logger.WithError(err).Warn("Failed to destroy session")
		}
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Logged out successfully", nil)
}
