package handlers

import (
	"errors"
	"strconv"
	"strings"

	"movie-catalog/internal/middleware"
	"movie-catalog/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/sirupsen/logrus"
)

// PageHandler renders the server-side HTML pages. Form submissions go through
// the name-based service wrappers, so directors and genres typed into the
// forms are resolved or created on the fly.
type PageHandler struct {
	catalog services.CatalogService
	auth    services.AuthService
	storage *services.MediaStorage
	store   *session.Store
	logger  *logrus.Logger
}

func NewPageHandler(
	catalog services.CatalogService,
	auth services.AuthService,
	storage *services.MediaStorage,
	store *session.Store,
	logger *logrus.Logger,
) *PageHandler {
	return &PageHandler{
		catalog: catalog,
		auth:    auth,
		storage: storage,
		store:   store,
		logger:  logger,
	}
}

// splitGenreNames splits the comma-separated genre field of the forms.
func splitGenreNames(raw string) []string {
	var names []string
	for _, name := range strings.Split(raw, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

func (h *PageHandler) renderHome(c *fiber.Ctx, message string) error {
	query := c.Query("q", "")
	genre := c.Query("genre", "")
	sortBy := c.Query("sort", "title")

	movies, err := h.catalog.SearchMovies(c.Context(), query, genre, sortBy)
	if err != nil {
		h.logger.WithError(err).Error("Failed to load catalog")
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load catalog")
	}

	genres, err := h.catalog.GetAllGenres(c.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to load genres")
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load genres")
	}

	return c.Render("index", fiber.Map{
		"Movies":   movies,
		"Genres":   genres,
		"Query":    query,
		"Genre":    genre,
		"Sort":     sortBy,
		"Message":  message,
		"Username": middleware.Username(c),
	}, "layouts/main")
}

// Home renders the catalog with search, genre filter and sorting.
func (h *PageHandler) Home(c *fiber.Ctx) error {
	return h.renderHome(c, "")
}

func (h *PageHandler) AddMoviePage(c *fiber.Ctx) error {
	directors, err := h.catalog.GetAllDirectors(c.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to load directors")
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load directors")
	}
	genres, err := h.catalog.GetAllGenres(c.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to load genres")
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load genres")
	}

	return c.Render("movie_form", fiber.Map{
		"Title":     "Add Movie",
		"Action":    "/add",
		"Directors": directors,
		"Genres":    genres,
		"Username":  middleware.Username(c),
	}, "layouts/main")
}

func (h *PageHandler) AddMovieSubmit(c *fiber.Ctx) error {
	year, _ := strconv.Atoi(c.FormValue("year"))

	_, err := h.catalog.CreateMovieWithNames(c.Context(), services.MovieNameInput{
		Title:        c.FormValue("title"),
		Year:         year,
		Description:  c.FormValue("description"),
		ImageURL:     c.FormValue("image_url"),
		DirectorName: c.FormValue("director_name"),
		GenreNames:   splitGenreNames(c.FormValue("genre_names")),
	})
	if err != nil {
		h.logger.WithError(err).Error("Failed to add movie from form")
		return h.renderHome(c, "Failed to add movie: "+err.Error())
	}

	// Redirect so a refresh does not resubmit the form.
	return c.Redirect("/", fiber.StatusSeeOther)
}

func (h *PageHandler) EditMoviePage(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return h.renderHome(c, "Movie not found")
	}

	movie, err := h.catalog.GetMovieByID(c.Context(), uint(id))
	if err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Failed to load movie")
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load movie")
	}
	if movie == nil {
		return h.renderHome(c, "Movie not found")
	}

	directors, err := h.catalog.GetAllDirectors(c.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to load directors")
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load directors")
	}
	genres, err := h.catalog.GetAllGenres(c.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to load genres")
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load genres")
	}

	genreNames := make([]string, 0, len(movie.Genres))
	for _, g := range movie.Genres {
		genreNames = append(genreNames, g.Name)
	}

	return c.Render("movie_form", fiber.Map{
		"Title":      "Edit Movie",
		"Action":     "/edit/" + c.Params("id"),
		"Movie":      movie,
		"GenreNames": strings.Join(genreNames, ", "),
		"Directors":  directors,
		"Genres":     genres,
		"Username":   middleware.Username(c),
	}, "layouts/main")
}

func (h *PageHandler) EditMovieSubmit(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return h.renderHome(c, "Movie not found")
	}

	year, _ := strconv.Atoi(c.FormValue("year"))

	movie, err := h.catalog.UpdateMovieWithNames(c.Context(), uint(id), services.MovieNameInput{
		Title:        c.FormValue("title"),
		Year:         year,
		Description:  c.FormValue("description"),
		ImageURL:     c.FormValue("image_url"),
		DirectorName: c.FormValue("director_name"),
		GenreNames:   splitGenreNames(c.FormValue("genre_names")),
	})
	if err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Failed to update movie from form")
		return h.renderHome(c, "Failed to update movie: "+err.Error())
	}
	if movie == nil {
		return h.renderHome(c, "Movie not found")
	}

	return c.Redirect("/", fiber.StatusSeeOther)
}

func (h *PageHandler) DeleteMoviePage(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return h.renderHome(c, "Movie not found")
	}

	movie, err := h.catalog.GetMovieByID(c.Context(), uint(id))
	if err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Failed to load movie")
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load movie")
	}
	if movie == nil {
		return h.renderHome(c, "Movie not found")
	}

	return c.Render("delete_movie", fiber.Map{
		"Movie":    movie,
		"Username": middleware.Username(c),
	}, "layouts/main")
}

func (h *PageHandler) DeleteMovieSubmit(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return h.renderHome(c, "Movie not found")
	}

	movie, err := h.catalog.GetMovieByID(c.Context(), uint(id))
	if err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Failed to load movie for delete")
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete movie")
	}

	deleted, err := h.catalog.DeleteMovie(c.Context(), uint(id))
	if err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Failed to delete movie")
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete movie")
	}
	if !deleted {
		return h.renderHome(c, "Movie not found.")
	}

	if h.storage != nil && movie != nil {
		if err := h.storage.DeletePoster(movie.ImageURL); err != nil {
			h.logger.WithError(err).Warn("Failed to delete poster for removed movie")
		}
	}

	return h.renderHome(c, "Movie deleted successfully!")
}

func (h *PageHandler) AddReviewSubmit(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return h.renderHome(c, "Movie not found")
	}

	rating, _ := strconv.Atoi(c.FormValue("rating"))
	userName := c.FormValue("user_name")
	if userName == "" {
		userName = middleware.Username(c)
	}

	_, err = h.catalog.AddReview(c.Context(), uint(id), rating, c.FormValue("comment"), userName)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return h.renderHome(c, "Movie not found")
		}
		h.logger.WithError(err).WithField("movie_id", id).Error("Failed to add review from form")
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to add review")
	}

	return c.Redirect("/", fiber.StatusSeeOther)
}

func (h *PageHandler) ShowsPage(c *fiber.Ctx) error {
	shows, err := h.catalog.GetAllShows(c.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to load shows")
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load shows")
	}

	return c.Render("shows", fiber.Map{
		"Shows":    shows,
		"Username": middleware.Username(c),
	}, "layouts/main")
}

func (h *PageHandler) LoginPage(c *fiber.Ctx) error {
	return c.Render("login", fiber.Map{
		"Redirect": c.Query("redirect", "/"),
	}, "layouts/main")
}

func (h *PageHandler) LoginSubmit(c *fiber.Ctx) error {
	user, err := h.auth.Login(c.Context(), c.FormValue("username"), c.FormValue("password"))
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.Render("login", fiber.Map{
				"Redirect": c.FormValue("redirect", "/"),
				"Message":  "Invalid username or password",
			}, "layouts/main")
		}
		h.logger.WithError(err).Error("Failed to log in from form")
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to log in")
	}

	if err := h.startSession(c, user.ID, user.Username); err != nil {
		h.logger.WithError(err).Error("Failed to start session")
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to start session")
	}

	redirect := c.FormValue("redirect", "/")
	if !strings.HasPrefix(redirect, "/") {
		redirect = "/"
	}
	return c.Redirect(redirect, fiber.StatusSeeOther)
}

func (h *PageHandler) RegisterPage(c *fiber.Ctx) error {
	return c.Render("register", fiber.Map{}, "layouts/main")
}

func (h *PageHandler) RegisterSubmit(c *fiber.Ctx) error {
	user, err := h.auth.Register(c.Context(), c.FormValue("username"), c.FormValue("password"))
	if err != nil {
		if errors.Is(err, services.ErrUsernameTaken) || errors.Is(err, services.ErrInvalidCredentials) {
			return c.Render("register", fiber.Map{
				"Message": err.Error(),
			}, "layouts/main")
		}
		h.logger.WithError(err).Error("Failed to register from form")
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to register")
	}

	if err := h.startSession(c, user.ID, user.Username); err != nil {
		h.logger.WithError(err).Error("Failed to start session")
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to start session")
	}

	return c.Redirect("/", fiber.StatusSeeOther)
}

func (h *PageHandler) LogoutSubmit(c *fiber.Ctx) error {
	if sess, err := h.store.Get(c); err == nil {
		if err := sess.Destroy(); err != nil {
			h.logger.WithError(err).Warn("Failed to destroy session")
		}
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

func (h *PageHandler) startSession(c *fiber.Ctx, userID uint, username string) error {
	sess, err := h.store.Get(c)
	if err != nil {
		return err
	}
	sess.Set("user_id", userID)
	sess.Set("username", username)
	return sess.Save()
}
