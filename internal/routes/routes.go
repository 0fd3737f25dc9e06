package routes

import (
	"movie-catalog/internal/handlers"
	"movie-catalog/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

type Handlers struct {
	Movie  *handlers.MovieHandler
	Show   *handlers.ShowHandler
	Auth   *handlers.AuthHandler
	Page   *handlers.PageHandler
	Upload *handlers.UploadHandler
}

func Setup(app *fiber.App, h Handlers, store *session.Store) {
	requireAuth := middleware.RequireAuth(store)
	loadUser := middleware.LoadUser(store)

	// API versioning
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Movie routes - reads are public, writes require a session
	movies := v1.Group("/movies")
	{
		movies.Get("/", h.Movie.GetAllMovies)
		movies.Get("/:id", h.Movie.GetMovieByID)
		movies.Post("/", requireAuth, h.Movie.CreateMovie)
		movies.Put("/:id", requireAuth, h.Movie.UpdateMovie)
		movies.Delete("/:id", requireAuth, h.Movie.DeleteMovie)
		movies.Post("/:id/reviews", requireAuth, h.Movie.AddReview)
	}

	// Show routes
	shows := v1.Group("/shows")
	{
		shows.Get("/", h.Show.GetAllShows)
		shows.Get("/:id", h.Show.GetShowByID)
		shows.Post("/", requireAuth, h.Show.CreateShow)
		shows.Put("/:id", requireAuth, h.Show.UpdateShow)
		shows.Delete("/:id", requireAuth, h.Show.DeleteShow)
	}

	// Lookup routes for form dropdowns and API consumers
	v1.Get("/directors", h.Movie.GetAllDirectors)
	v1.Get("/genres", h.Movie.GetAllGenres)

	// Auth routes
	auth := v1.Group("/auth")
	{
		auth.Post("/register", h.Auth.Register)
		auth.Post("/login", h.Auth.Login)
		auth.Post("/logout", h.Auth.Logout)
	}

	// Upload routes
	upload := v1.Group("/upload")
	{
		upload.Get("/presign", requireAuth, h.Upload.GetPresignedURL)
	}

	// HTML pages
	app.Get("/", loadUser, h.Page.Home)
	app.Get("/shows", loadUser, h.Page.ShowsPage)

	app.Get("/add", requireAuth, h.Page.AddMoviePage)
	app.Post("/add", requireAuth, h.Page.AddMovieSubmit)
	app.Get("/edit/:id", requireAuth, h.Page.EditMoviePage)
	app.Post("/edit/:id", requireAuth, h.Page.EditMovieSubmit)
	app.Get("/delete/:id", requireAuth, h.Page.DeleteMoviePage)
	app.Post("/delete/:id", requireAuth, h.Page.DeleteMovieSubmit)
	app.Post("/movies/:id/reviews", requireAuth, h.Page.AddReviewSubmit)

	app.Get("/login", h.Page.LoginPage)
	app.Post("/login", h.Page.LoginSubmit)
	app.Get("/register", h.Page.RegisterPage)
	app.Post("/register", h.Page.RegisterSubmit)
	app.Post("/logout", h.Page.LogoutSubmit)
}
