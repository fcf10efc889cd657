package httpserver

import (
	"fmt"
	"net/http"
	"net/url"

	"movify/movie"

	"github.com/labstack/echo/v4"
)

func (s *Server) RegisterMovieRoutes() {
	s.Router.GET("/", s.handleHome)

	g := s.Router.Group("/movie")
	g.GET("/post", s.handlePostForm, s.RequireSecretKey)
	g.GET("/auth", s.handleAuthForm)
	g.POST("/auth", s.handleAuthSubmit)
	g.GET("/api/all", s.handleListJSON)
	g.GET("/:id/view", s.handleViewMovie)
	g.GET("/:id/edit", s.handleEditForm, s.RequireSecretKey)
	g.POST("", s.handleCreateMovie)
	g.PUT("/:id", s.handleUpdateMovie)
	g.DELETE("/:id", s.handleDeleteMovie)
}

// handleHome renders the catalog listing. genre and sort come straight from
// the query string; the repository treats unknown sort keys as the default
// chronological order.
func (s *Server) handleHome(c echo.Context) error {
	opts := movie.ListOptions{
		Genre: c.QueryParam("genre"),
		Sort:  c.QueryParam("sort"),
	}

	movies, err := s.MovieService.ListMovies(c.Request().Context(), opts)
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, "home.html", echo.Map{
		"Head":          BuildHead(Override{}, homePage),
		"Movies":        movies,
		"Genres":        movie.Genres,
		"SortKeys":      movie.SortKeys,
		"SelectedGenre": opts.Genre,
		"SelectedSort":  opts.Sort,
	})
}

func (s *Server) handleViewMovie(c echo.Context) error {
	m, err := s.MovieService.GetMovie(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, "view.html", echo.Map{
		"Head":  BuildHead(MovieOverride(m), PageMeta{}),
		"Movie": m,
	})
}

func (s *Server) handlePostForm(c echo.Context) error {
	return c.Render(http.StatusOK, "post.html", echo.Map{
		"Head": BuildHead(Override{}, postPage),
		"Form": NewMovieForm(nil),
	})
}

func (s *Server) handleEditForm(c echo.Context) error {
	m, err := s.MovieService.GetMovie(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, "edit.html", echo.Map{
		"Head": BuildHead(Override{}, editPage),
		"Form": NewMovieForm(&m),
	})
}

func (s *Server) handleCreateMovie(c echo.Context) error {
	var req MovieRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	created, err := s.MovieService.AddMovie(c.Request().Context(), req.ToMovie())
	if err != nil {
		return err
	}

	return c.Redirect(http.StatusFound, fmt.Sprintf("/movie/%s/view", created.ID))
}

func (s *Server) handleUpdateMovie(c echo.Context) error {
	var req MovieRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	updated, err := s.MovieService.UpdateMovie(c.Request().Context(), c.Param("id"), req.ToMovie())
	if err != nil {
		return err
	}

	return c.Redirect(http.StatusFound, fmt.Sprintf("/movie/%s/view", updated.ID))
}

func (s *Server) handleDeleteMovie(c echo.Context) error {
	if err := s.MovieService.DeleteMovie(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	return c.Redirect(http.StatusFound, "/")
}

// handleListJSON exports the catalog as a raw JSON array, honoring the same
// genre and sort parameters as the listing page.
func (s *Server) handleListJSON(c echo.Context) error {
	opts := movie.ListOptions{
		Genre: c.QueryParam("genre"),
		Sort:  c.QueryParam("sort"),
	}

	movies, err := s.MovieService.ListMovies(c.Request().Context(), opts)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, movies)
}

func (s *Server) handleAuthForm(c echo.Context) error {
	return c.Render(http.StatusOK, "auth.html", echo.Map{
		"Head": BuildHead(Override{}, authPage),
	})
}

// handleAuthSubmit checks the submitted key and forwards to the guarded
// post form with the key in the query string, where the guard re-checks it.
func (s *Server) handleAuthSubmit(c echo.Context) error {
	key := c.FormValue("secretKey")
	if !s.validSecretKey(key) {
		return errInvalidSecretKey
	}

	return c.Redirect(http.StatusFound, "/movie/post?secretKey="+url.QueryEscape(key))
}
