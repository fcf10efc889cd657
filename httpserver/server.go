package httpserver

import (
	"context"
	"net/http"
	"strings"

	"movify/errs"
	"movify/movie"
	"movify/pkg/config"
	"movify/pkg/sentry"

	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Server struct {
	// Router is the Echo router instance
	Router *echo.Echo

	// Addr represents the address the server will listen on
	Addr string

	// Allowed origins for CORS
	AllowOrigins []string

	MovieService movie.Service

	// SecretKey gates the post/edit forms. Injected once at startup,
	// compared per request, never mutated afterwards.
	SecretKey string
}

func Default(cfg *config.Config) *Server {
	s := Server{
		Router:       echo.New(),
		Addr:         ":3000",
		AllowOrigins: []string{"*"},
		SecretKey:    cfg.SecretKey,
	}

	s.Router.Renderer = NewRenderer()
	s.Router.Validator = NewValidator()
	s.Router.HTTPErrorHandler = s.httpErrorHandler
	s.RegisterGlobalMiddlewares()
	s.RegisterStaticRoutes()
	s.RegisterMovieRoutes()
	s.RegisterHealthRoutes()
	return &s
}

func (s *Server) RegisterGlobalMiddlewares() {
	// HTML forms only speak GET and POST; the _method query parameter
	// upgrades them to PUT and DELETE before routing.
	s.Router.Pre(middleware.MethodOverrideWithConfig(middleware.MethodOverrideConfig{
		Getter: middleware.MethodFromQuery("_method"),
	}))

	s.Router.Use(middleware.Recover())
	s.Router.Use(middleware.Secure())
	s.Router.Use(middleware.RequestID())
	s.Router.Use(middleware.Gzip())
	s.Router.Use(sentryecho.New(sentryecho.Options{Repanic: true}))

	// CORS
	if len(s.AllowOrigins) > 0 {
		s.Router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: s.AllowOrigins,
		}))
	}
}

func (s *Server) Start() error {
	return s.Router.Start(s.Addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.Router.Shutdown(ctx)
}

// httpErrorHandler is the single place errors become responses. Handlers
// return errs values; this maps their code to a status, reports server
// faults, and renders the shared error page (JSON under /movie/api). Every
// failed request gets exactly one response.
func (s *Server) httpErrorHandler(err error, c echo.Context) {
	code := http.StatusInternalServerError
	message := "Internal server error"

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			message = m
		}
	} else {
		switch errs.ErrorCode(err) {
		case errs.EINVALID:
			code = http.StatusBadRequest
			message = errs.ErrorMessage(err)
		case errs.ENOTFOUND:
			code = http.StatusNotFound
			message = errs.ErrorMessage(err)
		case errs.ECONFLICT:
			code = http.StatusConflict
			message = errs.ErrorMessage(err)
		case errs.EUNAUTHORIZED:
			code = http.StatusUnauthorized
			message = errs.ErrorMessage(err)
		case errs.ENOTIMPLEMENTED:
			code = http.StatusNotImplemented
			message = errs.ErrorMessage(err)
		case errs.EINTERNAL:
			code = http.StatusInternalServerError
			message = "Internal server error"
		}
	}

	if code >= http.StatusInternalServerError {
		sentry.WithContext(c).Error(err)
	}

	// Don't write response if already committed
	if c.Response().Committed {
		return
	}

	if wantsJSON(c) {
		if jerr := c.JSON(code, map[string]string{"error": message}); jerr != nil {
			c.Logger().Error(jerr)
		}
		return
	}

	head := BuildHead(Override{}, errorPage)
	rerr := c.Render(code, "error.html", echo.Map{
		"Head":    head,
		"Status":  code,
		"Message": message,
	})
	if rerr != nil {
		c.Logger().Error(rerr)
		if serr := c.String(code, message); serr != nil {
			c.Logger().Error(serr)
		}
	}
}

func wantsJSON(c echo.Context) bool {
	return strings.HasPrefix(c.Request().URL.Path, "/movie/api")
}

func (s *Server) RegisterHealthRoutes() {
	s.Router.GET("/healthz", s.healthCheck)
}

func (s *Server) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "OK",
	})
}
