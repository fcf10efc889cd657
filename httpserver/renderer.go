package httpserver

import (
	"embed"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

//go:embed views/*.html
var viewsFS embed.FS

//go:embed public
var publicFS embed.FS

// Renderer plugs the embedded html/template set into Echo. Templates are
// parsed once at construction; a parse error is a programming error and
// panics at startup.
type Renderer struct {
	templates *template.Template
}

func NewRenderer() *Renderer {
	return &Renderer{
		templates: template.Must(template.ParseFS(viewsFS, "views/*.html")),
	}
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

func (s *Server) RegisterStaticRoutes() {
	s.Router.StaticFS("/public", echo.MustSubFS(publicFS, "public"))
}
