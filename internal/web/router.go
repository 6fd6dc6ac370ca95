package web

import (
	"embed"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

//go:embed templates/*.html
var templateFS embed.FS

type templateRenderer struct {
	templates *template.Template
}

func (r *templateRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

func newRenderer() *templateRenderer {
	return &templateRenderer{
		templates: template.Must(template.ParseFS(templateFS, "templates/*.html")),
	}
}

func NewRouter(h *Handler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = newRenderer()
	e.Use(middleware.Recover())
	e.Use(RequestLoggerMiddleware())

	h.RegisterRoutes(e)

	return e
}
