package http

import (
	"embed"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed views/*.html
var viewsFS embed.FS

// NewEngine returns the template engine for the embedded views.
func NewEngine() *html.Engine {
	return html.NewFileSystem(http.FS(viewsFS), ".html")
}
