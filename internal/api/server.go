package api

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"povdash/internal/dashboard"
)

// NewServer returns an echo instance with the dashboard routes mounted.
func NewServer(app *dashboard.App, logger *log.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Logger = logger
	e.JSONSerializer = JSONSerializer{}
	e.Renderer = PageRenderer{}

	e.Use(middleware.CORS())
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())

	NewHandler(app).RegisterRoutes(e)
	return e
}
