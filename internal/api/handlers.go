package api

import (
	"bytes"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"povdash/internal/apperr"
	"povdash/internal/dashboard"
	"povdash/internal/models"
	"povdash/internal/render"
)

type Handler struct {
	app *dashboard.App
}

func NewHandler(app *dashboard.App) *Handler {
	return &Handler{app: app}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.GetPage)
	e.GET("/healthz", h.GetHealth)

	api := e.Group("/api")
	api.GET("/layout", h.GetLayout)
	api.POST("/callbacks/:id", h.PostCallback)
	api.GET("/charts/:id/:output", h.GetChart)
}

// --- HANDLERS ---

func (h *Handler) GetPage(c echo.Context) error {
	return c.Render(http.StatusOK, "page", h.app.Page())
}

func (h *Handler) GetHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetLayout returns the component tree and the callback graph.
func (h *Handler) GetLayout(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"title":     h.app.Title,
		"layout":    h.app.Root,
		"callbacks": h.app.Specs(),
	})
}

// PostCallback runs one callback. Only replaced outputs are returned; when
// nothing is replaced the answer is 204.
func (h *Handler) PostCallback(c echo.Context) error {
	var req models.CallbackRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	in := make(dashboard.Inputs, len(req.Inputs))
	for id, v := range req.Inputs {
		if v != nil {
			in[id] = *v
		}
	}

	out, err := h.app.Dispatch(c.Param("id"), in)
	if err != nil {
		return httpError(err)
	}
	if len(out) == 0 {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, models.CallbackResponse{Outputs: out})
}

// GetChart renders one figure output of a callback as PNG. Inputs are
// taken from the query string.
func (h *Handler) GetChart(c echo.Context) error {
	output, ok := strings.CutSuffix(c.Param("output"), ".png")
	if !ok {
		return httpError(apperr.NotFound("chart " + c.Param("output")))
	}

	in := dashboard.Inputs{}
	for key, values := range c.QueryParams() {
		if len(values) > 0 {
			in[key] = values[0]
		}
	}

	out, err := h.app.Dispatch(c.Param("id"), in)
	if err != nil {
		return httpError(err)
	}
	value, ok := out[output]
	if !ok {
		return c.NoContent(http.StatusNoContent)
	}
	fig, ok := value.(models.Figure)
	if !ok {
		return httpError(apperr.InvalidInput(output + " is not a chart"))
	}

	var buf bytes.Buffer
	if err := render.PNG(&buf, fig); err != nil {
		if errors.Is(err, render.ErrEmptyFigure) {
			return c.NoContent(http.StatusNoContent)
		}
		return err
	}
	return c.Blob(http.StatusOK, "image/png", buf.Bytes())
}

// httpError maps application error codes onto HTTP statuses.
func httpError(err error) error {
	status := http.StatusInternalServerError
	switch apperr.GetCode(err) {
	case apperr.CodeNotFound:
		status = http.StatusNotFound
	case apperr.CodeInvalidInput:
		status = http.StatusBadRequest
	}
	return echo.NewHTTPError(status, err.Error()).SetInternal(err)
}
