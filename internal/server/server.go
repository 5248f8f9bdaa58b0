// Package server exposes the widget configuration screen over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"widgetconfig/internal/capability"
	"widgetconfig/internal/errs"
	"widgetconfig/internal/logging"
	"widgetconfig/internal/output"
	"widgetconfig/internal/status"
	"widgetconfig/internal/weather"
	"widgetconfig/internal/widget"
)

type Deps struct {
	Registry  *widget.Registry
	Store     widget.Store
	Lunar     capability.Check
	Locations []*weather.Location
	Status    *status.Registry
	Previews  *status.Counter

	// Outputs receive every preview pushed after a change, next to the
	// websocket watchers.
	Outputs []output.OutputHandler

	// MaxSessions and SessionTTL bound the edited sessions kept in memory.
	MaxSessions int
	SessionTTL  time.Duration

	// Now is the render time of every preview and feeds the sample
	// location when Locations is empty.
	Now func() time.Time
}

type Server struct {
	deps     Deps
	echo     *echo.Echo
	sessions *sessions
	hub      *hub
	outputs  *output.OutputManager
}

func New(deps Deps) *Server {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Previews == nil {
		deps.Previews = &status.Counter{}
	}
	if deps.Status == nil {
		deps.Status = status.DefaultRegistry(deps.Previews)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = handleError

	h := newHub()
	s := &Server{
		deps:     deps,
		echo:     e,
		sessions: newSessions(deps.Registry, deps.Store, deps.Lunar, deps.MaxSessions, deps.SessionTTL),
		hub:      h,
		outputs:  output.NewOutputManager(append([]output.OutputHandler{h}, deps.Outputs...)...),
	}

	e.Use(requestLogger)

	api := e.Group("/api")
	api.GET("/status", s.getStatus)
	api.GET("/locations", s.listLocations)
	api.GET("/widgets", s.listVariants)
	api.GET("/widgets/:variant", s.listWidgets)
	api.POST("/widgets/:variant", s.createWidget)
	api.GET("/widgets/:variant/:id", s.getWidget)
	api.PATCH("/widgets/:variant/:id", s.patchWidget)
	api.DELETE("/widgets/:variant/:id", s.deleteWidget)
	api.POST("/widgets/:variant/:id/save", s.saveWidget)
	api.GET("/widgets/:variant/:id/preview.png", s.getPreview)
	e.GET("/ws/widgets/:variant/:id", s.watchPreview)

	return s
}

func (s *Server) Handler() http.Handler {
	return s.echo
}

func (s *Server) Start(addr string) error {
	logging.InfoModule("server", "listening on %s", addr)
	if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.outputs.Close()
	return s.echo.Shutdown(ctx)
}

func handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		msg := http.StatusText(he.Code)
		if m, ok := he.Message.(string); ok {
			msg = m
		}
		_ = c.JSON(he.Code, errs.ErrorResponse{Code: "http_error", Message: msg})
		return
	}

	code, body := errs.Response(err)
	if code >= http.StatusInternalServerError {
		logging.ErrorModule("server", "%s %s: %v", c.Request().Method, c.Request().URL.Path, err)
	} else {
		logging.DebugModule("server", "%s %s: %v", c.Request().Method, c.Request().URL.Path, err)
	}
	_ = c.JSON(code, body)
}

func requestLogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		if err != nil {
			c.Error(err)
		}
		req := c.Request()
		logging.DebugModule("http", "%s %s %d %v", req.Method, req.URL.Path, c.Response().Status, time.Since(start))
		return nil
	}
}
