package server

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"widgetconfig/internal/errs"
	"widgetconfig/internal/logging"
	"widgetconfig/internal/output"
	"widgetconfig/internal/weather"
	"widgetconfig/internal/widget"
)

type variantView struct {
	Name     string `json:"name"`
	StoreKey string `json:"store_key"`
}

type widgetListView struct {
	variantView
	IDs []string `json:"ids"`
}

type sessionView struct {
	Variant       string               `json:"variant"`
	StoreKey      string               `json:"store_key"`
	Configuration widget.Configuration `json:"configuration"`
	Controls      []widget.Control     `json:"controls"`
	Options       widget.OptionsView   `json:"options"`
}

type locationView struct {
	ID    string `json:"id"`
	Place string `json:"place"`
}

func newSessionView(c *widget.Controller) sessionView {
	controls := c.Controls()
	visible := make([]widget.Control, 0, len(widget.AllControls))
	for _, ctl := range widget.AllControls {
		if controls.Visible(ctl) {
			visible = append(visible, ctl)
		}
	}
	return sessionView{
		Variant:       c.Widget().Name(),
		StoreKey:      c.Widget().ConfigStoreKey(),
		Configuration: c.Configuration(),
		Controls:      visible,
		Options:       c.Options().View(),
	}
}

func (s *Server) getStatus(c echo.Context) error {
	return c.JSON(http.StatusOK, s.deps.Status.Snapshot())
}

func (s *Server) listLocations(c echo.Context) error {
	locs := s.locations()
	out := make([]locationView, 0, len(locs))
	for _, l := range locs {
		out = append(out, locationView{ID: l.ID, Place: l.CityAndDistrict()})
	}
	return c.JSON(http.StatusOK, out)
}

func (s *Server) listVariants(c echo.Context) error {
	names := s.deps.Registry.Names()
	out := make([]variantView, 0, len(names))
	for _, name := range names {
		w, _ := s.deps.Registry.Get(name)
		out = append(out, variantView{Name: name, StoreKey: w.ConfigStoreKey()})
	}
	return c.JSON(http.StatusOK, out)
}

func (s *Server) listWidgets(c echo.Context) error {
	w, err := s.sessions.variant(c.Param("variant"))
	if err != nil {
		return err
	}
	ids, err := s.deps.Store.List(c.Request().Context(), w.ConfigStoreKey())
	if err != nil {
		return err
	}
	if ids == nil {
		ids = []string{}
	}
	return c.JSON(http.StatusOK, widgetListView{
		variantView: variantView{Name: w.Name(), StoreKey: w.ConfigStoreKey()},
		IDs:         ids,
	})
}

func (s *Server) createWidget(c echo.Context) error {
	ctl, err := s.sessions.acquire(c.Request().Context(), c.Param("variant"), uuid.NewString())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, newSessionView(ctl))
}

func (s *Server) getWidget(c echo.Context) error {
	ctl, err := s.sessions.get(c.Request().Context(), c.Param("variant"), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newSessionView(ctl))
}

func (s *Server) patchWidget(c echo.Context) error {
	ctx := c.Request().Context()
	ctl, err := s.sessions.acquire(ctx, c.Param("variant"), c.Param("id"))
	if err != nil {
		return err
	}
	var patch widget.Patch
	if err := c.Bind(&patch); err != nil {
		return errs.NewValidationError("invalid request body")
	}
	if err := ctl.Apply(patch); err != nil {
		return err
	}
	s.pushPreview(ctx, ctl, c.QueryParam("location"))
	return c.JSON(http.StatusOK, newSessionView(ctl))
}

func (s *Server) saveWidget(c echo.Context) error {
	ctl, err := s.sessions.get(c.Request().Context(), c.Param("variant"), c.Param("id"))
	if err != nil {
		return err
	}
	saved, err := ctl.Save(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, saved)
}

func (s *Server) deleteWidget(c echo.Context) error {
	variant, id := c.Param("variant"), c.Param("id")
	ctl, err := s.sessions.get(c.Request().Context(), variant, id)
	if err != nil {
		return err
	}
	defer s.sessions.drop(variant, id)
	if err := ctl.Remove(c.Request().Context()); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) getPreview(c echo.Context) error {
	ctx := c.Request().Context()
	ctl, err := s.sessions.get(ctx, c.Param("variant"), c.Param("id"))
	if err != nil {
		return err
	}
	loc, err := s.location(c.QueryParam("location"))
	if err != nil {
		return err
	}
	frame, err := s.renderPNG(ctx, ctl, loc)
	if err != nil {
		return err
	}
	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")
	return c.Blob(http.StatusOK, "image/png", frame)
}

// watchPreview streams a PNG frame on connect and after every change.
func (s *Server) watchPreview(c echo.Context) error {
	ctx := c.Request().Context()
	variant, id := c.Param("variant"), c.Param("id")
	ctl, err := s.sessions.get(ctx, variant, id)
	if err != nil {
		return err
	}
	loc, err := s.location(c.QueryParam("location"))
	if err != nil {
		return err
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	cl := &client{conn: conn}
	key := sessionKey(variant, id)
	s.hub.add(key, cl)
	defer func() {
		s.hub.remove(key, cl)
		conn.Close()
	}()

	frame, err := s.renderPNG(ctx, ctl, loc)
	if err != nil {
		logging.WarnModule("ws", "initial preview for %s failed: %v", key, err)
		_ = conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseInternalServerErr, "preview failed"))
		return nil
	}
	if err := cl.send(frame); err != nil {
		return nil
	}

	// Clients only listen; reading drives ping/close handling.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logging.DebugModule("ws", "watcher of %s left: %v", key, err)
			}
			return nil
		}
	}
}

func (s *Server) pushPreview(ctx context.Context, ctl *widget.Controller, locationID string) {
	key := sessionKey(ctl.Widget().Name(), ctl.Configuration().WidgetID)
	// the hub is always registered; skip rendering when it is the only
	// output and nobody watches
	if s.hub.count(key) == 0 && s.outputs.Len() <= 1 {
		return
	}
	loc, err := s.location(locationID)
	if err != nil {
		logging.WarnModule("output", "skip push for %s: %v", key, err)
		return
	}
	img, err := ctl.Preview(ctx, loc, s.deps.Now())
	if err != nil {
		logging.WarnModule("output", "preview for %s failed: %v", key, err)
		return
	}
	if _, err := s.outputs.Output(key, img); err != nil {
		logging.WarnModule("output", "push for %s failed: %v", key, err)
		return
	}
	s.deps.Previews.Inc()
}

func (s *Server) renderPNG(ctx context.Context, ctl *widget.Controller, loc *weather.Location) ([]byte, error) {
	img, err := ctl.Preview(ctx, loc, s.deps.Now())
	if err != nil {
		return nil, err
	}
	frame, err := output.EncodePNG(img)
	if err != nil {
		return nil, err
	}
	s.deps.Previews.Inc()
	return frame, nil
}

func (s *Server) locations() []*weather.Location {
	if len(s.deps.Locations) > 0 {
		return s.deps.Locations
	}
	return []*weather.Location{weather.DefaultLocation(s.deps.Now())}
}

// location picks the preview location by id, the first one by default.
func (s *Server) location(id string) (*weather.Location, error) {
	locs := s.locations()
	if strings.TrimSpace(id) == "" {
		return locs[0], nil
	}
	loc, ok := weather.Find(locs, id)
	if !ok {
		return nil, errs.NewNotFoundError("unknown location " + id)
	}
	return loc, nil
}
