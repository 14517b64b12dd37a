package httpapi

import (
	"io"
	"net/http"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/labstack/echo/v4"

	"tickboard/internal/board"
	appErrors "tickboard/internal/errors"
	"tickboard/internal/settings"
)

const preferencesMaxBody = 4 << 10

type boardResponse struct {
	board.View
	Total      int    `json:"total"`
	FetchError string `json:"fetchError,omitempty"`
}

type healthResponse struct {
	Status  string `json:"status"`
	Loaded  bool   `json:"loaded"`
	Tickets int    `json:"tickets"`
}

type errorResponse struct {
	Code    appErrors.Code `json:"code"`
	Message string         `json:"message"`
}

type preferencesRequest struct {
	GroupBy *string `json:"groupBy"`
	SortBy  *string `json:"sortBy"`
}

// getBoard derives the board for the requested modes. Blank query values
// fall back to the stored preferences. Like the UI, an unknown groupBy is
// treated as status and an unknown sortBy keeps feed order.
func (s *Server) getBoard(c echo.Context) error {
	items, prefs, fetchErr := s.snapshot()

	groupBy := prefs.GroupBy
	if raw := strings.TrimSpace(c.QueryParam("groupBy")); raw != "" {
		groupBy = board.GroupBy(raw)
	}
	sortBy := prefs.SortBy
	if raw := strings.TrimSpace(c.QueryParam("sortBy")); raw != "" {
		sortBy = board.SortBy(raw)
	}

	view := board.Derive(items, groupBy, sortBy, board.WithLocale(s.locale))
	if view.Groups == nil {
		view.Groups = []board.Group{}
	}
	resp := boardResponse{View: view, Total: view.Count()}
	if fetchErr != nil {
		resp.FetchError = fetchErr.Error()
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *Server) getPreferences(c echo.Context) error {
	_, prefs, _ := s.snapshot()
	return c.JSON(http.StatusOK, prefs)
}

// putPreferences validates and persists a full or partial preferences update.
func (s *Server) putPreferences(c echo.Context) error {
	dec := sonic.ConfigStd.NewDecoder(io.LimitReader(c.Request().Body, preferencesMaxBody))
	dec.DisallowUnknownFields()

	var req preferencesRequest
	if err := dec.Decode(&req); err != nil {
		return badPreference(c, "invalid body")
	}
	if req.GroupBy == nil && req.SortBy == nil {
		return badPreference(c, "groupBy or sortBy is required")
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.RLock()
	next := s.prefs
	s.mu.RUnlock()

	if req.GroupBy != nil {
		g, ok := board.ParseGroupBy(*req.GroupBy)
		if !ok {
			return badPreference(c, "unknown groupBy: "+*req.GroupBy)
		}
		next.GroupBy = g
	}
	if req.SortBy != nil {
		v, ok := board.ParseSortBy(*req.SortBy)
		if !ok {
			return badPreference(c, "unknown sortBy: "+*req.SortBy)
		}
		next.SortBy = v
	}

	if err := settings.SavePreferences(c.Request().Context(), s.store, next); err != nil {
		s.log.WithError(err).Error("preferences.save.failed")
		return c.JSON(http.StatusInternalServerError, errorResponse{
			Code:    appErrors.CodeOf(err),
			Message: err.Error(),
		})
	}
	s.mu.Lock()
	s.prefs = next
	s.mu.Unlock()
	return c.JSON(http.StatusOK, next)
}

func (s *Server) healthz(c echo.Context) error {
	s.mu.RLock()
	resp := healthResponse{Status: "ok", Loaded: s.loaded, Tickets: len(s.items)}
	s.mu.RUnlock()
	return c.JSON(http.StatusOK, resp)
}

func badPreference(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, errorResponse{
		Code:    appErrors.CodeInvalidPreference,
		Message: msg,
	})
}
