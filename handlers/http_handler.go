// Package handlers serves the viewer pages, the drug image, a read-only JSON
// view of the catalog and the health endpoint.
package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/giygas/entresto-info/asset"
	"github.com/giygas/entresto-info/interfaces"
	"github.com/giygas/entresto-info/logging"
	"github.com/giygas/entresto-info/metrics"
	"github.com/giygas/entresto-info/render"
	"github.com/giygas/entresto-info/theme"
	"github.com/go-chi/chi/v5"
)

var (
	_ interfaces.HTTPHandler  = (*HTTPHandlerImpl)(nil)
	_ interfaces.PageRenderer = (*render.Renderer)(nil)
	_ interfaces.AssetLocator = (*asset.Locator)(nil)
)

// themeCookieMaxAge keeps an explicit theme choice for a year
const themeCookieMaxAge = 365 * 24 * 60 * 60

// HTTPHandlerImpl implements interfaces.HTTPHandler
type HTTPHandlerImpl struct {
	store        interfaces.CatalogStore
	renderer     interfaces.PageRenderer
	locator      interfaces.AssetLocator
	validator    interfaces.ContentValidator
	health       interfaces.HealthChecker
	defaultTheme theme.Mode
}

// NewHTTPHandler creates the handler set with its dependencies
func NewHTTPHandler(
	store interfaces.CatalogStore,
	renderer interfaces.PageRenderer,
	locator interfaces.AssetLocator,
	validator interfaces.ContentValidator,
	health interfaces.HealthChecker,
	defaultTheme theme.Mode,
) *HTTPHandlerImpl {
	return &HTTPHandlerImpl{
		store:        store,
		renderer:     renderer,
		locator:      locator,
		validator:    validator,
		health:       health,
		defaultTheme: defaultTheme,
	}
}

// HealthResponse keeps the JSON field order stable
type HealthResponse struct {
	Status string         `json:"status"`
	Data   map[string]any `json:"data"`
}

// RespondWithJSON writes payload as JSON with the given status
func RespondWithJSON(w http.ResponseWriter, code int, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		logging.Error("Failed to marshal JSON response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	w.Write(data)
}

// RespondWithError writes {error, message, code}
func RespondWithError(w http.ResponseWriter, code int, message string) {
	RespondWithJSON(w, code, map[string]any{
		"error":   http.StatusText(code),
		"message": message,
		"code":    code,
	})
}

// ServeIndex renders the first tab
func (h *HTTPHandlerImpl) ServeIndex(w http.ResponseWriter, r *http.Request) {
	h.servePage(w, r, "")
}

// ServeTab renders the tab named by the {slug} URL parameter
func (h *HTTPHandlerImpl) ServeTab(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	if err := h.validator.ValidateTabSlug(slug); err != nil {
		logging.Warn("Unusual user input", "slug", slug, "error", err)
		RespondWithError(w, http.StatusBadRequest, "Invalid tab name")
		return
	}

	if !h.renderer.HasTab(slug) {
		RespondWithError(w, http.StatusNotFound, "Tab not found")
		return
	}

	h.servePage(w, r, slug)
}

func (h *HTTPHandlerImpl) servePage(w http.ResponseWriter, r *http.Request, slug string) {
	cat := h.store.GetCatalog()
	if cat == nil {
		RespondWithError(w, http.StatusServiceUnavailable, "Content is not loaded")
		return
	}

	mode := h.resolveTheme(w, r)

	var buf bytes.Buffer
	err := h.renderer.Render(&buf, render.Request{
		Tab:   slug,
		Mode:  mode,
		Image: h.locator.Lookup(),
	})
	if errors.Is(err, render.ErrUnknownTab) {
		RespondWithError(w, http.StatusNotFound, "Tab not found")
		return
	}
	if err != nil {
		logging.Error("Failed to render page", "tab", slug, "error", err)
		RespondWithError(w, http.StatusInternalServerError, "Failed to render page")
		return
	}

	label := slug
	if label == "" {
		label = cat.Default().Slug
	}
	metrics.PageRenders.WithLabelValues(label, string(mode)).Inc()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// resolveTheme picks the mode for this request and persists an explicit
// ?theme= choice in a cookie
func (h *HTTPHandlerImpl) resolveTheme(w http.ResponseWriter, r *http.Request) theme.Mode {
	w.Header().Set("Accept-CH", theme.HintHeader)
	w.Header().Add("Vary", theme.HintHeader)
	w.Header().Add("Vary", "Cookie")

	if raw := r.URL.Query().Get("theme"); raw != "" {
		if mode, err := theme.ParseMode(raw); err == nil {
			http.SetCookie(w, &http.Cookie{
				Name:     theme.CookieName,
				Value:    string(mode),
				Path:     "/",
				MaxAge:   themeCookieMaxAge,
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		} else {
			logging.Debug("Ignoring unknown theme", "theme", raw)
		}
	}

	return theme.FromRequest(r, h.defaultTheme)
}

// ServeImage serves the drug image or a 404 when it is not installed
func (h *HTTPHandlerImpl) ServeImage(w http.ResponseWriter, r *http.Request) {
	img := h.locator.Lookup()
	if !img.Present {
		RespondWithError(w, http.StatusNotFound, "Drug box image not found")
		return
	}

	w.Header().Set("Cache-Control", "public, max-age=3600")
	http.ServeFile(w, r, img.Path)
}

// ServeCatalog returns the whole catalog as JSON
func (h *HTTPHandlerImpl) ServeCatalog(w http.ResponseWriter, r *http.Request) {
	cat := h.store.GetCatalog()
	if cat == nil {
		RespondWithError(w, http.StatusServiceUnavailable, "Content is not loaded")
		return
	}

	if start := h.store.GetServerStartTime(); !start.IsZero() {
		w.Header().Set("Last-Modified", start.UTC().Format(http.TimeFormat))
	}
	RespondWithJSON(w, http.StatusOK, cat)
}

// ServeTabJSON returns one tab as JSON
func (h *HTTPHandlerImpl) ServeTabJSON(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	if err := h.validator.ValidateTabSlug(slug); err != nil {
		logging.Warn("Unusual user input", "slug", slug, "error", err)
		RespondWithError(w, http.StatusBadRequest, "Invalid tab name")
		return
	}

	cat := h.store.GetCatalog()
	if cat == nil {
		RespondWithError(w, http.StatusServiceUnavailable, "Content is not loaded")
		return
	}

	tab, ok := cat.Tab(slug)
	if !ok {
		RespondWithError(w, http.StatusNotFound, "Tab not found")
		return
	}

	RespondWithJSON(w, http.StatusOK, tab)
}

// HealthCheck reports the viewer health
func (h *HTTPHandlerImpl) HealthCheck(w http.ResponseWriter, r *http.Request) {
	status, data, code := h.health.HealthCheck()

	w.Header().Set("Cache-Control", "no-store")
	RespondWithJSON(w, code, HealthResponse{
		Status: status,
		Data:   data,
	})
}
