package resinaro

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/foomo/resinaro/config"
	"github.com/foomo/resinaro/jsonld"
	"github.com/foomo/resinaro/store"
	"github.com/foomo/resinaro/vo"
)

const (
	contentTypeHTML = "text/html; charset=utf-8"
	contentTypeJSON = "application/json; charset=utf-8"
)

type handler struct {
	service *Service
	baseURL string
	logger  *slog.Logger
}

// NewHandler routes the directory pages, the json api and the operational
// endpoints. Path segments are lowercased before they reach the store.
func NewHandler(service *Service, conf *config.Config, gatherer prometheus.Gatherer, logger *slog.Logger) http.Handler {
	h := &handler{
		service: service,
		baseURL: conf.BaseURL,
		logger:  logger,
	}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, jsonld.DirectoryPath(vo.LocaleEN), http.StatusFound)
	})
	mux.HandleFunc("GET /{locale}/directory", h.directory)
	mux.HandleFunc("GET /{locale}/directory/{city}", h.city)
	mux.HandleFunc("GET /{locale}/directory/{city}/{category}", h.category)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: conf.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", HeaderRequestID},
		ExposedHeaders: []string{HeaderRequestID},
	})
	mux.Handle("/api/{locale}/directory/{city}/{category}", corsHandler.Handler(http.HandlerFunc(h.api)))

	mux.HandleFunc("GET /robots.txt", h.robots)
	mux.HandleFunc("GET /sitemap.xml", h.sitemap)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	mux.Handle("GET /metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	logger.Info("routes configured", slog.String("baseURL", conf.BaseURL))

	return withRequestID(withLogging(logger, mux))
}

func (h *handler) category(w http.ResponseWriter, r *http.Request) {
	rawLocale := r.PathValue("locale")
	page, err := h.service.Resolve(r.Context(), rawLocale, store.Key(r.PathValue("city")), store.Key(r.PathValue("category")))
	h.respond(w, r, PageKindCategory, rawLocale, page, err)
}

func (h *handler) city(w http.ResponseWriter, r *http.Request) {
	rawLocale := r.PathValue("locale")
	page, err := h.service.ResolveCity(r.Context(), rawLocale, store.Key(r.PathValue("city")))
	h.respond(w, r, PageKindCity, rawLocale, page, err)
}

func (h *handler) directory(w http.ResponseWriter, r *http.Request) {
	rawLocale := r.PathValue("locale")
	page, err := h.service.ResolveIndex(r.Context(), rawLocale)
	h.respond(w, r, PageKindDirectory, rawLocale, page, err)
}

func (h *handler) respond(w http.ResponseWriter, r *http.Request, kind PageKind, rawLocale string, page *Page, err error) {
	status := http.StatusOK
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			h.fail(w, r, kind, err)
			return
		}
		status = http.StatusNotFound
		page = h.service.NotFound(rawLocale)
	}
	buf := &bytes.Buffer{}
	if errRender := h.service.Render(buf, page); errRender != nil {
		h.fail(w, r, kind, fmt.Errorf("render %s: %w", page.Kind, errRender))
		return
	}
	h.service.metrics.requests.WithLabelValues(string(kind), strconv.Itoa(status)).Inc()
	w.Header().Set("Content-Type", contentTypeHTML)
	w.Header().Set("Content-Language", page.Locale.String())
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (h *handler) fail(w http.ResponseWriter, r *http.Request, kind PageKind, err error) {
	h.service.metrics.requests.WithLabelValues(string(kind), strconv.Itoa(http.StatusInternalServerError)).Inc()
	h.logger.ErrorContext(r.Context(), "page failed", slog.String("kind", string(kind)), slog.Any("error", err))
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

type apiResponse struct {
	Locale         vo.Locale         `json:"locale"`
	City           string            `json:"city"`
	Category       vo.Category       `json:"category"`
	Heading        string            `json:"heading"`
	Listings       []vo.Listing      `json:"listings"`
	StructuredData []jsonld.Document `json:"structuredData"`
	Validations    vo.Validations    `json:"validations,omitempty"`
}

type apiError struct {
	Error string `json:"error"`
}

func (h *handler) api(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		h.writeJSON(w, http.StatusMethodNotAllowed, apiError{Error: http.StatusText(http.StatusMethodNotAllowed)})
		return
	}
	page, err := h.service.Resolve(r.Context(), r.PathValue("locale"), store.Key(r.PathValue("city")), store.Key(r.PathValue("category")))
	switch {
	case errors.Is(err, ErrNotFound):
		h.service.metrics.requests.WithLabelValues("api", strconv.Itoa(http.StatusNotFound)).Inc()
		h.writeJSON(w, http.StatusNotFound, apiError{Error: ErrNotFound.Error()})
	case err != nil:
		h.service.metrics.requests.WithLabelValues("api", strconv.Itoa(http.StatusInternalServerError)).Inc()
		h.logger.ErrorContext(r.Context(), "api failed", slog.Any("error", err))
		h.writeJSON(w, http.StatusInternalServerError, apiError{Error: http.StatusText(http.StatusInternalServerError)})
	default:
		h.service.metrics.requests.WithLabelValues("api", strconv.Itoa(http.StatusOK)).Inc()
		h.writeJSON(w, http.StatusOK, apiResponse{
			Locale:         page.Locale,
			City:           page.City,
			Category:       page.Category,
			Heading:        page.Heading,
			Listings:       page.Listings,
			StructuredData: page.Documents,
			Validations:    page.Validations,
		})
	}
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	if errEncode := json.NewEncoder(w).Encode(v); errEncode != nil {
		h.logger.Error("could not encode response", slog.Any("error", errEncode))
	}
}
