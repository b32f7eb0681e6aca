package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/HalfToothed/gostman-site/config"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const maxManifestBytes = 1 << 20

// ConfigView is the JSON form of a composed config.
type ConfigView struct {
	config.Manifest
	PublicURL string `json:"public_url"`
}

type violationView struct {
	Kind    config.Kind `json:"kind"`
	Field   string      `json:"field"`
	Message string      `json:"message"`
}

type errorView struct {
	Error      string          `json:"error"`
	Violations []violationView `json:"violations,omitempty"`
}

// NewConfigView builds the JSON form of cfg.
func NewConfigView(cfg config.SiteConfig) ConfigView {
	return ConfigView{Manifest: config.ManifestFor(cfg), PublicURL: cfg.PublicURL()}
}

// SetupRouter serves a read-only view of cfg plus a compose endpoint that
// validates posted manifests.
func SetupRouter(cfg config.SiteConfig, logger zerolog.Logger) *mux.Router {
	router := mux.NewRouter()
	logged := logRequests(logger)
	router.Use(logged)

	// mux skips middleware for unmatched requests
	router.NotFoundHandler = logged(http.HandlerFunc(notFoundHandler))
	router.MethodNotAllowedHandler = logged(http.HandlerFunc(methodNotAllowedHandler))

	view := NewConfigView(cfg)
	router.HandleFunc("/config", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, view)
	}).Methods("GET")
	router.HandleFunc("/config/head", func(w http.ResponseWriter, r *http.Request) {
		head := view.Head
		if head == nil {
			head = []config.HeadEntry{}
		}
		writeJSON(w, http.StatusOK, head)
	}).Methods("GET")
	router.HandleFunc("/config/social", func(w http.ResponseWriter, r *http.Request) {
		social := view.Social
		if social == nil {
			social = map[string]string{}
		}
		writeJSON(w, http.StatusOK, social)
	}).Methods("GET")

	router.HandleFunc("/compose", ComposeHandler).Methods("POST")

	return router
}

// ComposeHandler composes the YAML manifest in the request body.
func ComposeHandler(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxManifestBytes))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorView{Error: errors.Wrap(err, "reading body").Error()})
		return
	}

	manifest, err := config.ParseManifest(body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorView{Error: err.Error()})
		return
	}

	cfg, err := config.Compose(manifest.Input())
	if err != nil {
		var verr *config.ValidationError
		if !errors.As(err, &verr) {
			writeJSON(w, http.StatusInternalServerError, errorView{Error: err.Error()})
			return
		}

		resp := errorView{Error: "invalid site config"}
		for _, v := range verr.Violations() {
			resp.Violations = append(resp.Violations, violationView{Kind: v.Kind, Field: v.Field, Message: v.Message})
		}
		writeJSON(w, http.StatusUnprocessableEntity, resp)
		return
	}

	writeJSON(w, http.StatusOK, NewConfigView(cfg))
}

func notFoundHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, errorView{Error: "no such endpoint: " + r.URL.Path})
}

func methodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusMethodNotAllowed, errorView{Error: r.Method + " not allowed on " + r.URL.Path})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func logRequests(logger zerolog.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			logger.Debug().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", rec.status).
				Dur("took", time.Since(start)).
				Msg("request")
		})
	}
}
