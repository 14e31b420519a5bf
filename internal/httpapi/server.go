// Package httpapi exposes the layout engine over HTTP.
//
// The API has a single computation endpoint, POST /v1/layout, which accepts
// a JSON body with the legend entries, an optional partial config overlay,
// the available viewport width and the fixed text metrics to measure with.
// It responds with the computed layout result. GET /healthz reports liveness.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	apperrors "github.com/chartkit/legend/pkg/errors"
	legendio "github.com/chartkit/legend/pkg/io"
	"github.com/chartkit/legend/pkg/legend"
	"github.com/chartkit/legend/pkg/measure"
	"github.com/chartkit/legend/pkg/observability"
)

// maxBodyBytes caps the request body size for layout requests.
const maxBodyBytes = 1 << 20

// requestIDKey is the context key under which the request ID is stored.
type requestIDKey struct{}

// =============================================================================
// Server
// =============================================================================

// Server serves the layout API.
type Server struct {
	logger *log.Logger
	router chi.Router
}

// New creates a Server with its routes registered.
func New(logger *log.Logger) *Server {
	s := &Server{logger: logger}

	r := chi.NewRouter()
	r.Use(s.requestID)
	r.Use(s.logRequests)
	r.Get("/healthz", s.handleHealth)
	r.Post("/v1/layout", s.handleLayout)
	s.router = r

	return s
}

// Handler returns the server's HTTP handler, for mounting or testing.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe runs the server on addr until ctx is canceled, then shuts
// down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return ctx.Err()
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// =============================================================================
// Middleware
// =============================================================================

// requestID assigns each request a UUID, exposed on the context and the
// X-Request-Id response header.
func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id)))
	})
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

// logRequests logs each request and reports it through the HTTP hooks.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		observability.HTTP().OnRequest(r.Context(), r.Method, r.URL.Path)
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(rec, r)

		elapsed := time.Since(start)
		observability.HTTP().OnResponse(r.Context(), r.Method, r.URL.Path, rec.status, elapsed)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"took", elapsed.Round(time.Microsecond),
			"id", RequestID(r.Context()),
		)
	})
}

// RequestID returns the request ID stored on ctx, or "" outside a request.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// =============================================================================
// Handlers
// =============================================================================

// metricsRequest selects the fixed text metrics for a layout request.
// Zero values fall back to the defaults.
type metricsRequest struct {
	CharWidth  float64 `json:"charWidth"`
	CharHeight float64 `json:"charHeight"`
	LineHeight float64 `json:"lineHeight"`
	Spacing    float64 `json:"lineSpacing"`
}

// layoutRequest is the POST /v1/layout body.
type layoutRequest struct {
	Entries        []legend.Entry  `json:"entries"`
	Config         legendio.Config `json:"config"`
	AvailableWidth float64         `json:"availableWidth"`
	Metrics        *metricsRequest `json:"metrics,omitempty"`
}

// layoutResponse is the POST /v1/layout success body.
type layoutResponse struct {
	Result legend.Result `json:"result"`
}

// errorResponse is the body for all error statuses.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	var req layoutRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		s.writeError(w, r, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "decode request"))
		return
	}

	cfg, err := req.Config.Apply(legend.DefaultConfig())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	m := measure.DefaultFixed()
	if req.Metrics != nil {
		if req.Metrics.CharWidth > 0 {
			m.CharWidth = req.Metrics.CharWidth
		}
		if req.Metrics.CharHeight > 0 {
			m.CharHeight = req.Metrics.CharHeight
		}
		if req.Metrics.LineHeight > 0 {
			m.Line = req.Metrics.LineHeight
		}
		if req.Metrics.Spacing > 0 {
			m.Spacing = req.Metrics.Spacing
		}
	}

	width := req.AvailableWidth
	if width <= 0 {
		s.writeError(w, r, apperrors.New(apperrors.ErrCodeInvalidInput,
			"availableWidth must be positive, got %v", width))
		return
	}

	ctx := r.Context()
	observability.Layout().OnLayoutStart(ctx, cfg.Orientation.String(), len(req.Entries))
	start := time.Now()
	res, err := legend.Calculate(req.Entries, cfg, m, width)
	observability.Layout().OnLayoutComplete(ctx, cfg.Orientation.String(), res.LineCount(), time.Since(start), err)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, layoutResponse{Result: res})
}

// =============================================================================
// Responses
// =============================================================================

// statusForCode maps application error codes to HTTP statuses. Unknown codes
// map to 500 so bugs surface as server errors rather than client blame.
func statusForCode(code apperrors.Code) int {
	switch code {
	case apperrors.ErrCodeInvalidInput,
		apperrors.ErrCodeInvalidConfig,
		apperrors.ErrCodeInvalidEntries,
		apperrors.ErrCodeInvalidForm,
		apperrors.ErrCodeInvalidPath,
		apperrors.ErrCodeInvalidFont:
		return http.StatusBadRequest
	case apperrors.ErrCodeNotFound,
		apperrors.ErrCodeFileNotFound,
		apperrors.ErrCodeFontNotFound:
		return http.StatusNotFound
	case apperrors.ErrCodeUnsupported:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := apperrors.GetCode(err)
	status := statusForCode(code)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "err", err, "id", RequestID(r.Context()))
	}
	writeJSON(w, status, errorResponse{
		Code:    string(code),
		Message: apperrors.UserMessage(err),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
