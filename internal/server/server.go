// Package server exposes rendering over HTTP.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/cbegin/puretone-go"
	"github.com/cbegin/puretone-go/internal/melody"
	"github.com/cbegin/puretone-go/internal/metrics"
	"github.com/cbegin/puretone-go/internal/tone"
)

type Server struct {
	cfg    *Config
	logger *zap.Logger
}

func New(cfg *Config, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{cfg: cfg, logger: logger}
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(RequestID)
	r.Use(Logging(s.logger))
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", requestIDHeader},
		ExposedHeaders:   []string{requestIDHeader, "X-Frames"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/healthz", s.Health)
	r.Handle("/metrics", promhttp.Handler())
	r.Route("/v1", func(r chi.Router) {
		r.Post("/render", s.Render)
	})
	return r
}

// Health handles GET /healthz.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

type renderRequest struct {
	Text       *string               `json:"text,omitempty"`
	Category   string                `json:"category,omitempty"`
	MML        *string               `json:"mml,omitempty"`
	Events     *[]puretone.ToneEvent `json:"events,omitempty"`
	SampleRate int                   `json:"sampleRate,omitempty"`
}

// requestError is a failure caused by the request itself.
type requestError struct {
	status int
	msg    string
}

func (e *requestError) Error() string { return e.msg }

func badRequest(format string, args ...any) error {
	return &requestError{status: http.StatusBadRequest, msg: fmt.Sprintf(format, args...)}
}

// events resolves the request to a tone sequence and names its source.
func (req *renderRequest) events() (string, []puretone.ToneEvent, error) {
	set := 0
	for _, present := range []bool{req.Text != nil, req.MML != nil, req.Events != nil} {
		if present {
			set++
		}
	}
	if set != 1 {
		return "", nil, badRequest("exactly one of text, mml or events must be set")
	}
	switch {
	case req.Text != nil:
		if req.Category != "" {
			c, err := melody.ParseCategory(req.Category)
			if err != nil {
				return "text", nil, badRequest("%v", err)
			}
			return "text", melody.Track(c), nil
		}
		return "text", puretone.Track(*req.Text), nil
	case req.MML != nil:
		evs, err := puretone.Compile(*req.MML)
		if err != nil {
			return "mml", nil, badRequest("mml: %v", err)
		}
		return "mml", evs, nil
	default:
		return "events", *req.Events, nil
	}
}

// Render handles POST /v1/render and answers with a mono 16-bit WAV file.
func (s *Server) Render(w http.ResponseWriter, r *http.Request) {
	source := "unknown"
	samples, sampleRate, err := s.render(w, r, &source)
	if err != nil {
		s.fail(w, r, source, err)
		return
	}

	start := time.Now()
	body, err := puretone.EncodeWAVBytes(samples, sampleRate)
	metrics.RenderLatency.WithLabelValues("encode").Observe(float64(time.Since(start).Microseconds()) / 1000)
	if err != nil {
		s.fail(w, r, source, err)
		return
	}
	metrics.RendersTotal.WithLabelValues(source, "ok").Inc()
	metrics.FramesRenderedTotal.Add(float64(len(samples)))

	w.Header().Set("Content-Type", "audio/wav")
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.Header().Set("X-Frames", strconv.Itoa(len(samples)))
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, source *string) ([]int16, int, error) {
	var req renderRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			return nil, 0, &requestError{status: http.StatusRequestEntityTooLarge, msg: "request body too large"}
		}
		return nil, 0, badRequest("invalid request body: %v", err)
	}

	src, events, err := req.events()
	*source = src
	if err != nil {
		return nil, 0, err
	}
	sampleRate := req.SampleRate
	if sampleRate == 0 {
		sampleRate = s.cfg.SampleRate
	}
	if sampleRate > s.cfg.MaxSampleRate {
		return nil, 0, badRequest("sample rate %d exceeds limit of %d", sampleRate, s.cfg.MaxSampleRate)
	}
	if total := tone.TotalDuration(events); total > s.cfg.MaxDurationSec {
		return nil, 0, &requestError{
			status: http.StatusRequestEntityTooLarge,
			msg:    fmt.Sprintf("total duration %.3fs exceeds limit of %.3fs", total, s.cfg.MaxDurationSec),
		}
	}

	start := time.Now()
	samples, err := puretone.Synthesize(sampleRate, events)
	metrics.RenderLatency.WithLabelValues("synthesize").Observe(float64(time.Since(start).Microseconds()) / 1000)
	if errors.Is(err, puretone.ErrInvalidInput) {
		return nil, 0, badRequest("%v", err)
	}
	if err != nil {
		return nil, 0, err
	}
	return samples, sampleRate, nil
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, source string, err error) {
	status := http.StatusInternalServerError
	var reqErr *requestError
	if errors.As(err, &reqErr) {
		status = reqErr.status
		metrics.RendersTotal.WithLabelValues(source, "rejected").Inc()
	} else {
		metrics.RendersTotal.WithLabelValues(source, "error").Inc()
		s.logger.Error("render failed",
			zap.String("source", source),
			zap.String("requestId", RequestIDFrom(r.Context())),
			zap.Error(err),
		)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
