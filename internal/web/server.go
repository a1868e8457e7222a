package web

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"WhyInvesting/internal/cycle"
	"WhyInvesting/internal/fund"
	"WhyInvesting/internal/model"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

// SpeedRange describes the slider bounds.
type SpeedRange struct {
	Min  float64
	Max  float64
	Step float64
}

// Server is the HTTP render surface: the page, JSON state and the snapshot stream.
type Server struct {
	engine   *fund.Engine
	driver   *cycle.Driver
	speed    SpeedRange
	meta     model.PageMeta
	logger   *zap.Logger
	tmpl     *template.Template
	upgrader websocket.Upgrader
	http     *http.Server
}

// NewServer parses the page template and wires the routes.
func NewServer(addr string, engine *fund.Engine, driver *cycle.Driver, speed SpeedRange, logger *zap.Logger) (*Server, error) {
	tmpl, err := template.New("").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	s := &Server{
		engine: engine,
		driver: driver,
		speed:  speed,
		meta:   model.DefaultPageMeta,
		logger: logger,
		tmpl:   tmpl,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
	}
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s, nil
}

// Handler returns the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /api/summary", s.handleSummary)
	mux.HandleFunc("GET /api/state", s.handleState)
	mux.HandleFunc("POST /api/speed", s.handleSpeed)
	mux.HandleFunc("GET /ws", s.handleStream)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}

// ListenAndServe blocks until the server is shut down.
func (s *Server) ListenAndServe() error {
	s.logger.Info("http server listening", zap.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen: %w", err)
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

type pageView struct {
	Meta     model.PageMeta
	Summary  *model.FlowSummary
	Snapshot model.Snapshot
	Speed    SpeedRange
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	view := pageView{
		Meta:     s.meta,
		Summary:  s.engine.Summary(),
		Snapshot: s.driver.Snapshot(),
		Speed:    s.speed,
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.ExecuteTemplate(w, "index.html", view); err != nil {
		s.logger.Error("render page", zap.Error(err))
	}
}

func (s *Server) handleSummary(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.engine.Summary())
}

func (s *Server) handleState(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.driver.Snapshot())
}

type speedRequest struct {
	Speed *float64 `json:"speed"`
}

func (s *Server) handleSpeed(w http.ResponseWriter, r *http.Request) {
	var req speedRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1024)).Decode(&req); err != nil || req.Speed == nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "body must be {\"speed\": number}"})
		return
	}
	s.driver.SetSpeed(*req.Speed)
	s.writeJSON(w, http.StatusOK, s.driver.Snapshot())
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("write json", zap.Error(err))
	}
}
