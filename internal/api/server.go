package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"itemlist/internal/metrics"
	"itemlist/internal/usecase"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type createReq struct {
	Text string `json:"text"`
}

type errorResp struct {
	Error string `json:"error"`
}

func NewServer(items usecase.Items, m *metrics.Metrics) *Server {
	s := &Server{items: items, metrics: m}

	r := chi.NewRouter()
	r.Get("/items", s.listItems)
	r.Post("/items", s.createItem)
	r.Get("/healthz", s.health)
	r.Method(http.MethodGet, "/metrics", m.Handler())

	s.router = r
	return s
}

type Server struct {
	router  *chi.Mux
	items   usecase.Items
	metrics *metrics.Metrics
}

func (s *Server) listItems(w http.ResponseWriter, r *http.Request) {
	items, err := s.items.List(r.Context())
	if err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("list items failed")
		writeJSON(w, http.StatusInternalServerError, errorResp{Error: "failed to list items"})
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) createItem(w http.ResponseWriter, r *http.Request) {
	var req createReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp{Error: "invalid JSON body"})
		return
	}

	it, err := s.items.Create(r.Context(), req.Text)
	if err != nil {
		var verr *usecase.ValidationError
		if errors.As(err, &verr) {
			writeJSON(w, http.StatusUnprocessableEntity, errorResp{Error: verr.Message})
			return
		}
		log.Ctx(r.Context()).Error().Err(err).Msg("create item failed")
		writeJSON(w, http.StatusInternalServerError, errorResp{Error: "failed to create item"})
		return
	}

	s.metrics.ItemsCreated.Inc()
	writeJSON(w, http.StatusCreated, it)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	if err := s.items.Store.Ping(r.Context()); err != nil {
		http.Error(w, "store unavailable", http.StatusServiceUnavailable)
		return
	}
	_, _ = w.Write([]byte("ok"))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Handler returns the router wrapped in the middleware chain.
func (s *Server) Handler() http.Handler {
	return chainMiddleware(
		s.router,
		realIPHandler,
		requestIDHandler,
		loggerHandler(func(w http.ResponseWriter, r *http.Request) bool { return r.URL.Path == "/healthz" }),
		metricsHandler(s.metrics),
		recoverHandler,
		corsHandler,
	)
}

// Run serves on port until SIGINT or SIGTERM, then drains for up to 30 seconds.
func (s *Server) Run(port int) error {
	addr := fmt.Sprintf(":%d", port)

	httpServer := http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	done := make(chan error, 1)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(quit)

	go func() {
		<-quit
		log.Info().Msg("Server is shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		done <- httpServer.Shutdown(ctx)
	}()

	log.Info().Msgf("server serving on port %d", port)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen and serve: %w", err)
	}

	if err := <-done; err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	log.Info().Msg("Server stopped")
	return nil
}
