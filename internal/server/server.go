// Package server wires the kiosk controller, the Connect service, the
// websocket hub and metrics into one HTTP server.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"connectrpc.com/connect"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/drinko/internal/catalog"
	"github.com/mmynk/drinko/internal/config"
	"github.com/mmynk/drinko/internal/flow"
	"github.com/mmynk/drinko/internal/metrics"
	"github.com/mmynk/drinko/internal/middleware"
	"github.com/mmynk/drinko/internal/models"
	"github.com/mmynk/drinko/internal/service"
	"github.com/mmynk/drinko/internal/storage"
	"github.com/mmynk/drinko/internal/timer"
	"github.com/mmynk/drinko/internal/ws"
	"github.com/mmynk/drinko/pkg/api/apiconnect"
)

const shutdownTimeout = 10 * time.Second

// Server is the kiosk backend of one terminal.
type Server struct {
	cfg     *config.Config
	kiosk   *flow.Controller
	hub     *ws.Hub
	metrics *metrics.Metrics
	handler http.Handler
}

// New builds the server. The store is used for the order journal and is not
// closed by the server.
func New(cfg *config.Config, cat *catalog.Catalog, store storage.Store, sched timer.Scheduler) *Server {
	s := &Server{
		cfg:     cfg,
		hub:     ws.NewHub(cfg.ClientURL),
		metrics: metrics.New(),
	}

	flowCfg := flow.DefaultConfig()
	flowCfg.IdleTimeout = cfg.IdleTimeout

	var decider flow.Decider = flow.AlwaysApprove
	if cfg.ApprovalRate < 1 {
		decider = flow.RandomDecider(cfg.ApprovalRate)
	}

	record := service.RecordOrders(store)
	s.kiosk = flow.New(cat, sched,
		flow.WithConfig(flowCfg),
		flow.WithDecider(decider),
		flow.WithHooks(flow.Hooks{
			OnChange: func(snap flow.Snapshot) {
				s.hub.Publish(service.SessionToAPI(snap))
			},
			OnOrderCompleted: func(o models.Order) {
				record(o)
				s.metrics.ObserveOrder(o)
			},
			OnPayment:     s.metrics.ObservePayment,
			OnIdleTimeout: s.metrics.IdleTimeouts.Inc,
			OnCancel:      s.metrics.Cancellations.Inc,
		}),
	)

	s.hub.OnMessage = func([]byte) { s.kiosk.Touch() }
	s.hub.OnClients = func(n int) { s.metrics.WSClients.Set(float64(n)) }

	s.handler = s.routes(service.NewKioskService(s.kiosk, store))
	return s
}

func (s *Server) routes(svc *service.KioskService) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logging)
	r.Use(s.metrics.Middleware())
	r.Use(chimw.Recoverer)
	r.Use(middleware.CORS(middleware.DefaultCORSOptions(s.cfg.ClientURL)))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("Server is running"))
	})
	r.Handle("/metrics", s.metrics.Handler())
	r.Get("/ws", s.hub.ServeHTTP)

	path, handler := apiconnect.NewKioskServiceHandler(svc,
		connect.WithInterceptors(middleware.LoggingInterceptor()),
	)
	r.Mount(path, handler)

	// Wrap with h2c for HTTP/2 without TLS (required for Connect)
	return h2c.NewHandler(r, &http2.Server{})
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Kiosk returns the flow controller.
func (s *Server) Kiosk() *flow.Controller {
	return s.kiosk
}

// Run serves until ctx is cancelled, then shuts down gracefully and stops
// the kiosk timers.
func (s *Server) Run(ctx context.Context) error {
	hubCtx, stopHub := context.WithCancel(context.Background())
	defer stopHub()
	go s.hub.Run(hubCtx)
	s.hub.Publish(service.SessionToAPI(s.kiosk.Snapshot()))

	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Connect server starting", "address", s.cfg.Addr, "client_url", s.cfg.ClientURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		s.kiosk.Close()
		if err != nil {
			return fmt.Errorf("failed to serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("Shutting down")
	s.kiosk.Close()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down: %w", err)
	}
	return nil
}
