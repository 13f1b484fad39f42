package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/nikolayk812/cartstate-demo/internal/config"
	"github.com/nikolayk812/cartstate-demo/internal/logger"
	"github.com/nikolayk812/cartstate-demo/internal/port"
	"github.com/nikolayk812/cartstate-demo/internal/store"
	"github.com/nikolayk812/cartstate-demo/internal/web"
	"go.uber.org/zap"
)

var _ port.CartStore = (*store.Store)(nil)

type Server struct {
	srv             *http.Server
	log             *logger.Logger
	addr            string
	shutdownTimeout time.Duration
}

// NewServer wires the cart store, catalog and web handler for cfg.
func NewServer(cfg config.Config, log *logger.Logger) (*Server, error) {
	cat, err := cfg.Catalog()
	if err != nil {
		return nil, fmt.Errorf("cfg.Catalog: %w", err)
	}

	cart := store.New(store.WithLogger(log.Zap()))
	handler := web.NewHandler(cart, cat, log)

	log.Info("cart created",
		zap.Stringer("cart_id", cart.ID()),
		zap.Int("products", len(cat.Products())),
		zap.String("currency", cfg.Currency.String()),
	)

	return &Server{
		srv: &http.Server{
			Handler:           handler.Route(),
			ReadHeaderTimeout: 5 * time.Second,
		},
		log:             log,
		addr:            cfg.Addr,
		shutdownTimeout: cfg.ShutdownTimeout,
	}, nil
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("net.Listen: %w", err)
	}

	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server started", zap.String("addr", ln.Addr().String()))
		errCh <- s.srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("srv.Serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("srv.Shutdown: %w", err)
	}

	// Serve returns ErrServerClosed once Shutdown starts
	<-errCh
	s.log.Info("server stopped")

	return nil
}
