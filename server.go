package lanstatic

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"
)

const shutdownGrace = 2 * time.Second

// Server is a bound, not yet serving, static file server.
type Server struct {
	config *Config
	ln     *BoundListener
	lanIP  string
	httpd  *http.Server
}

// Start validates config and binds the listener, moving to the next port
// while the requested one is taken.
func Start(ctx context.Context, config *Config) (*Server, error) {
	hdl, err := New(config)
	if err != nil {
		return nil, err
	}
	ln, err := Listen(ctx, config.Port, config.MaxPortRetries)
	if err != nil {
		return nil, err
	}
	return &Server{
		config: config,
		ln:     ln,
		lanIP:  LANAddress(),
		httpd: &http.Server{
			Handler:           hdl,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}, nil
}

// Port is the port actually bound.
func (s *Server) Port() int {
	return s.ln.Port
}

func (s *Server) LocalURL() string {
	return "http://" + net.JoinHostPort("localhost", strconv.Itoa(s.Port()))
}

func (s *Server) NetworkURL() string {
	return "http://" + net.JoinHostPort(s.lanIP, strconv.Itoa(s.Port()))
}

// Serve accepts connections until ctx is done. A cancelled context is a clean
// shutdown and returns nil; requests still running after the grace period
// are dropped.
func (s *Server) Serve(ctx context.Context) error {
	errc := make(chan error, 1)
	go func() {
		errc <- s.httpd.Serve(s.ln)
	}()
	slog.Info("starting server", "addr", s.ln.Addr().String(), "port", s.Port())
	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}
	slog.Info("shutting down server")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := s.httpd.Shutdown(sctx); err != nil {
		slog.Warn("graceful shutdown incomplete", "error", err)
		s.httpd.Close()
	}
	<-errc
	return nil
}

// Close releases the listener without serving.
func (s *Server) Close() error {
	err := s.httpd.Close()
	if cerr := s.ln.Close(); cerr != nil && !errors.Is(cerr, net.ErrClosed) && err == nil {
		err = cerr
	}
	return err
}
