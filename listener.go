package lanstatic

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strconv"
)

const maxPort = 65535

// ErrPortsExhausted is returned by Listen when every port in the retry
// window was already in use.
var ErrPortsExhausted = errors.New("no free port in retry window")

// BoundListener is a TCP listener on all interfaces together with the port
// it actually got.
type BoundListener struct {
	net.Listener
	Port int
}

// Listen binds port on all interfaces. When the port is in use it tries
// port+1, port+2, ... up to maxRetries additional ports. Port 0 asks the OS
// for a free port and is never retried.
func Listen(ctx context.Context, port, maxRetries int) (*BoundListener, error) {
	var lc net.ListenConfig
	first := port
	for attempt := 0; ; attempt++ {
		ln, err := lc.Listen(ctx, "tcp", net.JoinHostPort("", strconv.Itoa(port)))
		if err == nil {
			bound := ln.Addr().(*net.TCPAddr).Port
			slog.Debug("listening", "requested", first, "port", bound, "attempts", attempt+1)
			return &BoundListener{Listener: ln, Port: bound}, nil
		}
		if !IsAddrInUse(err) || port == 0 {
			return nil, fmt.Errorf("listen on port %d: %w", port, err)
		}
		if attempt >= maxRetries || port >= maxPort {
			return nil, fmt.Errorf("ports %d-%d: %w: %w", first, port, ErrPortsExhausted, err)
		}
		slog.Info("port in use, trying next", "port", port, "next", port+1)
		port++
	}
}
