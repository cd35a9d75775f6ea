package api

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/saeidalz13/battleship-http/internal/config"
	mc "github.com/saeidalz13/battleship-http/models/connection"
)

const (
	shutdownTimeout   time.Duration = time.Second * 5
	readHeaderTimeout time.Duration = time.Second * 10
)

var defaultPort int = 8000

type Server struct {
	host       string
	port       int
	stage      string
	handler    http.Handler
	hub        mc.EventHub
	httpServer *http.Server
}

type Option func(*Server) error

func NewServer(handler http.Handler, optFuncs ...Option) *Server {
	server := Server{
		handler: handler,
		stage:   config.StageDev,
	}
	for _, opt := range optFuncs {
		if err := opt(&server); err != nil {
			panic(err)
		}
	}
	if server.port == 0 {
		server.port = defaultPort
	}

	server.httpServer = &http.Server{
		Addr:              server.Addr(),
		Handler:           server.handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}
	return &server
}

func WithPort(port int) Option {
	return func(s *Server) error {
		if port < 0 || port > 65535 {
			return fmt.Errorf("invalid port: %d", port)
		}
		s.port = port
		return nil
	}
}

// An empty host listens on every interface.
func WithHost(host string) Option {
	return func(s *Server) error {
		s.host = host
		return nil
	}
}

func WithStage(stage string) Option {
	return func(s *Server) error {
		if stage != config.StageProd && stage != config.StageDev {
			return fmt.Errorf("invalid type of development stage: %s", stage)
		}
		s.stage = stage
		return nil
	}
}

// WithEventHub lets the server close feed subscribers on shutdown;
// hijacked websocket connections are invisible to http.Server.Shutdown.
func WithEventHub(hub mc.EventHub) Option {
	return func(s *Server) error {
		s.hub = hub
		return nil
	}
}

func (s *Server) Addr() string {
	return net.JoinHostPort(s.host, strconv.Itoa(s.port))
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.Addr())
	if err != nil {
		return err
	}
	return s.Serve(ctx, listener)
}

func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	if s.hub != nil {
		go s.hub.CleanupPeriodically(ctx)
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Printf("Server running on %s (stage: %s)\n", listener.Addr().String(), s.stage)
		serveErr <- s.httpServer.Serve(listener)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	if s.hub != nil {
		s.hub.Close()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if err := <-serveErr; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// ResolveLocalHost returns the first IPv4 address the machine's hostname
// resolves to, or "" (all interfaces) when it does not resolve.
func ResolveLocalHost() string {
	hostname, err := os.Hostname()
	if err != nil {
		log.Println("failed to read hostname:", err)
		return ""
	}

	addrs, err := net.LookupHost(hostname)
	if err != nil {
		log.Printf("failed to resolve hostname %s: %s\n", hostname, err)
		return ""
	}

	for _, addr := range addrs {
		if ip := net.ParseIP(addr); ip != nil && ip.To4() != nil {
			return addr
		}
	}
	return ""
}
