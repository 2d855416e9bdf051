package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/blendandbeam/storefront/internal/footer"
	"github.com/blendandbeam/storefront/internal/nav"
)

type Server struct {
	version        string
	port           string
	server         *http.Server
	assets         http.FileSystem
	routes         *nav.Registry
	footer         *footer.View
	rateLimit      int
	requestTimeout time.Duration
}

type Options struct {
	Port               string
	RateLimitPerMinute int
	RequestTimeout     time.Duration
}

// NewServer fails if the footer links to a page the registry does not serve.
func NewServer(version string, opts Options, assets http.FileSystem, routes *nav.Registry, footerView *footer.View) (*Server, error) {
	if err := routes.Validate(footerView.Destinations()...); err != nil {
		return nil, fmt.Errorf("footer links: %w", err)
	}

	s := &Server{
		version:        version,
		port:           opts.Port,
		assets:         assets,
		routes:         routes,
		footer:         footerView,
		rateLimit:      opts.RateLimitPerMinute,
		requestTimeout: opts.RequestTimeout,
	}

	s.server = &http.Server{
		Addr:              ":" + opts.Port,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s, nil
}

func (s *Server) Start() {
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		panic(err)
	}
}

func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}
	return nil
}

func FormatBuildVersion(version string) string {
	return fmt.Sprintf("Go Version: %s\nVersion: %s\nOS/Arch: %s/%s", runtime.Version(), version, runtime.GOOS, runtime.GOARCH)
}
