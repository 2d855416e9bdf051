package main

import (
	"context"
	"embed"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/blendandbeam/storefront/internal/config"
	"github.com/blendandbeam/storefront/internal/footer"
	"github.com/blendandbeam/storefront/internal/icons"
	"github.com/blendandbeam/storefront/internal/nav"
	"github.com/blendandbeam/storefront/server"
)

var (
	version = "dev"
)

//go:embed static/*
var staticFiles embed.FS

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Println(server.FormatBuildVersion(version))
		return
	}

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Errorf("failed to load config: %w", err))
	}
	slog.SetDefault(cfg.Logger(os.Stdout))

	loc, err := cfg.Location()
	if err != nil {
		panic(err)
	}

	routes := nav.NewRegistry(nav.Routes()...)
	footerView := footer.New(routes, icons.Set{}, footer.WithClock(func() time.Time {
		return time.Now().In(loc)
	}))

	srv, err := server.NewServer(version, server.Options{
		Port:               cfg.Port,
		RateLimitPerMinute: cfg.RateLimitPerMinute,
		RequestTimeout:     cfg.RequestTimeout,
	}, http.FS(staticFiles), routes, footerView)
	if err != nil {
		panic(fmt.Errorf("failed to initialize server: %w", err))
	}

	go srv.Start()

	slog.Info("Started server", slog.String("listen_addr", ":"+cfg.Port), slog.String("version", version))
	si := make(chan os.Signal, 1)
	signal.Notify(si, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-si
	slog.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Failed to shut down cleanly", "error", err)
	}
}
