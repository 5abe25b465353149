package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/claude/fuelplan/internal/catalog"
	"github.com/claude/fuelplan/internal/config"
	"github.com/claude/fuelplan/internal/mcp"
	"github.com/claude/fuelplan/internal/server"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"tailscale.com/tsnet"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	mcpMode := flag.Bool("mcp", false, "serve MCP over stdio instead of HTTP")
	remoteURL := flag.String("remote", "", "remote FuelPlan server URL for MCP mode (catalog lives remotely)")
	flag.Parse()

	// In MCP mode stdout carries the protocol, so logs go to stderr.
	logOut := os.Stdout
	if *mcpMode {
		logOut = os.Stderr
	}
	log := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if *mcpMode {
		runMCP(cfg, *remoteURL, log)
		return
	}

	log.Info("FuelPlan starting", "version", Version)

	cat, err := catalog.Open(cfg.Catalog.Path)
	if err != nil {
		log.Error("failed to open catalog", "error", err)
		os.Exit(1)
	}
	defer cat.Close()

	ctx := context.Background()
	if err := cat.Seed(ctx); err != nil {
		log.Error("failed to seed catalog", "error", err)
		os.Exit(1)
	}
	log.Info("catalog ready", "path", cfg.Catalog.Path)

	srv := server.New(cat, cfg.Auth.APIKey, log)

	// Start server via tsnet or plain HTTP
	var listener net.Listener
	var tsServer *tsnet.Server

	if cfg.Tailscale.Enabled {
		tsServer = &tsnet.Server{
			Hostname: cfg.Tailscale.Hostname,
			Dir:      cfg.Tailscale.StateDir,
		}
		if err := tsServer.Start(); err != nil {
			log.Error("tsnet start failed", "error", err)
			os.Exit(1)
		}
		defer tsServer.Close()

		listener, err = tsServer.Listen("tcp", ":80")
		if err != nil {
			log.Error("tsnet listen failed", "error", err)
			os.Exit(1)
		}
		log.Info("tsnet server starting", "hostname", cfg.Tailscale.Hostname)
	} else {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		listener, err = net.Listen("tcp", addr)
		if err != nil {
			log.Error("listen failed", "addr", addr, "error", err)
			os.Exit(1)
		}
		log.Info("server starting", "addr", addr, "mode", "dev (no tailscale)")
	}

	httpSrv := &http.Server{Handler: srv}

	go func() {
		if err := httpSrv.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Info("shutting down", "signal", sig)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", "error", err)
	}
	log.Info("server stopped")
}

// runMCP serves the MCP tools over stdio, backed either by a local catalog
// or by a remote FuelPlan server's REST API.
func runMCP(cfg *config.Config, remoteURL string, log *slog.Logger) {
	var cat mcp.Catalog

	if remoteURL != "" {
		cat = mcp.NewHTTPClient(remoteURL, cfg.Auth.APIKey)
		log.Info("MCP server starting", "mode", "remote", "url", remoteURL)
	} else {
		store, err := catalog.Open(cfg.Catalog.Path)
		if err != nil {
			log.Error("failed to open catalog", "error", err)
			os.Exit(1)
		}
		defer store.Close()

		if err := store.Seed(context.Background()); err != nil {
			log.Error("failed to seed catalog", "error", err)
			os.Exit(1)
		}
		cat = store
		log.Info("MCP server starting", "mode", "local", "catalog", cfg.Catalog.Path)
	}

	s := mcp.New(cat, Version, log)
	if err := mcpserver.ServeStdio(s); err != nil {
		log.Error("MCP server error", "error", err)
		os.Exit(1)
	}
}
