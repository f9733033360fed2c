package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/bobmcallan/vibeterms/internal/app"
	"github.com/bobmcallan/vibeterms/internal/common"
	"github.com/bobmcallan/vibeterms/internal/server"
)

func main() {
	a, err := app.NewApp(os.Getenv("VIBETERMS_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize app: %v\n", err)
		os.Exit(1)
	}

	srv := buildServer(a)

	common.PrintBanner(os.Stdout, a.Config, a.Logger)

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			a.Logger.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	port := a.Config.Server.Port
	a.Logger.Info().
		Str("url", fmt.Sprintf("http://localhost:%d", port)).
		Str("mcp", fmt.Sprintf("http://localhost:%d/mcp", port)).
		Msg("Server ready")

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	a.Logger.Info().Msg("Shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		a.Logger.Error().Err(err).Msg("HTTP server shutdown failed")
	}

	a.Close()
	common.PrintShutdownBanner(os.Stdout, a.Logger)
}

// buildServer creates the REST server with the MCP endpoint mounted at /mcp.
func buildServer(a *app.App) *server.Server {
	srv := server.NewServer(a)

	// MCP over Streamable HTTP
	httpMCP := mcpserver.NewStreamableHTTPServer(a.MCPServer,
		mcpserver.WithStateLess(true),
	)
	srv.Mount("/mcp", httpMCP)

	return srv
}
