package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	unityforge "github.com/kuroyasouiti/unityforge"
	"github.com/kuroyasouiti/unityforge/internal/config"
	"github.com/kuroyasouiti/unityforge/internal/logging"
	httpAdapter "github.com/kuroyasouiti/unityforge/pkg/adapters/http"
	mcpAdapter "github.com/kuroyasouiti/unityforge/pkg/adapters/mcp"
	redisAdapter "github.com/kuroyasouiti/unityforge/pkg/adapters/redis"
	"github.com/kuroyasouiti/unityforge/pkg/journal"
	"github.com/kuroyasouiti/unityforge/pkg/observability"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the bridge server",
	Long:  `Starts the command-dispatch bridge on the chosen transport: MCP over stdio (default), MCP over SSE, or a plain HTTP API.`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(configPath)
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			os.Exit(1)
		}
		if transport, _ := cmd.Flags().GetString("transport"); transport != "" {
			cfg.Server.Transport = transport
		}
		if port, _ := cmd.Flags().GetInt("port"); port != 0 {
			cfg.Server.Port = port
		}

		log := logging.New(logging.ParseLevel(cfg.LogLevel))

		var store journal.Store
		if cfg.Journal.Backend == "redis" {
			store = redisAdapter.New(cfg.Journal.RedisAddr,
				redisAdapter.WithCapacity(int64(cfg.Journal.Capacity)))
		} else {
			store = journal.NewMemoryStore(cfg.Journal.Capacity)
		}

		bridge := unityforge.New(
			unityforge.WithLogger(log),
			unityforge.WithJournal(store),
			unityforge.WithMetrics(observability.NewMetrics(prometheus.DefaultRegisterer)),
			unityforge.WithGateTiming(
				time.Duration(cfg.Gate.TimeoutSeconds)*time.Second,
				time.Duration(cfg.Gate.PollMillis)*time.Millisecond,
			),
		)

		switch cfg.Server.Transport {
		case "stdio":
			server := mcpAdapter.NewServer(bridge, log)
			if err := server.ServeStdio(); err != nil {
				log.Error("stdio server stopped", "err", err)
				os.Exit(1)
			}
		case "sse":
			server := mcpAdapter.NewServer(bridge, log)
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			if err := server.ServeSSE(ctx, cfg.Server.Port); err != nil {
				log.Error("SSE server stopped", "err", err)
				os.Exit(1)
			}
		case "http":
			runHTTP(bridge, cfg, log)
		default:
			fmt.Printf("Unknown transport %q (want stdio, sse or http)\n", cfg.Server.Transport)
			os.Exit(1)
		}
	},
}

func runHTTP(bridge *unityforge.Bridge, cfg config.Config, log *slog.Logger) {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: httpAdapter.NewHandler(bridge, log),
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info("HTTP server listening", "address", srv.Addr)
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		log.Error("server error", "err", err)
		os.Exit(1)
	case sig := <-shutdown:
		log.Info("shutting down", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Warn("graceful shutdown did not complete", "err", err)
			if err := srv.Close(); err != nil {
				log.Error("error killing server", "err", err)
			}
		}
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("transport", "t", "", "Transport: stdio, sse or http")
	serveCmd.Flags().IntP("port", "p", 0, "Port for sse/http transports")
}
