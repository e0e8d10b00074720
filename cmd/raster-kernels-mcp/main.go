package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ironsheep/raster-kernels-mcp/internal/config"
	"github.com/ironsheep/raster-kernels-mcp/internal/httpapi"
	"github.com/ironsheep/raster-kernels-mcp/internal/logging"
	"github.com/ironsheep/raster-kernels-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

var (
	showVersion = flag.Bool("version", false, "Print version information")
	configPath  = flag.String("config", "", "YAML config `file`")
	serveHTTP   = flag.Bool("http", false, "Serve the HTTP API instead of MCP on stdio")
)

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintln(out, "raster-kernels-mcp - grayscale raster kernels over MCP or HTTP")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Usage: raster-kernels-mcp [options]")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Options:")
	flag.PrintDefaults()
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Environment variables:")
	fmt.Fprintln(out, "  RASTER_MCP_LOG_LEVEL=debug       Enable debug logging")
	fmt.Fprintln(out, "  RASTER_MCP_KERNELS_MAX_PIXELS=N  Largest plane accepted (0 = no limit)")
	fmt.Fprintln(out, "  RASTER_MCP_HTTP_ADDR=:8080       HTTP listen address")
	fmt.Fprintln(out, "  RASTER_MCP_REDIS_ENABLED=true    Cache HTTP results in redis")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Without --http the server speaks MCP over stdin/stdout.")
	fmt.Fprintln(out, "Configure it in your MCP client (e.g., Claude Desktop).")
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if *showVersion {
		fmt.Printf("raster-kernels-mcp %s\n", Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Debug("starting raster-kernels-mcp",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
		zap.String("git_commit", GitCommit),
		zap.Bool("http", *serveHTTP))

	if *serveHTTP {
		if err := runHTTP(cfg, logger); err != nil {
			logger.Fatal("http server error", zap.Error(err))
		}
		return
	}

	server.Version = Version
	srv := server.New(cfg, logger)
	if err := srv.Run(); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}

// runHTTP serves the HTTP API until SIGINT or SIGTERM.
func runHTTP(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cache httpapi.ResultCache
	if cfg.Redis.Enabled {
		rc := httpapi.NewRedisCache(&cfg.Redis)
		if err := rc.Ping(ctx); err != nil {
			logger.Warn("redis connection failed, cache disabled", zap.Error(err))
			rc.Close()
		} else {
			logger.Info("redis connected", zap.String("addr", cfg.Redis.Addr))
			cache = rc
			defer rc.Close()
		}
	}

	gin.SetMode(cfg.HTTP.Mode)
	router := httpapi.NewRouter(httpapi.Options{
		Config: cfg,
		Logger: logger,
		Cache:  cache,
		Build: httpapi.BuildInfo{
			Version:   Version,
			BuildTime: BuildTime,
			GitCommit: GitCommit,
		},
	})

	srv := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", zap.String("addr", cfg.HTTP.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
