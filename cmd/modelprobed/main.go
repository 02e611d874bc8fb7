package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"modelprobe/internal/classifier"
	"modelprobe/internal/common/fsutil"
	"modelprobe/internal/config"
	"modelprobe/internal/httpapi"
	"modelprobe/pkg/types"
)

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// splitCSV splits a comma-separated flag value, trimming whitespace
// and dropping empty items.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func main() {
	// Flags with environment variable defaults
	addr := flag.String("addr", envOr("MODELPROBE_ADDR", ":8080"), "HTTP listen address, e.g. :8080")
	modelsDir := flag.String("models-dir", envOr("MODELPROBE_MODELS_DIR", "~/models/speech"), "Root directory scanned by /models")
	quant := flag.String("quant", os.Getenv("MODELPROBE_QUANT"), "Default quantization preference: int8 or non-int8")
	logLevel := flag.String("log-level", envOr("MODELPROBE_LOG_LEVEL", "info"), "Log level: debug|info|warn|error")
	corsOrigins := flag.String("cors-origins", "", "Comma-separated allowed CORS origins (empty disables CORS)")
	configPath := flag.String("config", os.Getenv("MODELPROBE_CONFIG"), "Optional config file (.yaml/.json/.toml)")
	flag.Parse()

	var cfg config.Config
	if *configPath != "" {
		c, err := config.Load(*configPath)
		if err != nil {
			l := zerolog.New(os.Stderr)
			l.Fatal().Err(err).Str("path", *configPath).Msg("load config")
		}
		cfg = c
	}
	// Flags fill whatever the config file left unspecified.
	if cfg.Addr == "" {
		cfg.Addr = *addr
	}
	if cfg.ModelsDir == "" {
		cfg.ModelsDir = *modelsDir
	}
	if cfg.DefaultQuant == "" {
		cfg.DefaultQuant = *quant
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = *logLevel
	}
	if !cfg.CORSEnabled && *corsOrigins != "" {
		cfg.CORSEnabled = true
		cfg.CORSAllowedOrigins = splitCSV(*corsOrigins)
	}

	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stderr).With().Timestamp().Str("component", "modelprobed").Logger().Level(lvl)

	httpapi.SetLogger(logger)
	httpapi.SetMaxBodyBytes(cfg.MaxBodyBytes)
	httpapi.SetCORSOptions(cfg.CORSEnabled, cfg.CORSAllowedOrigins, cfg.CORSAllowedMethods, cfg.CORSAllowedHeaders)

	root, err := fsutil.ExpandHome(cfg.ModelsDir)
	if err != nil {
		logger.Fatal().Err(err).Msg("resolve models dir")
	}

	svc := classifier.New(root, types.ParseQuantPreference(cfg.DefaultQuant), logger)
	srv := &http.Server{Addr: cfg.Addr, Handler: httpapi.NewMux(svc)}

	go func() {
		logger.Info().Str("addr", cfg.Addr).Str("models_dir", root).Msg("modelprobed listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	// Graceful shutdown (Ctrl+C / SIGTERM)
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown error")
	}
}
