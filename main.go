package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	debugpkg "runtime/debug"
	"syscall"
	"time"
)

func main() {
	// Top-level panic handler: capture any unexpected panic to panic.log
	// with a stack trace so operators can inspect it.
	defer func() {
		if r := recover(); r != nil {
			if f, err := os.OpenFile("panic.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
				defer f.Close()
				ts := time.Now().UTC().Format(time.RFC3339)
				fmt.Fprintf(f, "[%s] panic: %v\nversion=%s\n%s\n\n",
					ts, r, buildVersionString(), debugpkg.Stack())
			}
		}
	}()

	configFlag := flag.String("config", "", "path to config.toml")
	stdoutLogFlag := flag.Bool("stdout", true, "mirror logs to stdout")
	logLevelFlag := flag.String("log-level", "", "override log level (debug/info/warn/error)")
	flag.Parse()

	cfg := loadConfig(*configFlag)

	level, _ := parseLogLevel(cfg.LogLevel)
	if *logLevelFlag != "" {
		if lv, ok := parseLogLevel(*logLevelFlag); ok {
			level = lv
		} else {
			logger.Warn("unknown log level", "value", *logLevelFlag)
		}
	}
	setLogLevel(level)
	configureFileLogging(cfg.LogFile, *stdoutLogFlag)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var stateDB *sql.DB
	if cfg.DatabaseURL != "" {
		db, err := openStateDB(cfg.DatabaseURL)
		if err != nil {
			// The datastore is optional; the diagnostic route reports its
			// absence instead of the service refusing to start.
			logger.Warn("state db unavailable", "path", cfg.DatabaseURL, "error", err)
		} else {
			stateDB = db
			defer stateDB.Close()
			if err := recordServiceBoot(stateDB, time.Now()); err != nil {
				logger.Warn("record service boot", "error", err)
			}
		}
	}

	srv := newAPIServer(cfg, stateDB)

	httpServer := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           withOpenCORS(srv.routes()),
		ReadHeaderTimeout: httpReadHeaderTimeout,
		ReadTimeout:       httpReadTimeout,
		WriteTimeout:      httpWriteTimeout,
		IdleTimeout:       httpIdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening",
			"addr", cfg.ListenAddr,
			"sha256", sha256ImplementationName(),
			"datastore", stateDB != nil,
			"version", buildVersionString())
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Warn("http shutdown", "error", err)
		}
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			fatal("http server", err, "addr", cfg.ListenAddr)
		}
	}

	logger.Stop()
}
