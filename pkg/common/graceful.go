package common

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"
)

// ShutdownHook runs after a termination signal and before the HTTP server
// shuts down. Errors are logged and shutdown continues.
type ShutdownHook func(ctx context.Context) error

// RunServerWithShutdown serves until SIGINT or SIGTERM, runs the hooks in
// order, each with its own timeout, and then shuts the server down.
//
//	server := common.NewServerWithTimeouts(&http.Server{Addr: ":8080", Handler: mux}, cfg)
//	common.RunServerWithShutdown(server, "finder api", cfg.Shutdown, cfg.Hook, closeCatalog)
func RunServerWithShutdown(server *http.Server, name string, shutdownTimeout, hookTimeout time.Duration, hooks ...ShutdownHook) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(stop)
	runUntil(server, name, stop, shutdownTimeout, hookTimeout, hooks...)
}

func runUntil(server *http.Server, name string, stop <-chan os.Signal, shutdownTimeout, hookTimeout time.Duration, hooks ...ShutdownHook) {
	if hookTimeout <= 0 {
		hookTimeout = 5 * time.Second
	}

	go func() {
		log.Printf("starting %s on %s", name, server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("%s listen error: %v", name, err)
		}
	}()

	<-stop
	log.Printf("shutdown signal received for %s", name)

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	runHooks(ctx, hookTimeout, hooks)

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("graceful shutdown of %s failed: %v", name, err)
	} else {
		log.Printf("%s shutdown complete", name)
	}
}

func runHooks(ctx context.Context, hookTimeout time.Duration, hooks []ShutdownHook) {
	for i, h := range hooks {
		if h == nil {
			continue
		}
		hCtx, hCancel := context.WithTimeout(ctx, hookTimeout)
		if err := h(hCtx); err != nil {
			log.Printf("shutdown hook %d failed: %v", i, err)
		}
		if errors.Is(hCtx.Err(), context.DeadlineExceeded) {
			log.Printf("shutdown hook %d timed out", i)
		}
		hCancel()
	}
}

type TimeoutConfig struct {
	ReadHeader time.Duration
	Read       time.Duration
	Write      time.Duration
	Idle       time.Duration
	Shutdown   time.Duration
	Hook       time.Duration
}

func DefaultTimeoutConfig() TimeoutConfig {
	return TimeoutConfig{
		ReadHeader: 5 * time.Second,
		Read:       15 * time.Second,
		Write:      30 * time.Second,
		Idle:       60 * time.Second,
		Shutdown:   15 * time.Second,
		Hook:       5 * time.Second,
	}
}

// LoadTimeoutConfig overrides defaults from whole seconds in READ_HEADER_TIMEOUT,
// READ_TIMEOUT, WRITE_TIMEOUT, IDLE_TIMEOUT, SHUTDOWN_TIMEOUT and HOOK_TIMEOUT.
// Values that do not parse or are not positive are ignored.
func LoadTimeoutConfig(defaults TimeoutConfig) TimeoutConfig {
	return loadTimeoutConfig(defaults, os.Getenv)
}

func loadTimeoutConfig(defaults TimeoutConfig, getenv func(string) string) TimeoutConfig {
	apply := func(curr *time.Duration, env string) {
		if v := getenv(env); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				*curr = time.Duration(n) * time.Second
			}
		}
	}
	apply(&defaults.ReadHeader, "READ_HEADER_TIMEOUT")
	apply(&defaults.Read, "READ_TIMEOUT")
	apply(&defaults.Write, "WRITE_TIMEOUT")
	apply(&defaults.Idle, "IDLE_TIMEOUT")
	apply(&defaults.Shutdown, "SHUTDOWN_TIMEOUT")
	apply(&defaults.Hook, "HOOK_TIMEOUT")
	return defaults
}

func NewServerWithTimeouts(base *http.Server, cfg TimeoutConfig) *http.Server {
	if base == nil {
		base = &http.Server{}
	}
	base.ReadHeaderTimeout = cfg.ReadHeader
	base.ReadTimeout = cfg.Read
	base.WriteTimeout = cfg.Write
	base.IdleTimeout = cfg.Idle
	return base
}
