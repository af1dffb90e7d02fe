package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"net/http/pprof"
	"os"
	"time"

	"github.com/grochain/listing-finder/pkg/catalog"
	"github.com/grochain/listing-finder/pkg/common"
	"github.com/grochain/listing-finder/pkg/server"
	"github.com/grochain/listing-finder/pkg/source"
	"github.com/grochain/listing-finder/pkg/storage"
	"github.com/grochain/listing-finder/pkg/tracking"
	"github.com/grochain/listing-finder/pkg/types"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var enableProfiling = flag.Bool("profiling", false, "enable profiling endpoints")

var (
	listenAddress   = envOr("LISTEN_ADDRESS", ":8080")
	debugAddress    = envOr("DEBUG_ADDRESS", ":8081")
	apiUrl          = envOr("GROCHAIN_API_URL", "http://localhost:5000")
	apiToken        = os.Getenv("GROCHAIN_API_TOKEN")
	redisUrl        = os.Getenv("REDIS_URL")
	redisPassword   = os.Getenv("REDIS_PASSWORD")
	rabbitUrl       = os.Getenv("RABBIT_URL")
	dataDir         = envOr("DATA_DIR", "data")
	mockProducts    = os.Getenv("MOCK_PRODUCTS") == "true"
	refreshInterval = envDuration("REFRESH_INTERVAL", 5*time.Minute)
	fetchTimeout    = envDuration("FETCH_TIMEOUT", 20*time.Second)
)

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("Invalid %s %q, using %v", key, v, fallback)
		return fallback
	}
	return d
}

func addStore[T types.Listing](ws *server.WebServer, name types.Collection, fetcher source.Fetcher[T], disk *storage.DiskStorage, cache catalog.SnapshotCache, placeholder ...T) {
	fallback := source.DatasetFallback[T](disk, name)
	if len(placeholder) > 0 {
		fallback = source.FirstNonEmpty(fallback, source.StaticFallback(placeholder))
	}
	store := catalog.NewStore(name, fetcher, fallback).WithStorage(disk)
	if cache != nil {
		store.WithCache(cache)
	}
	server.Register(ws, store)
}

func main() {
	flag.Parse()

	disk := storage.NewDiskStorage(dataDir)
	api := source.NewApiClient(apiUrl, apiToken)
	cat := catalog.NewCatalog(fetchTimeout)

	var cache catalog.SnapshotCache
	if redisUrl != "" {
		redisCache := catalog.NewRedisCache(redisUrl, redisPassword, 0, 24*time.Hour)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisCache.Ping(ctx); err != nil {
			log.Printf("Redis not reachable, running without shared snapshots: %v", err)
			redisCache.Close()
		} else {
			cache = redisCache
			log.Printf("Sharing snapshots through redis %s", redisUrl)
		}
		cancel()
	}

	var tracker types.Tracking
	var changes *app
	if rabbitUrl != "" {
		trk, err := tracking.NewRabbitTracking(rabbitUrl, "dashboard")
		if err != nil {
			log.Printf("Failed to connect to rabbitmq for tracking: %v", err)
		} else {
			tracker = trk
		}
	}

	ws := server.NewWebServer(cat, tracker)
	var placeholder []*types.Product
	if mockProducts {
		placeholder = types.MockProducts()
	}
	addStore[*types.Product](ws, types.Products, api.Products(), disk, cache, placeholder...)
	addStore[*types.Partner](ws, types.Partners, api.Partners(), disk, cache)
	addStore[*types.Payment](ws, types.Payments, api.Payments(), disk, cache)
	addStore[*types.Shipment](ws, types.Shipments, api.Shipments(), disk, cache)
	addStore[*types.HarvestApproval](ws, types.Approvals, api.Approvals(), disk, cache)

	ctx, cancel := context.WithTimeout(context.Background(), 2*fetchTimeout)
	if err := cat.RefreshAll(ctx); err != nil {
		log.Printf("Initial load incomplete: %v", err)
	}
	cancel()

	if cache != nil {
		if err := cat.ListenShared(cache); err != nil {
			log.Printf("Failed to subscribe to shared snapshots: %v", err)
		}
	}
	if rabbitUrl != "" {
		changes = &app{catalog: cat}
		if err := changes.ConnectAmqp(rabbitUrl); err != nil {
			log.Printf("Not listening for listing changes: %v", err)
		}
	}
	cat.StartPeriodicRefresh(refreshInterval)

	debugMux := http.NewServeMux()
	debugMux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	debugMux.Handle("/metrics", promhttp.Handler())
	if *enableProfiling {
		log.Println("Profiling enabled")
		debugMux.HandleFunc("/debug/pprof/", pprof.Index)
		debugMux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
		debugMux.HandleFunc("/debug/pprof/profile", pprof.Profile)
		debugMux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
		debugMux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	}
	go func() {
		log.Printf("Starting debug server %v", debugAddress)
		if err := http.ListenAndServe(debugAddress, debugMux); err != nil {
			log.Printf("Debug server stopped: %v", err)
		}
	}()

	timeouts := common.LoadTimeoutConfig(common.DefaultTimeoutConfig())
	srv := common.NewServerWithTimeouts(&http.Server{Addr: listenAddress, Handler: ws.Handler()}, timeouts)

	hooks := []common.ShutdownHook{cat.Close}
	if changes != nil {
		hooks = append(hooks, changes.Close)
	}
	if tracker != nil {
		hooks = append(hooks, func(context.Context) error { return tracker.Close() })
	}
	if cache != nil {
		hooks = append(hooks, func(context.Context) error { return cache.Close() })
	}
	common.RunServerWithShutdown(srv, "listing finder", timeouts.Shutdown, timeouts.Hook, hooks...)
}
