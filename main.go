// Command orbitops is the satellite conjunction screening daemon. It loads
// an element set, serves the OrbitOps gRPC API, and runs a background
// screening loop that records history and archives results.
package main

import (
	"context"
	"flag"
	"log"
	"net"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"google.golang.org/grpc"

	"github.com/orbitops-data/orbitops/internal/catalogdb"
	"github.com/orbitops-data/orbitops/internal/config"
	"github.com/orbitops-data/orbitops/internal/engine"
	"github.com/orbitops-data/orbitops/internal/httputil"
	"github.com/orbitops-data/orbitops/internal/report"
	"github.com/orbitops-data/orbitops/internal/service"
	"github.com/orbitops-data/orbitops/internal/tle"
)

var (
	listenGRPC    = flag.String("listen", ":50051", "gRPC listen address")
	listenHTTP    = flag.String("http", ":8080", "status/report HTTP listen address")
	elementsFile  = flag.String("elements", "elements.txt", "element set file (line-of-three text)")
	configFile    = flag.String("config", "", "runtime config JSON (optional)")
	dbFile        = flag.String("db", "", "catalog database path (empty disables persistence)")
	migrationsDir = flag.String("migrations", "db/migrations", "database migrations directory")
)

func main() {
	flag.Parse()

	if *listenGRPC == "" {
		log.Fatal("gRPC listen address is required")
	}

	cfg := config.Empty()
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}
	}

	records, err := tle.ParseFile(*elementsFile)
	if err != nil {
		log.Fatalf("failed to load elements: %v", err)
	}
	if len(records) == 0 {
		log.Fatalf("no element records in %s", *elementsFile)
	}
	log.Printf("loaded %d element records from %s", len(records), *elementsFile)

	eng, err := engine.New(records, cfg, nil)
	if err != nil {
		log.Fatalf("failed to build engine: %v", err)
	}

	// Initial propagation so position columns are valid before any consumer
	// touches them.
	batch := eng.Propagate(0)
	log.Printf("initial propagation: %d ok, %d failed", batch.Propagated, len(batch.Failed))

	var db *catalogdb.DB
	if *dbFile != "" {
		db, err = catalogdb.Open(*dbFile)
		if err != nil {
			log.Fatalf("failed to open catalog database: %v", err)
		}
		defer db.Close()
		if err := db.MigrateUp(*migrationsDir); err != nil {
			log.Fatalf("failed to migrate catalog database: %v", err)
		}
		if n, err := db.UpsertElements(records, *elementsFile); err != nil {
			log.Printf("failed to persist elements: %v", err)
		} else {
			log.Printf("persisted %d element records", n)
		}
	}

	eng.Recorder().Start()

	var wg sync.WaitGroup
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// gRPC service.
	lis, err := net.Listen("tcp", *listenGRPC)
	if err != nil {
		log.Fatalf("failed to listen on %s: %v", *listenGRPC, err)
	}
	grpcServer := grpc.NewServer()
	service.RegisterService(grpcServer, service.NewServer(eng, tle.DefaultSources()))

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Printf("gRPC listening on %s", *listenGRPC)
		if err := grpcServer.Serve(lis); err != nil {
			log.Printf("gRPC server stopped: %v", err)
		}
	}()

	// Status / report HTTP server.
	mux := http.NewServeMux()
	report.NewHandler(eng).Register(mux)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteJSONOK(w, map[string]interface{}{
			"status":  "ok",
			"objects": eng.Len(),
		})
	})
	httpServer := &http.Server{Addr: *listenHTTP, Handler: mux}

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Printf("HTTP listening on %s", *listenHTTP)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("HTTP server stopped: %v", err)
		}
	}()

	// Background screening loop.
	wg.Add(1)
	go func() {
		defer wg.Done()
		runScreeningLoop(ctx, eng, db)
	}()

	<-ctx.Done()
	log.Print("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = httpServer.Shutdown(shutdownCtx)
	grpcServer.GracefulStop()

	wg.Wait()
	log.Print("stopped")
}

// runScreeningLoop screens the population at the configured snapshot
// interval, feeding the history recorder and the catalog archive.
func runScreeningLoop(ctx context.Context, eng *engine.Engine, db *catalogdb.DB) {
	interval := time.Duration(eng.Config().GetSnapshotSeconds() * float64(time.Second))
	if interval <= 0 {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	start := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t := time.Since(start).Minutes()

			passStart := time.Now()
			results := eng.ScreenAndRefine(t)
			elapsed := time.Since(passStart)

			if len(results) > 0 {
				log.Printf("screening t=%.2f min: %d conjunctions (max Pc %.3g) in %s",
					t, len(results), results[0].Probability, elapsed)
			}

			if db != nil {
				if _, err := db.InsertScreeningRun(t, eng.Config().GetThresholdKm(), eng.Len(), elapsed, results); err != nil {
					log.Printf("failed to archive screening run: %v", err)
				}
			}
		}
	}
}
