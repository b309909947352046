// Command bench runs a synthetic workload against the cache and exposes
// optional pprof/Prometheus endpoints.
//
// Workload parameters come from flags; a TOML config file (-config) can
// override them, which is convenient for checked-in benchmark profiles:
//
//	capacity = 100_000
//	workers  = 16
//	reads    = 80
//	keys     = 1_000_000
//	duration = "30s"
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	_ "net/http/pprof" // registers /debug/pprof/* on DefaultServeMux
	"os"
	"runtime"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/DarinM223/arenacache/cache"
	"github.com/DarinM223/arenacache/metrics/prom"
)

// config mirrors the flag set; fields present in the TOML file override
// the corresponding flags.
type config struct {
	Capacity *int     `toml:"capacity"`
	Workers  *int     `toml:"workers"`
	Reads    *int     `toml:"reads"`
	Keys     *int     `toml:"keys"`
	ZipfS    *float64 `toml:"zipf_s"`
	ZipfV    *float64 `toml:"zipf_v"`
	Duration *string  `toml:"duration"`
}

func main() {
	var (
		capacity = flag.Int("cap", 100_000, "cache capacity (entries)")
		workers  = flag.Int("workers", 2*runtime.GOMAXPROCS(0), "number of worker goroutines")
		duration = flag.Duration("duration", 10*time.Second, "benchmark duration")
		readPct  = flag.Int("reads", 80, "read percentage [0..100]")

		keys    = flag.Int("keys", 1_000_000, "keyspace size")
		zipfS   = flag.Float64("zipf_s", 1.1, "Zipf s > 1 (skew)")
		zipfV   = flag.Float64("zipf_v", 1.0, "Zipf v")
		seed    = flag.Int64("seed", time.Now().UnixNano(), "random seed")
		preload = flag.Int("preload", 0, "preload entries (0 = cap/2)")

		cfgPath     = flag.String("config", "", "TOML config file overriding workload flags")
		pprofAddr   = flag.String("pprof", "", "serve pprof at addr (e.g. :6060); empty = disabled")
		metricsAddr = flag.String("http", ":8080", "serve Prometheus metrics at addr")
	)
	flag.Parse()

	if *cfgPath != "" {
		content, err := os.ReadFile(*cfgPath)
		if err != nil {
			log.Fatalf("config: %v", err)
		}
		var cfg config
		if _, err := toml.Decode(string(content), &cfg); err != nil {
			log.Fatalf("config: %v", err)
		}
		applyInt(capacity, cfg.Capacity)
		applyInt(workers, cfg.Workers)
		applyInt(readPct, cfg.Reads)
		applyInt(keys, cfg.Keys)
		if cfg.ZipfS != nil {
			*zipfS = *cfg.ZipfS
		}
		if cfg.ZipfV != nil {
			*zipfV = *cfg.ZipfV
		}
		if cfg.Duration != nil {
			d, err := time.ParseDuration(*cfg.Duration)
			if err != nil {
				log.Fatalf("config: duration: %v", err)
			}
			*duration = d
		}
	}

	// ---- pprof server (on DefaultServeMux) ----
	if *pprofAddr != "" {
		go func() {
			log.Printf("pprof: serving at %s", *pprofAddr)
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	// ---- Prometheus metrics (on DefaultServeMux) ----
	metrics := prom.New(nil, "arenacache", "bench", nil)
	http.Handle("/metrics", promhttp.Handler())
	go func() {
		log.Printf("metrics: serving at %s", *metricsAddr)
		log.Println(http.ListenAndServe(*metricsAddr, nil))
	}()

	// ---- Build cache (locked wrapper: the workers share it) ----
	c := cache.NewSynced[string, string](cache.Options[string, string]{
		Capacity: *capacity,
		Metrics:  metrics,
	})
	defer func() { _ = c.Close() }()

	// ---- Preload half capacity to get a realistic hit-rate ----
	pl := *preload
	if pl == 0 {
		pl = *capacity / 2
	}
	for i := 0; i < pl; i++ {
		c.Set("k:"+strconv.Itoa(i), "v"+strconv.Itoa(i))
	}

	// ---- Snapshot flags for goroutines ----
	readPctVal := *readPct
	keysMax := uint64(*keys - 1)
	seedBase := *seed
	zipfSVal := *zipfS
	zipfVVal := *zipfV
	workersN := *workers
	if workersN <= 0 {
		workersN = 1
	}

	// ---- Load generation ----
	var reads, writes, hits, misses, total uint64
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	start := time.Now()
	var g errgroup.Group
	for w := 0; w < workersN; w++ {
		id := w
		g.Go(func() error {
			// Each worker gets its own RNG + Zipf (rand.Rand is NOT goroutine-safe).
			localR := rand.New(rand.NewSource(seedBase + int64(id)*9973))
			localZipf := rand.NewZipf(localR, zipfSVal, zipfVVal, keysMax)

			keyByZipf := func() string {
				return "k:" + strconv.FormatUint(localZipf.Uint64(), 10)
			}

			for {
				select {
				case <-ctx.Done():
					return nil
				default:
				}

				atomic.AddUint64(&total, 1)
				if int(localR.Int31n(100)) < readPctVal {
					atomic.AddUint64(&reads, 1)
					if _, ok := c.Get(keyByZipf()); ok {
						atomic.AddUint64(&hits, 1)
					} else {
						atomic.AddUint64(&misses, 1)
					}
				} else {
					atomic.AddUint64(&writes, 1)
					c.Set(keyByZipf(), "v"+strconv.Itoa(localR.Int()))
				}
			}
		})
	}
	_ = g.Wait()
	elapsed := time.Since(start)

	// ---- Report ----
	ops := atomic.LoadUint64(&total)
	readsN := atomic.LoadUint64(&reads)
	writesN := atomic.LoadUint64(&writes)
	hitsN := atomic.LoadUint64(&hits)
	missesN := atomic.LoadUint64(&misses)

	hitRate := 0.0
	if readsN > 0 {
		hitRate = float64(hitsN) / float64(readsN) * 100
	}

	fmt.Printf("cap=%d workers=%d keys=%d dur=%v seed=%d\n",
		*capacity, workersN, *keys, elapsed, seedBase)
	fmt.Printf("ops=%d (%.0f ops/s)  reads=%d  writes=%d\n",
		ops, float64(ops)/elapsed.Seconds(), readsN, writesN)
	fmt.Printf("hits=%d  misses=%d  hit-rate=%.2f%%\n", hitsN, missesN, hitRate)
	fmt.Printf("Len()=%d\n", c.Len())
}

func applyInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}
