package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/olgasafonova/crossref-mcp-server/internal/crossref"
)

// measureLookupLatency times single CrossRef lookups
func measureLookupLatency() {
	config, err := crossref.LoadConfig()
	if err != nil {
		fmt.Printf("Config error: %v\n", err)
		return
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	client := crossref.NewClientFromConfig(config, crossref.WithLogger(logger))
	defer client.Close()
	ctx := context.Background()

	fmt.Println("=== Lookup Latency ===")
	fmt.Println()

	fmt.Println("1. Single Work Lookup:")
	start := time.Now()
	_, err = client.GetWork(ctx, "10.1037/0003-066X.59.1.29")
	if err != nil {
		fmt.Printf("   Error: %v\n", err)
		return
	}
	fmt.Printf("   GetWork time: %v\n", time.Since(start))
	fmt.Println()

	fmt.Println("2. Type Registry Listing:")
	start = time.Now()
	_, err = client.ListTypes(ctx)
	if err != nil {
		fmt.Printf("   Error: %v\n", err)
		return
	}
	fmt.Printf("   ListTypes time: %v\n", time.Since(start))
	fmt.Println()
}

// measureConcurrency compares sequential vs concurrent searches. The client
// holds no locks and keeps no state, so concurrent calls should approach the
// latency of a single call.
func measureConcurrency() {
	config, err := crossref.LoadConfig()
	if err != nil {
		fmt.Printf("Config error: %v\n", err)
		return
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	client := crossref.NewClientFromConfig(config, crossref.WithLogger(logger))
	defer client.Close()
	ctx := context.Background()

	queries := []string{"coral reefs", "machine learning", "gene editing", "dark matter", "graphene"}

	fmt.Println("=== Sequential vs Concurrent Searches ===")
	fmt.Println()

	fmt.Printf("3. Sequential (%d searches):\n", len(queries))
	start := time.Now()
	for _, q := range queries {
		if _, err := client.SearchWorks(ctx, q, 5, nil); err != nil {
			fmt.Printf("   Error: %v\n", err)
			return
		}
	}
	sequentialTime := time.Since(start)
	fmt.Printf("   Sequential time: %v\n", sequentialTime)
	fmt.Printf("   Average per search: %v\n", sequentialTime/time.Duration(len(queries)))
	fmt.Println()

	fmt.Printf("4. Concurrent (%d searches):\n", len(queries))
	start = time.Now()
	var wg sync.WaitGroup
	for _, q := range queries {
		wg.Add(1)
		go func(query string) {
			defer wg.Done()
			_, _ = client.SearchWorks(ctx, query, 5, nil)
		}(q)
	}
	wg.Wait()
	concurrentTime := time.Since(start)
	fmt.Printf("   Concurrent time: %v\n", concurrentTime)
	fmt.Printf("   Speedup: %.1fx faster\n", float64(sequentialTime)/float64(concurrentTime))
	fmt.Println()
}

// measureClientConstruction times per-call client builds. Tool calls that
// carry their own mailto get a fresh client sharing the default transport;
// this should cost nanoseconds, not a new connection pool.
func measureClientConstruction() {
	config, err := crossref.LoadConfig()
	if err != nil {
		fmt.Printf("Config error: %v\n", err)
		return
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	client := crossref.NewClientFromConfig(config, crossref.WithLogger(logger))
	defer client.Close()

	fmt.Println("=== Per-Call Client Construction ===")
	fmt.Println()

	const builds = 10000
	fmt.Printf("5. Building %d mailto-override clients:\n", builds)
	start := time.Now()
	for i := 0; i < builds; i++ {
		override := *config
		override.Mailto = "analyst@example.com"
		_ = crossref.NewClientFromConfig(&override,
			crossref.WithHTTPClient(client.HTTPClient),
			crossref.WithLogger(logger),
		)
	}
	elapsed := time.Since(start)
	fmt.Printf("   Total: %v\n", elapsed)
	fmt.Printf("   Average per client: %v\n", elapsed/builds)
	fmt.Println()
}

func main() {
	fmt.Println("CrossRef MCP Server - Performance Measurements")
	fmt.Println("===============================================")
	fmt.Println()

	measureLookupLatency()
	measureConcurrency()
	measureClientConstruction()

	fmt.Println("=== Summary ===")
	fmt.Println()
	fmt.Println("Key characteristics:")
	fmt.Println("• Stateless client: no locks, concurrent searches run in parallel")
	fmt.Println("• Connection reuse: HTTP/2 + pooling keeps repeat lookups fast")
	fmt.Println("• Per-call mailto overrides share the transport, so they are cheap")
	fmt.Println("• No caching or retries: every number above is one live API round trip")
}
