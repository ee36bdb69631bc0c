// Command fetch-elements downloads the configured catalog sources, merges
// them by catalog number (later epoch wins), and writes the merged set as
// line-of-three element text.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/orbitops-data/orbitops/internal/tle"
)

var (
	outFile   = flag.String("o", "elements.txt", "output element file")
	userAgent = flag.String("user-agent", "", "override User-Agent header")
	retries   = flag.Int("retries", 3, "per-source retry budget")
	timeout   = flag.Duration("timeout", 2*time.Minute, "overall fetch deadline")
	group     = flag.String("group", "", "fetch a single CelesTrak group URL instead of the default set")
)

func main() {
	flag.Parse()

	sources := tle.DefaultSources()
	if *group != "" {
		sources = []tle.Source{{
			Name:    *group,
			URL:     fmt.Sprintf("https://celestrak.org/NORAD/elements/gp.php?GROUP=%s&FORMAT=tle", *group),
			Enabled: true,
		}}
	}

	var opts []tle.FetcherOption
	opts = append(opts, tle.WithMaxRetries(*retries))
	if *userAgent != "" {
		opts = append(opts, tle.WithUserAgent(*userAgent))
	}
	fetcher := tle.NewFetcher(sources, opts...)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	merged, errs := fetcher.FetchAll(ctx)
	for _, err := range errs {
		log.Printf("fetch error: %v", err)
	}
	if len(merged) == 0 {
		log.Fatal("no elements fetched from any source")
	}

	f, err := os.Create(*outFile)
	if err != nil {
		log.Fatalf("failed to create %s: %v", *outFile, err)
	}
	defer f.Close()

	if err := tle.Write(f, merged); err != nil {
		log.Fatalf("failed to write elements: %v", err)
	}

	stats := fetcher.Stats()
	log.Printf("wrote %d element records to %s (%d/%d sources ok)",
		len(merged), *outFile, stats.SuccessfulFetches, stats.TotalFetches)
}
