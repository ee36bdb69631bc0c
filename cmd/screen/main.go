// Command screen runs a one-shot screening pass over an element file:
// propagate to the requested time, find all pairs inside the threshold, and
// print them with Monte-Carlo collision probabilities.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/orbitops-data/orbitops/internal/config"
	"github.com/orbitops-data/orbitops/internal/engine"
	"github.com/orbitops-data/orbitops/internal/tle"
)

var (
	elementsFile = flag.String("elements", "", "element set file (required)")
	thresholdKm  = flag.Float64("threshold", 10.0, "screening threshold distance (km)")
	timeMinutes  = flag.Float64("t", 0.0, "propagation time offset (minutes from epoch)")
	refine       = flag.Bool("refine", true, "run Monte-Carlo probability refinement")
	maxPrint     = flag.Int("max", 50, "maximum pairs to print")
)

func main() {
	flag.Parse()

	if *elementsFile == "" {
		fmt.Fprintln(os.Stderr, "usage: screen -elements <file> [-threshold km] [-t minutes]")
		os.Exit(2)
	}

	records, err := tle.ParseFile(*elementsFile)
	if err != nil {
		log.Fatalf("failed to load elements: %v", err)
	}
	log.Printf("loaded %d element records", len(records))

	cfg := config.Empty()
	cfg.ThresholdKm = thresholdKm

	eng, err := engine.New(records, cfg, nil)
	if err != nil {
		log.Fatalf("failed to build engine: %v", err)
	}

	start := time.Now()
	if *refine {
		results := eng.ScreenAndRefine(*timeMinutes)
		log.Printf("screened %d objects in %s: %d conjunctions under %.1f km",
			eng.Len(), time.Since(start), len(results), *thresholdKm)

		for i, res := range results {
			if i >= *maxPrint {
				log.Printf("... %d more", len(results)-*maxPrint)
				break
			}
			fmt.Printf("%6d x %-6d  %-20s %-20s  miss %8.3f km  rel %6.2f km/s  Pc %.3g\n",
				res.ID1, res.ID2, trunc(res.Name1, 20), trunc(res.Name2, 20),
				res.MissDistanceKm, res.RelativeSpeedKmS, res.Probability)
		}
		return
	}

	pairs, batch := eng.Screen(*timeMinutes)
	log.Printf("screened %d objects (%d failed propagation) in %s: %d pairs under %.1f km",
		eng.Len(), len(batch.Failed), time.Since(start), len(pairs), *thresholdKm)
	for i, cj := range pairs {
		if i >= *maxPrint {
			log.Printf("... %d more", len(pairs)-*maxPrint)
			break
		}
		fmt.Printf("%6d x %-6d  %8.3f km at t=%.1f min\n", cj.ID1, cj.ID2, cj.DistanceKm, cj.TimeMinutes)
	}
}

func trunc(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
