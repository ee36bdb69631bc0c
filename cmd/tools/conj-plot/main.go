// Command conj-plot renders a miss-distance histogram and a miss-vs-time
// scatter from an exported ORBI history file.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/orbitops-data/orbitops/internal/history"
)

var (
	inFile  = flag.String("in", "", "ORBI history file (required)")
	outFile = flag.String("o", "conjunctions.png", "output image")
	bins    = flag.Int("bins", 30, "histogram bin count")
	scatter = flag.Bool("scatter", false, "plot miss distance vs time instead of a histogram")
)

func main() {
	flag.Parse()

	if *inFile == "" {
		fmt.Fprintln(os.Stderr, "usage: conj-plot -in <history.orbi> [-o out.png] [-scatter]")
		os.Exit(2)
	}

	rec := history.NewRecorder(history.DefaultConfig(), nil)
	if err := rec.ImportFromFile(*inFile); err != nil {
		log.Fatalf("failed to import history: %v", err)
	}

	rng := rec.Range()
	events := rec.EventsRange(rng.StartMinutes, rng.EndMinutes)
	if len(events) == 0 {
		log.Fatal("no conjunction events in history file")
	}
	log.Printf("loaded %d snapshots, %d conjunction events", rng.SnapshotCount, len(events))

	p := plot.New()
	p.X.Label.Text = "Miss distance (km)"

	if *scatter {
		p.Title.Text = "Conjunction miss distance over time"
		p.X.Label.Text = "Time (min)"
		p.Y.Label.Text = "Miss distance (km)"

		pts := make(plotter.XYs, len(events))
		for i, e := range events {
			pts[i].X = e.TimeMinutes
			pts[i].Y = e.MissDistanceKm
		}
		sc, err := plotter.NewScatter(pts)
		if err != nil {
			log.Fatalf("failed to build scatter: %v", err)
		}
		sc.Radius = vg.Points(2)
		p.Add(sc)
	} else {
		p.Title.Text = "Conjunction miss distance distribution"
		p.Y.Label.Text = "Count"

		vals := make(plotter.Values, len(events))
		for i, e := range events {
			vals[i] = e.MissDistanceKm
		}
		hist, err := plotter.NewHist(vals, *bins)
		if err != nil {
			log.Fatalf("failed to build histogram: %v", err)
		}
		p.Add(hist)
	}

	if err := p.Save(8*vg.Inch, 5*vg.Inch, *outFile); err != nil {
		log.Fatalf("failed to save plot: %v", err)
	}
	log.Printf("wrote %s", *outFile)
}
