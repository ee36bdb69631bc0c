// Package report renders HTML conjunction reports for the status server
// using go-echarts.
package report

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/orbitops-data/orbitops/internal/httputil"
	"github.com/orbitops-data/orbitops/internal/probability"
)

// ResultSource supplies the most recent screening results for rendering.
type ResultSource interface {
	LatestResults() []probability.Result
}

// Handler serves the conjunction report endpoints.
type Handler struct {
	source ResultSource
}

// NewHandler creates a report handler over the given result source.
func NewHandler(source ResultSource) *Handler {
	return &Handler{source: source}
}

// Register mounts the report endpoints on mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/report/conjunctions", h.handleConjunctionChart)
	mux.HandleFunc("/api/conjunctions", h.handleConjunctionJSON)
}

// handleConjunctionChart renders a scatter of miss distance vs TCA, with
// point color tracking collision probability.
func (h *Handler) handleConjunctionChart(w http.ResponseWriter, r *http.Request) {
	results := h.source.LatestResults()
	if len(results) == 0 {
		httputil.WriteJSONError(w, http.StatusNotFound, "no screening results recorded yet")
		return
	}

	data := make([]opts.ScatterData, 0, len(results))
	maxPc := 0.0
	for _, res := range results {
		if res.Probability > maxPc {
			maxPc = res.Probability
		}
		data = append(data, opts.ScatterData{
			Value: []interface{}{res.TCAMinutes, res.MissDistanceKm, res.Probability},
			Name:  fmt.Sprintf("%d x %d", res.ID1, res.ID2),
		})
	}
	if maxPc == 0 {
		maxPc = 1e-6
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Conjunction Screening", Theme: "dark", Width: "1100px", Height: "700px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Screened Conjunctions",
			Subtitle: fmt.Sprintf("pairs=%d", len(results)),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "TCA (min)", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Miss distance (km)", NameLocation: "middle", NameGap: 40}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        float32(maxPc),
			Dimension:  "2",
			InRange:    &opts.VisualMapInRange{Color: []string{"#31688e", "#35b779", "#fde725", "#fc4e2a"}},
		}),
	)
	scatter.AddSeries("conjunctions", data, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 8}))

	var buf bytes.Buffer
	if err := scatter.Render(&buf); err != nil {
		httputil.WriteJSONError(w, http.StatusInternalServerError, fmt.Sprintf("failed to render chart: %v", err))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

// handleConjunctionJSON serves the raw screening results.
func (h *Handler) handleConjunctionJSON(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONOK(w, h2json(h.source.LatestResults()))
}

// h2json shapes results for the JSON endpoint.
func h2json(results []probability.Result) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(results))
	for _, res := range results {
		out = append(out, map[string]interface{}{
			"id1":           res.ID1,
			"id2":           res.ID2,
			"name1":         res.Name1,
			"name2":         res.Name2,
			"tca_minutes":   res.TCAMinutes,
			"miss_km":       res.MissDistanceKm,
			"rel_speed_kms": res.RelativeSpeedKmS,
			"probability":   res.Probability,
			"samples":       res.Samples,
			"hits":          res.Hits,
		})
	}
	return out
}
