// Command redistrict loads a precinct dataset, builds the district graph,
// discovers its borders and drives a seeded random walk of valid moves,
// reporting border statistics along the way. It stands in for the external
// decision-making process: any smarter policy plugs into the same loop of
// reading BorderFacts and calling MoveVertex.
package main

import (
	"errors"
	"log/slog"
	"math/rand"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/pflag"

	"github.com/arnaudbergeron/GFN-election-interference/district"
	"github.com/arnaudbergeron/GFN-election-interference/internal/metrics"
	"github.com/arnaudbergeron/GFN-election-interference/loader"
	"github.com/arnaudbergeron/GFN-election-interference/state"
)

var (
	dataPath    string
	moves       int
	seed        int64
	checkSym    bool
	metricsAddr string
)

func main() {
	pflag.StringVarP(&dataPath, "data", "d", "", "path to the precinct JSON dataset")
	pflag.IntVarP(&moves, "moves", "m", 100, "number of random valid moves to apply")
	pflag.Int64VarP(&seed, "seed", "s", 1, "seed for the random walk")
	pflag.BoolVar(&checkSym, "check-symmetry", false, "reject asymmetric adjacency lists at construction")
	pflag.StringVar(&metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address (empty disables)")
	pflag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if dataPath == "" {
		logger.Error("missing required flag", "flag", "--data")
		pflag.Usage()
		os.Exit(2)
	}

	if err := run(logger); err != nil {
		logger.Error("run failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	vertices, err := loader.Load(dataPath)
	if err != nil {
		return err
	}

	var opts []district.Option
	if checkSym {
		opts = append(opts, district.WithSymmetryCheck())
	}
	g, err := district.NewGraph(vertices, opts...)
	if err != nil {
		return err
	}
	g.DiscoverBorders()

	mirror, err := state.NewMirror(g)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	collector := metrics.NewCollector(reg)
	collector.SetBorderVertices(g.BorderCount())
	if metricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		go func() {
			if serr := http.ListenAndServe(metricsAddr, mux); serr != nil {
				logger.Error("metrics server stopped", "error", serr)
			}
		}()
		logger.Info("serving metrics", "addr", metricsAddr)
	}

	logger.Info("graph loaded",
		"vertices", g.VertexCount(),
		"districts", len(g.Districts()),
		"border_vertices", g.BorderCount(),
		"mirror_shape", []int{mirror.Rows(), mirror.Cols()},
	)

	rng := rand.New(rand.NewSource(seed))
	applied := 0
	for applied < moves {
		facts := g.BorderFacts()
		if len(facts) == 0 {
			logger.Warn("no moves available, stopping early", "applied", applied)
			break
		}
		pick := facts[rng.Intn(len(facts))]

		res, merr := g.MoveVertex(pick.Vertex, pick.Neighboring)
		if merr != nil {
			// Picking from the live index makes rejections unexpected; record
			// and surface them instead of continuing on a broken index.
			collector.MoveRejected(rejectionReason(merr))

			return merr
		}
		if perr := mirror.ApplyMove(res); perr != nil {
			return perr
		}
		collector.MoveApplied()
		collector.SetBorderVertices(g.BorderCount())
		applied++
	}

	logger.Info("walk finished",
		"moves_applied", applied,
		"border_vertices", g.BorderCount(),
		"max_district", int64(g.MaxDistrict()),
	)

	return nil
}

// rejectionReason maps a MoveVertex error onto a metrics label.
func rejectionReason(err error) string {
	switch {
	case errors.Is(err, district.ErrSameDistrict):
		return metrics.ReasonSameDistrict
	case errors.Is(err, district.ErrNotBordering):
		return metrics.ReasonNotBordering
	default:
		return metrics.ReasonUnknown
	}
}
