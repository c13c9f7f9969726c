// Command pathfind answers shortest-path queries over YAML graph files.
//
//	pathfind between B1 B3 --graph maze.yaml --render
//	pathfind from A --graph network.yaml
//	pathfind index --graph maze.yaml --store sqlite:indexes.db --watch
//	pathfind route B1 B3 --graph maze.yaml --store redis://localhost:6379/0
//	pathfind regions --graph maze.yaml
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/pathfinder/core"
	"github.com/katalvlaran/pathfinder/graphfile"
	"github.com/katalvlaran/pathfinder/instrument"
	"github.com/katalvlaran/pathfinder/metric"
)

// cli carries flag values and shared state through one invocation.
type cli struct {
	graphPath   string
	storeURL    string
	indexName   string
	metricsFile string
	workers     int
	verbose     bool

	logger   *zap.Logger
	registry *prometheus.Registry
	metrics  *instrument.Metrics
	out      io.Writer
}

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:   "pathfind",
		Short: "Shortest paths over graph files",
		Long: `pathfind loads a graph described in YAML (explicit nodes or a grid of
cell prices) and answers shortest-path queries over it.

The algorithm is picked from the graph itself: A* when nodes have positions
or edges are negative, Dijkstra otherwise, Bellman-Ford for all-goals queries
over negative edges. An all-pairs index can be built once, stored in SQLite
or Redis, and queried later with "route".`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.out == nil {
				c.out = cmd.OutOrStdout()
			}
			if c.logger == nil {
				config := zap.NewProductionConfig()
				if c.verbose {
					config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
				}
				logger, err := config.Build()
				if err != nil {
					return fmt.Errorf("failed to initialize logger: %w", err)
				}
				c.logger = logger
			}
			c.registry = prometheus.NewRegistry()
			metrics, err := instrument.NewMetrics(c.registry)
			if err != nil {
				return err
			}
			c.metrics = metrics

			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
			if c.metricsFile == "" {
				return nil
			}

			return prometheus.WriteToTextfile(c.metricsFile, c.registry)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&c.graphPath, "graph", "g", "", "graph file (YAML)")
	flags.StringVar(&c.storeURL, "store", "sqlite:pathfinder.db", `index store: "sqlite:<path>" or a redis:// URL`)
	flags.StringVar(&c.indexName, "name", "", "index name (default: graph file name without extension)")
	flags.StringVar(&c.metricsFile, "metrics-file", "", "write Prometheus metrics to this file on exit")
	flags.IntVar(&c.workers, "workers", 1, "goroutines used to build an index")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		newBetweenCmd(c),
		newFromCmd(c),
		newIndexCmd(c),
		newRouteCmd(c),
		newRegionsCmd(c),
	)

	return root
}

// load reads the graph file named by --graph.
func (c *cli) load() (core.Network, metric.Metric, error) {
	if c.graphPath == "" {
		return nil, metric.Metric{}, fmt.Errorf("no graph file given (--graph)")
	}
	doc, err := graphfile.Load(c.graphPath)
	if err != nil {
		return nil, metric.Metric{}, err
	}
	m, err := doc.MetricOrDefault()
	if err != nil {
		return nil, metric.Metric{}, err
	}
	n, err := doc.Network()
	if err != nil {
		return nil, metric.Metric{}, fmt.Errorf("%s: %w", c.graphPath, err)
	}
	c.logger.Debug("graph loaded",
		zap.String("file", c.graphPath),
		zap.Int("nodes", len(n.All())),
		zap.Stringer("traits", n.Traits()),
	)

	return n, m, nil
}

// name returns --name, or the graph file's base name without extension.
func (c *cli) name() string {
	if c.indexName != "" {
		return c.indexName
	}
	base := filepath.Base(c.graphPath)

	return strings.TrimSuffix(base, filepath.Ext(base))
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(&cli{}).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
