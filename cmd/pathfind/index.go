package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/pathfinder/floydwarshall"
	"github.com/katalvlaran/pathfinder/indexstore"
)

// watchDebounce groups the burst of events a single save produces.
const watchDebounce = 150 * time.Millisecond

func newIndexCmd(c *cli) *cobra.Command {
	var rebuild, watch bool
	cmd := &cobra.Command{
		Use:   "index",
		Short: "Build and store the all-pairs index of a graph",
		Long: `index runs Floyd-Warshall over the graph file and stores the result under
--name in --store. A stored index over the same nodes is reused unless
--rebuild is given. With --watch the index is rebuilt every time the graph
file changes, until interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := c.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			if rebuild {
				err = c.rebuild(ctx, store)
			} else {
				err = c.loadOrBuild(ctx, store)
			}
			if err != nil || !watch {
				return err
			}

			return watchFile(ctx, c.graphPath, c.logger, func() error {
				return c.rebuild(ctx, store)
			})
		},
	}
	cmd.Flags().BoolVar(&rebuild, "rebuild", false, "ignore any stored index")
	cmd.Flags().BoolVar(&watch, "watch", false, "rebuild whenever the graph file changes")

	return cmd
}

func (c *cli) loadOrBuild(ctx context.Context, store indexstore.Store) error {
	n, _, err := c.load()
	if err != nil {
		return err
	}
	cache := indexstore.NewCache(store,
		indexstore.WithLogger(c.logger),
		indexstore.WithWorkers(c.workers),
	)
	idx, built, err := cache.LoadOrBuild(ctx, c.name(), n)
	if err != nil {
		return err
	}
	c.report(idx, built)

	return nil
}

func (c *cli) rebuild(ctx context.Context, store indexstore.Store) error {
	n, _, err := c.load()
	if err != nil {
		return err
	}
	idx, err := floydwarshall.Build(n,
		floydwarshall.WithContext(ctx),
		floydwarshall.WithWorkers(c.workers),
	)
	if err != nil {
		return err
	}
	if err := store.Save(ctx, c.name(), idx); err != nil {
		return err
	}
	c.report(idx, true)

	return nil
}

func (c *cli) report(idx *floydwarshall.Index, built bool) {
	verb := "loaded"
	if built {
		verb = "built"
	}
	fmt.Fprintf(c.out, "index %q %s: %d nodes\n", c.name(), verb, idx.Len())
	if idx.NegativeCycle() {
		fmt.Fprintln(c.out, "warning: the graph has a negative cycle; routes through it will fail")
	}
}

// watchFile calls onChange after every burst of writes to path, until ctx
// is done. The parent directory is watched so that editors replacing the
// file by rename are noticed too. Failures of onChange are logged.
func watchFile(ctx context.Context, path string, logger *zap.Logger, onChange func() error) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	target := filepath.Clean(path)
	if err := w.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}
	logger.Info("watching graph file", zap.String("file", target))

	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target || (!ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create)) {
				continue
			}
			fire = time.After(watchDebounce)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", zap.Error(err))
		case <-fire:
			fire = nil
			if err := onChange(); err != nil {
				logger.Error("rebuild failed", zap.String("file", target), zap.Error(err))
			}
		}
	}
}
