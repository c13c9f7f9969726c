package main

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathfinder/astar"
	"github.com/katalvlaran/pathfinder/core"
	"github.com/katalvlaran/pathfinder/dynamic"
	"github.com/katalvlaran/pathfinder/floydwarshall"
	"github.com/katalvlaran/pathfinder/gridgraph"
	"github.com/katalvlaran/pathfinder/heuristic"
	"github.com/katalvlaran/pathfinder/indexstore"
	"github.com/katalvlaran/pathfinder/instrument"
	"github.com/katalvlaran/pathfinder/pathfinding"
	"github.com/katalvlaran/pathfinder/static"
)

func newBetweenCmd(c *cli) *cobra.Command {
	var render bool
	cmd := &cobra.Command{
		Use:   "between START GOAL",
		Short: "Print the shortest path between two nodes",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, m, err := c.load()
			if err != nil {
				return err
			}
			p := c.wrap(dynamic.New(n,
				dynamic.WithMetric(m),
				dynamic.WithLogger(c.logger),
				dynamic.WithSearchOptions(pathfinding.WithContext(cmd.Context())),
			))
			path, err := p.Between(args[0], args[1])
			if err != nil {
				return err
			}
			if err := c.printPath(n, path); err != nil {
				return err
			}
			if render {
				gg, ok := n.(*gridgraph.GridGraph)
				if !ok {
					return fmt.Errorf("--render needs a grid graph")
				}
				fmt.Fprintln(c.out, renderGrid(lipgloss.NewRenderer(c.out), gg, path))
			}

			return nil
		},
	}
	cmd.Flags().BoolVar(&render, "render", false, "draw the path on the grid")

	return cmd
}

func newFromCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "from START",
		Short: "Print the shortest path to every reachable node",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, m, err := c.load()
			if err != nil {
				return err
			}
			p := c.wrap(dynamic.New(n,
				dynamic.WithMetric(m),
				dynamic.WithLogger(c.logger),
				dynamic.WithSearchOptions(pathfinding.WithContext(cmd.Context())),
			))
			paths, err := p.From(args[0])
			if err != nil {
				return err
			}

			return c.printPaths(n, paths)
		},
	}
}

func newRouteCmd(c *cli) *cobra.Command {
	var guided bool
	cmd := &cobra.Command{
		Use:   "route START GOAL",
		Short: "Answer from a stored index instead of searching",
		Long: `route walks the next hops of the index stored for the graph (see "index").

With --guided the stored distances only steer an A* search over the current
graph file, so the answer stays valid when the graph changed slightly since
indexing, at the price of possibly not being the cheapest.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, _, err := c.load()
			if err != nil {
				return err
			}
			idx, err := c.loadIndex(cmd)
			if err != nil {
				return err
			}

			var p pathfinding.SinglePathfinder
			if guided {
				h := heuristic.Safely(heuristic.Indexed(idx, core.View(n)))
				p = astar.New(h, pathfinding.WithContext(cmd.Context()))
			} else {
				if idx.NegativeCycle() {
					c.logger.Warn("stored index covers a negative cycle; some routes will fail")
				}
				p = static.New(idx, n)
			}
			path, err := c.wrap(asPathfinder{p}).Between(args[0], args[1])
			if err != nil {
				return err
			}

			return c.printPath(n, path)
		},
	}
	cmd.Flags().BoolVar(&guided, "guided", false, "search the current graph, steered by the stored index")

	return cmd
}

func newRegionsCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "regions",
		Short: "List the connected regions of a grid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, _, err := c.load()
			if err != nil {
				return err
			}
			gg, ok := n.(*gridgraph.GridGraph)
			if !ok {
				return fmt.Errorf("regions needs a grid graph")
			}
			for i, r := range gg.Regions() {
				fmt.Fprintf(c.out, "%d: %s\n", i+1, strings.Join(r, " "))
			}

			return nil
		},
	}
}

func (c *cli) loadIndex(cmd *cobra.Command) (*floydwarshall.Index, error) {
	store, err := c.openStore()
	if err != nil {
		return nil, err
	}
	defer store.Close()

	idx, err := store.Load(cmd.Context(), c.name())
	if errors.Is(err, indexstore.ErrNotFound) {
		return nil, fmt.Errorf("%w (run \"pathfind index\" first)", err)
	}

	return idx, err
}

func (c *cli) wrap(p pathfinding.Pathfinder) *instrument.Pathfinder {
	return instrument.Wrap(p, c.metrics, c.logger)
}

// asPathfinder lets single-goal pathfinders pass through instrument.Wrap.
type asPathfinder struct {
	pathfinding.SinglePathfinder
}

func (asPathfinder) From(start string) (map[string][]string, error) {
	return nil, errors.New("all-goals queries are not supported here")
}

func (c *cli) printPath(n core.Network, path []string) error {
	cost, err := pathfinding.Cost(n, path)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "%s (cost %g)\n", strings.Join(path, " → "), cost)

	return nil
}

func (c *cli) printPaths(n core.Network, paths map[string][]string) error {
	goals := make([]string, 0, len(paths))
	for g := range paths {
		goals = append(goals, g)
	}
	sort.Strings(goals)
	for _, g := range goals {
		fmt.Fprintf(c.out, "%s: ", g)
		if err := c.printPath(n, paths[g]); err != nil {
			return err
		}
	}

	return nil
}
