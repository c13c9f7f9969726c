package graphfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pathfinder/core"
	"github.com/katalvlaran/pathfinder/gridgraph"
	"github.com/katalvlaran/pathfinder/metric"
)

// Sentinel errors.
var (
	// ErrInvalidDocument indicates YAML that does not describe a graph.
	ErrInvalidDocument = errors.New("graphfile: invalid document")

	// ErrBadCost indicates a cost or price that is not a number or obstacle marker.
	ErrBadCost = errors.New("graphfile: bad cost")
)

// Document is one parsed graph file.
type Document struct {
	Metric      *MetricSpec `yaml:"metric,omitempty"`
	DeriveCosts bool        `yaml:"derive_costs,omitempty"`
	Nodes       []NodeSpec  `yaml:"nodes,omitempty"`
	Grid        *GridSpec   `yaml:"grid,omitempty"`
}

// MetricSpec selects a metric.Metric by name.
type MetricSpec struct {
	Name       string `yaml:"name"`
	Dimensions int    `yaml:"dimensions,omitempty"`
}

// NodeSpec is one vertex of an explicit graph.
type NodeSpec struct {
	Label string    `yaml:"label"`
	At    []float64 `yaml:"at,omitempty"`
	Edges Edges     `yaml:"edges,omitempty"`
}

// GridSpec is a rectangular grid of cell prices.
type GridSpec struct {
	Diagonal bool     `yaml:"diagonal,omitempty"`
	Rows     [][]Cost `yaml:"rows"`
}

// Edges keeps edges in document order.
type Edges []core.Edge

// UnmarshalYAML accepts a mapping of target to cost, or a sequence of
// targets at unit cost.
func (e *Edges) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.MappingNode:
		out := make(Edges, 0, len(value.Content)/2)
		for i := 0; i+1 < len(value.Content); i += 2 {
			var (
				target string
				cost   Cost
			)
			if err := value.Content[i].Decode(&target); err != nil {
				return err
			}
			if err := value.Content[i+1].Decode(&cost); err != nil {
				return err
			}
			out = append(out, core.To(target, float64(cost)))
		}
		*e = out
	case yaml.SequenceNode:
		var targets []string
		if err := value.Decode(&targets); err != nil {
			return err
		}
		*e = core.ToAll(targets...)
	default:
		return fmt.Errorf("%w: line %d: edges must be a mapping or a list", ErrInvalidDocument, value.Line)
	}

	return nil
}

// Cost is a number, or one of the obstacle markers x, #, inf, .inf (+Inf).
type Cost float64

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Cost) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: line %d: not a scalar", ErrBadCost, value.Line)
	}
	switch strings.ToLower(value.Value) {
	case "x", "#", "inf", "+inf":
		*c = Cost(math.Inf(1))
		return nil
	}
	var f float64
	if err := value.Decode(&f); err != nil {
		return fmt.Errorf("%w: line %d: %q", ErrBadCost, value.Line, value.Value)
	}
	if math.IsNaN(f) {
		return fmt.Errorf("%w: line %d: NaN", ErrBadCost, value.Line)
	}
	*c = Cost(f)

	return nil
}

// Load reads and parses the file at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("graphfile: %w", err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

// Parse decodes exactly one YAML document and checks its shape.
func Parse(data []byte) (*Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty", ErrInvalidDocument)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	var extra any
	if err := dec.Decode(&extra); err == nil {
		return nil, fmt.Errorf("%w: multiple YAML documents", ErrInvalidDocument)
	} else if !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: after first document: %w", ErrInvalidDocument, err)
	}

	switch {
	case len(doc.Nodes) > 0 && doc.Grid != nil:
		return nil, fmt.Errorf("%w: both nodes and grid", ErrInvalidDocument)
	case len(doc.Nodes) == 0 && doc.Grid == nil:
		return nil, fmt.Errorf("%w: neither nodes nor grid", ErrInvalidDocument)
	}

	return &doc, nil
}

// MetricOrDefault returns the document's metric, or 2D Euclidean.
func (d *Document) MetricOrDefault() (metric.Metric, error) {
	if d.Metric == nil {
		return metric.Euclidean(2), nil
	}

	return metric.ByName(d.Metric.Name, d.Metric.Dimensions)
}

// Network builds the described graph: a *gridgraph.GridGraph for grids,
// a *core.Graph otherwise.
func (d *Document) Network() (core.Network, error) {
	if d.Grid != nil {
		gg, err := d.grid()
		if err != nil {
			return nil, err
		}
		return gg, nil
	}

	var opts []core.Option
	if d.DeriveCosts {
		m, err := d.MetricOrDefault()
		if err != nil {
			return nil, err
		}
		opts = append(opts, core.WithEdgeCostsFrom(m))
	}

	vertices := make([]core.Vertex, len(d.Nodes))
	for i, n := range d.Nodes {
		if n.At == nil {
			vertices[i] = core.Node(n.Label, n.Edges...)
		} else {
			vertices[i] = core.Location(n.Label, core.At(n.At...), n.Edges...)
		}
	}

	g, err := core.New(vertices, opts...)
	if err != nil {
		return nil, err
	}

	return g, nil
}

func (d *Document) grid() (*gridgraph.GridGraph, error) {
	prices := make([][]float64, len(d.Grid.Rows))
	for y, row := range d.Grid.Rows {
		prices[y] = make([]float64, len(row))
		for x, c := range row {
			prices[y][x] = float64(c)
		}
	}
	opts := gridgraph.DefaultGridOptions()
	if d.Grid.Diagonal {
		opts.Conn = gridgraph.Conn8
	}

	return gridgraph.NewGridGraph(prices, opts)
}
