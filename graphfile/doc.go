// Package graphfile reads graph documents written in YAML.
//
// A document describes either an explicit graph:
//
//	metric: {name: taxicab, dimensions: 2}   # optional, default euclidean/2d
//	derive_costs: true                       # optional, see core.WithEdgeCostsFrom
//	nodes:
//	  - label: A
//	    at: [0, 0]                           # optional, all nodes or none
//	    edges: {B: 5, C: 8}                  # ordered; or a list of labels at cost 1
//	  - label: B
//	    at: [0, 4]
//	    edges: [A]
//
// or a grid of cell prices:
//
//	grid:
//	  diagonal: true
//	  rows:
//	    - [1, 1,  1, 1]
//	    - [1, x, "#", 1]                     # x, #, inf and .inf mark obstacles
//	    - [1, 1,  1, 1]
//
// Unknown keys, a second YAML document, and documents with both or neither
// of nodes and grid are rejected with ErrInvalidDocument.
package graphfile
