// Package gridgraph turns a rectangular grid of cell prices into a geometric
// core.Environment.
//
//   - Each passable cell becomes a vertex labeled spreadsheet-style: column
//     letters followed by the 1-based row number ("A1", "B3", "AB1").
//   - The vertex at column x, row y sits at position (x, y).
//   - A cell priced +Inf is an obstacle and has no vertex.
//   - Moving into a cell costs that cell's price, so prices may be fractional
//     or negative.
//   - Four- or eight-connectivity (Conn4 or Conn8); diagonal moves follow the
//     same price rule.
//
// Regions groups passable cells into connected regions under the grid's
// connectivity.
package gridgraph
