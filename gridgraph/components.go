package gridgraph

// Regions finds all contiguous groups of passable cells under gg.Conn,
// ignoring edge direction and price. Each region lists its labels in
// discovery order; regions appear in row-major order of their first cell.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) Regions() [][]string {
	total := gg.Width * gg.Height
	seen := make([]bool, total)
	var regions [][]string

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if gg.Obstacle(x, y) {
				continue
			}
			i0 := gg.index(x, y)
			if seen[i0] {
				continue
			}
			// BFS to collect the region
			queue := []int{i0}
			seen[i0] = true
			var region []string

			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				ux, uy := gg.Coordinate(u)
				region = append(region, Label(ux, uy))
				for _, d := range gg.neighborOffsets {
					vx, vy := ux+d[0], uy+d[1]
					if gg.Obstacle(vx, vy) {
						continue
					}
					vi := gg.index(vx, vy)
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			regions = append(regions, region)
		}
	}

	return regions
}
