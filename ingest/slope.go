/*
Copyright © 2017 the InMAP authors.
This file is part of InMAP.

InMAP is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

InMAP is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with InMAP.  If not, see <http://www.gnu.org/licenses/>.
*/

package ingest

import "github.com/ctessum/sparse"

// octaveOffsets lists the eight (ip, jp) neighbor offsets, in the
// fixed order wildfire.NewSlopeOctants expects: (0,1), (-1,1), (-1,0),
// (-1,-1), (0,-1), (1,-1), (1,0), (1,1).
var octaveOffsets = [8][2]int{
	{0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1}, {1, 0}, {1, 1},
}

// cellSizeFt is the LANDFIRE raster's native cell size, used to convert
// an elevation difference between adjacent cells into a slope tangent.
const cellSizeFt = 30.0

// SlopeOctants precomputes the eight wind-octant slope-tangent arrays
// from a raw elevation grid, rather than requiring them as a
// separately supplied input. Each cell (i, j) of octant k holds
// (elev[i+ip, j+jp] - elev[i, j]) / cellSizeFt; boundary rows/columns
// copy the adjacent interior row/column rather than reading out of
// bounds.
func SlopeOctants(elev *sparse.DenseArray) [8][][]float64 {
	h, w := elev.Shape[0], elev.Shape[1]
	var out [8][][]float64
	for k, off := range octaveOffsets {
		out[k] = slopeForOffset(elev, h, w, off[0], off[1])
	}
	return out
}

// slopeForOffset computes (elev[i+ip,j+jp] - elev[i,j]) / cellSizeFt
// for every interior cell where i+ip and j+jp are both in bounds. A
// boundary row or column has no valid i+ip (or j+jp) of its own, so it
// reuses the value computed at the nearest interior row/column instead
// of reading past the edge of the raster.
func slopeForOffset(elev *sparse.DenseArray, h, w, ip, jp int) [][]float64 {
	loI, hiI := validRange(h, ip)
	loJ, hiJ := validRange(w, jp)

	arr := make([][]float64, h)
	for i := 0; i < h; i++ {
		arr[i] = make([]float64, w)
		si := clampTo(i, loI, hiI)
		for j := 0; j < w; j++ {
			sj := clampTo(j, loJ, hiJ)
			arr[i][j] = (elev.Get(si+ip, sj+jp) - elev.Get(si, sj)) / cellSizeFt
		}
	}
	return arr
}

// validRange returns the inclusive range of source indices i for which
// i+offset lies within [0, n).
func validRange(n, offset int) (lo, hi int) {
	switch {
	case offset < 0:
		return -offset, n - 1
	case offset > 0:
		return 0, n - 1 - offset
	default:
		return 0, n - 1
	}
}

func clampTo(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
