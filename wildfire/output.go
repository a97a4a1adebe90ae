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

package wildfire

// LonLat is a single output coordinate, longitude then latitude.
type LonLat struct {
	Lon, Lat float64
}

// ToLatLon maps a burned-cell set to geographic coordinates. Each cell
// (i, j) maps to (X[i], Y[j]): the raster's X vector is indexed by row
// and its Y vector by column, not the other way around as in
// StartCell. This mismatch mirrors the upstream raster convention and
// is preserved rather than corrected.
func ToLatLon(g *Grid, fires []CellIndex) []LonLat {
	out := make([]LonLat, 0, len(fires))
	for _, c := range fires {
		if c.I < 0 || c.I >= len(g.X) || c.J < 0 || c.J >= len(g.Y) {
			continue
		}
		out = append(out, LonLat{Lon: g.X[c.I], Lat: g.Y[c.J]})
	}
	return out
}
