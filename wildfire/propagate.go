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

import (
	"sort"

	"github.com/sirupsen/logrus"
)

// Result is the outcome of a Burn call.
type Result struct {
	// Fires holds every cell that has hosted fire at any point, in
	// ascending (I, J) order.
	Fires []CellIndex
	// SingleCell is set when the ignition cell itself was non-burnable;
	// Fires then contains exactly that one cell and the simulation
	// performed no propagation.
	SingleCell bool
}

// Burn runs the front propagation engine for mins simulation minutes,
// starting the fire at start, under a single ambient wind vector, over
// grid. rng supplies the per-cell wind perturbation draws; the same
// rng seed with the same grid and start always produces the same
// Fires. log may be nil, in which case Burn performs no logging.
func Burn(grid *Grid, start CellIndex, windFtPerMin, thetaRad float64, mins int, rng Source, log *logrus.Entry) Result {
	if !grid.Burnable(start.I, start.J) {
		if log != nil {
			log.WithField("cell", start).Warn("ignition cell is non-burnable, returning single-cell result")
		}
		return Result{Fires: []CellIndex{start}, SingleCell: true}
	}

	afc := newActiveFireCache(grid, rng, windFtPerMin, thetaRad)
	pifc := newPastFireCache()
	frontier := newFrontier()
	fires := map[CellIndex]bool{start: true}

	startFC := afc.Get(start)
	startPt := SubPoint{X: startFC.Dim / 2, Y: startFC.Dim / 2}
	if !startFC.NoSpread {
		frontier.add(start, startPt, startFC.Dim)
	}
	pifc.Add(start, startPt, startFC.Dim)

	for tau := 0; tau < mins; tau++ {
		if frontier.isEmpty() {
			break
		}
		next := newFrontier()

		for _, cell := range sortedCellsFromBits(frontier.bits) {
			fc := afc.Get(cell)
			if tau%fc.T != 0 {
				next.set(cell, frontier.bits[cell])
				continue
			}
			for _, pt := range frontier.points(cell, fc.Dim) {
				for _, cand := range candidates(pt, fc) {
					handleCandidate(grid, afc, pifc, next, fires, cell, fc, cand)
				}
			}
		}

		frontier = next

		if (tau+1)%PurgeInterval == 0 {
			pifc.Purge(frontierCells(frontier))
			if log != nil {
				log.WithFields(logrus.Fields{"minute": tau + 1, "fires": len(fires)}).Debug("purged past-fire cache")
			}
		}
	}

	if log != nil {
		log.WithFields(logrus.Fields{"minute": mins, "fires": len(fires)}).Info("burn complete")
	}
	return Result{Fires: sortedCells(fires)}
}

// candidates returns the three raw (unregridded) advance points for a
// sub-point under the wind, +pi/2, and -pi/2 stencil.
func candidates(pt SubPoint, fc FireCell) []SubPoint {
	return []SubPoint{
		{X: pt.X + fc.Wx, Y: pt.Y + fc.Wy},
		{X: pt.X + fc.OPx, Y: pt.Y + fc.OPy},
		{X: pt.X + fc.OMx, Y: pt.Y + fc.OMy},
	}
}

// handleCandidate resolves one raw candidate point computed from
// `from`: it determines which neighboring cell (if any) the point
// crosses into, regrids its sub-coordinates if so, and then applies
// the new-point handler (bounds/burnability/dedup) to the result.
func handleCandidate(grid *Grid, afc *ActiveFireCache, pifc *PastFireCache, newFrontier *Frontier, fires map[CellIndex]bool, from CellIndex, fromFC FireCell, cand SubPoint) {
	wd := fromFC.Dim - 1

	di := floorDiv(cand.Y, wd)
	dj := floorDiv(cand.X, wd)
	to := CellIndex{I: from.I + di, J: from.J + dj}
	local := SubPoint{X: floorMod(cand.X, wd), Y: floorMod(cand.Y, wd)}

	if !grid.Burnable(to.I, to.J) {
		return
	}

	toFC := afc.Get(to)
	if to != from {
		toWd := toFC.Dim - 1
		local = SubPoint{
			X: (local.X * toFC.Dim) / wd,
			Y: (local.Y * toFC.Dim) / wd,
		}
		if local.X >= toWd {
			local.X = toWd - 1
		}
		if local.Y >= toWd {
			local.Y = toWd - 1
		}
	}

	if pifc.Has(to, local, toFC.Dim) {
		return
	}
	pifc.Add(to, local, toFC.Dim)
	if !toFC.NoSpread {
		newFrontier.add(to, local, toFC.Dim)
	}
	fires[to] = true
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	m := a % b
	if m != 0 && ((m < 0) != (b < 0)) {
		m += b
	}
	return m
}

func sortedCells(m map[CellIndex]bool) []CellIndex {
	out := make([]CellIndex, 0, len(m))
	for c := range m {
		out = append(out, c)
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].I != out[b].I {
			return out[a].I < out[b].I
		}
		return out[a].J < out[b].J
	})
	return out
}

func sortedCellsFromBits(m map[CellIndex]uint64) []CellIndex {
	out := make([]CellIndex, 0, len(m))
	for c := range m {
		out = append(out, c)
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].I != out[b].I {
			return out[a].I < out[b].I
		}
		return out[a].J < out[b].J
	})
	return out
}

func frontierCells(f *Frontier) map[CellIndex]bool {
	out := make(map[CellIndex]bool, len(f.bits))
	for c := range f.bits {
		out[c] = true
	}
	return out
}
