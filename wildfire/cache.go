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

import "math/bits"

// ActiveFireCache maps a grid cell to the FireCell computed for it on
// first activation. Once a cell is entered it is never recomputed or
// removed; AFC records are small and are reused on every revisit for
// the lifetime of a Burn call.
type ActiveFireCache struct {
	grid    *Grid
	rng     Source
	speed   float64 // ambient wind speed, ft/min, before perturbation
	theta   float64 // ambient wind direction, radians, before perturbation
	records map[CellIndex]FireCell
}

func newActiveFireCache(grid *Grid, rng Source, speedFtPerMin, thetaRad float64) *ActiveFireCache {
	return &ActiveFireCache{
		grid:    grid,
		rng:     rng,
		speed:   speedFtPerMin,
		theta:   thetaRad,
		records: make(map[CellIndex]FireCell),
	}
}

// Get returns the FireCell for cell, building and caching it (with a
// one-time wind perturbation) if this is the cell's first activation.
func (c *ActiveFireCache) Get(cell CellIndex) FireCell {
	if fc, ok := c.records[cell]; ok {
		return fc
	}
	return c.activate(cell)
}

// Has reports whether cell has ever been activated.
func (c *ActiveFireCache) Has(cell CellIndex) bool {
	_, ok := c.records[cell]
	return ok
}

// activate draws the two perturbation deviates, builds the FireCell,
// and caches it. This is the only place a Burn call consumes
// randomness: exactly one speed draw and one direction draw per cell,
// on the cell's first activation, never per step.
func (c *ActiveFireCache) activate(cell CellIndex) FireCell {
	speedMul := 1 + c.rng.Uniform(-WindSpeedPerturbation, WindSpeedPerturbation)
	dirOffset := c.rng.Uniform(-WindDirPerturbationRad, WindDirPerturbationRad)

	fb := c.grid.FuelBed(cell.I, cell.J)
	fc := buildFireCell(fb, c.speed*speedMul, c.theta+dirOffset)
	c.records[cell] = fc
	return fc
}

// PastFireCache maps a grid cell to the bitmask of sub-points ever
// ignited within it, keyed against that cell's own AFC.Dim. Sub-point
// sets never exceed (DimMax-1)^2 = 49 bits.
type PastFireCache struct {
	bits map[CellIndex]uint64
}

func newPastFireCache() *PastFireCache {
	return &PastFireCache{bits: make(map[CellIndex]uint64)}
}

// Has reports whether p has already been ignited in cell, given the
// cell's sub-grid resolution dim.
func (p *PastFireCache) Has(cell CellIndex, pt SubPoint, dim int) bool {
	mask, ok := p.bits[cell]
	if !ok {
		return false
	}
	return mask&(1<<bitIndex(pt, dim)) != 0
}

// Add marks p as ignited in cell.
func (p *PastFireCache) Add(cell CellIndex, pt SubPoint, dim int) {
	p.bits[cell] |= 1 << bitIndex(pt, dim)
}

// Cells returns the set of cells with a non-empty entry.
func (p *PastFireCache) Cells() map[CellIndex]bool {
	out := make(map[CellIndex]bool, len(p.bits))
	for c := range p.bits {
		out[c] = true
	}
	return out
}

// Purge drops every entry whose cell is not a member of keep.
func (p *PastFireCache) Purge(keep map[CellIndex]bool) {
	for c := range p.bits {
		if !keep[c] {
			delete(p.bits, c)
		}
	}
}

// Frontier maps a grid cell to the bitmask of sub-points scheduled to
// attempt to advance at the next eligible step for that cell.
type Frontier struct {
	bits map[CellIndex]uint64
}

func newFrontier() *Frontier {
	return &Frontier{bits: make(map[CellIndex]uint64)}
}

func (f *Frontier) add(cell CellIndex, pt SubPoint, dim int) {
	f.bits[cell] |= 1 << bitIndex(pt, dim)
}

// set overwrites the whole bitmask for cell, used when carrying a
// cell's sub-points forward unchanged on a skipped step.
func (f *Frontier) set(cell CellIndex, mask uint64) {
	f.bits[cell] = mask
}

func (f *Frontier) points(cell CellIndex, dim int) []SubPoint {
	mask := f.bits[cell]
	pts := make([]SubPoint, 0, 4)
	for mask != 0 {
		bit := uint(bits.TrailingZeros64(mask))
		pts = append(pts, pointFromBitIndex(bit, dim))
		mask &= mask - 1
	}
	return pts
}

func (f *Frontier) isEmpty() bool {
	return len(f.bits) == 0
}
