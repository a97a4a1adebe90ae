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
	"math"

	"github.com/ctessum/sparse"
	"github.com/ctessum/wrift/rothermel"
)

// Attribute indices within the six-element per-cell record of the
// INPUT raster.
const (
	attrDelta = iota
	attrSigma
	attrW0
	attrMx
	attrMf
	attrTanPhi
	numAttrs
)

// Grid holds the static per-cell attributes, fuel-type codes, and
// raster coordinates that a Burn call reads. Once constructed, a Grid
// is never mutated by the propagator.
type Grid struct {
	H, W int

	// attrs is a dense H x W x 6 array; see attrDelta..attrTanPhi.
	attrs *sparse.DenseArray
	// fuel is a dense H x W array of fuel-type codes.
	fuel *sparse.DenseArray

	// X holds one coordinate per column (length W); Y holds one
	// coordinate per row (length H). The output mapper deliberately
	// indexes X by row and Y by column; see ToLatLon.
	X []float64
	Y []float64
}

// NewGrid allocates a zeroed H x W grid.
func NewGrid(h, w int, x, y []float64) *Grid {
	return &Grid{
		H:     h,
		W:     w,
		attrs: sparse.ZerosDense(h, w, numAttrs),
		fuel:  sparse.ZerosDense(h, w),
		X:     x,
		Y:     y,
	}
}

// SetAttrs stores the six fuel-bed attributes for cell (i, j).
func (g *Grid) SetAttrs(i, j int, fb rothermel.FuelBed) {
	g.attrs.Set(fb.Delta, i, j, attrDelta)
	g.attrs.Set(fb.Sigma, i, j, attrSigma)
	g.attrs.Set(fb.W0, i, j, attrW0)
	g.attrs.Set(fb.Mx, i, j, attrMx)
	g.attrs.Set(fb.Mf, i, j, attrMf)
	g.attrs.Set(fb.TanPhi, i, j, attrTanPhi)
}

// SetFuelCode stores the fuel-type code for cell (i, j).
func (g *Grid) SetFuelCode(i, j int, code float64) {
	g.fuel.Set(code, i, j)
}

// FuelBed reads back the six fuel-bed attributes for cell (i, j).
func (g *Grid) FuelBed(i, j int) rothermel.FuelBed {
	return rothermel.FuelBed{
		Delta:  g.attrs.Get(i, j, attrDelta),
		Sigma:  g.attrs.Get(i, j, attrSigma),
		W0:     g.attrs.Get(i, j, attrW0),
		Mx:     g.attrs.Get(i, j, attrMx),
		Mf:     g.attrs.Get(i, j, attrMf),
		TanPhi: g.attrs.Get(i, j, attrTanPhi),
	}
}

// FuelCode returns the fuel-type code of cell (i, j).
func (g *Grid) FuelCode(i, j int) float64 {
	return g.fuel.Get(i, j)
}

// InBounds reports whether (i, j) addresses a cell of the grid.
func (g *Grid) InBounds(i, j int) bool {
	return i >= 0 && i < g.H && j >= 0 && j < g.W
}

// Burnable reports whether cell (i, j) is in bounds and carries a
// burnable fuel-type code.
func (g *Grid) Burnable(i, j int) bool {
	return g.InBounds(i, j) && Burnable(g.FuelCode(i, j))
}

// Validate checks the raster for the malformed-input failure kind: NaN
// or infinite attribute values, and non-positive bed depth, SAV ratio,
// fuel load, or extinction moisture on any burnable cell. It does not
// check fuel-type codes against a lookup table; that validation happens
// while the grid is constructed from a fuel dictionary in
// NewGridFromRaster.
func (g *Grid) Validate() error {
	for i := 0; i < g.H; i++ {
		for j := 0; j < g.W; j++ {
			if !g.Burnable(i, j) {
				continue
			}
			fb := g.FuelBed(i, j)
			for _, v := range []float64{fb.Delta, fb.Sigma, fb.W0, fb.Mx, fb.Mf, fb.TanPhi} {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					return &MalformedInputError{Cell: CellIndex{i, j}, Reason: "non-finite attribute value"}
				}
			}
			if fb.Delta <= 0 || fb.Sigma <= 0 || fb.W0 <= 0 || fb.Mx <= 0 {
				return &MalformedInputError{Cell: CellIndex{i, j}, Reason: "non-positive delta, sigma, w0 or Mx on a burnable cell"}
			}
		}
	}
	return nil
}
