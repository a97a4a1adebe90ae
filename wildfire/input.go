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
	"fmt"
	"math"

	"github.com/ctessum/wrift/rothermel"
)

// FuelParams is one row of the fuel-type lookup table: bed depth and
// SAV ratio in the units the raster already uses, fuel load in
// tons/acre, and extinction moisture as a percent. Input binding
// rescales load and moisture into the units Rothermel expects.
type FuelParams struct {
	Delta         float64 // ft
	Sigma         float64 // ft^-1
	W0TonsPerAcre float64
	MxPercent     float64
}

// tonsPerAcreToLbPerSqFt converts oven-dry fuel load from tons/acre to
// lb/ft^2.
const tonsPerAcreToLbPerSqFt = 0.0459137

// ToFuelBed converts a fuel-table row and a slope tangent into the
// six-parameter bed Rothermel consumes, applying the unit scaling the
// core always applies on ingestion: w0 tons/acre -> lb/ft^2, Mx percent
// -> fraction, and Mf fixed at 95% of Mx.
func (p FuelParams) ToFuelBed(tanPhi float64) rothermel.FuelBed {
	mx := p.MxPercent / 100
	return rothermel.FuelBed{
		Delta:  p.Delta,
		Sigma:  p.Sigma,
		W0:     p.W0TonsPerAcre * tonsPerAcreToLbPerSqFt,
		Mx:     mx,
		Mf:     0.95 * mx,
		TanPhi: tanPhi,
	}
}

// octantOffset is the (ip, jp) offset identifying one of the eight
// precomputed slope arrays.
type octantOffset struct{ Ip, Jp int }

// SelectOctant returns the slope-array offset for a wind direction
// given in degrees clockwise from east, matching the boundary table
// of the input-binding component.
func SelectOctant(windDirDeg float64) (ip, jp int) {
	d := math.Mod(windDirDeg, 360)
	if d < 0 {
		d += 360
	}
	switch {
	case d >= 330 || d < 30:
		return 0, 1
	case d >= 30 && d < 60:
		return -1, 1
	case d >= 60 && d < 120:
		return -1, 0
	case d >= 120 && d < 150:
		return -1, -1
	case d >= 150 && d < 210:
		return 0, -1
	case d >= 210 && d < 240:
		return 1, -1
	case d >= 240 && d < 300:
		return 1, 0
	default:
		return 1, 1
	}
}

// ConvertWind converts a (speed, direction) pair from the external
// units weather services report into the feet-per-minute, radians
// representation the propagator uses internally.
func ConvertWind(speedKt, dirDeg float64) (uFtPerMin, thetaRad float64) {
	return speedKt * ktToFtPerMin, dirDeg * math.Pi / 180
}

// SlopeOctants holds the eight precomputed H x W slope-tangent arrays,
// one per wind octant, keyed by the same (ip, jp) offsets SelectOctant
// returns.
type SlopeOctants struct {
	byOffset map[octantOffset][][]float64
}

// NewSlopeOctants builds a SlopeOctants table from the eight arrays in
// the fixed offset order (0,1), (-1,1), (-1,0), (-1,-1), (0,-1),
// (1,-1), (1,0), (1,1).
func NewSlopeOctants(arrays [8][][]float64) *SlopeOctants {
	offsets := [8]octantOffset{{0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1}, {1, 0}, {1, 1}}
	m := make(map[octantOffset][][]float64, 8)
	for i, off := range offsets {
		m[off] = arrays[i]
	}
	return &SlopeOctants{byOffset: m}
}

// For returns the slope array for the octant containing windDirDeg.
func (s *SlopeOctants) For(windDirDeg float64) [][]float64 {
	ip, jp := SelectOctant(windDirDeg)
	return s.byOffset[octantOffset{ip, jp}]
}

// NewGridFromRaster builds a Grid from a fuel-code raster, a fuel
// lookup table, the wind-selected slope array, and coordinate
// vectors. It returns a *MalformedInputError if fuelCodes references a
// code absent from fuels, or if any input slice has the wrong shape.
func NewGridFromRaster(fuelCodes [][]float64, fuels map[int]FuelParams, slope [][]float64, x, y []float64) (*Grid, error) {
	h := len(fuelCodes)
	if h == 0 {
		return nil, &MalformedInputError{Reason: "empty fuel-code raster"}
	}
	w := len(fuelCodes[0])
	if len(y) != h || len(x) != w {
		return nil, &MalformedInputError{Reason: fmt.Sprintf("coordinate vectors do not match raster shape (%d,%d)", h, w)}
	}
	if len(slope) != h {
		return nil, &MalformedInputError{Reason: "slope array row count does not match raster height"}
	}

	g := NewGrid(h, w, x, y)
	for i := 0; i < h; i++ {
		if len(fuelCodes[i]) != w || len(slope[i]) != w {
			return nil, &MalformedInputError{Cell: CellIndex{i, 0}, Reason: "ragged raster row"}
		}
		for j := 0; j < w; j++ {
			code := fuelCodes[i][j]
			g.SetFuelCode(i, j, code)
			if !Burnable(code) {
				continue
			}
			params, ok := fuels[int(math.Round(code))]
			if !ok {
				return nil, &MalformedInputError{Cell: CellIndex{i, j}, Reason: fmt.Sprintf("fuel code %v has no lookup entry", code)}
			}
			g.SetAttrs(i, j, params.ToFuelBed(slope[i][j]))
		}
	}
	return g, nil
}

// StartCell locates the raster cell nearest (lat, lon), matching lat
// against Y and lon against X independently (the two axes are not
// assumed to be co-resolution). It rejects ignition points outside the
// raster's coordinate extent; that rejection is the caller's
// responsibility per the invalid-ignition failure kind, but StartCell
// performs it directly since it already holds both vectors.
func StartCell(g *Grid, lat, lon float64) (CellIndex, error) {
	if len(g.Y) == 0 || len(g.X) == 0 {
		return CellIndex{}, &MalformedInputError{Reason: "empty coordinate vectors"}
	}
	if !withinExtent(g.Y, lat) || !withinExtent(g.X, lon) {
		return CellIndex{}, fmt.Errorf("wildfire: ignition point (%v, %v) lies outside the raster extent", lat, lon)
	}
	i := nearestIndex(g.Y, lat)
	j := nearestIndex(g.X, lon)
	return CellIndex{I: i, J: j}, nil
}

func withinExtent(vals []float64, target float64) bool {
	lo, hi := vals[0], vals[0]
	for _, v := range vals {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return target >= lo && target <= hi
}

func nearestIndex(vals []float64, target float64) int {
	best, bestDist := 0, math.Inf(1)
	for k, v := range vals {
		d := math.Abs(v - target)
		if d < bestDist {
			best, bestDist = k, d
		}
	}
	return best
}
