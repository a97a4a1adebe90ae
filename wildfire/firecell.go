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

	"github.com/ctessum/wrift/rothermel"
)

// FireCell is the per-cell sub-grid descriptor computed once, on first
// activation, from the Rothermel spread rate and the ambient wind. Its
// fields never change for the lifetime of a Burn call.
type FireCell struct {
	// Dim is the sub-grid resolution, in [DimMin, DimMax].
	Dim int
	// T is the time-step skip: the cell is only advanced on simulation
	// minutes that are multiples of T.
	T int

	// Wx, Wy are the integer sub-cell displacement per advance along
	// the (possibly perturbed) wind direction.
	Wx, Wy int
	// OPx, OPy are the displacement for wind + pi/2.
	OPx, OPy int
	// OMx, OMy are the displacement for wind - pi/2.
	OMx, OMy int

	// NoSpread is set when the underlying spread rate was non-finite or
	// non-positive. A NoSpread cell is excluded from the frontier but
	// remains a member of FIRES.
	NoSpread bool
}

// buildFireCell implements the C2 builder: it turns a fuel bed and a
// (possibly perturbed) wind vector into a FireCell. windFtPerMin and
// thetaRad describe the wind used for this cell specifically, after
// any per-cell stochastic perturbation has already been applied by the
// caller.
func buildFireCell(fb rothermel.FuelBed, windFtPerMin, thetaRad float64) FireCell {
	wrM := rothermel.Spread(fb, windFtPerMin) * metersPerFoot
	orM := wrM * math.Sqrt2 / 5

	if math.IsNaN(orM) || math.IsInf(orM, 0) || orM <= 0 {
		return FireCell{Dim: DimMax, T: 1, NoSpread: true}
	}

	ceil30 := math.Ceil(30 / orM)

	raw := ceil30
	if math.IsNaN(raw) || math.IsInf(raw, 0) || raw > DimMax {
		raw = DimMax
	}
	dim := int(raw)
	if dim < DimMin {
		dim = DimMin
	}
	if dim > DimMax {
		dim = DimMax
	}

	t := int(math.Ceil(ceil30 / float64(dim)))
	if t < 1 {
		t = 1
	}

	scale := (float64(dim) / 30) * float64(t)
	wr := wrM * scale
	or := orM * scale

	wx, wy := round(wr*math.Cos(thetaRad)), round(wr*math.Sin(thetaRad))
	opx, opy := round(or*math.Cos(thetaRad+math.Pi/2)), round(or*math.Sin(thetaRad+math.Pi/2))
	omx, omy := round(or*math.Cos(thetaRad-math.Pi/2)), round(or*math.Sin(thetaRad-math.Pi/2))

	return FireCell{
		Dim: dim, T: t,
		Wx: wx, Wy: wy,
		OPx: opx, OPy: opy,
		OMx: omx, OMy: omy,
	}
}

func round(v float64) int {
	return int(math.Round(v))
}
