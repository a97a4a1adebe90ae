/*
Copyright (C) 2013-2014 Regents of the University of Minnesota.
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

// Package wildfire implements the variable-resolution front propagation
// engine that advances a wildfire frontier across a raster of fuel and
// terrain attributes, given a single ambient wind vector.
//
// The package is single-threaded and synchronous: a Burn call owns all
// of its working state (active fire cache, past intracellular fire
// cache, frontier, burned set) for the duration of the call and is not
// re-entrant.
package wildfire

import "math"

// Configuration constants bounding the per-cell sub-grid.
const (
	// DimMin is the coarsest allowed sub-grid resolution.
	DimMin = 2
	// DimMax is the finest allowed sub-grid resolution.
	DimMax = 8
	// PurgeInterval is the number of simulation minutes between
	// Past Intracellular Fire Cache purges.
	PurgeInterval = 200
	// WindSpeedPerturbation bounds the uniform perturbation applied to
	// wind speed the first time a cell is activated: speed *= 1 + U(-p, p).
	WindSpeedPerturbation = 0.15
	// WindDirPerturbationRad bounds the uniform perturbation, in
	// radians, applied to wind direction on first cell activation.
	WindDirPerturbationRad = 0.26
	// ktToFtPerMin converts knots to feet per minute.
	ktToFtPerMin = 101.269
	// metersPerFoot converts feet to meters.
	metersPerFoot = 0.3048
)

// nonBurnable is the set of fuel-type codes that never carry fire.
var nonBurnable = map[int]bool{0: true, 91: true, 92: true, 93: true, 98: true, 99: true}

// Burnable reports whether the given fuel code (as stored in the FUEL
// raster) can host fire.
func Burnable(fuelCode float64) bool {
	return !nonBurnable[int(math.Round(fuelCode))]
}

// CellIndex addresses one cell of the H x W raster.
type CellIndex struct {
	I, J int
}

// SubPoint addresses one integer coordinate within a cell's sub-grid,
// in [0, dim-1) along each axis.
type SubPoint struct {
	X, Y int
}

// bitIndex maps a sub-point to its bit position within the per-cell
// bitmask used by the Past Intracellular Fire Cache and the frontier.
// dim-1 never exceeds DimMax-1 = 7 and each coordinate is below dim-1,
// so the largest index is 6*7+6 = 48, comfortably inside a uint64.
func bitIndex(p SubPoint, dim int) uint {
	return uint(p.X*(dim-1) + p.Y)
}

func pointFromBitIndex(bit uint, dim int) SubPoint {
	wd := dim - 1
	return SubPoint{X: int(bit) / wd, Y: int(bit) % wd}
}
