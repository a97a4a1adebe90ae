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

import (
	"fmt"

	"github.com/ctessum/cdf"
	"github.com/ctessum/sparse"
	"github.com/ctessum/wrift/wildfire"
)

// LandfireRaster holds the raw fuel-code grid, elevation grid, and
// coordinate vectors read out of a LANDFIRE-style NetCDF file, before
// any unit conversion or cell-attribute derivation.
type LandfireRaster struct {
	Fuel *sparse.DenseArray // H x W fuel-type codes
	Elev *sparse.DenseArray // H x W elevation, ft
	X    []float64          // length W
	Y    []float64          // length H
}

// Variable names of the LANDFIRE NetCDF layers this reader expects.
const (
	fuelVarName = "US_210F40"
	elevVarName = "US_DEM"
	xVarName    = "x"
	yVarName    = "y"
)

// ReadLandfire opens a LANDFIRE NetCDF file and extracts the fuel
// code grid, elevation grid, and coordinate vectors.
func ReadLandfire(r cdf.ReaderWriterAt) (*LandfireRaster, error) {
	f, err := cdf.Open(r)
	if err != nil {
		return nil, fmt.Errorf("ingest: opening LANDFIRE file: %w", err)
	}

	fuel, err := read2D(f, fuelVarName)
	if err != nil {
		return nil, err
	}
	elev, err := read2D(f, elevVarName)
	if err != nil {
		return nil, err
	}
	x, err := read1D(f, xVarName)
	if err != nil {
		return nil, err
	}
	y, err := read1D(f, yVarName)
	if err != nil {
		return nil, err
	}

	if fuel.Shape[0] != len(y) || fuel.Shape[1] != len(x) {
		return nil, fmt.Errorf("ingest: fuel grid shape %v does not match coordinate vectors (%d, %d)", fuel.Shape, len(y), len(x))
	}

	return &LandfireRaster{Fuel: fuel, Elev: elev, X: x, Y: y}, nil
}

// read2D reads a two-dimensional float32 variable into a dense array.
func read2D(f *cdf.File, name string) (*sparse.DenseArray, error) {
	dims := f.Header.Lengths(name)
	if len(dims) == 0 {
		return nil, fmt.Errorf("ingest: variable %q not present in LANDFIRE file", name)
	}
	n := 1
	for _, d := range dims {
		n *= d
	}
	r := f.Reader(name, nil, nil)
	buf := r.Zero(n)
	if _, err := r.Read(buf); err != nil {
		return nil, fmt.Errorf("ingest: reading variable %q: %w", name, err)
	}
	vals, ok := buf.([]float32)
	if !ok {
		return nil, fmt.Errorf("ingest: variable %q is not float32", name)
	}
	arr := sparse.ZerosDense(dims...)
	for i, v := range vals {
		arr.Elements[i] = float64(v)
	}
	return arr, nil
}

// NewGrid converts a LandfireRaster, a fuel lookup table, and a wind
// direction into the Grid package wildfire consumes, selecting the
// slope-tangent array for the octant the wind direction falls in.
func NewGrid(raster *LandfireRaster, fuels map[int]wildfire.FuelParams, windDirDeg float64) (*wildfire.Grid, error) {
	octants := SlopeOctants(raster.Elev)
	var arrays [8][][]float64
	copy(arrays[:], octants[:])
	slope := wildfire.NewSlopeOctants(arrays).For(windDirDeg)

	h, w := raster.Fuel.Shape[0], raster.Fuel.Shape[1]
	fuelCodes := make([][]float64, h)
	for i := 0; i < h; i++ {
		fuelCodes[i] = make([]float64, w)
		for j := 0; j < w; j++ {
			fuelCodes[i][j] = raster.Fuel.Get(i, j)
		}
	}

	return wildfire.NewGridFromRaster(fuelCodes, fuels, slope, raster.X, raster.Y)
}

// read1D reads a one-dimensional float32 coordinate variable.
func read1D(f *cdf.File, name string) ([]float64, error) {
	arr, err := read2D(f, name)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(arr.Elements))
	copy(out, arr.Elements)
	return out, nil
}
