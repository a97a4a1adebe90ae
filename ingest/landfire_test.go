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
	"testing"

	"github.com/ctessum/sparse"
	"github.com/ctessum/wrift/wildfire"
)

func TestNewGridFromLandfireRaster(t *testing.T) {
	fuel := sparse.ZerosDense(2, 2)
	fuel.Set(1, 0, 0)
	fuel.Set(91, 0, 1)
	fuel.Set(1, 1, 0)
	fuel.Set(1, 1, 1)
	elev := sparse.ZerosDense(2, 2)

	raster := &LandfireRaster{
		Fuel: fuel,
		Elev: elev,
		X:    []float64{-120, -119},
		Y:    []float64{40, 41},
	}
	fuels := map[int]wildfire.FuelParams{1: {Delta: 1, Sigma: 1500, W0TonsPerAcre: 10, MxPercent: 20}}

	g, err := NewGrid(raster, fuels, 90)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !g.Burnable(0, 0) || g.Burnable(0, 1) {
		t.Fatalf("unexpected burnability after grid construction")
	}
}
