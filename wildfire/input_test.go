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
	"testing"
)

func TestSelectOctantBoundaries(t *testing.T) {
	cases := []struct {
		deg    float64
		ip, jp int
	}{
		{0, 0, 1},
		{350, 0, 1},
		{45, -1, 1},
		{90, -1, 0},
		{135, -1, -1},
		{180, 0, -1},
		{225, 1, -1},
		{270, 1, 0},
		{315, 1, 1},
	}
	for _, c := range cases {
		ip, jp := SelectOctant(c.deg)
		if ip != c.ip || jp != c.jp {
			t.Errorf("SelectOctant(%v) = (%d,%d), want (%d,%d)", c.deg, ip, jp, c.ip, c.jp)
		}
	}
}

func TestSelectOctantNegativeDegrees(t *testing.T) {
	ip, jp := SelectOctant(-10)
	wantIp, wantJp := SelectOctant(350)
	if ip != wantIp || jp != wantJp {
		t.Errorf("SelectOctant(-10) = (%d,%d), want (%d,%d)", ip, jp, wantIp, wantJp)
	}
}

func TestConvertWind(t *testing.T) {
	u, theta := ConvertWind(10, 90)
	if math.Abs(u-1012.69) > 1e-6 {
		t.Errorf("ConvertWind speed = %v, want ~1012.69", u)
	}
	if math.Abs(theta-math.Pi/2) > 1e-9 {
		t.Errorf("ConvertWind theta = %v, want pi/2", theta)
	}
}

func TestFuelParamsToFuelBedScaling(t *testing.T) {
	p := FuelParams{Delta: 1, Sigma: 1500, W0TonsPerAcre: 10, MxPercent: 20}
	fb := p.ToFuelBed(0.1)
	if math.Abs(fb.W0-10*tonsPerAcreToLbPerSqFt) > 1e-9 {
		t.Errorf("W0 = %v, want %v", fb.W0, 10*tonsPerAcreToLbPerSqFt)
	}
	if math.Abs(fb.Mx-0.2) > 1e-9 {
		t.Errorf("Mx = %v, want 0.2", fb.Mx)
	}
	if math.Abs(fb.Mf-0.95*0.2) > 1e-9 {
		t.Errorf("Mf = %v, want %v", fb.Mf, 0.95*0.2)
	}
	if fb.TanPhi != 0.1 {
		t.Errorf("TanPhi = %v, want 0.1", fb.TanPhi)
	}
}

func TestNewGridFromRasterRejectsMissingFuelCode(t *testing.T) {
	fuelCodes := [][]float64{{1, 2}, {1, 1}}
	slope := [][]float64{{0, 0}, {0, 0}}
	fuels := map[int]FuelParams{1: {Delta: 1, Sigma: 1500, W0TonsPerAcre: 10, MxPercent: 20}}
	_, err := NewGridFromRaster(fuelCodes, fuels, slope, []float64{0, 1}, []float64{0, 1})
	if err == nil {
		t.Fatalf("expected error for fuel code 2 with no lookup entry")
	}
}

func TestNewGridFromRasterSucceeds(t *testing.T) {
	fuelCodes := [][]float64{{1, 91}, {1, 1}}
	slope := [][]float64{{0, 0}, {0, 0}}
	fuels := map[int]FuelParams{1: {Delta: 1, Sigma: 1500, W0TonsPerAcre: 10, MxPercent: 20}}
	g, err := NewGridFromRaster(fuelCodes, fuels, slope, []float64{0, 1}, []float64{0, 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !g.Burnable(0, 0) || g.Burnable(0, 1) {
		t.Fatalf("burnability mismatch after construction")
	}
}

func TestStartCellNearestMatch(t *testing.T) {
	g := NewGrid(3, 3, []float64{10, 20, 30}, []float64{100, 200, 300})
	cell, err := StartCell(g, 195, 22)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cell != (CellIndex{I: 1, J: 1}) {
		t.Errorf("StartCell = %+v, want (1,1)", cell)
	}
}

func TestStartCellOutsideExtentRejected(t *testing.T) {
	g := NewGrid(3, 3, []float64{10, 20, 30}, []float64{100, 200, 300})
	if _, err := StartCell(g, 1000, 20); err == nil {
		t.Fatalf("expected error for out-of-extent latitude")
	}
}
