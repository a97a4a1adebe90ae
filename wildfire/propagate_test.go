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
	"reflect"
	"testing"

	"github.com/GaryBoone/GoStats/stats"
)

func uniformGrid(h, w int) *Grid {
	x := make([]float64, w)
	y := make([]float64, h)
	for j := range x {
		x[j] = float64(j)
	}
	for i := range y {
		y[i] = float64(i)
	}
	g := NewGrid(h, w, x, y)
	for i := 0; i < h; i++ {
		for j := 0; j < w; j++ {
			g.SetFuelCode(i, j, 1)
			g.SetAttrs(i, j, uniformFuelBed())
		}
	}
	return g
}

func containsCell(cells []CellIndex, c CellIndex) bool {
	for _, v := range cells {
		if v == c {
			return true
		}
	}
	return false
}

// Scenario 1: non-burnable ignition returns a singleton result.
func TestBurnNonBurnableIgnition(t *testing.T) {
	g := uniformGrid(9, 9)
	start := CellIndex{4, 4}
	g.SetFuelCode(start.I, start.J, 91)

	res := Burn(g, start, 0, 0, 50, NewSource(1), nil)
	if !res.SingleCell {
		t.Fatalf("expected SingleCell result for non-burnable ignition")
	}
	if len(res.Fires) != 1 || res.Fires[0] != start {
		t.Fatalf("expected Fires = [%v], got %v", start, res.Fires)
	}
}

// Scenario 2: zero wind, flat, uniform fuel grows the fire and is
// stable across runs with a fixed seed.
func TestBurnZeroWindGrowsAndIsStable(t *testing.T) {
	g := uniformGrid(21, 21)
	start := CellIndex{10, 10}

	res1 := Burn(g, start, 0, 0, 50, NewSource(7), nil)
	res2 := Burn(g, start, 0, 0, 50, NewSource(7), nil)

	if len(res1.Fires) <= 1 {
		t.Fatalf("expected fire growth beyond the ignition cell, got %d cells", len(res1.Fires))
	}
	if !reflect.DeepEqual(res1.Fires, res2.Fires) {
		t.Fatalf("expected identical Fires for repeated runs with the same seed")
	}
}

// Scenario 3: high wind biases spread along the wind axis and stays
// roughly symmetric perpendicular to it.
func TestBurnHighWindBiasesAlongWindAxis(t *testing.T) {
	g := uniformGrid(41, 41)
	start := CellIndex{20, 20}

	res := Burn(g, start, 500, 0, 100, NewSource(3), nil)
	if len(res.Fires) <= 1 {
		t.Fatalf("expected fire growth, got %d cells", len(res.Fires))
	}

	minI, maxI, minJ, maxJ := start.I, start.I, start.J, start.J
	for _, c := range res.Fires {
		if c.I < minI {
			minI = c.I
		}
		if c.I > maxI {
			maxI = c.I
		}
		if c.J < minJ {
			minJ = c.J
		}
		if c.J > maxJ {
			maxJ = c.J
		}
	}

	jSpread := maxJ - start.J
	iSpread := maxI - start.I
	if !(jSpread > iSpread) {
		t.Errorf("expected spread along wind axis (J) to exceed perpendicular spread (I): jSpread=%d iSpread=%d", jSpread, iSpread)
	}

	perp := make([]float64, len(res.Fires))
	for i, c := range res.Fires {
		perp[i] = float64(c.I - start.I)
	}
	if hi, lo := stats.StatsMax(perp), stats.StatsMin(perp); hi+lo < -2 || hi+lo > 2 {
		t.Errorf("expected the perpendicular offsets to be roughly centered on the ignition row, max=%v min=%v", hi, lo)
	}

	// Per-cell wind perturbation biases individual cells, so exact +-1
	// symmetry only holds in expectation; allow a wider margin here.
	upI := maxI - start.I
	downI := start.I - minI
	diff := upI - downI
	if diff < -2 || diff > 2 {
		t.Errorf("expected approximate perpendicular symmetry, got up=%d down=%d", upI, downI)
	}
}

// Scenario 4: a column of non-burnable cells blocks the fire.
func TestBurnBarrierBlocksSpread(t *testing.T) {
	g := uniformGrid(41, 41)
	start := CellIndex{20, 20}
	barrierJ := start.J + 2
	for i := 0; i < g.H; i++ {
		g.SetFuelCode(i, barrierJ, 91)
	}

	res := Burn(g, start, 500, 0, 150, NewSource(5), nil)
	for _, c := range res.Fires {
		if c.J > barrierJ {
			t.Fatalf("fire crossed the barrier at column %d: cell %v", barrierJ, c)
		}
	}
}

// Scenario 5: FIRES only grows across a purge boundary.
func TestBurnMonotonicAcrossPurgeBoundary(t *testing.T) {
	g := uniformGrid(61, 61)
	start := CellIndex{30, 30}

	before := Burn(g, start, 50, 0, PurgeInterval-1, NewSource(11), nil)
	after := Burn(g, start, 50, 0, PurgeInterval+1, NewSource(11), nil)

	for _, c := range before.Fires {
		if !containsCell(after.Fires, c) {
			t.Fatalf("cell %v present before purge boundary is missing afterward", c)
		}
	}
}

// Scenario 6: determinism under a fixed seed, divergence (with
// overwhelming probability) under different seeds.
func TestBurnDeterminismUnderSeed(t *testing.T) {
	g := uniformGrid(31, 31)
	start := CellIndex{15, 15}

	a := Burn(g, start, 200, 1.0, 80, NewSource(42), nil)
	b := Burn(g, start, 200, 1.0, 80, NewSource(42), nil)
	if !reflect.DeepEqual(a.Fires, b.Fires) {
		t.Fatalf("expected identical Fires for identical seed")
	}

	c := Burn(g, start, 200, 1.0, 80, NewSource(43), nil)
	if reflect.DeepEqual(a.Fires, c.Fires) {
		t.Fatalf("expected different Fires for a different seed (this can rarely collide by chance)")
	}
}

func TestBurnFiresAreSortedAndBurnable(t *testing.T) {
	g := uniformGrid(21, 21)
	start := CellIndex{10, 10}
	res := Burn(g, start, 100, 0.3, 60, NewSource(2), nil)

	for i := 1; i < len(res.Fires); i++ {
		prev, cur := res.Fires[i-1], res.Fires[i]
		if prev.I > cur.I || (prev.I == cur.I && prev.J > cur.J) {
			t.Fatalf("Fires not sorted at index %d: %v then %v", i, prev, cur)
		}
	}
	for _, c := range res.Fires {
		if !g.Burnable(c.I, c.J) {
			t.Fatalf("Fires contains non-burnable cell %v", c)
		}
	}
}
