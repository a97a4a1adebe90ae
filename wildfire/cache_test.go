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

import "testing"

type fixedSource float64

func (f fixedSource) Uniform(lo, hi float64) float64 {
	return lo + float64(f)*(hi-lo)
}

func testGrid() *Grid {
	g := NewGrid(5, 5, []float64{0, 1, 2, 3, 4}, []float64{0, 1, 2, 3, 4})
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			g.SetFuelCode(i, j, 1)
			g.SetAttrs(i, j, uniformFuelBed())
		}
	}
	return g
}

func TestActiveFireCacheImmutableOnRevisit(t *testing.T) {
	g := testGrid()
	afc := newActiveFireCache(g, fixedSource(0.5), 500, 0)
	cell := CellIndex{2, 2}
	first := afc.Get(cell)
	second := afc.Get(cell)
	if first != second {
		t.Fatalf("expected identical FireCell on revisit, got %+v vs %+v", first, second)
	}
}

func TestActiveFireCacheHas(t *testing.T) {
	g := testGrid()
	afc := newActiveFireCache(g, fixedSource(0.5), 500, 0)
	cell := CellIndex{1, 1}
	if afc.Has(cell) {
		t.Fatalf("expected cell not yet activated")
	}
	afc.Get(cell)
	if !afc.Has(cell) {
		t.Fatalf("expected cell activated after Get")
	}
}

func TestPastFireCacheHasAndAdd(t *testing.T) {
	p := newPastFireCache()
	cell := CellIndex{0, 0}
	pt := SubPoint{1, 1}
	if p.Has(cell, pt, 4) {
		t.Fatalf("expected sub-point absent before Add")
	}
	p.Add(cell, pt, 4)
	if !p.Has(cell, pt, 4) {
		t.Fatalf("expected sub-point present after Add")
	}
}

func TestPastFireCachePurge(t *testing.T) {
	p := newPastFireCache()
	keep := CellIndex{0, 0}
	drop := CellIndex{1, 1}
	p.Add(keep, SubPoint{0, 0}, 4)
	p.Add(drop, SubPoint{0, 0}, 4)
	p.Purge(map[CellIndex]bool{keep: true})
	if !p.Has(keep, SubPoint{0, 0}, 4) {
		t.Fatalf("expected kept cell to survive purge")
	}
	if p.Has(drop, SubPoint{0, 0}, 4) {
		t.Fatalf("expected dropped cell to be purged")
	}
}

func TestFrontierPointsRoundTrip(t *testing.T) {
	f := newFrontier()
	cell := CellIndex{0, 0}
	f.add(cell, SubPoint{0, 0}, 4)
	f.add(cell, SubPoint{2, 1}, 4)
	pts := f.points(cell, 4)
	if len(pts) != 2 {
		t.Fatalf("expected 2 points, got %d: %v", len(pts), pts)
	}
}

func TestFrontierIsEmpty(t *testing.T) {
	f := newFrontier()
	if !f.isEmpty() {
		t.Fatalf("expected empty frontier")
	}
	f.add(CellIndex{0, 0}, SubPoint{0, 0}, 4)
	if f.isEmpty() {
		t.Fatalf("expected non-empty frontier after add")
	}
}
