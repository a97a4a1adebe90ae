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

package rothermel

import (
	"math"
	"testing"
)

func TestCriticalIntensityIncreasesWithCrownBaseHeight(t *testing.T) {
	low := criticalIntensity(1, 100)
	high := criticalIntensity(5, 100)
	if !(high > low) {
		t.Errorf("criticalIntensity should increase with CBH: low=%v high=%v", low, high)
	}
}

func TestCrownSpreadFinite(t *testing.T) {
	in := CrownInputs{
		ReactionIntensity: 5000,
		SurfaceSpread:     5,
		CrownBulkDensity:  0.15,
		FoliarMoisture:    100,
		CrownBaseHeight:   2,
		Sigma:             1500,
	}
	got := CrownSpread(in)
	if math.IsNaN(got) || math.IsInf(got, 0) {
		t.Fatalf("CrownSpread returned non-finite value %v", got)
	}
}
