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

import "math"

// CrownInputs holds the additional fuel-bed attributes needed to
// estimate crown fire spread, on top of the surface fire outputs.
type CrownInputs struct {
	ReactionIntensity float64 // I_R from the surface fire, Btu/min/ft^2
	SurfaceSpread     float64 // R from the surface fire, m/min
	CrownBulkDensity  float64 // CBD, kg/m^3
	FoliarMoisture    float64 // M, crown foliar moisture, percent
	CrownBaseHeight   float64 // CBH, height to live crown base, m
	Sigma             float64 // surface-area-to-volume ratio of the surface fuel bed
}

// CrownSpread estimates the "actual" crown fire spread rate (m/min)
// using the Van Wagner (1977) crown fire initiation criteria combined
// with Rothermel's crown fraction burned formulation.
//
// CrownSpread is not called anywhere in package wildfire. Crown fire is
// not modeled as a feedback loop on the surface propagator; this
// function is kept available for callers that want a static, one-shot
// estimate of whether and how fast a stand would torch given a known
// surface fire intensity.
func CrownSpread(in CrownInputs) float64 {
	io := criticalIntensity(in.CrownBaseHeight, in.FoliarMoisture)
	ib := firelineIntensity(in.ReactionIntensity, in.SurfaceSpread, in.Sigma)
	rac := crownSpreadRate(in.CrownBulkDensity)
	ro := criticalSurfaceSpread(in.SurfaceSpread, ib, io)
	ac := crownFractionScale(rac, ro)
	cfb := crownFractionBurned(ac, in.SurfaceSpread, ro)
	rcMax := maxCrownSpread(in.SurfaceSpread, 1)
	return actualCrownSpread(in.SurfaceSpread, cfb, rcMax)
}

// firelineIntensity is I_b (kW/m).
func firelineIntensity(ir, r, sigma float64) float64 {
	return (ir / 60) * (12.6 * r / sigma)
}

// criticalIntensity is Io (kW/m), the fireline intensity threshold for
// transition to crown fire, from Van Wagner (1977).
func criticalIntensity(cbh, foliarMoisturePercent float64) float64 {
	return math.Pow(0.01*cbh*(460+25.9*foliarMoisturePercent), 1.5)
}

// crownSpreadRate is RAC (m/min), the spread rate within the crown fuel
// layer alone.
func crownSpreadRate(cbd float64) float64 {
	return 3.0 / cbd
}

// actualCrownSpread is R_Cactual (m/min), interpolated between surface
// and fully active crown spread by the crown fraction burned.
func actualCrownSpread(r, cfb, rCMax float64) float64 {
	return r + cfb*(rCMax-r)
}

// maxCrownSpread is R_Cmax (m/min). Ei is the fraction of the active
// crown fire spread rate realized in the direction of interest; 1
// represents the maximum forward rate.
func maxCrownSpread(r10, ei float64) float64 {
	return 3.34 * r10 * ei
}

// crownFractionBurned is CFB, the fraction of the crown fuel layer
// consumed.
func crownFractionBurned(ac, r, ro float64) float64 {
	return 1 - math.Exp(-ac*(r-ro))
}

// crownFractionScale is a_c, the scaling coefficient fit so that CFB
// reaches 0.9 when R exceeds Ro by 90% of the gap between Ro and RAC.
func crownFractionScale(rac, ro float64) float64 {
	return -math.Log(0.1) / (0.9 * (rac - ro))
}

// criticalSurfaceSpread is Ro (m/min), the surface spread rate below
// which crowning cannot initiate.
func criticalSurfaceSpread(r, ib, io float64) float64 {
	return io * (r / ib)
}
