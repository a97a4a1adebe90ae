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

// Package rothermel implements the Rothermel surface fire spread model,
// a closed-form conversion of fuel-bed, moisture, wind and slope
// parameters into a scalar rate of spread.
package rothermel

import "math"

// FuelBed holds the static attributes of a fuel bed at one raster cell.
type FuelBed struct {
	Delta   float64 // fuel bed depth (ft)
	Sigma   float64 // surface-area-to-volume ratio (ft^-1)
	W0      float64 // oven-dry fuel load (lb/ft^2)
	Mx      float64 // extinction moisture content (fraction of 1)
	Mf      float64 // fuel moisture content (fraction of 1)
	TanPhi  float64 // slope tangent along the wind axis, signed
}

const (
	totalMineralContent     = 0.0555 // S_T
	effectiveMineralContent = 0.010  // S_e
	lowHeatContent          = 8000.  // h, Btu/lb
	particleDensity         = 32.    // rho_p, lb/ft^3
)

// Spread computes the Rothermel surface fire spread rate in ft/min for
// the given fuel bed and wind speed at midflame height (ft/min).
// Callers wanting m/min convert the result themselves.
//
// R is non-negative and finite whenever fb.Delta, fb.Sigma, fb.W0, fb.Mx
// are all positive and finite; callers are responsible for sanitizing
// inputs before calling Spread.
func Spread(fb FuelBed, windFtPerMin float64) float64 {
	c, b, e := fuelParticleC(fb.Sigma), fuelParticleB(fb.Sigma), fuelParticleE(fb.Sigma)

	qIg := heatOfPreIgnition(fb.Mf)
	epsilon := effectiveHeatingNumber(fb.Sigma)
	etaS := mineralDampingCoefficient()
	rM := moistureRatio(fb.Mf, fb.Mx)
	etaM := moistureDampingCoefficient(rM)
	wn := netFuelLoad(fb.W0)
	a := particleSizeExponent(fb.Sigma)
	betaOp := optimumPackingRatio(fb.Sigma)
	rhoB := bulkDensity(fb.W0, fb.Delta)
	beta := packingRatio(rhoB)
	phiS := slopeFactor(beta, fb.TanPhi)
	phiW := windFactor(c, windFtPerMin, b, beta, betaOp, e)
	xi := propagatingFluxRatio(fb.Sigma, beta)
	gammaMax := maxReactionVelocity(fb.Sigma)
	gamma := optimumReactionVelocity(gammaMax, beta, betaOp, a)
	ir := reactionIntensity(gamma, wn, etaM, etaS)

	return spreadRate(ir, xi, rhoB, epsilon, qIg, phiW, phiS)
}

// moistureRatio is r_M: the fraction of extinction moisture present as
// fuel moisture, capped at 1 (fully damped).
func moistureRatio(mf, mx float64) float64 {
	return math.Min(mf/mx, 1)
}

// heatOfPreIgnition is Q_ig (Btu/lb).
func heatOfPreIgnition(mf float64) float64 {
	return 250 + 1116*mf
}

// effectiveHeatingNumber is epsilon, dimensionless.
func effectiveHeatingNumber(sigma float64) float64 {
	return math.Exp(-138 / sigma)
}

// netFuelLoad is w_n (lb/ft^2), the fuel load available to burn after
// removing the inorganic mineral fraction.
func netFuelLoad(w0 float64) float64 {
	return w0 * (1 - totalMineralContent)
}

// particleSizeExponent is A, used to shape the optimum reaction
// velocity curve around the optimum packing ratio.
func particleSizeExponent(sigma float64) float64 {
	return 113 * math.Pow(sigma, -0.7913)
}

// optimumPackingRatio is beta_op, the packing ratio that maximizes
// reaction velocity for a fuel bed of the given surface-area-to-volume
// ratio.
func optimumPackingRatio(sigma float64) float64 {
	return 3.348 * math.Pow(sigma, -0.8189)
}

// bulkDensity is rho_b (lb/ft^3).
func bulkDensity(w0, delta float64) float64 {
	return w0 / delta
}

// packingRatio is beta, the fraction of the fuel bed volume occupied by
// fuel particles.
func packingRatio(rhoB float64) float64 {
	return rhoB / particleDensity
}

// slopeFactor is Phi_s, the slope contribution to spread rate.
func slopeFactor(beta, tanPhi float64) float64 {
	return 5.275 * math.Pow(beta, -0.3) * tanPhi * tanPhi
}

// fuelParticleC, fuelParticleB and fuelParticleE are empirical
// coefficients of fuel particle size used in the wind factor.
func fuelParticleC(sigma float64) float64 {
	return 7.47 * math.Exp(-0.133*math.Pow(sigma, 0.55))
}

func fuelParticleB(sigma float64) float64 {
	return 0.02526 * math.Pow(sigma, 0.54)
}

func fuelParticleE(sigma float64) float64 {
	return 0.715 * math.Exp(-3.59e-4*sigma)
}

// windFactor is Phi_w, the wind contribution to spread rate.
func windFactor(c, windFtPerMin, b, beta, betaOp, e float64) float64 {
	return c * math.Pow(windFtPerMin, b) * math.Pow(beta/betaOp, -e)
}

// propagatingFluxRatio is xi, dimensionless.
func propagatingFluxRatio(sigma, beta float64) float64 {
	return math.Exp((0.792+0.681*math.Sqrt(sigma))*(beta+0.1)) / (192 + 0.2595*sigma)
}

// maxReactionVelocity is Gamma'_max (min^-1).
func maxReactionVelocity(sigma float64) float64 {
	sigma15 := math.Pow(sigma, 1.5)
	return sigma15 / (495 + 0.0594*sigma15)
}

// optimumReactionVelocity is Gamma' (min^-1).
func optimumReactionVelocity(gammaMax, beta, betaOp, a float64) float64 {
	ratio := beta / betaOp
	return gammaMax * math.Pow(ratio, a) * math.Exp(a*(1-ratio))
}

// mineralDampingCoefficient is eta_s, capped at 1.
func mineralDampingCoefficient() float64 {
	return math.Min(0.174*math.Pow(effectiveMineralContent, -0.19), 1)
}

// moistureDampingCoefficient is eta_M.
func moistureDampingCoefficient(rM float64) float64 {
	return 1 - 2.59*rM + 5.11*rM*rM - 3.52*rM*rM*rM
}

// reactionIntensity is I_R (Btu/min/ft^2).
func reactionIntensity(gamma, wn, etaM, etaS float64) float64 {
	return gamma * wn * lowHeatContent * etaM * etaS
}

// spreadRate is R (ft/min), the Rothermel closed-form spread rate.
func spreadRate(ir, xi, rhoB, epsilon, qIg, phiW, phiS float64) float64 {
	num := ir * xi * (1 + phiW + phiS)
	den := rhoB * epsilon * qIg
	return num / den
}
