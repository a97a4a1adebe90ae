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

import "golang.org/x/exp/rand"

// Source draws the uniform deviates consumed once per cell by the
// active fire cache when a cell is first activated. It is the only
// source of nondeterminism in the package; a Burn call seeded with the
// same rng seed and given the same inputs must produce an identical
// burned set.
type Source interface {
	// Uniform returns a value drawn uniformly from [lo, hi).
	Uniform(lo, hi float64) float64
}

// source wraps a seeded golang.org/x/exp/rand generator.
type source struct {
	r *rand.Rand
}

// NewSource returns a Source seeded deterministically from seed. Two
// sources created with the same seed produce the same sequence of
// draws.
func NewSource(seed uint64) Source {
	return &source{r: rand.New(rand.NewSource(seed))}
}

func (s *source) Uniform(lo, hi float64) float64 {
	return lo + s.r.Float64()*(hi-lo)
}
