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

import "fmt"

// MalformedInputError reports a fatal, unrecoverable problem with the
// raster inputs, as found by NewGridFromRaster, Grid.Validate or
// StartCell: shape mismatches, missing fuel-type codes, or non-finite
// or non-positive values in the attribute raster. The
// propagator never returns this error itself; inputs are expected to
// be sanitized before the simulation loop runs.
type MalformedInputError struct {
	Cell   CellIndex
	Reason string
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("wildfire: malformed input at cell (%d,%d): %s", e.Cell.I, e.Cell.J, e.Reason)
}
