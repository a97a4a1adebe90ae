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
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/ctessum/wrift/wildfire"
)

// fuelTableColumns names the columns read out of the fuel-type lookup
// CSV by LoadFuelTable. Column order in the source file is not
// assumed; columns are matched by header name.
var fuelTableColumns = struct {
	code, delta, sigma, load, mx string
}{
	code: "fuel_code", delta: "delta", sigma: "sigma", load: "w0_tons_per_acre", mx: "mx_percent",
}

// LoadFuelTable parses the fuel-type lookup table (FuelBedDepth, SAV,
// OvenDryLoad, Mx per fuel code) and returns it keyed by fuel code,
// ready for wildfire.NewGridFromRaster.
func LoadFuelTable(r io.Reader) (map[int]wildfire.FuelParams, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("ingest: reading fuel table header: %w", err)
	}
	idx, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	out := make(map[int]wildfire.FuelParams)
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ingest: reading fuel table row: %w", err)
		}
		code, err := strconv.Atoi(record[idx.code])
		if err != nil {
			return nil, fmt.Errorf("ingest: fuel table row %q: invalid fuel code: %w", record, err)
		}
		delta, err := strconv.ParseFloat(record[idx.delta], 64)
		if err != nil {
			return nil, fmt.Errorf("ingest: fuel code %d: invalid delta: %w", code, err)
		}
		sigma, err := strconv.ParseFloat(record[idx.sigma], 64)
		if err != nil {
			return nil, fmt.Errorf("ingest: fuel code %d: invalid sigma: %w", code, err)
		}
		load, err := strconv.ParseFloat(record[idx.load], 64)
		if err != nil {
			return nil, fmt.Errorf("ingest: fuel code %d: invalid fuel load: %w", code, err)
		}
		mx, err := strconv.ParseFloat(record[idx.mx], 64)
		if err != nil {
			return nil, fmt.Errorf("ingest: fuel code %d: invalid extinction moisture: %w", code, err)
		}
		out[code] = wildfire.FuelParams{Delta: delta, Sigma: sigma, W0TonsPerAcre: load, MxPercent: mx}
	}
	return out, nil
}

type columnIndices struct {
	code, delta, sigma, load, mx int
}

func columnIndex(header []string) (columnIndices, error) {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		pos[h] = i
	}
	get := func(name string) (int, error) {
		i, ok := pos[name]
		if !ok {
			return 0, fmt.Errorf("ingest: fuel table missing column %q", name)
		}
		return i, nil
	}
	var idx columnIndices
	var err error
	if idx.code, err = get(fuelTableColumns.code); err != nil {
		return idx, err
	}
	if idx.delta, err = get(fuelTableColumns.delta); err != nil {
		return idx, err
	}
	if idx.sigma, err = get(fuelTableColumns.sigma); err != nil {
		return idx, err
	}
	if idx.load, err = get(fuelTableColumns.load); err != nil {
		return idx, err
	}
	if idx.mx, err = get(fuelTableColumns.mx); err != nil {
		return idx, err
	}
	return idx, nil
}
