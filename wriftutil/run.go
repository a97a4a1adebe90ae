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

package wriftutil

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/ctessum/wrift/ingest"
	"github.com/ctessum/wrift/wildfire"
)

// Version is the build version reported by the version subcommand.
var Version = "dev"

// Run reads the configured inputs, ignites a fire at the configured
// point, propagates it for the configured number of minutes, and
// prints every cell that burned as a list of longitude/latitude pairs.
func Run(cfg *Cfg) error {
	log := logrus.New()
	level, err := logrus.ParseLevel(cfg.GetString("loglevel"))
	if err != nil {
		return fmt.Errorf("wrift: invalid loglevel: %w", err)
	}
	log.SetLevel(level)
	entry := log.WithField("component", "wrift")

	ctx := context.Background()
	bucket := cfg.GetString("bucket")

	landfireData, err := ingest.OpenRaster(ctx, os.ExpandEnv(cfg.GetString("landfire")), bucket)
	if err != nil {
		return fmt.Errorf("wrift: reading landfire raster: %w", err)
	}
	fuelTableData, err := ingest.OpenRaster(ctx, os.ExpandEnv(cfg.GetString("fueltable")), bucket)
	if err != nil {
		return fmt.Errorf("wrift: reading fuel table: %w", err)
	}

	lat, lon := cfg.GetFloat64("lat"), cfg.GetFloat64("lon")
	speedKt, dirDeg, err := resolveWind(ctx, cfg, lat, lon, entry)
	if err != nil {
		return fmt.Errorf("wrift: resolving wind: %w", err)
	}
	entry = entry.WithFields(logrus.Fields{"windspeed_kt": speedKt, "winddir_deg": dirDeg})

	raster, err := ingest.ReadLandfire(newMemoryFile(landfireData))
	if err != nil {
		return fmt.Errorf("wrift: parsing landfire raster: %w", err)
	}
	fuels, err := ingest.LoadFuelTable(bytes.NewReader(fuelTableData))
	if err != nil {
		return fmt.Errorf("wrift: parsing fuel table: %w", err)
	}
	grid, err := ingest.NewGrid(raster, fuels, dirDeg)
	if err != nil {
		return fmt.Errorf("wrift: building grid: %w", err)
	}
	if err := grid.Validate(); err != nil {
		return fmt.Errorf("wrift: grid failed validation: %w", err)
	}

	start, err := wildfire.StartCell(grid, lat, lon)
	if err != nil {
		return fmt.Errorf("wrift: resolving ignition point: %w", err)
	}
	entry = entry.WithField("cell", start)

	windFtPerMin, thetaRad := wildfire.ConvertWind(speedKt, dirDeg)
	mins := cfg.GetInt("mins")
	seed := cfg.GetInt("seed")

	res := wildfire.Burn(grid, start, windFtPerMin, thetaRad, mins, wildfire.NewSource(uint64(seed)), entry)

	for _, ll := range wildfire.ToLatLon(grid, res.Fires) {
		fmt.Printf("%f,%f\n", ll.Lon, ll.Lat)
	}
	return nil
}

// resolveWind returns the ambient wind speed/direction to ignite
// under: the configured windspeed/winddir flags if both are
// non-negative, or the nearest live weather observation otherwise.
func resolveWind(ctx context.Context, cfg *Cfg, lat, lon float64, log *logrus.Entry) (speedKt, dirDeg float64, err error) {
	speedKt, dirDeg = cfg.GetFloat64("windspeed"), cfg.GetFloat64("winddir")
	if speedKt >= 0 && dirDeg >= 0 {
		return speedKt, dirDeg, nil
	}
	log.Info("querying weather service for current wind")
	ws := ingest.NewWeatherSource()
	return ws.CurrentWind(ctx, cfg.GetFloat64("weatherradius"), lat, lon)
}

// memoryFile adapts an in-memory byte slice, fetched either from disk
// or from a cloud blob, to cdf.ReaderWriterAt, which package cdf
// requires even though wrift never writes NetCDF files.
type memoryFile struct {
	b []byte
}

func newMemoryFile(b []byte) *memoryFile { return &memoryFile{b: b} }

func (m *memoryFile) ReadAt(p []byte, off int64) (int, error) {
	if off >= int64(len(m.b)) {
		return 0, io.EOF
	}
	n := copy(p, m.b[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

func (m *memoryFile) WriteAt(p []byte, off int64) (int, error) {
	return 0, fmt.Errorf("wrift: landfire raster is read-only")
}
