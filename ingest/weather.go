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

// Package ingest implements the external collaborators the simulation
// core keeps out of scope: geospatial raster ingestion, the fuel-type
// lookup table, slope pre-computation, weather acquisition, and a
// local/cloud-blob raster source. Every function here produces the
// typed arrays and scalars that package wildfire consumes; none of it
// runs inside the simulation loop.
package ingest

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"math"
	"net/http"
	"net/url"
	"runtime"
	"sort"
	"strconv"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/ctessum/requestcache"
)

// Station is one weather observation pulled from the aviation-weather
// data server, restricted to the fields input binding needs.
type Station struct {
	ID             string
	Lat, Lon       float64
	WindSpeedKt    float64
	WindDirDegrees float64
}

// WeatherSource retrieves the METAR station nearest a point and the
// current wind observed there, caching and retrying the underlying
// HTTP call the way package sr caches and retries remote work.
type WeatherSource struct {
	BaseURL string
	Client  *http.Client

	cache *requestcache.Cache
}

const defaultWeatherBaseURL = "https://aviationweather.gov/adds/dataserver_current/httpparam"

// NewWeatherSource builds a WeatherSource against the public aviation
// weather data server, deduplicating concurrent identical requests and
// memoizing the last 64 responses.
func NewWeatherSource() *WeatherSource {
	w := &WeatherSource{BaseURL: defaultWeatherBaseURL, Client: http.DefaultClient}
	w.cache = requestcache.NewCache(func(ctx context.Context, request interface{}) (interface{}, error) {
		r := request.(weatherRequest)
		return w.fetchStations(ctx, r.radiusMi, r.lat, r.lon)
	}, runtime.GOMAXPROCS(-1), requestcache.Deduplicate(), requestcache.Memory(64))
	return w
}

type weatherRequest struct {
	radiusMi, lat, lon float64
}

// CurrentWind returns the wind speed (knots) and direction (degrees)
// reported by the station nearest (lat, lon) within radiusMi miles.
func (w *WeatherSource) CurrentWind(ctx context.Context, radiusMi, lat, lon float64) (speedKt, dirDeg float64, err error) {
	req := w.cache.NewRequest(ctx, weatherRequest{radiusMi, lat, lon}, fmt.Sprintf("%v_%v_%v", radiusMi, lat, lon))
	result, err := req.Result()
	if err != nil {
		return 0, 0, err
	}
	stations := result.([]Station)
	if len(stations) == 0 {
		return 0, 0, fmt.Errorf("ingest: no weather stations within %v miles of (%v, %v)", radiusMi, lat, lon)
	}
	nearest := nearestStation(stations, lat, lon)
	return nearest.WindSpeedKt, nearest.WindDirDegrees, nil
}

// fetchStations retries the HTTP call to the data server with
// exponential backoff; the server occasionally serves transient 5xx
// responses under load.
func (w *WeatherSource) fetchStations(ctx context.Context, radiusMi, lat, lon float64) ([]Station, error) {
	var stations []Station
	err := backoff.RetryNotify(
		func() error {
			s, err := w.queryStations(ctx, radiusMi, lat, lon)
			if err != nil {
				return err
			}
			stations = s
			return nil
		},
		backoff.NewExponentialBackOff(),
		func(err error, d time.Duration) {
			log.Printf("ingest: weather query failed, retrying in %v: %v", d, err)
		},
	)
	return stations, err
}

func (w *WeatherSource) queryStations(ctx context.Context, radiusMi, lat, lon float64) ([]Station, error) {
	q := url.Values{
		"dataSource":     {"metars"},
		"requestType":    {"retrieve"},
		"format":         {"csv"},
		"radialDistance": {fmt.Sprintf("%v;%v,%v", radiusMi, lon, lat)},
		"hoursBeforeNow": {"1"},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, w.BaseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := w.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ingest: weather server returned status %d", resp.StatusCode)
	}
	return parseMETARCSV(resp.Body)
}

// parseMETARCSV parses the ADDS server's CSV response, skipping the
// five header lines the server prepends before the real column header.
func parseMETARCSV(r io.Reader) ([]Station, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	var header []string
	row := 0
	var stations []Station
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ingest: parsing METAR response: %w", err)
		}
		row++
		if row <= 5 {
			continue
		}
		if header == nil {
			header = record
			continue
		}
		st, ok := stationFromRecord(header, record)
		if ok {
			stations = append(stations, st)
		}
	}
	return stations, nil
}

func stationFromRecord(header, record []string) (Station, bool) {
	col := func(name string) (string, bool) {
		for i, h := range header {
			if h == name && i < len(record) {
				return record[i], true
			}
		}
		return "", false
	}
	parse := func(name string) float64 {
		v, ok := col(name)
		if !ok {
			return math.NaN()
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return math.NaN()
		}
		return f
	}

	id, ok := col("station_id")
	if !ok {
		return Station{}, false
	}
	st := Station{
		ID:             id,
		Lat:            parse("latitude"),
		Lon:            parse("longitude"),
		WindSpeedKt:    parse("wind_speed_kt"),
		WindDirDegrees: parse("wind_dir_degrees"),
	}
	if math.IsNaN(st.Lat) || math.IsNaN(st.Lon) {
		return Station{}, false
	}
	return st, true
}

// nearestStation returns the station with the smallest great-circle
// distance to (lat, lon).
func nearestStation(stations []Station, lat, lon float64) Station {
	sort.Slice(stations, func(i, j int) bool {
		return haversineMiles(lat, lon, stations[i].Lat, stations[i].Lon) <
			haversineMiles(lat, lon, stations[j].Lat, stations[j].Lon)
	})
	return stations[0]
}

const earthRadiusMi = 3958.8

// haversineMiles is the great-circle distance between two lat/lon
// points, in statute miles, matching the geopy.distance.distance call
// the station-selection logic was ported from.
func haversineMiles(lat1, lon1, lat2, lon2 float64) float64 {
	toRad := math.Pi / 180
	dLat := (lat2 - lat1) * toRad
	dLon := (lon2 - lon1) * toRad
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*toRad)*math.Cos(lat2*toRad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusMi * c
}
