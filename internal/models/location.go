package models

import (
	"fmt"
	"math"
)

type Location struct {
	Lat float64 `json:"lat" parquet:"name=lat,type=DOUBLE"`
	Lon float64 `json:"lon" parquet:"name=lon,type=DOUBLE"`
}

// Valid reports whether the location is a usable map position: both
// coordinates are finite and inside the WGS84 degree ranges.
func (l Location) Valid() bool {
	if math.IsNaN(l.Lat) || math.IsNaN(l.Lon) || math.IsInf(l.Lat, 0) || math.IsInf(l.Lon, 0) {
		return false
	}
	return l.Lat >= -90 && l.Lat <= 90 && l.Lon >= -180 && l.Lon <= 180
}

// Centroid returns the arithmetic mean of the given locations. The second
// return value is false when locs is empty.
func Centroid(locs []Location) (Location, bool) {
	if len(locs) == 0 {
		return Location{}, false
	}
	var lat, lon float64
	for _, l := range locs {
		lat += l.Lat
		lon += l.Lon
	}
	n := float64(len(locs))
	return Location{Lat: lat / n, Lon: lon / n}, true
}

func (l *Location) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		_, err := fmt.Sscanf(string(v), "POINT(%f %f)", &l.Lon, &l.Lat)
		return err
	case string:
		_, err := fmt.Sscanf(v, "POINT(%f %f)", &l.Lon, &l.Lat)
		return err
	default:
		return fmt.Errorf("unsupported type for Location: %T", value)
	}
}

// WKT renders the location as a well-known-text point, the inverse of Scan.
func (l Location) WKT() string {
	return fmt.Sprintf("POINT(%f %f)", l.Lon, l.Lat)
}
