package services

import (
	"errors"
	"fmt"
	"math"

	"github.com/kerbaras/artic/pkg/data"
)

// Span shown around a pinned artwork.
const (
	LatitudeDelta  = 0.0922
	LongitudeDelta = 0.0421
)

var ErrNoLocation = errors.New("artwork has no location")

// Region is a rectangular map viewport centered on a single pin.
type Region struct {
	Latitude       float64
	Longitude      float64
	LatitudeDelta  float64
	LongitudeDelta float64
	Label          string
}

func NewRegion(lat, lon float64, label string) Region {
	return Region{
		Latitude:       lat,
		Longitude:      lon,
		LatitudeDelta:  LatitudeDelta,
		LongitudeDelta: LongitudeDelta,
		Label:          label,
	}
}

func NewRegionFor(a *data.Artwork) (Region, error) {
	if a == nil || !a.HasLocation() {
		return Region{}, ErrNoLocation
	}
	lat, lon := a.Coordinates()
	return NewRegion(lat, lon, a.Title), nil
}

func (r Region) Bounds() (south, west, north, east float64) {
	return r.Latitude - r.LatitudeDelta/2,
		r.Longitude - r.LongitudeDelta/2,
		r.Latitude + r.LatitudeDelta/2,
		r.Longitude + r.LongitudeDelta/2
}

// Project maps a coordinate onto a width x height grid whose top-left cell
// is the north-west corner. ok is false when the point is outside the region.
func (r Region) Project(lat, lon float64, width, height int) (x, y int, ok bool) {
	if width < 1 || height < 1 {
		return 0, 0, false
	}
	south, west, north, east := r.Bounds()
	if lat < south || lat > north || lon < west || lon > east {
		return 0, 0, false
	}
	x = int(math.Round((lon - west) / (east - west) * float64(width-1)))
	y = int(math.Round((north - lat) / (north - south) * float64(height-1)))
	return x, y, true
}

// Zoom approximates the slippy-map zoom level that fits the longitude span.
func (r Region) Zoom() int {
	if r.LongitudeDelta <= 0 {
		return 18
	}
	z := int(math.Round(math.Log2(360 / r.LongitudeDelta)))
	return max(0, min(z, 18))
}

func (r Region) OpenStreetMapURL() string {
	return fmt.Sprintf("https://www.openstreetmap.org/?mlat=%.5f&mlon=%.5f#map=%d/%.5f/%.5f",
		r.Latitude, r.Longitude, r.Zoom(), r.Latitude, r.Longitude)
}
