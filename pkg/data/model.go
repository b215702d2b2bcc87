package data

// Artwork is a single record of the remote catalog. Records are never
// mutated once fetched.
type Artwork struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	ArtistTitle string   `json:"artist_title"`
	ImageID     string   `json:"image_id"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Description string   `json:"description"`
}

// HasLocation reports whether the artwork can be pinned on a map.
func (a *Artwork) HasLocation() bool {
	return a.Latitude != nil
}

// Coordinates returns the artwork location. A missing longitude reads as 0.
func (a *Artwork) Coordinates() (lat, lon float64) {
	if a.Latitude != nil {
		lat = *a.Latitude
	}
	if a.Longitude != nil {
		lon = *a.Longitude
	}
	return lat, lon
}

type Author struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Biography string `json:"biography"`
}
