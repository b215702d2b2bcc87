package data

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArtworkDecodesCatalogFields(t *testing.T) {
	payload := `{
		"id": 27992,
		"title": "A Sunday on La Grande Jatte — 1884",
		"artist_title": "Georges Seurat",
		"image_id": "2d484387-2509-5e8e-2c43-22f9981972eb",
		"latitude": 41.8796,
		"longitude": -87.6237,
		"description": "<p>Seurat spent two years painting...</p>"
	}`

	var a Artwork
	require.NoError(t, json.Unmarshal([]byte(payload), &a))

	assert.Equal(t, 27992, a.ID)
	assert.Equal(t, "Georges Seurat", a.ArtistTitle)
	assert.Equal(t, "2d484387-2509-5e8e-2c43-22f9981972eb", a.ImageID)
	assert.True(t, a.HasLocation())

	lat, lon := a.Coordinates()
	assert.InDelta(t, 41.8796, lat, 1e-9)
	assert.InDelta(t, -87.6237, lon, 1e-9)
}

func TestArtworkWithoutLocation(t *testing.T) {
	var a Artwork
	require.NoError(t, json.Unmarshal([]byte(`{"id": 1, "title": "Untitled", "image_id": null, "latitude": null}`), &a))

	assert.False(t, a.HasLocation())
	assert.Empty(t, a.ImageID)

	lat, lon := a.Coordinates()
	assert.Zero(t, lat)
	assert.Zero(t, lon)
}

func TestAuthorDecodes(t *testing.T) {
	var au Author
	require.NoError(t, json.Unmarshal([]byte(`{"id": 40482, "title": "Claude Monet", "biography": null}`), &au))

	assert.Equal(t, "Claude Monet", au.Title)
	assert.Empty(t, au.Biography)
}
