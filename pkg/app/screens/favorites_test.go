package screens

import (
	"testing"

	"github.com/kerbaras/artic/pkg/data"
	"github.com/kerbaras/artic/pkg/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavoritesScreenRendersSharedStore(t *testing.T) {
	controller := newTestController(t, pagedSource())
	screen := NewFavoritesScreen(controller)
	screen.Update(windowSize)

	assert.Contains(t, screen.View(), "No favorites yet")

	// marked from another screen after this one was built
	controller.Favorites().Toggle(data.Artwork{ID: 7, Title: "The Bedroom"})
	controller.Favorites().Toggle(data.Artwork{ID: 3, Title: "Nighthawks"})

	view := screen.View()
	assert.Contains(t, view, "The Bedroom")
	assert.Contains(t, view, "Nighthawks")
	assert.Contains(t, view, "Favorites (2)")
}

func TestFavoritesScreenRemove(t *testing.T) {
	controller := newTestController(t, pagedSource())
	controller.Favorites().Toggle(data.Artwork{ID: 7, Title: "The Bedroom"})
	controller.Favorites().Toggle(data.Artwork{ID: 3, Title: "Nighthawks"})

	screen := NewFavoritesScreen(controller)
	screen.Update(windowSize)

	screen.Update(key("f"))
	assert.False(t, controller.Favorites().Contains(7))
	assert.Equal(t, 1, controller.Favorites().Len())
	assert.Equal(t, 3, screen.list.Selected().ID)
}

func TestFavoritesScreenNavigation(t *testing.T) {
	controller := newTestController(t, pagedSource())
	controller.Favorites().Toggle(data.Artwork{ID: 7, Title: "The Bedroom", ArtistTitle: "Vincent van Gogh"})
	controller.Favorites().Toggle(data.Artwork{
		ID: 3, Title: "Nighthawks", ArtistTitle: "Edward Hopper",
		Latitude: floatPtr(41.88), Longitude: floatPtr(-87.62),
	})

	screen := NewFavoritesScreen(controller)
	screen.Update(windowSize)

	_, cmd := screen.Update(key("a"))
	require.NotNil(t, cmd)
	msg := cmd().(NavigateMsg)
	assert.Equal(t, ScreenAuthor, msg.Screen)
	assert.Equal(t, "Vincent van Gogh", msg.Data)

	_, cmd = screen.Update(key("m"))
	assert.Nil(t, cmd, "no map for an artwork without a location")

	screen.Update(key("down"))
	_, cmd = screen.Update(key("m"))
	require.NotNil(t, cmd)
	msg = cmd().(NavigateMsg)
	assert.Equal(t, ScreenMap, msg.Screen)
	region := msg.Data.(services.Region)
	assert.Equal(t, 41.88, region.Latitude)
	assert.Equal(t, "Nighthawks", region.Label)
}

func TestFavoritesScreenExport(t *testing.T) {
	controller := newTestController(t, pagedSource())
	screen := NewFavoritesScreen(controller)
	screen.Update(windowSize)

	_, cmd := screen.Update(key("e"))
	assert.Nil(t, cmd, "nothing to export")

	controller.Favorites().Toggle(data.Artwork{ID: 7, Title: "The Bedroom"})
	_, cmd = screen.Update(key("e"))
	require.NotNil(t, cmd)
	assert.True(t, screen.exporting)

	done := screen.export().(exportDoneMsg)
	require.NoError(t, done.err)
	assert.FileExists(t, done.path)

	screen.Update(services.ExportProgress{Current: 1, Total: 1, Status: "complete", Path: done.path})
	screen.Update(done)
	assert.False(t, screen.exporting)
	assert.Contains(t, screen.View(), "Saved to")
}
