package screens

import (
	"errors"
	"testing"

	"github.com/kerbaras/artic/pkg/data"
	"github.com/kerbaras/artic/pkg/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogScreenLoadsFirstPage(t *testing.T) {
	controller := newTestController(t, pagedSource())
	screen := NewCatalogScreen(controller)
	screen.Update(windowSize)

	cmd := screen.begin()
	require.NotNil(t, cmd)
	assert.Equal(t, services.Loading, screen.pager.State())
	assert.Contains(t, screen.View(), "Loading")

	screen.Update(cmd())

	assert.Equal(t, services.Loaded, screen.pager.State())
	assert.Len(t, screen.list.Items, 10)
	assert.Contains(t, screen.View(), "Artwork 1")

	screen.Init()
	assert.Equal(t, services.Loaded, screen.pager.State(), "a loaded catalog is not requested again on activation")
}

func TestCatalogScreenFetchesNextPageNearEnd(t *testing.T) {
	controller := newTestController(t, pagedSource())
	screen := NewCatalogScreen(controller)
	screen.Update(windowSize)
	screen.Update(screen.begin()())

	for i := 0; i < 8; i++ {
		_, cmd := screen.Update(key("down"))
		assert.Nil(t, cmd, "no fetch before the threshold (index %d)", i+1)
	}

	_, cmd := screen.Update(key("down"))
	require.NotNil(t, cmd)
	assert.Equal(t, 2, screen.pager.Page())

	_, again := screen.Update(key("up"))
	assert.Nil(t, again)
	_, again = screen.Update(key("down"))
	assert.Nil(t, again, "no second request while one is in flight")

	screen.Update(cmd())
	assert.Len(t, screen.list.Items, 20)
	assert.Equal(t, 9, screen.list.SelectedIndex)
}

func TestCatalogScreenFailureAndRetry(t *testing.T) {
	calls := 0
	src := &fakeSource{
		listFunc: func(page, limit int) ([]data.Artwork, error) {
			calls++
			if calls == 1 {
				return nil, errors.New("boom")
			}
			return artworks(1, limit), nil
		},
	}
	screen := NewCatalogScreen(newTestController(t, src))
	screen.Update(windowSize)
	screen.Update(screen.begin()())

	assert.Equal(t, services.Failed, screen.pager.State())
	assert.Empty(t, screen.list.Items)
	assert.Contains(t, screen.View(), "boom")

	_, cmd := screen.Update(key("r"))
	require.NotNil(t, cmd)
	screen.Update(cmd())

	assert.Equal(t, services.Loaded, screen.pager.State())
	assert.Equal(t, 1, screen.pager.Page())
	assert.Len(t, screen.list.Items, 10)
}

func TestCatalogScreenIgnoresOtherOwners(t *testing.T) {
	screen := NewCatalogScreen(newTestController(t, pagedSource()))
	screen.Update(screen.begin()())

	screen.Update(pageLoadedMsg{owner: searchOwner, result: services.Result{Items: artworks(100, 3)}})
	assert.Len(t, screen.list.Items, 10)
}

func TestCatalogScreenToggleAndOpen(t *testing.T) {
	controller := newTestController(t, pagedSource())
	screen := NewCatalogScreen(controller)
	screen.Update(windowSize)
	screen.Update(screen.begin()())

	screen.Update(key("f"))
	assert.True(t, controller.Favorites().Contains(1))
	screen.Update(key("f"))
	assert.False(t, controller.Favorites().Contains(1))

	_, cmd := screen.Update(key("enter"))
	require.NotNil(t, cmd)
	msg, ok := cmd().(NavigateMsg)
	require.True(t, ok)
	assert.Equal(t, ScreenDetail, msg.Screen)
	assert.Equal(t, 1, msg.Data.(data.Artwork).ID)
}

func TestCatalogScreenMapAndAuthorShortcuts(t *testing.T) {
	src := &fakeSource{
		listFunc: func(page, limit int) ([]data.Artwork, error) {
			return []data.Artwork{
				{ID: 1, Title: "Indoors", ArtistTitle: "Mary Cassatt"},
				{ID: 2, Title: "Cloud Gate", ArtistTitle: "Anish Kapoor", Latitude: floatPtr(41.8827), Longitude: floatPtr(-87.6233)},
			}, nil
		},
	}
	screen := NewCatalogScreen(newTestController(t, src))
	screen.Update(windowSize)
	screen.Update(screen.begin()())

	_, cmd := screen.Update(key("m"))
	assert.Nil(t, cmd, "no map for an artwork without a location")

	_, cmd = screen.Update(key("a"))
	require.NotNil(t, cmd)
	msg := cmd().(NavigateMsg)
	assert.Equal(t, ScreenAuthor, msg.Screen)
	assert.Equal(t, "Mary Cassatt", msg.Data)

	screen.Update(key("down"))
	assert.Contains(t, screen.View(), "View map")

	_, cmd = screen.Update(key("m"))
	require.NotNil(t, cmd)
	msg = cmd().(NavigateMsg)
	assert.Equal(t, ScreenMap, msg.Screen)
	region := msg.Data.(services.Region)
	assert.Equal(t, 41.8827, region.Latitude)
	assert.Equal(t, "Cloud Gate", region.Label)
}
