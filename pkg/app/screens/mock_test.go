package screens

import (
	"context"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/artic/pkg/data"
	"github.com/kerbaras/artic/pkg/services"
	"github.com/kerbaras/artic/pkg/sources"
)

type fakeSource struct {
	listFunc   func(page, limit int) ([]data.Artwork, error)
	searchFunc func(query string, page, limit int) ([]data.Artwork, error)
	authorFunc func(name string) (*data.Author, error)
}

func (f *fakeSource) ListArtworks(_ context.Context, page, limit int) ([]data.Artwork, error) {
	if f.listFunc != nil {
		return f.listFunc(page, limit)
	}
	return nil, nil
}

func (f *fakeSource) SearchArtworks(_ context.Context, query string, page, limit int) ([]data.Artwork, error) {
	if f.searchFunc != nil {
		return f.searchFunc(query, page, limit)
	}
	return nil, nil
}

func (f *fakeSource) GetArtwork(_ context.Context, id int) (*data.Artwork, error) {
	return nil, sources.ErrEmptyResult
}

func (f *fakeSource) FindAuthor(_ context.Context, name string) (*data.Author, error) {
	if f.authorFunc != nil {
		return f.authorFunc(name)
	}
	return nil, sources.ErrEmptyResult
}

func (f *fakeSource) ImageURL(imageID string) string {
	if imageID == "" {
		return ""
	}
	return "https://iiif.test/" + imageID + "/full/300,300/0/default.jpg"
}

// pagedSource serves an endless catalog where page p holds IDs
// (p-1)*limit+1 through p*limit.
func pagedSource() *fakeSource {
	return &fakeSource{
		listFunc: func(page, limit int) ([]data.Artwork, error) {
			return artworks((page-1)*limit+1, limit), nil
		},
	}
}

func newTestController(t *testing.T, src sources.Source) *services.GalleryController {
	t.Helper()
	return services.NewGalleryControllerFor(src, 10, t.TempDir())
}

func artworks(start, n int) []data.Artwork {
	items := make([]data.Artwork, n)
	for i := range items {
		id := start + i
		items[i] = data.Artwork{ID: id, Title: fmt.Sprintf("Artwork %d", id), ArtistTitle: "Artist"}
	}
	return items
}

func floatPtr(v float64) *float64 {
	return &v
}

func key(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

var windowSize = tea.WindowSizeMsg{Width: 100, Height: 60}
