package services

import (
	"context"
	"fmt"

	"github.com/kerbaras/artic/pkg/data"
)

type mockSource struct {
	listFunc   func(page, limit int) ([]data.Artwork, error)
	searchFunc func(query string, page, limit int) ([]data.Artwork, error)
	getFunc    func(id int) (*data.Artwork, error)
	authorFunc func(name string) (*data.Author, error)
	imageBase  string
}

func (m *mockSource) ListArtworks(_ context.Context, page, limit int) ([]data.Artwork, error) {
	if m.listFunc != nil {
		return m.listFunc(page, limit)
	}
	return nil, nil
}

func (m *mockSource) SearchArtworks(_ context.Context, query string, page, limit int) ([]data.Artwork, error) {
	if m.searchFunc != nil {
		return m.searchFunc(query, page, limit)
	}
	return nil, nil
}

func (m *mockSource) GetArtwork(_ context.Context, id int) (*data.Artwork, error) {
	if m.getFunc != nil {
		return m.getFunc(id)
	}
	return nil, fmt.Errorf("not found")
}

func (m *mockSource) FindAuthor(_ context.Context, name string) (*data.Author, error) {
	if m.authorFunc != nil {
		return m.authorFunc(name)
	}
	return nil, nil
}

func (m *mockSource) ImageURL(imageID string) string {
	if imageID == "" || m.imageBase == "" {
		return ""
	}
	return m.imageBase + "/" + imageID
}

type mockStore struct {
	saved   map[int]*data.Artwork
	order   []int
	saveErr error
	listErr error
}

func newMockStore() *mockStore {
	return &mockStore{saved: make(map[int]*data.Artwork)}
}

func (m *mockStore) SaveFavorite(a *data.Artwork) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	if _, ok := m.saved[a.ID]; !ok {
		m.order = append(m.order, a.ID)
	}
	m.saved[a.ID] = a
	return nil
}

func (m *mockStore) DeleteFavorite(id int) error {
	delete(m.saved, id)
	for i, v := range m.order {
		if v == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

func (m *mockStore) ListFavorites() ([]*data.Artwork, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]*data.Artwork, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.saved[id])
	}
	return out, nil
}

// artworks builds records with consecutive IDs starting at start.
func artworks(start, n int) []data.Artwork {
	out := make([]data.Artwork, n)
	for i := range out {
		out[i] = data.Artwork{ID: start + i, Title: fmt.Sprintf("Artwork %d", start+i)}
	}
	return out
}

func ids(items []data.Artwork) []int {
	out := make([]int, len(items))
	for i, a := range items {
		out[i] = a.ID
	}
	return out
}

func floatPtr(v float64) *float64 { return &v }
