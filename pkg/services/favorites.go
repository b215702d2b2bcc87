package services

import (
	"sync"

	"github.com/kerbaras/artic/pkg/data"
	log "github.com/sirupsen/logrus"
)

// FavoritesStore persists favorites across restarts.
type FavoritesStore interface {
	SaveFavorite(a *data.Artwork) error
	DeleteFavorite(id int) error
	ListFavorites() ([]*data.Artwork, error)
}

// Favorites is the set of artworks the user marked, keyed by artwork ID.
// One instance is shared by every screen; it is safe for concurrent use.
type Favorites struct {
	mu    sync.RWMutex
	items map[int]data.Artwork
	order []int
	store FavoritesStore
}

func NewFavorites() *Favorites {
	return &Favorites{items: make(map[int]data.Artwork)}
}

// NewPersistentFavorites loads the stored favorites and writes every
// subsequent toggle through to store.
func NewPersistentFavorites(store FavoritesStore) (*Favorites, error) {
	f := NewFavorites()
	stored, err := store.ListFavorites()
	if err != nil {
		return nil, err
	}
	for _, a := range stored {
		if _, ok := f.items[a.ID]; ok {
			continue
		}
		f.items[a.ID] = *a
		f.order = append(f.order, a.ID)
	}
	f.store = store
	return f, nil
}

// Toggle removes the artwork if present, inserts it otherwise, and reports
// whether it is a favorite afterwards. Persistence failures are logged; the
// in-memory set changes regardless.
func (f *Favorites) Toggle(a data.Artwork) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.items[a.ID]; ok {
		delete(f.items, a.ID)
		for i, id := range f.order {
			if id == a.ID {
				f.order = append(f.order[:i], f.order[i+1:]...)
				break
			}
		}
		if f.store != nil {
			if err := f.store.DeleteFavorite(a.ID); err != nil {
				log.WithError(err).WithField("artworkID", a.ID).Error("failed to delete favorite")
			}
		}
		return false
	}

	f.items[a.ID] = a
	f.order = append(f.order, a.ID)
	if f.store != nil {
		if err := f.store.SaveFavorite(&a); err != nil {
			log.WithError(err).WithField("artworkID", a.ID).Error("failed to save favorite")
		}
	}
	return true
}

func (f *Favorites) Contains(id int) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	_, ok := f.items[id]
	return ok
}

func (f *Favorites) Get(id int) (data.Artwork, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	a, ok := f.items[id]
	return a, ok
}

// List returns a snapshot of the favorites in the order they were added.
func (f *Favorites) List() []data.Artwork {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := make([]data.Artwork, 0, len(f.order))
	for _, id := range f.order {
		out = append(out, f.items[id])
	}
	return out
}

func (f *Favorites) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.items)
}
