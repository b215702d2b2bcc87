package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/kerbaras/artic/pkg/config"
	"github.com/kerbaras/artic/pkg/data"
	"github.com/kerbaras/artic/pkg/sources"
	"github.com/kerbaras/artic/pkg/utils"
)

// GalleryController wires the catalog source, the shared favorites and the
// exporter. The TUI and every subcommand go through it.
type GalleryController struct {
	source    sources.Source
	favorites *Favorites
	exporter  *Exporter
	repo      *data.Repository
	pageSize  int
}

func NewGalleryController(cfg *config.Config) (*GalleryController, error) {
	api := utils.NewAPI(cfg.APIURL,
		utils.WithTimeout(cfg.Timeout),
		utils.WithRateLimit(cfg.RPS),
		utils.WithRetries(cfg.MaxRetries, utils.DefaultBackoff),
	)
	c := NewGalleryControllerFor(sources.NewArtInstitute(api, cfg.IIIFURL), cfg.PageSize, cfg.ExportDir)
	if cfg.FavoritesDB == "" {
		return c, nil
	}

	repo, err := data.NewDuckDBRepository(cfg.FavoritesDB)
	if err != nil {
		return nil, fmt.Errorf("failed to open favorites database: %w", err)
	}
	favorites, err := NewPersistentFavorites(repo)
	if err != nil {
		repo.Close()
		return nil, fmt.Errorf("failed to load favorites: %w", err)
	}
	c.repo = repo
	c.favorites = favorites
	return c, nil
}

// NewGalleryControllerFor builds a controller with in-memory favorites around
// an existing source.
func NewGalleryControllerFor(source sources.Source, pageSize int, exportDir string) *GalleryController {
	if pageSize < 1 {
		pageSize = sources.DefaultPageSize
	}
	return &GalleryController{
		source:    source,
		favorites: NewFavorites(),
		exporter:  NewExporter(source, exportDir),
		pageSize:  pageSize,
	}
}

func (c *GalleryController) Source() sources.Source { return c.source }
func (c *GalleryController) Favorites() *Favorites  { return c.favorites }
func (c *GalleryController) Exporter() *Exporter    { return c.exporter }
func (c *GalleryController) PageSize() int          { return c.pageSize }

// Persistent reports whether favorites survive a restart.
func (c *GalleryController) Persistent() bool { return c.repo != nil }

func (c *GalleryController) ListArtworks(ctx context.Context, page int) ([]data.Artwork, error) {
	return c.source.ListArtworks(ctx, page, c.pageSize)
}

func (c *GalleryController) SearchArtworks(ctx context.Context, query string, page int) ([]data.Artwork, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("search query cannot be empty")
	}
	return c.source.SearchArtworks(ctx, query, page, c.pageSize)
}

func (c *GalleryController) FindAuthor(ctx context.Context, name string) (*data.Author, error) {
	return c.source.FindAuthor(ctx, name)
}

// AddFavorite fetches the artwork and marks it. Already marked artworks are left alone.
func (c *GalleryController) AddFavorite(ctx context.Context, id int) (*data.Artwork, error) {
	if a, ok := c.favorites.Get(id); ok {
		return &a, nil
	}
	a, err := c.source.GetArtwork(ctx, id)
	if err != nil {
		return nil, err
	}
	c.favorites.Toggle(*a)
	return a, nil
}

// RemoveFavorite unmarks id and reports whether it was a favorite.
func (c *GalleryController) RemoveFavorite(id int) bool {
	a, ok := c.favorites.Get(id)
	if !ok {
		return false
	}
	c.favorites.Toggle(a)
	return true
}

func (c *GalleryController) ExportFavorites(ctx context.Context, title string) (string, error) {
	return c.exporter.Export(ctx, title, c.favorites.List())
}

func (c *GalleryController) Close() error {
	if c.repo != nil {
		return c.repo.Close()
	}
	return nil
}
