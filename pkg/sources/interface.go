package sources

import (
	"context"
	"errors"

	"github.com/kerbaras/artic/pkg/data"
	"github.com/kerbaras/artic/pkg/utils"
)

// ErrEmptyResult is returned when a lookup matches nothing.
var ErrEmptyResult = errors.New("no matching record")

// NetworkError is the transport failure reported by every Source call.
type NetworkError = utils.NetworkError

type Source interface {
	ListArtworks(ctx context.Context, page, limit int) ([]data.Artwork, error)
	SearchArtworks(ctx context.Context, query string, page, limit int) ([]data.Artwork, error)
	GetArtwork(ctx context.Context, id int) (*data.Artwork, error)
	FindAuthor(ctx context.Context, name string) (*data.Author, error)
	ImageURL(imageID string) string
}
