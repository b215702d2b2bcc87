package sources

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/kerbaras/artic/pkg/data"
	"github.com/kerbaras/artic/pkg/utils"
)

const (
	DefaultBaseURL  = "https://api.artic.edu/api/v1"
	DefaultIIIFURL  = "https://www.artic.edu/iiif/2"
	DefaultPageSize = 15

	// IIIF region/size segment used for every thumbnail.
	imageTile = "full/300,300/0/default.jpg"
)

var searchFields = []string{
	"id", "image_id", "title", "artist_title", "latitude", "longitude", "description",
}

type listResponse[T any] struct {
	Data []T `json:"data"`
}

// ArtInstitute talks to the Art Institute of Chicago public API.
type ArtInstitute struct {
	api     *utils.API
	iiifURL string
}

func NewArtInstitute(api *utils.API, iiifURL string) *ArtInstitute {
	if iiifURL == "" {
		iiifURL = DefaultIIIFURL
	}
	return &ArtInstitute{api: api, iiifURL: strings.TrimRight(iiifURL, "/")}
}

func pageParams(page, limit int) (url.Values, error) {
	if page < 1 {
		return nil, fmt.Errorf("page must be at least 1, got %d", page)
	}
	if limit < 1 {
		limit = DefaultPageSize
	}
	return url.Values{
		"page":  {strconv.Itoa(page)},
		"limit": {strconv.Itoa(limit)},
	}, nil
}

func (s *ArtInstitute) ListArtworks(ctx context.Context, page, limit int) ([]data.Artwork, error) {
	params, err := pageParams(page, limit)
	if err != nil {
		return nil, err
	}
	var resp listResponse[data.Artwork]
	if err := s.api.Get(ctx, "/artworks", params, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (s *ArtInstitute) SearchArtworks(ctx context.Context, query string, page, limit int) ([]data.Artwork, error) {
	params, err := pageParams(page, limit)
	if err != nil {
		return nil, err
	}
	params.Set("q", query)
	params.Set("fields", strings.Join(searchFields, ","))

	var resp listResponse[data.Artwork]
	if err := s.api.Get(ctx, "/artworks/search", params, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (s *ArtInstitute) GetArtwork(ctx context.Context, id int) (*data.Artwork, error) {
	params := url.Values{"fields": {strings.Join(searchFields, ",")}}
	var resp struct {
		Data *data.Artwork `json:"data"`
	}
	if err := s.api.Get(ctx, fmt.Sprintf("/artworks/%d", id), params, &resp); err != nil {
		return nil, err
	}
	if resp.Data == nil {
		return nil, ErrEmptyResult
	}
	return resp.Data, nil
}

// FindAuthor returns the first agent matching name. Matching is by display
// name only, so namesakes resolve to whichever the catalog ranks first.
func (s *ArtInstitute) FindAuthor(ctx context.Context, name string) (*data.Author, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyResult
	}
	params := url.Values{
		"q":      {name},
		"limit":  {"1"},
		"fields": {"id,title,biography"},
	}
	var resp listResponse[data.Author]
	if err := s.api.Get(ctx, "/agents/search", params, &resp); err != nil {
		return nil, err
	}
	if len(resp.Data) == 0 {
		return nil, ErrEmptyResult
	}
	return &resp.Data[0], nil
}

// ImageURL builds the IIIF thumbnail address, or "" when there is no image.
func (s *ArtInstitute) ImageURL(imageID string) string {
	if imageID == "" {
		return ""
	}
	return fmt.Sprintf("%s/%s/%s", s.iiifURL, imageID, imageTile)
}
