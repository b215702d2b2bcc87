package services

import (
	"context"
	"math"

	"github.com/kerbaras/artic/pkg/data"
	"github.com/kerbaras/artic/pkg/sources"
	log "github.com/sirupsen/logrus"
)

// EndThreshold is the trailing fraction of the loaded list that triggers
// the next page.
const EndThreshold = 0.1

type FetchState int

const (
	Idle FetchState = iota
	Loading
	Loaded
	Failed
)

func (s FetchState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Request identifies one page fetch. Gen ties it to the query that was
// active when it was issued.
type Request struct {
	Search bool
	Query  string
	Page   int
	Limit  int
	Gen    uint64
}

type Result struct {
	Request Request
	Items   []data.Artwork
	Err     error
}

// Fetch runs req against src. Failures are logged and returned in the Result.
func Fetch(ctx context.Context, src sources.Source, req Request) Result {
	var (
		items []data.Artwork
		err   error
	)
	if req.Search {
		items, err = src.SearchArtworks(ctx, req.Query, req.Page, req.Limit)
	} else {
		items, err = src.ListArtworks(ctx, req.Page, req.Limit)
	}
	if err != nil {
		log.WithError(err).
			WithField("page", req.Page).
			WithField("query", req.Query).
			Error("failed to fetch artworks")
	}
	return Result{Request: req, Items: items, Err: err}
}

// Merge appends the incoming artworks whose IDs are not already present,
// keeping the received order. Neither input is modified.
func Merge(existing, incoming []data.Artwork) []data.Artwork {
	seen := make(map[int]struct{}, len(existing)+len(incoming))
	out := make([]data.Artwork, 0, len(existing)+len(incoming))
	for _, a := range existing {
		seen[a.ID] = struct{}{}
		out = append(out, a)
	}
	for _, a := range incoming {
		if _, ok := seen[a.ID]; ok {
			continue
		}
		seen[a.ID] = struct{}{}
		out = append(out, a)
	}
	return out
}

// Pager accumulates the pages of one listing. It is owned by a single
// screen and is not safe for concurrent use.
type Pager struct {
	search    bool
	limit     int
	query     string
	page      int
	items     []data.Artwork
	gen       uint64
	state     FetchState
	err       error
	exhausted bool
}

func NewCatalogPager(limit int) *Pager {
	return newPager(false, limit)
}

// NewSearchPager returns a pager that stays idle until a keyword is set.
func NewSearchPager(limit int) *Pager {
	return newPager(true, limit)
}

func newPager(search bool, limit int) *Pager {
	if limit < 1 {
		limit = sources.DefaultPageSize
	}
	return &Pager{search: search, limit: limit, page: 1}
}

func (p *Pager) Items() []data.Artwork { return p.items }
func (p *Pager) Len() int              { return len(p.items) }
func (p *Pager) Page() int             { return p.page }
func (p *Pager) Query() string         { return p.query }
func (p *Pager) State() FetchState     { return p.state }
func (p *Pager) Err() error            { return p.err }
func (p *Pager) Exhausted() bool       { return p.exhausted }

// Reset drops everything accumulated for the previous query and rewinds the
// cursor to page 1. In-flight results for the old query are discarded.
func (p *Pager) Reset(query string) {
	p.query = query
	p.page = 1
	p.items = nil
	p.gen++
	p.state = Idle
	p.err = nil
	p.exhausted = false
}

// Begin requests the current page. It returns false while a request is
// already in flight, or for a search pager without a keyword.
func (p *Pager) Begin() (Request, bool) {
	if p.state == Loading {
		return Request{}, false
	}
	if p.search && p.query == "" {
		return Request{}, false
	}
	p.state = Loading
	p.err = nil
	return Request{
		Search: p.search,
		Query:  p.query,
		Page:   p.page,
		Limit:  p.limit,
		Gen:    p.gen,
	}, true
}

// Next advances the cursor and requests the following page. After a failure
// the failed page is requested again instead.
func (p *Pager) Next() (Request, bool) {
	if p.state == Loading || p.exhausted {
		return Request{}, false
	}
	if p.state == Loaded {
		p.page++
	}
	return p.Begin()
}

// Complete merges a finished request. It reports false when the result
// belongs to an older query and was dropped.
func (p *Pager) Complete(res Result) bool {
	if res.Request.Gen != p.gen || res.Request.Search != p.search {
		return false
	}
	if res.Err != nil {
		p.state = Failed
		p.err = res.Err
		return true
	}
	p.items = Merge(p.items, res.Items)
	p.state = Loaded
	if len(res.Items) < res.Request.Limit {
		p.exhausted = true
	}
	return true
}

// ShouldFetchMore reports whether index falls in the trailing EndThreshold
// of the loaded list.
func (p *Pager) ShouldFetchMore(index int) bool {
	return NearEnd(index, len(p.items))
}

func NearEnd(index, length int) bool {
	if length == 0 {
		return false
	}
	tail := int(math.Ceil(float64(length) * EndThreshold))
	return index >= length-tail
}
