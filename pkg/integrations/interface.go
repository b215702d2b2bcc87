package integrations

import "github.com/kerbaras/artic/pkg/data"

// Entry is one artwork handed to a Builder. ImagePath is a local file and
// may be empty.
type Entry struct {
	Artwork   data.Artwork
	ImagePath string
	ImageURL  string
}

// Builder streams entries into an export document.
type Builder interface {
	Init(title string) error
	Next(entry Entry) error
	Done() (string, error)
}
