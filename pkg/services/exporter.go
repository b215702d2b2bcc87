package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kerbaras/artic/pkg/data"
	"github.com/kerbaras/artic/pkg/integrations"
	"github.com/kerbaras/artic/pkg/sources"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// ExportProgress reports the state of a running favorites export.
type ExportProgress struct {
	Current int
	Total   int
	Title   string
	Status  string // "fetching", "writing", "complete", "error"
	Path    string
	Error   error
}

// Exporter streams a list of artworks, with their thumbnails, into a Builder.
type Exporter struct {
	source       sources.Source
	newBuilder   func() integrations.Builder
	client       *http.Client
	limiter      *rate.Limiter
	progressChan chan ExportProgress
}

func NewExporter(source sources.Source, outputDir string) *Exporter {
	return &Exporter{
		source:       source,
		newBuilder:   func() integrations.Builder { return integrations.NewEPubBuilder(outputDir) },
		client:       &http.Client{Timeout: 30 * time.Second},
		limiter:      rate.NewLimiter(rate.Every(500*time.Millisecond), 1), // 2 req/sec
		progressChan: make(chan ExportProgress, 100),
	}
}

// Progress returns the channel for receiving export progress updates.
func (e *Exporter) Progress() <-chan ExportProgress {
	return e.progressChan
}

// Export writes artworks to a new document titled title and returns its path.
// A thumbnail that cannot be fetched is skipped; the artwork is still exported.
func (e *Exporter) Export(ctx context.Context, title string, artworks []data.Artwork) (string, error) {
	if len(artworks) == 0 {
		return "", e.fail(fmt.Errorf("no artworks to export"))
	}

	workDir, err := os.MkdirTemp("", "artic-export-*")
	if err != nil {
		return "", e.fail(fmt.Errorf("failed to create work directory: %w", err))
	}
	defer os.RemoveAll(workDir)

	builder := e.newBuilder()
	if err := builder.Init(title); err != nil {
		return "", e.fail(err)
	}

	for i, a := range artworks {
		if err := ctx.Err(); err != nil {
			return "", e.fail(err)
		}

		e.sendProgress(ExportProgress{Current: i + 1, Total: len(artworks), Title: a.Title, Status: "fetching"})

		entry := integrations.Entry{Artwork: a, ImageURL: e.source.ImageURL(a.ImageID)}
		if entry.ImageURL != "" {
			path, err := e.downloadImage(ctx, entry.ImageURL, workDir, a.ID)
			if err != nil {
				log.WithError(err).WithField("artworkID", a.ID).Warn("skipping thumbnail")
			} else {
				entry.ImagePath = path
			}
		}

		if err := builder.Next(entry); err != nil {
			return "", e.fail(fmt.Errorf("artwork %d: %w", a.ID, err))
		}
	}

	e.sendProgress(ExportProgress{Current: len(artworks), Total: len(artworks), Status: "writing"})

	path, err := builder.Done()
	if err != nil {
		return "", e.fail(err)
	}

	e.sendProgress(ExportProgress{Current: len(artworks), Total: len(artworks), Status: "complete", Path: path})
	return path, nil
}

// downloadImage stores a single thumbnail under dir and returns its path.
func (e *Exporter) downloadImage(ctx context.Context, url, dir string, id int) (string, error) {
	if err := e.limiter.Wait(ctx); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	resp, err := e.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("bad status: %s", resp.Status)
	}

	ext := ".jpg"
	if strings.Contains(resp.Header.Get("Content-Type"), "png") {
		ext = ".png"
	}

	path := filepath.Join(dir, fmt.Sprintf("%d%s", id, ext))
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, resp.Body); err != nil {
		return "", fmt.Errorf("failed to read image content: %w", err)
	}
	return path, nil
}

func (e *Exporter) fail(err error) error {
	e.sendProgress(ExportProgress{Status: "error", Error: err})
	return err
}

// sendProgress sends a progress update (non-blocking)
func (e *Exporter) sendProgress(progress ExportProgress) {
	select {
	case e.progressChan <- progress:
	default:
		// Channel full, skip this update
	}
}
