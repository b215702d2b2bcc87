package integrations

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-shiori/go-epub"
	"github.com/kerbaras/artic/pkg/utils"
)

// EPubBuilder writes a favorites booklet, one section per artwork.
type EPubBuilder struct {
	outputDir string
	title     string
	book      *epub.Epub
	sections  int
}

func NewEPubBuilder(outputDir string) *EPubBuilder {
	return &EPubBuilder{outputDir: outputDir}
}

func (b *EPubBuilder) Init(title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("title cannot be empty")
	}

	book, err := epub.NewEpub(title)
	if err != nil {
		return fmt.Errorf("failed to create EPub: %w", err)
	}
	book.SetAuthor("Art Institute of Chicago")
	book.SetDescription("Favorite artworks")
	book.SetLang("en")

	b.title = title
	b.book = book
	b.sections = 0
	return nil
}

func (b *EPubBuilder) Next(entry Entry) error {
	if b.book == nil {
		return fmt.Errorf("builder not initialized")
	}

	a := entry.Artwork
	var body strings.Builder
	fmt.Fprintf(&body, "<h1>%s</h1>\n", html.EscapeString(a.Title))
	if a.ArtistTitle != "" {
		fmt.Fprintf(&body, "<h2>%s</h2>\n", html.EscapeString(a.ArtistTitle))
	}

	if entry.ImagePath != "" {
		internalPath, err := b.book.AddImage(entry.ImagePath, fmt.Sprintf("artwork-%d%s", a.ID, filepath.Ext(entry.ImagePath)))
		if err != nil {
			return fmt.Errorf("failed to add image for artwork %d: %w", a.ID, err)
		}
		fmt.Fprintf(&body, `<div class="image"><img src="%s" alt="%s" style="width:100%%;height:auto;"/></div>%s`,
			internalPath, html.EscapeString(a.Title), "\n")
	}

	if desc := utils.StripHTMLTags(a.Description); desc != "" {
		fmt.Fprintf(&body, "<p>%s</p>\n", html.EscapeString(desc))
	}
	if a.HasLocation() {
		lat, lon := a.Coordinates()
		fmt.Fprintf(&body, "<p><small>Location: %.5f, %.5f</small></p>\n", lat, lon)
	}
	if entry.ImageURL != "" {
		fmt.Fprintf(&body, "<p><small>%s</small></p>\n", html.EscapeString(entry.ImageURL))
	}

	if _, err := b.book.AddSection(body.String(), a.Title, fmt.Sprintf("artwork-%d.xhtml", a.ID), ""); err != nil {
		return fmt.Errorf("failed to add section: %w", err)
	}
	b.sections++
	return nil
}

// Done writes the EPub to the output directory and returns its path.
func (b *EPubBuilder) Done() (string, error) {
	if b.book == nil {
		return "", fmt.Errorf("builder not initialized")
	}
	if b.sections == 0 {
		return "", fmt.Errorf("no artworks to export")
	}

	if err := os.MkdirAll(b.outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	outputPath := filepath.Join(b.outputDir, sanitizeFilename(b.title)+".epub")
	if err := b.book.Write(outputPath); err != nil {
		return "", fmt.Errorf("failed to write EPub: %w", err)
	}
	return outputPath, nil
}

// sanitizeFilename removes characters that are invalid in filenames
func sanitizeFilename(name string) string {
	invalid := []string{"/", "\\", ":", "*", "?", "\"", "<", ">", "|"}
	result := name
	for _, char := range invalid {
		result = strings.ReplaceAll(result, char, "_")
	}
	result = strings.TrimSpace(result)
	result = strings.Trim(result, ".")
	if result == "" {
		result = "favorites"
	}
	return result
}
