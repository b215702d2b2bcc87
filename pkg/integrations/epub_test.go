package integrations

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kerbaras/artic/pkg/data"
)

func createTestImage(t *testing.T, dir string, filename string) string {
	t.Helper()

	// Create a simple 1x1 PNG
	pngData := []byte{
		0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, // PNG signature
		0x00, 0x00, 0x00, 0x0D, 0x49, 0x48, 0x44, 0x52, // IHDR chunk
		0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01, // 1x1 dimensions
		0x08, 0x02, 0x00, 0x00, 0x00, 0x90, 0x77, 0x53,
		0xDE, 0x00, 0x00, 0x00, 0x0C, 0x49, 0x44, 0x41, // IDAT chunk
		0x54, 0x08, 0x99, 0x63, 0xF8, 0x0F, 0x00, 0x00,
		0x01, 0x01, 0x00, 0x05, 0x18, 0x0D, 0xA3, 0xD2,
		0x00, 0x00, 0x00, 0x00, 0x49, 0x45, 0x4E, 0x44, // IEND chunk
		0xAE, 0x42, 0x60, 0x82,
	}

	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, pngData, 0644); err != nil {
		t.Fatalf("Failed to create test image: %v", err)
	}
	return path
}

func readArchive(t *testing.T, path string) map[string]string {
	t.Helper()

	r, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("Failed to open EPub: %v", err)
	}
	defer r.Close()

	files := make(map[string]string)
	for _, f := range r.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("Failed to open %s: %v", f.Name, err)
		}
		content, _ := io.ReadAll(rc)
		rc.Close()
		files[f.Name] = string(content)
	}
	return files
}

func floatPtr(v float64) *float64 { return &v }

func TestEPubBuilderWritesSections(t *testing.T) {
	outputDir := t.TempDir()
	imageDir := t.TempDir()
	imagePath := createTestImage(t, imageDir, "thumb.png")

	builder := NewEPubBuilder(outputDir)
	if err := builder.Init("My Favorites"); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	entries := []Entry{
		{
			Artwork: data.Artwork{
				ID:          1,
				Title:       "Nighthawks",
				ArtistTitle: "Edward Hopper",
				Description: "<p>An <em>all-night</em> diner</p>",
				Latitude:    floatPtr(41.8796),
				Longitude:   floatPtr(-87.6237),
			},
			ImagePath: imagePath,
			ImageURL:  "https://www.artic.edu/iiif/2/abc/full/300,300/0/default.jpg",
		},
		{
			Artwork: data.Artwork{ID: 2, Title: "American Gothic", ArtistTitle: "Grant Wood"},
		},
	}
	for _, e := range entries {
		if err := builder.Next(e); err != nil {
			t.Fatalf("Next failed: %v", err)
		}
	}

	path, err := builder.Done()
	if err != nil {
		t.Fatalf("Done failed: %v", err)
	}

	if filepath.Base(path) != "My Favorites.epub" {
		t.Errorf("Unexpected output name %s", path)
	}

	files := readArchive(t, path)
	var sections, images int
	var all strings.Builder
	for name, content := range files {
		if strings.HasSuffix(name, ".xhtml") && strings.Contains(name, "artwork-") {
			sections++
			all.WriteString(content)
		}
		if strings.Contains(name, "images/") {
			images++
		}
	}

	if sections != 2 {
		t.Errorf("Expected 2 artwork sections, got %d", sections)
	}
	if images != 1 {
		t.Errorf("Expected 1 image, got %d", images)
	}

	text := all.String()
	if !strings.Contains(text, "An all-night diner") {
		t.Error("Expected description without markup")
	}
	if !strings.Contains(text, "Location: 41.87960, -87.62370") {
		t.Error("Expected location line")
	}
}

func TestEPubBuilderRequiresInit(t *testing.T) {
	builder := NewEPubBuilder(t.TempDir())

	if err := builder.Next(Entry{Artwork: data.Artwork{ID: 1, Title: "x"}}); err == nil {
		t.Error("Expected error before Init")
	}
	if _, err := builder.Done(); err == nil {
		t.Error("Expected error before Init")
	}
}

func TestEPubBuilderRejectsEmptyExport(t *testing.T) {
	builder := NewEPubBuilder(t.TempDir())
	if err := builder.Init("Empty"); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	if _, err := builder.Done(); err == nil {
		t.Error("Expected error with no artworks")
	}
}

func TestEPubBuilderRejectsEmptyTitle(t *testing.T) {
	builder := NewEPubBuilder(t.TempDir())
	if err := builder.Init("   "); err == nil {
		t.Error("Expected error for blank title")
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := map[string]string{
		"Favorites":        "Favorites",
		"a/b:c*d?":         "a_b_c_d_",
		"  ..dots..  ":     "dots",
		"":                 "favorites",
		`quote"<pipe>|end`: "quote__pipe__end",
	}
	for in, want := range tests {
		if got := sanitizeFilename(in); got != want {
			t.Errorf("sanitizeFilename(%q) = %q, want %q", in, got, want)
		}
	}
}
