package components

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/kerbaras/artic/pkg/app/styles"
)

//go:embed assets/noimage.txt
var noImage string

// Placeholder is shown wherever an artwork has no image.
func Placeholder() string {
	return styles.MutedStyle.Render(strings.TrimRight(noImage, "\n"))
}

// ImageLine renders the thumbnail address, or a short placeholder tag.
func ImageLine(url string) string {
	if url == "" {
		return styles.MutedStyle.Render("[no image]")
	}
	return styles.MutedStyle.Render(fmt.Sprintf("🖼  %s", url))
}
