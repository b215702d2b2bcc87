package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/artic/pkg/app/styles"
	"github.com/kerbaras/artic/pkg/data"
	"github.com/kerbaras/artic/pkg/utils"
)

// Each card takes this many terminal rows including border and margin.
const cardHeight = 6

type ArtworkList struct {
	Items         []data.Artwork
	SelectedIndex int
	Width         int
	Height        int
	EmptyMessage  string

	// IsFavorite decides which heart each card shows.
	IsFavorite func(id int) bool
	// ImageURL resolves an image id into a thumbnail address.
	ImageURL func(imageID string) string
}

func NewArtworkList() *ArtworkList {
	return &ArtworkList{
		Items:         []data.Artwork{},
		SelectedIndex: 0,
		Width:         80,
		Height:        20,
		EmptyMessage:  "No artworks",
	}
}

// SetItems replaces the items, keeping the selection when it is still valid.
func (l *ArtworkList) SetItems(items []data.Artwork) {
	l.Items = items
	if l.SelectedIndex >= len(items) && len(items) > 0 {
		l.SelectedIndex = len(items) - 1
	}
	if len(items) == 0 {
		l.SelectedIndex = 0
	}
}

// Next moves the selection down and stops at the last item.
func (l *ArtworkList) Next() {
	if l.SelectedIndex < len(l.Items)-1 {
		l.SelectedIndex++
	}
}

func (l *ArtworkList) Prev() {
	if l.SelectedIndex > 0 {
		l.SelectedIndex--
	}
}

func (l *ArtworkList) Selected() *data.Artwork {
	if len(l.Items) == 0 || l.SelectedIndex >= len(l.Items) {
		return nil
	}
	return &l.Items[l.SelectedIndex]
}

// visibleRange returns the half-open window of cards that fit the height,
// keeping the selection on screen.
func (l *ArtworkList) visibleRange() (int, int) {
	n := max(1, l.Height/cardHeight)
	if len(l.Items) <= n {
		return 0, len(l.Items)
	}
	start := l.SelectedIndex - n/2
	start = max(0, min(start, len(l.Items)-n))
	return start, start + n
}

func (l *ArtworkList) View() string {
	if len(l.Items) == 0 {
		emptyMsg := styles.MutedStyle.Render(l.EmptyMessage)
		return lipgloss.Place(l.Width, max(1, l.Height), lipgloss.Center, lipgloss.Center, emptyMsg)
	}

	var b strings.Builder
	start, end := l.visibleRange()

	for i := start; i < end; i++ {
		item := l.Items[i]
		cardStyle := styles.CardStyle
		if i == l.SelectedIndex {
			cardStyle = styles.ActiveCardStyle
		}

		heart := styles.MutedStyle.Render("♡")
		if l.IsFavorite != nil && l.IsFavorite(item.ID) {
			heart = styles.FavoriteStyle.Render("♥")
		}
		title := styles.TitleStyle.UnsetMarginBottom().Render(utils.Truncate(item.Title, max(10, l.Width-16)))

		artist := item.ArtistTitle
		if artist == "" {
			artist = "Unknown artist"
		}

		links := styles.LinkStyle.Render(artist)
		if item.HasLocation() {
			links += "  " + styles.LinkStyle.Render("View map")
		}

		image := ""
		if l.ImageURL != nil {
			image = l.ImageURL(item.ImageID)
		}

		cardContent := lipgloss.JoinVertical(
			lipgloss.Left,
			lipgloss.JoinHorizontal(lipgloss.Top, heart, " ", title),
			links,
			ImageLine(image),
		)

		card := cardStyle.Width(max(20, l.Width-4)).Padding(0, 1).Render(cardContent)
		b.WriteString(card)
		b.WriteString("\n")
	}

	b.WriteString(styles.MutedStyle.Render(fmt.Sprintf("%d of %d", l.SelectedIndex+1, len(l.Items))))
	return b.String()
}
