package screens

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/artic/pkg/app/components"
	"github.com/kerbaras/artic/pkg/app/styles"
	"github.com/kerbaras/artic/pkg/data"
	"github.com/kerbaras/artic/pkg/services"
	"github.com/kerbaras/artic/pkg/utils"
)

type DetailsScreen struct {
	controller *services.GalleryController
	artwork    data.Artwork
	width      int
	height     int
}

func NewDetailsScreen(controller *services.GalleryController, artwork data.Artwork) *DetailsScreen {
	return &DetailsScreen{
		controller: controller,
		artwork:    artwork,
	}
}

func (s *DetailsScreen) Init() tea.Cmd {
	return nil
}

func (s *DetailsScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "f":
			s.controller.Favorites().Toggle(s.artwork)
		case "a":
			return s, navigate(ScreenAuthor, s.artwork.ArtistTitle)
		case "m":
			return s, showMap(&s.artwork)
		}
	}

	return s, nil
}

func (s *DetailsScreen) View() string {
	if s.width == 0 {
		return "Loading..."
	}

	heart := styles.MutedStyle.Render("♡")
	if s.controller.Favorites().Contains(s.artwork.ID) {
		heart = styles.FavoriteStyle.Render("♥")
	}
	header := heart + " " + styles.TitleStyle.Render(s.artwork.Title)

	artist := s.artwork.ArtistTitle
	if artist == "" {
		artist = "Unknown artist"
	}

	image := components.Placeholder()
	if url := s.controller.Source().ImageURL(s.artwork.ImageID); url != "" {
		image = components.ImageLine(url)
	}

	description := utils.StripHTMLTags(s.artwork.Description)
	if description == "" {
		description = "No description available."
	}

	sections := []string{
		styles.SubtitleStyle.Render(artist),
		"",
		image,
		"",
		styles.TextStyle.Render(description),
	}

	help := "f: favorite • a: author • esc: back • q: quit"
	if s.artwork.HasLocation() {
		lat, lon := s.artwork.Coordinates()
		sections = append(sections, "", styles.LinkStyle.Render(fmt.Sprintf("📍 %.4f, %.4f", lat, lon)))
		help = "f: favorite • a: author • m: map • esc: back • q: quit"
	}

	card := styles.CardStyle.Width(max(20, s.width-4)).Render(lipgloss.JoinVertical(lipgloss.Left, sections...))

	return fmt.Sprintf("%s\n\n%s\n%s", header, card, styles.HelpStyle.Render(help))
}
