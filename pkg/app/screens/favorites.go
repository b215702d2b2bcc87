package screens

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/artic/pkg/app/components"
	"github.com/kerbaras/artic/pkg/app/styles"
	"github.com/kerbaras/artic/pkg/services"
)

const exportTitle = "Favorite Artworks"

// FavoritesScreen lists the marked artworks. The list is read from the
// shared store on every render so marks made elsewhere show up immediately.
type FavoritesScreen struct {
	controller *services.GalleryController
	list       *components.ArtworkList
	tracker    *components.ExportTracker
	exporting  bool
	width      int
	height     int
	err        error
}

func NewFavoritesScreen(controller *services.GalleryController) *FavoritesScreen {
	list := newArtworkList(controller)
	list.EmptyMessage = "No favorites yet. Press f on any artwork to add it."

	return &FavoritesScreen{
		controller: controller,
		list:       list,
		tracker:    components.NewExportTracker(80),
	}
}

func (s *FavoritesScreen) Init() tea.Cmd {
	s.refresh()
	return nil
}

func (s *FavoritesScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	s.refresh()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.list.Width = msg.Width - 4
		s.list.Height = msg.Height - 14
		s.tracker.SetWidth(msg.Width - 4)

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			s.list.Prev()
		case "down", "j":
			s.list.Next()
		case "f", "d":
			if selected := s.list.Selected(); selected != nil {
				s.controller.Favorites().Toggle(*selected)
				s.refresh()
			}
		case "enter":
			if selected := s.list.Selected(); selected != nil {
				return s, navigate(ScreenDetail, *selected)
			}
		case "a":
			if selected := s.list.Selected(); selected != nil {
				return s, navigate(ScreenAuthor, selected.ArtistTitle)
			}
		case "m":
			return s, showMap(s.list.Selected())
		case "e":
			if s.exporting || s.controller.Favorites().Len() == 0 {
				return s, nil
			}
			s.exporting = true
			s.err = nil
			s.tracker.Clear()
			return s, tea.Batch(s.export, s.listenForProgress)
		}

	case services.ExportProgress:
		s.tracker.Update(msg)
		if s.tracker.HasActive() {
			return s, s.listenForProgress
		}

	case exportDoneMsg:
		s.exporting = false
		s.err = msg.err
	}

	return s, nil
}

func (s *FavoritesScreen) View() string {
	if s.width == 0 {
		return "Loading..."
	}
	s.refresh()

	header := styles.TitleStyle.Render(fmt.Sprintf("♥ Favorites (%d)", s.controller.Favorites().Len()))
	if !s.controller.Persistent() {
		header += "  " + styles.MutedStyle.Render("not saved between sessions")
	}

	var errorMsg string
	if s.err != nil {
		errorMsg = styles.FailedStyle.Render(fmt.Sprintf("Error: %s", s.err))
		errorMsg += "\n\n"
	}

	help := styles.HelpStyle.Render(
		"↑/k ↓/j: navigate • enter: details • f: remove • a: author • m: map • e: export EPUB • tab: switch view • q: quit",
	)

	return fmt.Sprintf("%s\n\n%s%s\n%s%s", header, errorMsg, s.list.View(), s.tracker.View(), help)
}

func (s *FavoritesScreen) refresh() {
	s.list.SetItems(s.controller.Favorites().List())
}

// Commands
func (s *FavoritesScreen) export() tea.Msg {
	path, err := s.controller.ExportFavorites(context.Background(), exportTitle)
	return exportDoneMsg{path: path, err: err}
}

func (s *FavoritesScreen) listenForProgress() tea.Msg {
	return <-s.controller.Exporter().Progress()
}
