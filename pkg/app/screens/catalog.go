package screens

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/artic/pkg/app/components"
	"github.com/kerbaras/artic/pkg/app/styles"
	"github.com/kerbaras/artic/pkg/services"
)

// CatalogScreen pages through the whole public catalog.
type CatalogScreen struct {
	controller *services.GalleryController
	pager      *services.Pager
	list       *components.ArtworkList
	status     components.FetchStatus
	width      int
	height     int
}

func NewCatalogScreen(controller *services.GalleryController) *CatalogScreen {
	list := newArtworkList(controller)
	list.EmptyMessage = "No artworks loaded"

	return &CatalogScreen{
		controller: controller,
		pager:      services.NewCatalogPager(controller.PageSize()),
		list:       list,
		status:     components.NewFetchStatus(),
	}
}

func (s *CatalogScreen) Init() tea.Cmd {
	cmds := []tea.Cmd{s.status.Tick}
	if s.pager.Len() == 0 && s.pager.State() == services.Idle {
		cmds = append(cmds, s.begin())
	}
	return tea.Batch(cmds...)
}

func (s *CatalogScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.list.Width = msg.Width - 4
		s.list.Height = msg.Height - 10

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			s.list.Prev()
		case "down", "j":
			s.list.Next()
			return s, s.fetchMore()
		case "f":
			if selected := s.list.Selected(); selected != nil {
				s.controller.Favorites().Toggle(*selected)
			}
		case "a":
			if selected := s.list.Selected(); selected != nil {
				return s, navigate(ScreenAuthor, selected.ArtistTitle)
			}
		case "m":
			return s, showMap(s.list.Selected())
		case "r":
			if s.pager.State() == services.Failed {
				return s, s.begin()
			}
		case "enter":
			if selected := s.list.Selected(); selected != nil {
				return s, navigate(ScreenDetail, *selected)
			}
		}

	case pageLoadedMsg:
		if msg.owner != catalogOwner || !s.pager.Complete(msg.result) {
			return s, nil
		}
		s.list.SetItems(s.pager.Items())

	case spinner.TickMsg:
		var cmd tea.Cmd
		s.status, cmd = s.status.Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *CatalogScreen) View() string {
	if s.width == 0 {
		return "Loading..."
	}

	header := styles.TitleStyle.Render("🖼  Artworks")
	status := s.status.View(s.pager.State(), s.pager.Err(), s.pager.Len(), s.pager.Exhausted())

	help := styles.HelpStyle.Render(
		"↑/k ↓/j: navigate • enter: details • f: favorite • a: author • m: map • r: retry • tab: switch view • q: quit",
	)

	return fmt.Sprintf("%s\n%s\n\n%s\n%s", header, status, s.list.View(), help)
}

func (s *CatalogScreen) begin() tea.Cmd {
	req, ok := s.pager.Begin()
	if !ok {
		return nil
	}
	return fetchPage(s.controller.Source(), catalogOwner, req)
}

// fetchMore requests the next page once the cursor enters the tail of the list.
func (s *CatalogScreen) fetchMore() tea.Cmd {
	if !s.pager.ShouldFetchMore(s.list.SelectedIndex) {
		return nil
	}
	req, ok := s.pager.Next()
	if !ok {
		return nil
	}
	return fetchPage(s.controller.Source(), catalogOwner, req)
}

// newArtworkList builds a list that shows favorite markers and thumbnails.
func newArtworkList(controller *services.GalleryController) *components.ArtworkList {
	list := components.NewArtworkList()
	list.IsFavorite = controller.Favorites().Contains
	list.ImageURL = controller.Source().ImageURL
	return list
}
