package screens

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/artic/pkg/app/components"
	"github.com/kerbaras/artic/pkg/app/styles"
	"github.com/kerbaras/artic/pkg/services"
)

type SearchScreen struct {
	controller *services.GalleryController
	input      textinput.Model
	pager      *services.Pager
	list       *components.ArtworkList
	status     components.FetchStatus
	seq        int
	width      int
	height     int
}

func NewSearchScreen(controller *services.GalleryController) *SearchScreen {
	ti := textinput.New()
	ti.Placeholder = "Search artworks..."
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 50

	list := newArtworkList(controller)
	list.EmptyMessage = "Type a keyword to search the collection"

	return &SearchScreen{
		controller: controller,
		input:      ti,
		pager:      services.NewSearchPager(controller.PageSize()),
		list:       list,
		status:     components.NewFetchStatus(),
	}
}

func (s *SearchScreen) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, s.status.Tick)
}

// Typing reports whether keystrokes go to the keyword input.
func (s *SearchScreen) Typing() bool {
	return s.input.Focused()
}

func (s *SearchScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.list.Width = msg.Width - 4
		s.list.Height = msg.Height - 14

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if s.input.Focused() {
				cmd = s.submit(s.input.Value())
				if len(strings.TrimSpace(s.input.Value())) > 0 {
					s.input.Blur()
				}
				return s, cmd
			}
			if selected := s.list.Selected(); selected != nil {
				return s, navigate(ScreenDetail, *selected)
			}
			return s, nil

		case "esc":
			// Switch focus between input and results
			if s.input.Focused() {
				s.input.Blur()
				return s, nil
			}
			s.input.Focus()
			return s, textinput.Blink
		}

		if !s.input.Focused() {
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
			case "/":
				s.input.Focus()
				return s, textinput.Blink
			}
			return s, nil
		}

		before := s.input.Value()
		s.input, cmd = s.input.Update(msg)
		if s.input.Value() == before {
			return s, cmd
		}
		s.setKeyword(s.input.Value())
		s.seq++
		seq := s.seq
		return s, tea.Batch(cmd, tea.Tick(searchDebounce, func(time.Time) tea.Msg {
			return debounceMsg{seq: seq}
		}))

	case debounceMsg:
		if msg.seq != s.seq {
			return s, nil
		}
		return s, s.submit(s.input.Value())

	case pageLoadedMsg:
		if msg.owner != searchOwner || !s.pager.Complete(msg.result) {
			return s, nil
		}
		s.list.SetItems(s.pager.Items())
		return s, nil

	case spinner.TickMsg:
		s.status, cmd = s.status.Update(msg)
		return s, cmd
	}

	if s.input.Focused() {
		s.input, cmd = s.input.Update(msg)
	}
	return s, cmd
}

func (s *SearchScreen) View() string {
	if s.width == 0 {
		return "Loading..."
	}

	header := styles.TitleStyle.Render("🔍 Search Artworks")

	inputStyle := styles.InputStyle
	if s.input.Focused() {
		inputStyle = styles.FocusedInputStyle
	}
	inputView := inputStyle.Render(s.input.View())

	status := s.status.View(s.pager.State(), s.pager.Err(), s.pager.Len(), s.pager.Exhausted())
	if s.pager.State() == services.Loaded && s.pager.Len() == 0 {
		status = styles.MutedStyle.Render(fmt.Sprintf("No results for %q", s.pager.Query()))
	}

	help := styles.HelpStyle.Render(
		"enter: search/details • esc: switch focus • ↑/k ↓/j: navigate • f: favorite • a: author • m: map • tab: switch view",
	)

	return fmt.Sprintf("%s\n%s\n%s\n\n%s\n%s", header, inputView, status, s.list.View(), help)
}

// setKeyword drops the previous keyword's results and rewinds to page 1 as
// soon as the keyword changes.
func (s *SearchScreen) setKeyword(value string) {
	query := strings.TrimSpace(value)
	if query == s.pager.Query() {
		return
	}
	s.pager.Reset(query)
	s.list.SetItems(nil)
}

// submit requests the first page for value unless it is already loading or
// loaded. A failed request is repeated.
func (s *SearchScreen) submit(value string) tea.Cmd {
	s.setKeyword(value)
	switch s.pager.State() {
	case services.Idle, services.Failed:
		return s.begin()
	default:
		return nil
	}
}

func (s *SearchScreen) begin() tea.Cmd {
	req, ok := s.pager.Begin()
	if !ok {
		return nil
	}
	return fetchPage(s.controller.Source(), searchOwner, req)
}

func (s *SearchScreen) fetchMore() tea.Cmd {
	if !s.pager.ShouldFetchMore(s.list.SelectedIndex) {
		return nil
	}
	req, ok := s.pager.Next()
	if !ok {
		return nil
	}
	return fetchPage(s.controller.Source(), searchOwner, req)
}
