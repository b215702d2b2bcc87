package screens

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/artic/pkg/app/components"
	"github.com/kerbaras/artic/pkg/app/styles"
	"github.com/kerbaras/artic/pkg/data"
	"github.com/kerbaras/artic/pkg/services"
	"github.com/kerbaras/artic/pkg/sources"
	"github.com/kerbaras/artic/pkg/utils"
	log "github.com/sirupsen/logrus"
)

// AuthorScreen looks up an artist by display name and shows the biography.
type AuthorScreen struct {
	controller *services.GalleryController
	name       string
	author     *data.Author
	state      services.FetchState
	err        error
	status     components.FetchStatus
	width      int
	height     int
}

func NewAuthorScreen(controller *services.GalleryController, name string) *AuthorScreen {
	return &AuthorScreen{
		controller: controller,
		name:       name,
		status:     components.NewFetchStatus(),
	}
}

func (s *AuthorScreen) Init() tea.Cmd {
	s.state = services.Loading
	return tea.Batch(s.status.Tick, s.lookup)
}

func (s *AuthorScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height

	case tea.KeyMsg:
		if msg.String() == "r" && s.state == services.Failed {
			s.state = services.Loading
			s.err = nil
			return s, s.lookup
		}

	case authorLoadedMsg:
		if msg.name != s.name {
			return s, nil
		}
		if msg.err != nil {
			log.WithError(msg.err).WithField("artist", msg.name).Warn("author lookup failed")
			s.state = services.Failed
			s.err = msg.err
			return s, nil
		}
		s.author = msg.author
		s.state = services.Loaded

	case spinner.TickMsg:
		var cmd tea.Cmd
		s.status, cmd = s.status.Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *AuthorScreen) View() string {
	if s.width == 0 {
		return "Loading..."
	}

	help := styles.HelpStyle.Render("esc: back • q: quit")

	switch {
	case s.state == services.Failed && errors.Is(s.err, sources.ErrEmptyResult):
		header := styles.TitleStyle.Render(s.displayName())
		return fmt.Sprintf("%s\n\n%s\n%s", header, styles.MutedStyle.Render("No author information found."), help)

	case s.state == services.Loaded && s.author != nil:
		header := styles.TitleStyle.Render(s.author.Title)
		biography := utils.StripHTMLTags(s.author.Biography)
		if biography == "" {
			biography = "No biography available."
		}
		body := styles.CardStyle.Width(max(20, s.width-4)).Render(styles.TextStyle.Render(biography))
		return fmt.Sprintf("%s\n\n%s\n%s", header, body, help)

	default:
		header := styles.TitleStyle.Render(s.displayName())
		status := s.status.View(s.state, s.err, 0, false)
		return fmt.Sprintf("%s\n\n%s\n\n%s\n%s", header, components.Placeholder(), status, help)
	}
}

func (s *AuthorScreen) displayName() string {
	if s.name == "" {
		return "Unknown artist"
	}
	return s.name
}

// Commands
func (s *AuthorScreen) lookup() tea.Msg {
	author, err := s.controller.FindAuthor(context.Background(), s.name)
	return authorLoadedMsg{name: s.name, author: author, err: err}
}
