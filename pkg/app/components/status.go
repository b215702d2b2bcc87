package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/artic/pkg/app/styles"
	"github.com/kerbaras/artic/pkg/services"
)

// FetchStatus renders the fetch state of a paged list as a single line.
type FetchStatus struct {
	spinner spinner.Model
}

func NewFetchStatus() FetchStatus {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.BusyStyle
	return FetchStatus{spinner: s}
}

// Tick starts the spinner animation.
func (f FetchStatus) Tick() tea.Msg {
	return f.spinner.Tick()
}

func (f FetchStatus) Update(msg tea.Msg) (FetchStatus, tea.Cmd) {
	var cmd tea.Cmd
	f.spinner, cmd = f.spinner.Update(msg)
	return f, cmd
}

func (f FetchStatus) View(state services.FetchState, err error, count int, exhausted bool) string {
	switch state {
	case services.Loading:
		return f.spinner.View() + " " + styles.StatusStyle(state.String()).Render("Loading…")
	case services.Failed:
		msg := "Request failed"
		if err != nil {
			msg = fmt.Sprintf("Request failed: %s", err)
		}
		return styles.StatusStyle(state.String()).Render(msg) + styles.MutedStyle.Render("  (r to retry)")
	case services.Loaded:
		text := fmt.Sprintf("%d artworks", count)
		if exhausted {
			text += " · end of results"
		}
		return styles.MutedStyle.Render(text)
	default:
		return ""
	}
}
