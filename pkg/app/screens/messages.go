package screens

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/artic/pkg/data"
	"github.com/kerbaras/artic/pkg/services"
	"github.com/kerbaras/artic/pkg/sources"
)

// Screens that can be pushed on top of the tabs.
const (
	ScreenDetail = "detail"
	ScreenAuthor = "author"
	ScreenMap    = "map"
)

const (
	catalogOwner = "catalog"
	searchOwner  = "search"

	searchDebounce = 300 * time.Millisecond
)

// NavigateMsg asks the root to push a screen. Data carries the screen's
// parameter: a data.Artwork for details, the artist name for the author
// screen and a services.Region for the map.
type NavigateMsg struct {
	Screen string
	Data   interface{}
}

func navigate(screen string, payload interface{}) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Screen: screen, Data: payload}
	}
}

// showMap opens the map for artworks that carry a location.
func showMap(a *data.Artwork) tea.Cmd {
	if a == nil || !a.HasLocation() {
		return nil
	}
	region, err := services.NewRegionFor(a)
	if err != nil {
		return nil
	}
	return navigate(ScreenMap, region)
}

// Messages
type pageLoadedMsg struct {
	owner  string
	result services.Result
}

type authorLoadedMsg struct {
	name   string
	author *data.Author
	err    error
}

type debounceMsg struct {
	seq int
}

type exportDoneMsg struct {
	path string
	err  error
}

// Commands
func fetchPage(src sources.Source, owner string, req services.Request) tea.Cmd {
	return func() tea.Msg {
		return pageLoadedMsg{owner: owner, result: services.Fetch(context.Background(), src, req)}
	}
}
