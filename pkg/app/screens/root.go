package screens

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/artic/pkg/app/styles"
	"github.com/kerbaras/artic/pkg/data"
	"github.com/kerbaras/artic/pkg/services"
	log "github.com/sirupsen/logrus"
)

type tabType int

const (
	catalogTab tabType = iota
	favoritesTab
	searchTab
	tabCount
)

var tabNames = [tabCount]string{"Artworks", "Favorites", "Search"}

// RootScreen owns the three tabs and a stack of screens pushed on top of
// them. esc pops the stack.
type RootScreen struct {
	controller *services.GalleryController

	currentTab tabType
	catalog    *CatalogScreen
	favorites  *FavoritesScreen
	search     *SearchScreen
	stack      []tea.Model

	width  int
	height int
}

func NewRootScreen(controller *services.GalleryController) *RootScreen {
	return &RootScreen{
		controller: controller,
		currentTab: catalogTab,
		catalog:    NewCatalogScreen(controller),
		favorites:  NewFavoritesScreen(controller),
		search:     NewSearchScreen(controller),
	}
}

func (r *RootScreen) Init() tea.Cmd {
	return r.catalog.Init()
}

func (r *RootScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.width = msg.Width
		r.height = msg.Height
		return r, r.broadcast(msg)

	case spinner.TickMsg:
		return r, r.broadcast(msg)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return r, tea.Quit
		case "q":
			if !r.typing() {
				return r, tea.Quit
			}
		case "tab":
			if len(r.stack) == 0 {
				return r, r.switchTab((r.currentTab + 1) % tabCount)
			}
		case "shift+tab":
			if len(r.stack) == 0 {
				return r, r.switchTab((r.currentTab + tabCount - 1) % tabCount)
			}
		case "esc", "backspace":
			if len(r.stack) > 0 {
				r.stack = r.stack[:len(r.stack)-1]
				return r, nil
			}
		}

	case NavigateMsg:
		return r, r.push(msg)

	case pageLoadedMsg:
		switch msg.owner {
		case catalogOwner:
			_, cmd := r.catalog.Update(msg)
			return r, cmd
		case searchOwner:
			_, cmd := r.search.Update(msg)
			return r, cmd
		}
		return r, nil

	case debounceMsg:
		_, cmd := r.search.Update(msg)
		return r, cmd

	case services.ExportProgress, exportDoneMsg:
		_, cmd := r.favorites.Update(msg)
		return r, cmd
	}

	return r, r.forward(msg)
}

func (r *RootScreen) View() string {
	var header, content string

	if len(r.stack) > 0 {
		header = styles.MutedStyle.Render(fmt.Sprintf("%s › %d", tabNames[r.currentTab], len(r.stack)))
		content = r.stack[len(r.stack)-1].View()
	} else {
		header = r.renderTabs()
		content = r.active().View()
	}

	return fmt.Sprintf("%s\n\n%s", header, content)
}

func (r *RootScreen) renderTabs() string {
	tabs := make([]string, 0, tabCount)
	for i, name := range tabNames {
		if tabType(i) == favoritesTab {
			name = fmt.Sprintf("%s (%d)", name, r.controller.Favorites().Len())
		}
		if tabType(i) == r.currentTab {
			tabs = append(tabs, styles.ActiveTabStyle.Render(name))
		} else {
			tabs = append(tabs, styles.InactiveTabStyle.Render(name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (r *RootScreen) active() tea.Model {
	switch r.currentTab {
	case favoritesTab:
		return r.favorites
	case searchTab:
		return r.search
	default:
		return r.catalog
	}
}

// typing reports whether the keyword input has the keyboard.
func (r *RootScreen) typing() bool {
	return len(r.stack) == 0 && r.currentTab == searchTab && r.search.Typing()
}

func (r *RootScreen) switchTab(tab tabType) tea.Cmd {
	r.currentTab = tab
	return r.active().Init()
}

func (r *RootScreen) push(msg NavigateMsg) tea.Cmd {
	var next tea.Model

	switch msg.Screen {
	case ScreenDetail:
		artwork, ok := msg.Data.(data.Artwork)
		if !ok {
			break
		}
		next = NewDetailsScreen(r.controller, artwork)
	case ScreenAuthor:
		name, ok := msg.Data.(string)
		if !ok {
			break
		}
		next = NewAuthorScreen(r.controller, name)
	case ScreenMap:
		region, ok := msg.Data.(services.Region)
		if !ok {
			break
		}
		next = NewMapScreen(region)
	}

	if next == nil {
		log.WithField("screen", msg.Screen).Warn("ignoring navigation with unexpected parameters")
		return nil
	}

	next, sizeCmd := next.Update(tea.WindowSizeMsg{Width: r.width, Height: r.height - 2})
	r.stack = append(r.stack, next)
	return tea.Batch(sizeCmd, next.Init())
}

// forward hands msg to the screen on top.
func (r *RootScreen) forward(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if n := len(r.stack); n > 0 {
		r.stack[n-1], cmd = r.stack[n-1].Update(msg)
		return cmd
	}
	_, cmd = r.active().Update(msg)
	return cmd
}

// broadcast hands msg to every tab and every stacked screen.
func (r *RootScreen) broadcast(msg tea.Msg) tea.Cmd {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		size.Height -= 2
		msg = size
	}

	cmds := make([]tea.Cmd, 0, 3+len(r.stack))
	for _, screen := range []tea.Model{r.catalog, r.favorites, r.search} {
		_, cmd := screen.Update(msg)
		cmds = append(cmds, cmd)
	}
	for i := range r.stack {
		var cmd tea.Cmd
		r.stack[i], cmd = r.stack[i].Update(msg)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}
