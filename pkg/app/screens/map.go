package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/artic/pkg/app/styles"
	"github.com/kerbaras/artic/pkg/services"
)

const (
	mapMaxWidth  = 61
	mapMaxHeight = 21
)

// MapScreen draws a coarse grid of the region with the artwork pinned at
// its coordinate.
type MapScreen struct {
	region services.Region
	width  int
	height int
}

func NewMapScreen(region services.Region) *MapScreen {
	return &MapScreen{region: region}
}

func (s *MapScreen) Init() tea.Cmd {
	return nil
}

func (s *MapScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		s.width = msg.Width
		s.height = msg.Height
	}
	return s, nil
}

func (s *MapScreen) View() string {
	if s.width == 0 {
		return "Loading..."
	}

	title := s.region.Label
	if title == "" {
		title = "Artwork location"
	}
	header := styles.TitleStyle.Render("📍 " + title)

	gridWidth := max(3, min(mapMaxWidth, s.width-4))
	gridHeight := max(3, min(mapMaxHeight, s.height-12))
	grid := renderGrid(s.region, gridWidth, gridHeight)

	south, west, north, east := s.region.Bounds()
	legend := strings.Join([]string{
		styles.TextStyle.Render(fmt.Sprintf("Pin   %.5f, %.5f", s.region.Latitude, s.region.Longitude)),
		styles.MutedStyle.Render(fmt.Sprintf("North %.5f  South %.5f", north, south)),
		styles.MutedStyle.Render(fmt.Sprintf("West  %.5f  East  %.5f", west, east)),
		styles.LinkStyle.Render(s.region.OpenStreetMapURL()),
	}, "\n")

	help := styles.HelpStyle.Render("esc: back • q: quit")

	return fmt.Sprintf("%s\n\n%s\n\n%s\n%s", header, grid, legend, help)
}

func renderGrid(region services.Region, width, height int) string {
	px, py, ok := region.Project(region.Latitude, region.Longitude, width, height)

	var b strings.Builder
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			switch {
			case ok && x == px && y == py:
				b.WriteString(styles.MapPinStyle.Render("●"))
			case x == width/2 && y == height/2:
				b.WriteString(styles.MapGridStyle.Render("┼"))
			case x == width/2:
				b.WriteString(styles.MapGridStyle.Render("│"))
			case y == height/2:
				b.WriteString(styles.MapGridStyle.Render("─"))
			default:
				b.WriteString(styles.MapGridStyle.Render("·"))
			}
		}
		if y < height-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
