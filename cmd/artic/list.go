package cmd

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/artic/pkg/data"
	"github.com/kerbaras/artic/pkg/utils"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List one page of the catalog",
	Long:  "Display one page of the public artwork catalog in a formatted table",
	Run: func(cmd *cobra.Command, args []string) {
		page, _ := cmd.Flags().GetInt("page")

		artworks, err := controller.ListArtworks(cmd.Context(), page)
		if err != nil {
			cobra.CheckErr(fmt.Errorf("failed to list artworks: %w", err))
		}

		if len(artworks) == 0 {
			fmt.Println("🖼  No artworks on this page.")
			return
		}

		fmt.Printf("\n🖼  Artworks (page %d, %d results)\n\n", page, len(artworks))
		fmt.Println(artworkTable(artworks).View())
	},
}

func init() {
	listCmd.Flags().IntP("page", "p", 1, "Page number, starting at 1")
	listCmd.Flags().IntP("limit", "l", 0, "Artworks per page (defaults to ARTIC_PAGE_SIZE)")
}

func artworkTable(artworks []data.Artwork) table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 8},
		{Title: "Title", Width: 40},
		{Title: "Artist", Width: 28},
		{Title: "Map", Width: 4},
	}

	rows := []table.Row{}
	for _, artwork := range artworks {
		hasMap := ""
		if artwork.HasLocation() {
			hasMap = "📍"
		}
		rows = append(rows, table.Row{
			strconv.Itoa(artwork.ID),
			utils.Truncate(artwork.Title, 38),
			utils.Truncate(artwork.ArtistTitle, 26),
			hasMap,
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	return t
}
