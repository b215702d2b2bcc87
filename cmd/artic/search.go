package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/kerbaras/artic/pkg/data"
	"github.com/kerbaras/artic/pkg/utils"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search [keyword]",
	Short: "Search artworks",
	Long:  "Search the Art Institute of Chicago collection and display results in a table",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		query := strings.Join(args, " ")
		page, _ := cmd.Flags().GetInt("page")

		results, err := controller.SearchArtworks(cmd.Context(), query, page)
		if err != nil {
			cobra.CheckErr(fmt.Errorf("search failed: %w", err))
		}

		if len(results) == 0 {
			fmt.Println("No results found.")
			return
		}

		fmt.Println(resultsTable(results))
	},
}

func init() {
	searchCmd.Flags().IntP("page", "p", 1, "Page number, starting at 1")
	searchCmd.Flags().IntP("limit", "l", 0, "Results per page (defaults to ARTIC_PAGE_SIZE)")
}

func resultsTable(artworks []data.Artwork) *table.Table {
	var (
		bronze = lipgloss.Color("#E0A96D")

		headerStyle = lipgloss.NewStyle().Foreground(bronze).Bold(true).Align(lipgloss.Center)
		cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	)

	t := table.New().
		Border(lipgloss.HiddenBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(bronze)).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			default:
				return cellStyle
			}
		}).
		Headers("#", "Title", "Artist", "ID")

	for i, artwork := range artworks {
		t.Row(strconv.Itoa(i+1), utils.Truncate(artwork.Title, 48), utils.Truncate(artwork.ArtistTitle, 30), strconv.Itoa(artwork.ID))
	}

	return t
}
