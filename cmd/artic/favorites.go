package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var favoritesCmd = &cobra.Command{
	Use:     "favorites",
	Aliases: []string{"fav"},
	Short:   "Manage favorite artworks",
	Long:    "List, add, remove and export favorites kept in the DuckDB store (--favorites-db or ARTIC_FAVORITES_DB)",
}

var favoritesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List favorite artworks",
	Run: func(cmd *cobra.Command, args []string) {
		requirePersistent()

		favorites := controller.Favorites().List()
		if len(favorites) == 0 {
			fmt.Println("♥ No favorites yet. Use 'artic favorites add <id>' to add one.")
			return
		}

		fmt.Printf("\n♥ Favorites (%d)\n\n", len(favorites))
		fmt.Println(artworkTable(favorites).View())
	},
}

var favoritesAddCmd = &cobra.Command{
	Use:   "add [artwork-id]",
	Short: "Add an artwork to favorites",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		requirePersistent()
		id := parseID(args[0])

		artwork, err := controller.AddFavorite(cmd.Context(), id)
		if err != nil {
			cobra.CheckErr(fmt.Errorf("failed to add favorite: %w", err))
		}
		fmt.Printf("✅ Added '%s' to favorites\n", artwork.Title)
	},
}

var favoritesRemoveCmd = &cobra.Command{
	Use:   "remove [artwork-id]",
	Short: "Remove an artwork from favorites",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		requirePersistent()
		id := parseID(args[0])

		if !controller.RemoveFavorite(id) {
			fmt.Printf("Artwork %d is not a favorite.\n", id)
			return
		}
		fmt.Printf("🗑  Removed artwork %d from favorites\n", id)
	},
}

var favoritesExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export favorites as an EPUB booklet",
	Run: func(cmd *cobra.Command, args []string) {
		requirePersistent()
		title, _ := cmd.Flags().GetString("title")

		// Listen for progress
		done := make(chan struct{})
		go func() {
			defer close(done)
			for progress := range controller.Exporter().Progress() {
				switch progress.Status {
				case "fetching":
					fmt.Printf("  %d/%d %s\n", progress.Current, progress.Total, progress.Title)
				case "complete", "error":
					return
				}
			}
		}()

		path, err := controller.ExportFavorites(cmd.Context(), title)
		if err != nil {
			cobra.CheckErr(fmt.Errorf("export failed: %w", err))
		}
		<-done

		fmt.Printf("📖 EPUB created: %s\n", path)
	},
}

func init() {
	favoritesExportCmd.Flags().StringP("output", "o", "", "Directory for the EPUB (defaults to ARTIC_EXPORT_DIR)")
	favoritesExportCmd.Flags().StringP("title", "t", "Favorite Artworks", "Booklet title")

	favoritesCmd.AddCommand(favoritesListCmd)
	favoritesCmd.AddCommand(favoritesAddCmd)
	favoritesCmd.AddCommand(favoritesRemoveCmd)
	favoritesCmd.AddCommand(favoritesExportCmd)
}

func requirePersistent() {
	if !controller.Persistent() {
		cobra.CheckErr("favorites need a store: set --favorites-db or ARTIC_FAVORITES_DB")
	}
}

func parseID(arg string) int {
	id, err := strconv.Atoi(arg)
	if err != nil || id < 1 {
		cobra.CheckErr(fmt.Errorf("invalid artwork id %q", arg))
	}
	return id
}
