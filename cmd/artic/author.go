package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kerbaras/artic/pkg/app/styles"
	"github.com/kerbaras/artic/pkg/sources"
	"github.com/kerbaras/artic/pkg/utils"
	"github.com/spf13/cobra"
)

var authorCmd = &cobra.Command{
	Use:   "author [artist name]",
	Short: "Show an artist biography",
	Long:  "Look up an artist by display name and print the first match with its biography",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		name := strings.Join(args, " ")

		author, err := controller.FindAuthor(cmd.Context(), name)
		if errors.Is(err, sources.ErrEmptyResult) {
			fmt.Println("No author information found.")
			return
		}
		if err != nil {
			cobra.CheckErr(fmt.Errorf("author lookup failed: %w", err))
		}

		biography := utils.StripHTMLTags(author.Biography)
		if biography == "" {
			biography = "No biography available."
		}

		fmt.Println(styles.TitleStyle.Render(author.Title))
		fmt.Println(biography)
	},
}
