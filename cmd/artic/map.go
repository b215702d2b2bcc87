package cmd

import (
	"fmt"

	"github.com/kerbaras/artic/pkg/app/styles"
	"github.com/kerbaras/artic/pkg/services"
	"github.com/spf13/cobra"
)

var mapCmd = &cobra.Command{
	Use:   "map",
	Short: "Show the map region around a coordinate",
	Long:  "Print the region shown around an artwork's coordinate and an OpenStreetMap link",
	Run: func(cmd *cobra.Command, args []string) {
		lat, _ := cmd.Flags().GetFloat64("lat")
		lon, _ := cmd.Flags().GetFloat64("lon")
		title, _ := cmd.Flags().GetString("title")

		region := services.NewRegion(lat, lon, title)
		south, west, north, east := region.Bounds()

		if title != "" {
			fmt.Println(styles.TitleStyle.Render("📍 " + title))
		}
		fmt.Printf("Pin:    %.5f, %.5f\n", region.Latitude, region.Longitude)
		fmt.Printf("Bounds: %.5f,%.5f → %.5f,%.5f\n", south, west, north, east)
		fmt.Printf("Zoom:   %d\n", region.Zoom())
		fmt.Println(region.OpenStreetMapURL())
	},
}

func init() {
	mapCmd.Flags().Float64("lat", 0, "Latitude of the pin")
	mapCmd.Flags().Float64("lon", 0, "Longitude of the pin")
	mapCmd.Flags().String("title", "", "Label for the pin")
	mapCmd.MarkFlagRequired("lat")
	mapCmd.MarkFlagRequired("lon")
}
