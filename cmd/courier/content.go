package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/justinjohnso-itp/lane-courier/internal/content"
)

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "List the content catalog",
	Long: `Show every item type, corridor segment, structure and obstacle in
the active content catalog, plus any validation problems found in it.

Examples:
  courier content
  courier content --catalog ./my-catalog.yaml`,
	Run: runContent,
}

func runContent(cmd *cobra.Command, args []string) {
	catalog, err := content.Load(flagCatalogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading catalog: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Items:")
	for _, it := range catalog.Items() {
		stack := "no"
		if it.Stackable {
			stack = fmt.Sprintf("x%d", it.MaxStack)
		}
		fmt.Printf("  %s %-16s color=%-8s stack=%s\n", it.Icon, it.Name, it.Color, stack)
	}

	fmt.Println()
	fmt.Println("Segments:")
	for _, s := range catalog.Segments() {
		regions := 0
		if len(s.ObstacleRegion) > 0 {
			regions++
		}
		if len(s.NearBand) > 0 {
			regions++
		}
		if len(s.FarBand) > 0 {
			regions++
		}
		fmt.Printf("  %-16s exit=(%.1f, %.1f) regions=%d\n",
			s.Name, s.Exit.X, s.Exit.Y, regions)
	}

	fmt.Println()
	fmt.Println("Structures:")
	for _, st := range catalog.Structures() {
		zone := "none"
		if st.Zone != nil {
			zone = fmt.Sprintf("%.0fx%.0f", st.Zone.W, st.Zone.H)
		}
		fmt.Printf("  %-16s footprint=%.0fx%.0f zone=%s\n",
			st.Name, st.Footprint.W, st.Footprint.H, zone)
	}

	fmt.Println()
	fmt.Println("Obstacles:")
	for _, ob := range catalog.Obstacles() {
		fmt.Printf("  %-16s footprint=%.0fx%.0f\n", ob.Name, ob.Footprint.W, ob.Footprint.H)
	}

	if problems := catalog.Problems(); len(problems) > 0 {
		fmt.Println()
		fmt.Println("Problems:")
		for _, p := range problems {
			fmt.Printf("  ! %s\n", p)
		}
	}
}
