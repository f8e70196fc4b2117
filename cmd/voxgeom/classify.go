package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chazu/voxgeom/pkg/region"
)

var classifyCmd = &cobra.Command{
	Use:   "classify [x,y,z,w,h,d] [x,y,z,w,h,d]",
	Short: "Classify the spatial relationship between two regions",
	Long: `Classify how the second region relates to the first: disjoint,
contains, or intersects. Regions touching face-to-face intersect; a fully
contained region classifies as contains, not intersects.`,
	Args: cobra.ExactArgs(2),
	Run:  runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) {
	a, err := parseRegion(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing first region: %v\n", err)
		os.Exit(1)
	}
	b, err := parseRegion(args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing second region: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("A: %s\n", a)
	fmt.Printf("B: %s\n\n", b)
	fmt.Printf("Classification: %s\n", region.Classify(a, b))
	fmt.Printf("Partial overlap: %v\n", region.Intersect(a, b))
}

// parseRegion parses "x,y,z,width,height,depth" into a region.
func parseRegion(s string) (region.Region, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 6 {
		return region.Region{}, fmt.Errorf("got %d components, want 6 (x,y,z,width,height,depth)", len(parts))
	}

	var n [6]int32
	for i, p := range parts {
		v, err := strconv.ParseInt(strings.TrimSpace(p), 10, 32)
		if err != nil {
			return region.Region{}, fmt.Errorf("component %d: %w", i+1, err)
		}
		n[i] = int32(v)
	}
	return region.NewRegion(n[0], n[1], n[2], n[3], n[4], n[5]), nil
}
