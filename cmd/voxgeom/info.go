package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chazu/voxgeom/pkg/vox"
)

var infoCmd = &cobra.Command{
	Use:   "info [file.vox]",
	Short: "Display information about a MagicaVoxel model",
	Long:  "Show model dimensions, the enclosing region, voxel occupancy, and palette source of a .vox file.",
	Args:  cobra.ExactArgs(1),
	Run:   runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) {
	filename := args[0]

	f, err := os.Open(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening file: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	model, err := vox.Decode(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing vox file: %v\n", err)
		os.Exit(1)
	}

	r := model.Region()
	volume := model.Volume()
	total := int(model.SizeX) * int(model.SizeY) * int(model.SizeZ)

	fmt.Println("MagicaVoxel Model Information")
	fmt.Println("=============================")
	fmt.Printf("File: %s\n\n", filename)

	fmt.Printf("Size: %d x %d x %d\n", model.SizeX, model.SizeY, model.SizeZ)
	fmt.Printf("Region: %s\n", r)
	fmt.Printf("Center: %s\n\n", formatVec(r.GetCenter()))

	fmt.Printf("Voxels: %d occupied of %d cells\n", volume.VoxelCount(), total)
	if model.CustomPalette {
		fmt.Println("Palette: custom (RGBA chunk)")
	} else {
		fmt.Println("Palette: default")
	}
}
