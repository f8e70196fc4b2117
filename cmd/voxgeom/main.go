package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "voxgeom",
	Short: "Inspect and classify voxel regions and models",
	Long: `voxgeom is a command-line tool for working with voxel geometry.
It inspects MagicaVoxel (.vox) models, classifies the spatial relationship
between regions, and evaluates region scripts.`,
	Version: "1.0.0",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
