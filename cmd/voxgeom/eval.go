package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/voxgeom/pkg/script"
)

var evalCmd = &cobra.Command{
	Use:   "eval [script.lisp]",
	Short: "Evaluate a region script",
	Long: `Run a Lisp region script in a sandbox and print the resulting named
regions. Scripts build regions with (region ...), (corners ...) and friends,
and record them with (defregion "name" r).`,
	Args: cobra.ExactArgs(1),
	Run:  runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)
}

func runEval(cmd *cobra.Command, args []string) {
	source, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading script: %v\n", err)
		os.Exit(1)
	}

	eng := script.NewEngine()
	scene, evalErrs, err := eng.Evaluate(string(source))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error evaluating script: %v\n", err)
		os.Exit(1)
	}
	if len(evalErrs) > 0 {
		for _, e := range evalErrs {
			fmt.Fprintf(os.Stderr, "%s: %s\n", args[0], e.Error())
		}
		os.Exit(1)
	}

	if scene.Count() == 0 {
		fmt.Println("No regions defined.")
		return
	}

	for _, name := range scene.Names() {
		r, _ := scene.Lookup(name)
		fmt.Printf("%s: %s  center=%s\n", name, r, formatVec(r.GetCenter()))
	}

	if warnings := scene.Validate(); len(warnings) > 0 {
		fmt.Println()
		for _, w := range warnings {
			fmt.Printf("warning: %s\n", w)
		}
	}
}

// formatVec renders a vector as [x,y,z].
func formatVec(v v3.Vec) string {
	return fmt.Sprintf("[%g,%g,%g]", v.X, v.Y, v.Z)
}
