package main

import (
	"github.com/spf13/cobra"
)

// demoCmd prints the demo set report without entering the menu.
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Analyze the built-in demo shapes",
	Args:  cobra.NoArgs,
	RunE:  runDemo,
}

// runCmd analyzes the shapes built by a scene script.
var runCmd = &cobra.Command{
	Use:   "run <script.solids>",
	Short: "Evaluate a scene script and analyze its shapes",
	Long: `Evaluates a Lisp scene script and reports on the shapes it builds:

  (sphere "Red Ball" "Red" :radius 5)
  (cube "Blue Box" "Blue" :side 4)
  (rectangular-prism "Yellow Brick" "Yellow" :length 6 :width 3 :height 2)`,
	Args: cobra.ExactArgs(1),
	RunE: runScript,
}

func runDemo(cmd *cobra.Command, args []string) error {
	shapes, err := demoShapes(shapeOptions()...)
	if err != nil {
		return err
	}
	return writeReport(cmd.OutOrStdout(), shapes)
}

func runScript(cmd *cobra.Command, args []string) error {
	shapes, err := loadShapes(args[0])
	if err != nil {
		return err
	}
	return writeReport(cmd.OutOrStdout(), shapes)
}
