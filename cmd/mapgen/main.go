// Command mapgen runs a generator program against a driver config and
// renders the resulting map.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
)

var rootCmd = &cobra.Command{
	Use:     "mapgen <program.yaml>",
	Short:   "Declarative procedural map generator",
	Long:    `mapgen loads a generator program and a driver config, evaluates the generator tree against a fresh map, and renders the result.`,
	Version: version,
	Args:    cobra.ExactArgs(1),
	RunE:    runGenerate,
}

func init() {
	rootCmd.Flags().String("config", "", "path to a YAML driver config file")
	rootCmd.Flags().Int64("seed", 0, "override the config's RNG seed (0 keeps the config value)")
	rootCmd.Flags().Int("width", 0, "override the config's map width")
	rootCmd.Flags().Int("height", 0, "override the config's map height")
	rootCmd.Flags().String("format", "", "override the config's render format: ascii, html, svg, tmj, interactive")
	rootCmd.Flags().String("glyphs", "", "override the config's glyph table file")
	rootCmd.Flags().String("output", "", "override the config's output file (stdout if empty)")
	rootCmd.Flags().String("metrics-addr", "", "serve Prometheus metrics on this address during generation")
	rootCmd.Flags().StringArray("validate-passable", nil, "token that marks a cell passable for the post-generation connectivity check (repeatable)")
	rootCmd.Flags().StringArray("validate-source", nil, "x,y source cell for the connectivity check (repeatable); validation is skipped if none are given")
	rootCmd.Flags().BoolP("verbose", "v", false, "enable debug-level logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
