// Package main provides the CLI entrypoint for bridge-meta.
//
// bridge-meta runs the override load phase of the cross-compiler on its own:
//   - check: validate override documents against a metadata image
//   - dump: print the resolved catalog as a single override document
//   - resolve: apply the overrides to the semantic model of Go packages
package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"bridge-meta/internal/diagnostic"
)

// version can be overridden at build time via -ldflags.
var version = "0.1.0-dev"

var rootCmd = &cobra.Command{
	Use:           "bridge-meta",
	Short:         "Resolve and validate cross-compiler metadata overrides",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	errColor  = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow)
)

func main() {
	rootCmd.Version = version

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(resolveCmd)

	rootCmd.PersistentFlags().String("config", "", "path to bridge-meta.toml (default: search upwards)")
	rootCmd.PersistentFlags().String("metadata", "", "metadata image (overrides [metadata].image)")
	rootCmd.PersistentFlags().StringSlice("overrides", nil, "override documents in load order (overrides [overrides].files)")
	rootCmd.PersistentFlags().Int("jobs", 0, "parallel document reads (0 = GOMAXPROCS)")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")

	if err := rootCmd.Execute(); err != nil {
		errColor.Fprint(os.Stderr, errorLabel(err)+": ")
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

// errorLabel tags override errors with their kind code, e.g.
// "error[duplicate_declaration]".
func errorLabel(err error) string {
	if kind := diagnostic.KindOf(err); kind != 0 {
		return "error[" + kind.Code() + "]"
	}

	return "error"
}
