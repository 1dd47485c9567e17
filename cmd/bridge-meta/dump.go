package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"bridge-meta/internal/catalog"
	"bridge-meta/internal/overrides"
	"bridge-meta/internal/session"
)

var (
	dumpFormat string
	dumpOutput string
)

func init() {
	dumpCmd.Flags().StringVar(&dumpFormat, "format", "yaml", "output syntax (yaml|xml)")
	dumpCmd.Flags().StringVarP(&dumpOutput, "output", "o", "", "write to file instead of stdout")
}

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the loaded overrides as one merged document",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadProject(cmd)
		if err != nil {
			return err
		}

		s, err := session.Open(cmd.Context(), p.opts, p.logger)
		if err != nil {
			return err
		}

		doc := catalog.Export(s.Catalog(), s.Remapper())

		if dumpOutput != "" {
			return overrides.WriteFile(doc, dumpOutput)
		}

		var format overrides.Format

		switch strings.ToLower(dumpFormat) {
		case "yaml", "yml":
			format = overrides.FormatYAML
		case "xml":
			format = overrides.FormatXML
		default:
			return fmt.Errorf("invalid --format %q (yaml|xml)", dumpFormat)
		}

		data, err := overrides.Marshal(doc, format)
		if err != nil {
			return err
		}

		_, err = cmd.OutOrStdout().Write(data)

		return err
	},
}
