package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"bridge-meta/internal/session"
)

var checkAll bool

func init() {
	checkCmd.Flags().BoolVar(&checkAll, "all", false, "report every problem instead of stopping at the first")
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate override documents against the metadata image",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadProject(cmd)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()

		if !checkAll {
			s, err := session.Open(cmd.Context(), p.opts, p.logger)
			if err != nil {
				return err
			}

			types, props := s.Catalog().Len()
			color.New(color.FgGreen).Fprint(out, "ok")
			fmt.Fprintf(out, ": %d documents, %d type overrides, %d property overrides, %d namespace remaps\n",
				len(p.opts.Overrides), types, props, s.Remapper().Len())

			return nil
		}

		res, err := session.Check(cmd.Context(), p.opts, p.logger)
		if err != nil {
			return err
		}

		for _, d := range res.Errors {
			errColor.Fprint(out, "error")
			fmt.Fprintf(out, ": %s\n", d)
		}

		for _, d := range res.Warnings {
			warnColor.Fprint(out, "warning")
			fmt.Fprintf(out, ": %s\n", d)
		}

		for _, d := range res.Infos {
			fmt.Fprintf(out, "info: %s\n", d.Message)
		}

		if res.HasErrors() {
			return fmt.Errorf("%d problems found", len(res.Errors))
		}

		return nil
	},
}
