package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"bridge-meta/internal/analyze"
	"bridge-meta/internal/session"
)

var resolveShowAll bool

func init() {
	resolveCmd.Flags().BoolVar(&resolveShowAll, "all", false, "also list types without overrides")
}

var resolveCmd = &cobra.Command{
	Use:   "resolve [packages...]",
	Short: "Show how overrides apply to the types of Go packages",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadProject(cmd)
		if err != nil {
			return err
		}

		patterns := args
		if len(patterns) == 0 {
			patterns = p.packages
		}

		if len(patterns) == 0 {
			return errors.New("no packages: pass patterns or set [semantic].packages")
		}

		s, err := session.Open(cmd.Context(), p.opts, p.logger)
		if err != nil {
			return err
		}

		analyzer := analyze.NewAnalyzer()
		analyzer.Dir = p.cfg.Root

		graph, err := analyzer.LoadPackages(patterns...)
		if err != nil {
			return err
		}

		for _, v := range s.Resolve(graph) {
			if !resolveShowAll && !overridden(v) {
				continue
			}

			printView(cmd.OutOrStdout(), v)
		}

		return nil
	},
}

func overridden(v session.TypeView) bool {
	if !v.Bound {
		return false
	}

	if v.SingleConstructor || v.EnumExport || len(v.Renamed) > 0 || v.Source != v.Namespace+"."+v.Name {
		return true
	}

	for _, pv := range v.Properties {
		if pv.GetTemplate != nil || pv.SetTemplate != nil {
			return true
		}
	}

	return false
}

func printView(w io.Writer, v session.TypeView) {
	bold := color.New(color.Bold)

	bold.Fprintf(w, "%s.%s", v.Namespace, v.Name)
	fmt.Fprintf(w, "  <- %s", v.Source)

	if !v.Bound {
		color.New(color.FgYellow).Fprint(w, "  (not in metadata image)")
	}

	fmt.Fprintln(w)

	if v.SingleConstructor {
		fmt.Fprintln(w, "  single constructor")
	}

	if v.EnumExport {
		fmt.Fprintln(w, "  enum export")
	}

	for _, pv := range v.Properties {
		if pv.GetTemplate != nil {
			fmt.Fprintf(w, "  get %s: %s\n", pv.Name, *pv.GetTemplate)
		}

		if pv.SetTemplate != nil {
			fmt.Fprintf(w, "  set %s: %s\n", pv.Name, *pv.SetTemplate)
		}
	}

	for _, name := range v.Renamed {
		fmt.Fprintf(w, "  rename needed: %s\n", name)
	}
}
