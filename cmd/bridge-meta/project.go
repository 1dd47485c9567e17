package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"bridge-meta/internal/config"
	"bridge-meta/internal/session"
)

// project is the merged view of bridge-meta.toml and command-line flags.
type project struct {
	cfg      *config.Config
	opts     session.Options
	packages []string
	logger   *slog.Logger
}

func loadProject(cmd *cobra.Command) (*project, error) {
	flags := cmd.Flags()

	colorMode, _ := flags.GetString("color")
	if err := applyColor(colorMode); err != nil {
		return nil, err
	}

	path, _ := flags.GetString("config")
	if path == "" {
		found, ok, err := config.Find(".")
		if err != nil {
			return nil, err
		}

		if ok {
			path = found
		}
	}

	p := &project{cfg: &config.Config{}}

	if path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			return nil, err
		}

		p.cfg = cfg
		p.opts = session.Options{
			Metadata:  cfg.ImagePath(),
			Overrides: cfg.OverrideFiles(),
			Jobs:      cfg.Run.Jobs,
		}
		p.packages = cfg.Semantic.Packages
	}

	if flags.Changed("metadata") {
		p.opts.Metadata, _ = flags.GetString("metadata")
	}

	if flags.Changed("overrides") {
		p.opts.Overrides, _ = flags.GetStringSlice("overrides")
	}

	if flags.Changed("jobs") {
		p.opts.Jobs, _ = flags.GetInt("jobs")
	}

	if p.opts.Metadata == "" {
		return nil, errors.New("no metadata image: pass --metadata or create " + config.FileName)
	}

	levelName := p.cfg.Log.Level
	if flags.Changed("log-level") {
		levelName, _ = flags.GetString("log-level")
	}

	level, err := config.ParseLevel(levelName)
	if err != nil {
		return nil, err
	}

	p.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	return p, nil
}

func applyColor(mode string) error {
	switch mode {
	case "auto":
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	default:
		return fmt.Errorf("invalid --color value %q (auto|on|off)", mode)
	}

	return nil
}
