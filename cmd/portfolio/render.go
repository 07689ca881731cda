package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/page"
	"github.com/Zachkp/portfolio/internal/profile"
	"github.com/Zachkp/portfolio/internal/resume"
)

var (
	renderOut     string
	renderTheme   string
	renderSection int
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the populated page to static HTML",
	Long: `Loads the profile document from the site directory, populates every
section and writes the resulting page. Nothing is written when the
document cannot be loaded.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if renderOut == "" || renderOut == "-" {
			return renderPage(cmd, cfg, cmd.OutOrStdout())
		}

		var buf bytes.Buffer
		if err := renderPage(cmd, cfg, &buf); err != nil {
			return err
		}
		if err := os.WriteFile(renderOut, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", renderOut, err)
		}
		return nil
	},
}

func init() {
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "output file (default stdout)")
	renderCmd.Flags().StringVar(&renderTheme, "theme", "", "theme to render (light or dark; default from config)")
	renderCmd.Flags().IntVar(&renderSection, "section", 0, "index of the section shown")
	rootCmd.AddCommand(renderCmd)
}

func renderPage(cmd *cobra.Command, cfg *config.Config, w io.Writer) error {
	base, err := profile.FileBaseURL(cfg.Site.Dir)
	if err != nil {
		return err
	}
	loader := profile.NewLoader(base)
	loader.Resource = cfg.Site.DataFile

	themeName := renderTheme
	if themeName == "" {
		themeName = cfg.Theme.Default
	}
	theme, ok := page.ParseTheme(themeName)
	if !ok {
		return fmt.Errorf("unknown theme %q", themeName)
	}

	opts := page.Options{
		Source:       loader,
		DefaultTheme: theme,
		Resume: resume.Asset{
			Path:         cfg.Resume.Path,
			DownloadName: cfg.Resume.DownloadName,
		},
		Logger: newLogger(),
	}
	if cfg.Site.Skeleton != "" {
		f, err := os.Open(cfg.Site.Skeleton)
		if err != nil {
			return fmt.Errorf("opening page skeleton: %w", err)
		}
		defer f.Close()
		opts.Skeleton = f
	}

	ctrl, err := page.New(opts)
	if err != nil {
		return err
	}
	if err := ctrl.Init(cmd.Context()); err != nil {
		return err
	}
	ctrl.Show(renderSection)
	return ctrl.Render(w)
}
