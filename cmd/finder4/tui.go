package main

import (
	"fmt"

	"finder4/internal/config"
	"finder4/internal/log"
	"finder4/internal/tui"
	"finder4/internal/tui/styles"
	"finder4/internal/watch"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// tuiCmd represents the TUI command
func tuiCmd() *cobra.Command {
	var (
		source string
		root   string
	)

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Browse in the terminal",
		Long:  `Start the terminal column browser. The last visited path is restored and saved back on exit.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, cfgPath := loadConfig()
			if err := applyOverrides(cfg, source, root); err != nil {
				return err
			}
			styles.Apply(cfg.Theme.Primary, cfg.Theme.Selected, cfg.Theme.Muted, cfg.Theme.Border)

			engine, err := newEngine(cfg)
			if err != nil {
				return err
			}

			// Live refresh only makes sense for filesystem columns.
			var watcher *watch.Watcher
			if cfg.Browser.Source == "filesystem" {
				watcher, err = watch.New()
				if err != nil {
					log.Warnf("live refresh disabled: %v", err)
					watcher = nil
				} else {
					if err := watcher.Start(); err != nil {
						log.Warnf("live refresh disabled: %v", err)
						watcher = nil
					} else {
						defer watcher.Stop()
					}
				}
			}

			m := tui.New(cfg, engine, watcher)
			p := tea.NewProgram(m)
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("error running TUI: %w", err)
			}

			// Persist the path across sessions.
			cfg.Browser.Path = m.Path()
			if cfgPath != "" {
				if err := config.SaveConfig(cfg, cfgPath); err != nil {
					log.Warnf("could not save settings: %v", err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&source, "source", "s", "", `column source: "filesystem" or "random"`)
	cmd.Flags().StringVarP(&root, "root", "r", "", "root directory for filesystem browsing")

	return cmd
}
