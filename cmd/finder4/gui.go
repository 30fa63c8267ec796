package main

import (
	"fmt"
	"os"

	"finder4/internal/gui"

	"github.com/spf13/cobra"
)

// runGUI launches the GUI directly
func runGUI(source, root string) error {
	cfg, cfgPath := loadConfig()
	if err := applyOverrides(cfg, source, root); err != nil {
		return err
	}

	engine, err := newEngine(cfg)
	if err != nil {
		return err
	}

	guiApp := gui.NewApp(cfg, cfgPath, engine)
	guiApp.Run()

	return nil
}

// guiCmd creates the GUI command for the CLI
func guiCmd() *cobra.Command {
	var (
		source string
		root   string
	)

	cmd := &cobra.Command{
		Use:   "gui",
		Short: "Launch the graphical user interface",
		Long:  `Launch the desktop version of the column browser. Window size and path are saved on close.`,
		Run: func(cmd *cobra.Command, args []string) {
			if err := runGUI(source, root); err != nil {
				fmt.Printf("Error launching GUI: %v\n", err)
				os.Exit(1)
			}
		},
	}

	cmd.Flags().StringVarP(&source, "source", "s", "", `column source: "filesystem" or "random"`)
	cmd.Flags().StringVarP(&root, "root", "r", "", "root directory for filesystem browsing")

	return cmd
}
