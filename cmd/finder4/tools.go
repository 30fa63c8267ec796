package main

import (
	"fmt"

	"finder4/internal/browse"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

// lsCmd lists a directory exactly the way the browser's columns see it.
func lsCmd() *cobra.Command {
	var (
		showHidden bool
		long       bool
	)

	cmd := &cobra.Command{
		Use:   "ls [directory]",
		Short: "List a directory the way the browser sees it",
		Long:  `List a directory with the browser's ordering: directories first, case-insensitive, with a ".." parent entry below the filesystem root.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _ := loadConfig()

			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			patterns, err := cfg.HidePatterns()
			if err != nil {
				return err
			}
			lister := browse.NewLister(cfg.Browser.Root)
			lister.ShowHidden = showHidden || cfg.Listing.ShowHidden
			lister.Hide = patterns

			entries, err := lister.List(dir)
			if err != nil {
				return err
			}

			for _, entry := range entries {
				name := entry.Name
				if entry.Dir && !entry.Parent {
					name += "/"
				}
				if long {
					size := "-"
					if !entry.Dir && !entry.Sentinel {
						size = humanize.Bytes(uint64(entry.Size))
					}
					fmt.Printf("%10s  %s\n", size, name)
				} else {
					fmt.Println(name)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&showHidden, "all", "a", false, "include hidden entries")
	cmd.Flags().BoolVarP(&long, "long", "l", false, "show entry sizes")

	return cmd
}

// genCmd prints the deterministic strings generated for a seed, mostly
// useful for inspecting what a column will contain.
func genCmd() *cobra.Command {
	var (
		minLen int
		maxLen int
		count  int
	)

	cmd := &cobra.Command{
		Use:   "gen [seed...]",
		Short: "Print the generated strings for a seed",
		Long:  `Print the pseudo-random strings a column would show for the given seed segments. The same seed always produces the same output.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if maxLen < minLen {
				return fmt.Errorf("max length %d is smaller than min length %d", maxLen, minLen)
			}
			gen := &browse.Generator{MinLen: minLen, MaxLen: maxLen, Count: count}
			for _, s := range gen.Strings(args) {
				fmt.Println(s)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&minLen, "min", browse.DefaultMinLen, "minimum string length")
	cmd.Flags().IntVar(&maxLen, "max", browse.DefaultMaxLen, "maximum string length")
	cmd.Flags().IntVarP(&count, "count", "n", browse.DefaultCount, "number of strings")

	return cmd
}

// pathCmd normalizes a typed path through the codec.
func pathCmd() *cobra.Command {
	var segments bool

	cmd := &cobra.Command{
		Use:   "path <text>",
		Short: "Normalize a path string",
		Long:  `Decode a slash-separated path into a selection and re-encode it canonically. Empty segments are dropped, never rejected.`,
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			selection := browse.DecodePath(args[0])
			if segments {
				for _, seg := range selection {
					fmt.Println(seg)
				}
				return
			}
			fmt.Println(browse.EncodePath(selection))
		},
	}

	cmd.Flags().BoolVar(&segments, "segments", false, "print one segment per line instead")

	return cmd
}
