package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/taigrr/subpaths"
	"github.com/taigrr/subpaths/internal/rulefile"
	"github.com/taigrr/subpaths/pathmatch"
)

func newListCmd() *cobra.Command {
	opts := subpaths.DefaultOptions()
	var (
		exclude   []string
		include   []string
		rulesPath string
	)

	cmd := &cobra.Command{
		Use:     "list [dir]",
		Short:   "List descendant paths of a directory",
		Example: `subpaths list --hidden=false --exclude '\.git' ~/projects`,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			var err error
			opts.Exclude, err = pathmatch.Compile(exclude)
			if err != nil {
				return err
			}
			opts.Include, err = pathmatch.Compile(include)
			if err != nil {
				return err
			}

			if rulesPath != "" {
				rules, err := rulefile.Load(rulesPath)
				if err != nil {
					return err
				}
				opts.Exclude = append(opts.Exclude, rules.Exclude...)
				opts.Include = append(opts.Include, rules.Include...)
			}

			paths, err := subpaths.List(dir, &opts)
			if err != nil {
				return fmt.Errorf("list %s: %w", dir, err)
			}

			out := cmd.OutOrStdout()
			for _, p := range paths {
				fmt.Fprintln(out, p)
			}

			return nil
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&opts.Files, "files", opts.Files, "include regular files")
	flags.BoolVar(&opts.Directories, "directories", opts.Directories, "include directories")
	flags.BoolVar(&opts.Symlinks, "symlinks", opts.Symlinks, "include symlinks")
	flags.BoolVar(&opts.Hidden, "hidden", opts.Hidden, "include dot-entries")
	flags.BoolVar(&opts.FollowSymlinks, "follow-symlinks", false, "traverse symlink targets instead of listing links")
	flags.BoolVar(&opts.DedupeSymlinkContents, "dedupe", false, "collapse duplicate paths reached through symlinks")
	flags.IntVar(&opts.MaxDepth, "max-depth", subpaths.NoDepthLimit, "recursion depth ceiling, 0 lists direct children only (-1 = unbounded)")
	flags.BoolVar(&opts.ReturnRelative, "relative", false, "print paths relative to the start directory")
	flags.StringArrayVar(&exclude, "exclude", nil, "exclude paths matching this regexp (repeatable)")
	flags.StringArrayVar(&include, "include", nil, "re-include excluded paths matching this regexp (repeatable)")
	flags.StringVar(&rulesPath, "rules", "", "YAML rule file with exclude/include lists")

	return cmd
}
