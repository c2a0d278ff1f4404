package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/neumorph/internal/config"
)

func newThemeCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Inspect showcase configuration files",
	}
	cmd.AddCommand(newThemeValidateCmd(flags))
	return cmd
}

func newThemeValidateCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a configuration file without launching anything",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(args[0])
			if err != nil {
				return err
			}

			items := 0
			for _, opt := range cfg.Select.Options {
				if !opt.Disabled {
					items++
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "✓ %s is valid\n", args[0])
			fmt.Fprintf(out, "  theme:  %s\n", cfg.BuildTheme().Mode)
			fmt.Fprintf(out, "  slider: %g..%g step %g (starts at %g)\n",
				cfg.Slider.Min, cfg.Slider.Max, cfg.Slider.Step, cfg.Slider.Value)
			fmt.Fprintf(out, "  select: %d options, %d enabled\n", len(cfg.Select.Options), items)
			if flags.verbose {
				for _, opt := range cfg.Select.Options {
					fmt.Fprintf(out, "    - %s\n", opt.Value)
				}
			}
			return nil
		},
	}
}
