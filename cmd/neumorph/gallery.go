package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/neumorph/internal/tui/showcase"
	"github.com/alexisbeaulieu97/neumorph/internal/ui/components"
)

const defaultGalleryWidth = 80

// terminalWidth reports stdout's width when it is a terminal.
var terminalWidth = func() (int, bool) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0, false
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return 0, false
	}
	return width, true
}

func newGalleryCmd(flags *rootFlags) *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Print every component variant once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(flags, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer app.Close() //nolint:errcheck

			if !cmd.Flags().Changed("width") {
				if w, ok := terminalWidth(); ok {
					width = w
				}
			}
			if width <= 0 {
				return fmt.Errorf("width must be positive, got %d", width)
			}

			theme := app.Config.BuildTheme()
			app.Logger.Debug("rendering gallery", "width", width, "mode", theme.Mode.String())

			out := showcase.NewGallery().Render(components.ContextFor(theme), width)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().IntVarP(&width, "width", "w", defaultGalleryWidth, "Render width when stdout is not a terminal")

	return cmd
}
