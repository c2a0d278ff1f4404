package main

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/neumorph/internal/tui/showcase"
)

// showcaseRunner runs the program; tests replace it to avoid a terminal.
var showcaseRunner = func(m tea.Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

func newShowcaseCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "showcase",
		Short: "Launch the interactive component showcase",
		Long: `Launch the interactive showcase: a live select and slider, the form
controls, and a scrolling gallery of every component variant.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShowcaseCmd(cmd, flags)
		},
	}
}

func runShowcaseCmd(cmd *cobra.Command, flags *rootFlags) error {
	// stdout belongs to the program, so logs are discarded unless a file
	// is named.
	app, err := newAppContext(flags, io.Discard)
	if err != nil {
		return err
	}
	defer app.Close() //nolint:errcheck

	log := app.Logger.With("command", "showcase")
	log.Info("launching showcase")

	m := showcase.New(showcase.Options{Config: app.Config, Logger: log})
	defer m.Dispose()

	if err := showcaseRunner(m); err != nil {
		log.Error(err, "showcase execution failed")
		return fmt.Errorf("run showcase: %w", err)
	}

	log.Info("showcase closed")
	return nil
}
