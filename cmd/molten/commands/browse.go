package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moltenlabs/brand/internal/config"
	"github.com/moltenlabs/brand/internal/tui"
)

func (c *CLI) newBrowseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the tokens interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			model := tui.New(setting(cmd, "swatch", config.KeySwatch))
			if err := c.runProgram(model, cmd.OutOrStdout()); err != nil {
				return fmt.Errorf("running TUI: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().String("swatch", config.Default[config.KeySwatch].(string), "Glyph used to paint colors")
	return cmd
}
