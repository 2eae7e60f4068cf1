package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moltenlabs/brand/internal/log"
	"github.com/moltenlabs/brand/internal/ui"
	"github.com/moltenlabs/brand/tokens"
)

func (c *CLI) newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Validate a palette file",
		Long: "Validate a YAML or JSON palette file mapping names to colors.\n" +
			"Every invalid entry is reported, not just the first.",
		Example: "  molten check palette.yaml",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := c.storage.LoadPalette(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, issue := range p.Issues {
				_, _ = fmt.Fprintf(out, "%s %s (line %d): %v\n", ui.IconFail, issue.Name, issue.Line, issue.Err)
			}

			overrides := 0
			for _, n := range p.Colors {
				if builtin, ok := tokens.Color(n.Name); ok && builtin != n.Color {
					overrides++
					_, _ = fmt.Fprintf(out, "%s %s overrides %s with %s\n", ui.IconWarn, n.Name, builtin.Hex(), n.Color.Hex())
					log.Warnf("%s: %s shadows a built-in token", p.Path, n.Name)
				}
			}
			log.WithField("path", p.Path).Debugf("%d colors, %d issues, %d overrides", len(p.Colors), len(p.Issues), overrides)

			if !p.Valid() {
				log.Errorf("%s: %d of %d entries rejected", p.Path, len(p.Issues), len(p.Issues)+len(p.Colors))
				return fmt.Errorf("%s: %d invalid entries", p.Path, len(p.Issues))
			}
			_, _ = fmt.Fprintf(out, "%s %d colors valid\n", ui.IconPass, len(p.Colors))
			return nil
		},
	}
}
