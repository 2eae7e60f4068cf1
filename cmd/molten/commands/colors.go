package commands

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/moltenlabs/brand/color"
	"github.com/moltenlabs/brand/internal/config"
	"github.com/moltenlabs/brand/internal/log"
	"github.com/moltenlabs/brand/internal/ui"
	"github.com/moltenlabs/brand/tokens"
)

func (c *CLI) newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [namespace]",
		Short: "List color tokens",
		Example: "  molten list\n" +
			"  molten list lair",
		Args: cobra.MaximumNArgs(1),
		ValidArgsFunction: func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
			return tokens.Namespaces(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			items := tokens.Colors()
			if len(args) == 1 {
				ns := strings.ToLower(args[0])
				if !lo.Contains(tokens.Namespaces(), ns) {
					return fmt.Errorf("unknown namespace %q (known: %s)", args[0], strings.Join(tokens.Namespaces(), ", "))
				}
				items = tokens.InNamespace(ns)
			}

			width := lo.Max(lo.Map(items, func(n color.Named, _ int) int { return len(n.Name) }))
			swatch := setting(cmd, "swatch", config.KeySwatch)
			out := cmd.OutOrStdout()
			for _, n := range items {
				_, _ = fmt.Fprintf(out, "%s %-*s %s\n", ui.Swatch(n.Color, swatch), width, n.Name, n.Color.Hex())
			}
			log.Debugf("listed %d tokens", len(items))
			return nil
		},
	}

	cmd.Flags().String("swatch", config.Default[config.KeySwatch].(string), "Glyph used to paint colors")
	return cmd
}

func (c *CLI) newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name|hex>",
		Short: "Show one color in every notation",
		Example: "  molten show molten.500\n" +
			"  molten show '#f97316'",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			col, err := tokens.Resolve(args[0])
			if err != nil {
				return fmt.Errorf("resolving %q: %w", args[0], err)
			}

			out := cmd.OutOrStdout()
			row := func(label, value string) {
				_, _ = fmt.Fprintf(out, "%-10s %s\n", label, value)
			}

			if _, ok := tokens.Color(args[0]); ok {
				row("token", strings.ToLower(args[0]))
			}
			row("swatch", ui.Chip(col, col.Hex()))
			row("hex", col.Hex())
			row("rgb", col.ToRGB().String())
			row("rgba", col.ToRGBA().CSS())
			row("opacity", fmt.Sprintf("%.0f%%", float64(col.ToRGBA().Alpha())*100))
			row("luminance", fmt.Sprintf("%.4f", col.Luminance()))
			if matches := sameColor(col); len(matches) > 0 {
				row("aliases", strings.Join(matches, ", "))
			}
			return nil
		},
	}
}

// sameColor lists the tokens with exactly this value.
func sameColor(col color.Color) []string {
	return lo.FilterMap(tokens.Colors(), func(n color.Named, _ int) (string, bool) {
		return n.Name, n.Color == col
	})
}

func (c *CLI) newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <hex>",
		Short: "Validate a hex color and print its normalized form",
		Example: "  molten parse '#F97316'\n" +
			"  molten parse ffffff80",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			col, err := color.ParseHex(args[0])
			if err != nil {
				return fmt.Errorf("parsing %q: %w", args[0], err)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), col.Hex())
			return nil
		},
	}
}

// WCAG 2 contrast thresholds.
var contrastLevels = []struct {
	name string
	min  float64
}{
	{"AA large", 3},
	{"AA", 4.5},
	{"AAA large", 4.5},
	{"AAA", 7},
}

func (c *CLI) newContrastCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contrast <foreground> <background>",
		Short: "Compute the WCAG contrast ratio of two colors",
		Long: "Compute the WCAG contrast ratio of two colors. Translucent colors\n" +
			"are composited first: the background onto the base surface, then the\n" +
			"foreground onto the background.",
		Example: "  molten contrast text.primary surface.base\n" +
			"  molten contrast '#f97316' '#0a0a0a' --min 4.5",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fg, err := tokens.Resolve(args[0])
			if err != nil {
				return fmt.Errorf("resolving foreground: %w", err)
			}
			bg, err := tokens.Resolve(args[1])
			if err != nil {
				return fmt.Errorf("resolving background: %w", err)
			}

			bg = ui.Flatten(bg)
			fg = fg.Over(bg)
			ratio := fg.Contrast(bg)

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "%s on %s: %.2f:1\n", fg.Hex(), bg.Hex(), ratio)
			for _, level := range contrastLevels {
				_, _ = fmt.Fprintf(out, "  %s %s\n", ui.ResultIcon(ratio >= level.min), level.name)
			}

			minimum, _ := cmd.Flags().GetFloat64("min")
			if minimum > 0 && ratio < minimum {
				return fmt.Errorf("contrast %.2f:1 is below the required %.2f:1", ratio, minimum)
			}
			return nil
		},
	}

	cmd.Flags().Float64("min", 0, "Fail when the ratio is below this value")
	return cmd
}
