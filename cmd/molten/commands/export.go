package commands

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/moltenlabs/brand/internal/config"
	"github.com/moltenlabs/brand/internal/export"
	"github.com/moltenlabs/brand/internal/log"
)

func (c *CLI) newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export every token as JSON, YAML or CSS custom properties",
		Long: "Export every token as JSON, YAML or CSS custom properties.\n\n" +
			"Without --format the format follows the --output extension, then\n" +
			"the export.format setting.",
		Example: "  molten export --format css --prefix molten\n" +
			"  molten export -o tokens.yaml",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			output, _ := cmd.Flags().GetString("output")

			name := viper.GetString(config.KeyExportFormat)
			if f, ok := formatFromPath(output); ok && !cmd.Flags().Changed("format") {
				name = string(f)
			}
			format, err := export.ParseFormat(name)
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			opts := export.Options{Prefix: viper.GetString(config.KeyExportPrefix)}
			if err := export.Encode(&buf, format, opts); err != nil {
				return err
			}

			if output == "" || output == "-" {
				_, err := cmd.OutOrStdout().Write(buf.Bytes())
				return err
			}
			if err := c.storage.WriteFile(output, buf.Bytes()); err != nil {
				return err
			}
			log.WithField("path", output).Infof("exported %s", format)
			return nil
		},
	}

	formats := lo.Map(export.Formats(), func(f export.Format, _ int) string { return string(f) })
	cmd.Flags().StringP("format", "f", config.Default[config.KeyExportFormat].(string), "Output format ("+strings.Join(formats, ", ")+")")
	lo.Must0(cmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return formats, cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(viper.BindPFlag(config.KeyExportFormat, cmd.Flags().Lookup("format")))

	cmd.Flags().String("prefix", config.Default[config.KeyExportPrefix].(string), "CSS custom property prefix")
	lo.Must0(viper.BindPFlag(config.KeyExportPrefix, cmd.Flags().Lookup("prefix")))

	cmd.Flags().StringP("output", "o", "", "Write to a file instead of stdout")
	return cmd
}

// formatFromPath infers the format from a file extension.
func formatFromPath(path string) (export.Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return export.JSON, true
	case ".yaml", ".yml":
		return export.YAML, true
	case ".css":
		return export.CSS, true
	}
	return "", false
}

func (c *CLI) newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of the JSON export",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := export.Schema()
			if err != nil {
				return fmt.Errorf("generating schema: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}
}
