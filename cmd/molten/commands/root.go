// Package commands implements the molten CLI.
package commands

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/moltenlabs/brand/brand"
	"github.com/moltenlabs/brand/internal/build"
	"github.com/moltenlabs/brand/internal/config"
	"github.com/moltenlabs/brand/internal/log"
	"github.com/moltenlabs/brand/internal/storage"
)

// ProgramRunner runs an interactive model to completion.
type ProgramRunner func(m tea.Model, out io.Writer) error

// CLI is the molten command tree.
type CLI struct {
	rootCmd    *cobra.Command
	storage    *storage.Storage
	runProgram ProgramRunner
}

// Option configures a CLI.
type Option func(*CLI)

// WithFs sets the filesystem used for config, palette and export files.
func WithFs(fs afero.Fs) Option {
	return func(c *CLI) {
		c.storage = storage.New(fs)
	}
}

// WithProgramRunner replaces the bubbletea runner used by browse.
func WithProgramRunner(run ProgramRunner) Option {
	return func(c *CLI) {
		c.runProgram = run
	}
}

func runProgram(m tea.Model, out io.Writer) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithOutput(out)).Run()
	return err
}

// New builds the command tree.
func New(opts ...Option) *CLI {
	c := &CLI{
		storage:    storage.New(nil),
		runProgram: runProgram,
	}
	for _, opt := range opts {
		opt(c)
	}

	rootCmd := &cobra.Command{
		Use:   "molten",
		Short: "Inspect and export the " + brand.Company + " design tokens",
		Long: brand.Company + " design tokens: colors, spacing and typography.\n\n" +
			"Tokens are addressed by dotted names such as forge.black, molten.500\n" +
			"or lair.terminal.background. Commands that take a color also accept\n" +
			"a hex string like #f97316.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.Setup(c.storage.Fs()); err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			log.Setup(cmd.ErrOrStderr())
			return nil
		},
	}
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))

	rootCmd.PersistentFlags().String("log-level", config.Default[config.KeyLogLevel].(string), "Log level (debug, info, warn, error)")
	lo.Must0(viper.BindPFlag(config.KeyLogLevel, rootCmd.PersistentFlags().Lookup("log-level")))

	c.rootCmd = rootCmd
	rootCmd.AddCommand(
		c.newListCmd(),
		c.newShowCmd(),
		c.newParseCmd(),
		c.newContrastCmd(),
		c.newExportCmd(),
		c.newSchemaCmd(),
		c.newCheckCmd(),
		c.newBrowseCmd(),
		c.newVersionCmd(),
	)

	cc.Init(&cc.Config{
		RootCmd:       rootCmd,
		Headings:      cc.HiCyan + cc.Bold + cc.Underline,
		Commands:      cc.HiYellow + cc.Bold,
		Example:       cc.Italic,
		ExecName:      cc.Bold,
		Flags:         cc.Bold,
		FlagsDataType: cc.Italic + cc.HiBlue,
	})

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	return c.rootCmd.ExecuteContext(ctx)
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// setting returns the flag value when it was given on the command line and
// the configured value otherwise. Used for flags shared by several
// subcommands, which cannot all be bound to the same viper key.
func setting(cmd *cobra.Command, flag, key string) string {
	if f := cmd.Flags().Lookup(flag); f != nil && f.Changed {
		return f.Value.String()
	}
	return viper.GetString(key)
}
