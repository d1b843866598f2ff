package main

import (
	"context"
	"fmt"
	"os"

	"addressbook/internal/logging"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose    bool
	workspace  string
	configPath string
	theme      string

	// version is set at build time with -ldflags "-X main.version=..."
	version = "dev"

	app *session
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "bot",
	Short: "Assistant bot - a command-line address book",
	Long: `bot keeps an in-memory address book of names, phones and birthdays.

Run without arguments to start the line-oriented assistant, or use
"bot tui" for the full-screen interface. Type "help" for the command list.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == versionCmd.Name() {
			return nil
		}
		var err error
		app, err = bootstrap(workspace, configPath, verbose, theme)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if app != nil {
			app.log(logging.CategoryBoot).Info("shutting down")
			_ = app.Close()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.serve(cmd.Context(), func(ctx context.Context) error {
			r := &lineREPL{
				in:     cmd.InOrStdin(),
				out:    cmd.OutOrStdout(),
				bot:    app.bot,
				render: app.renderPlain,
				logger: app.log(logging.CategoryUI),
			}
			return r.Run(ctx)
		})
	},
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Start the full-screen interface",
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.serve(cmd.Context(), func(ctx context.Context) error {
			return runTUI(ctx, app)
		})
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "bot %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging to .bot/logs")
	rootCmd.PersistentFlags().StringVarP(&workspace, "workspace", "w", "", "Workspace directory (default: current)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: <workspace>/.bot/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", "", "Color theme: light or dark (default: config, then detect)")

	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
