package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/inovacc/giteabak/internal/application"
	"github.com/inovacc/giteabak/internal/cli"
	"github.com/inovacc/giteabak/internal/config"
	"github.com/inovacc/giteabak/internal/core"
	"github.com/spf13/cobra"
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   application.AppName,
		Short: "Download git repos and issues from a gitea instance",
		Long: `giteabak backs up a Gitea instance.

It lists every repository the configured user owns or has access to, clones
each one with git and saves its issues (with labels and comments) as plain
text files:

  <folder>/<owner>/<repo>/                         git clone
  <folder>/issues/<owner>/<repo>/<state>/<title>   one file per issue

The config file is an INI file:

  [gitea]
  url = https://git.example.com

  [repos]
  exceptions = ["owner/skip-me"]

  [auth]
  user = me
  token = <access token>      # or: password = <password>

When no config file exists a default one is written and giteabak exits.`,
		Example: `  # List repositories only
  giteabak --list

  # Back up into /srv/backup, asking before every repository
  giteabak -c /etc/giteabak.ini -f /srv/backup --always-ask

  # Clone without issues and show what happens
  giteabak --no-issues -v`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runBackup,
	}

	cmd.Flags().StringP("config", "c", application.DefaultConfigFile, "config file")
	cmd.Flags().BoolP("verbose", "v", false, "increase verbosity")
	cmd.Flags().Bool("no-issues", false, "don't download issues")
	cmd.Flags().BoolP("always-ask", "a", false, "ask about every action")
	cmd.Flags().StringP("folder", "f", application.DefaultFolder, "download git repos here")
	cmd.Flags().BoolP("list", "l", false, "list repos only (no download)")
	cmd.MarkFlagsMutuallyExclusive("folder", "list")

	cmd.PersistentFlags().String("log-level", "warn", "log level: debug, info, warn, error")
	cmd.PersistentFlags().Bool("json", false, "write logs as JSON")

	cmd.AddCommand(newVersionCmd())

	return cmd
}

// Execute runs the root command and exits with the status of its error
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err == nil {
		return
	}

	reportError(rootCmd.OutOrStdout(), rootCmd.ErrOrStderr(), err)
	os.Exit(application.ExitCode(err))
}

func reportError(stdout, stderr io.Writer, err error) {
	var exitErr *application.ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Message != "" {
			_, _ = fmt.Fprintln(stdout, cli.Error(exitErr.Message))
		}

		_, _ = fmt.Fprintln(stdout, "Exiting...")

		return
	}

	_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
}

func runBackup(cmd *cobra.Command, _ []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")
	noIssues, _ := cmd.Flags().GetBool("no-issues")
	alwaysAsk, _ := cmd.Flags().GetBool("always-ask")
	folder, _ := cmd.Flags().GetString("folder")
	list, _ := cmd.Flags().GetBool("list")
	logLevel, _ := cmd.Flags().GetString("log-level")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	if verbose && !cmd.Flags().Changed("log-level") {
		logLevel = "info"
	}

	logger := setupLogger(cmd.ErrOrStderr(), logLevel, jsonOutput)

	cfg, err := config.Load(configPath, config.Options{
		Stdout: cmd.OutOrStdout(),
		Logger: logger,
	})
	if err != nil {
		return err
	}

	backup := core.NewBackup(cfg, core.Options{
		Folder:    folder,
		List:      list,
		NoIssues:  noIssues,
		AlwaysAsk: alwaysAsk,
		Verbose:   verbose,
		Stdout:    cmd.OutOrStdout(),
		Stdin:     cmd.InOrStdin(),
		Logger:    logger,
	})

	return backup.Run(cmd.Context())
}

func setupLogger(w io.Writer, levelStr string, jsonOutput bool) *slog.Logger {
	var level slog.Level

	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if jsonOutput {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}
