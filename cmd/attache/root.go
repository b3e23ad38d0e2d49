package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/andriiko/attache/internal/command"
	"github.com/andriiko/attache/pkg/assistant"
)

var (
	verbose bool
	dataDir string
	cfg     assistant.Config
)

// rootCmd represents the base command: without a subcommand it starts the
// interactive assistant.
var rootCmd = &cobra.Command{
	Use:   "attache",
	Short: "A personal contacts and notes assistant",
	Long: `Attache keeps an address book and a notebook on disk between runs.
Run it without arguments for the interactive prompt, or use the
subcommands for one-shot scripting.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		slog.SetDefault(logger)

		var err error
		cfg, err = assistant.LoadConfig()
		if err != nil {
			return err
		}
		if dataDir != "" {
			cfg.DataDir = dataDir
		}
		if cfg.NoColor {
			command.DisableColor()
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		svc, err := newService(ctx)
		if err != nil {
			return err
		}

		env := &command.Env{Svc: svc, BirthdayDays: cfg.BirthdayDays}
		repl := command.NewREPL(command.NewRegistry(), env, os.Stdin, os.Stdout)

		// Reload before the next command when another process touches the
		// data files.
		watchCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		if events, err := svc.Watch(watchCtx); err != nil {
			slog.Default().Debug("watch unavailable", "error", err)
		} else {
			go func() {
				for range events {
					repl.MarkStale()
				}
			}()
		}

		return repl.Run(ctx)
	},
}

func newService(ctx context.Context) (*assistant.Service, error) {
	return assistant.New(ctx,
		assistant.WithDataDir(cfg.DataDir),
		assistant.WithLogger(slog.Default()),
	)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&dataDir, "data-dir", "d", "", "Data directory (default ~/.attache, env ATTACHE_DATA_DIR)")
}
