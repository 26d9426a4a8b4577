package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/spacetraders/internal/client"
	"github.com/zjrosen/spacetraders/internal/config"
	"github.com/zjrosen/spacetraders/internal/log"
	"github.com/zjrosen/spacetraders/internal/presentation"
)

var (
	version      = "dev"
	cfgFile      string
	outputFormat string
	debug        bool
	current      *app
	logCleanup   func()
)

var rootCmd = &cobra.Command{
	Use:   "spacetraders",
	Short: "A command line client for the SpaceTraders API",
	Long: `A command line client for the SpaceTraders API.

Register an agent once; the token and a cache of the agent, its contracts
and its ships are saved locally and reused by every other command.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: .spacetraders/config.yaml or ~/.config/spacetraders/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "o", "json",
		"output format: json or text")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"write a debug log to .spacetraders/debug.log")
	rootCmd.PersistentFlags().String("save-file", "",
		"session save file (default: spacetraders.save)")

	_ = viper.BindPFlag("save_file", rootCmd.PersistentFlags().Lookup("save-file"))
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
}

// setup loads configuration and builds the app shared by every subcommand.
func setup(cmd *cobra.Command, args []string) error {
	cfg, configPath, err := config.Load(viper.GetViper(), cfgFile)
	if err != nil {
		return err
	}
	if configPath == "" {
		configPath = config.DefaultConfigPath
	}

	if cfg.Debug {
		logPath := filepath.Join(filepath.Dir(config.DefaultConfigPath), "debug.log")
		if err := os.MkdirAll(filepath.Dir(logPath), 0o750); err != nil {
			return fmt.Errorf("creating log directory: %w", err)
		}
		cleanup, err := log.Init(logPath)
		if err != nil {
			return fmt.Errorf("initializing debug log: %w", err)
		}
		logCleanup = cleanup
		level, _ := log.ParseLevel(cfg.LogLevel) // checked by config.Validate
		log.SetMinLevel(level)
		log.SetEnabled(true)
	}

	format, err := presentation.ParseFormat(outputFormat)
	if err != nil {
		return err
	}

	current, err = newApp(cfg, configPath, cmd.OutOrStdout(), format)
	return err
}

// Execute runs the root command
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if client.IsFatal(err) {
		log.ErrorErr(log.CatAPI, "Server response did not match the expected envelope", err)
	}
	if current != nil {
		if closeErr := current.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}
	if logCleanup != nil {
		logCleanup()
	}
	return err
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
