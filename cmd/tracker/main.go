package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/Veraticus/finance-tracker/internal/common"
	"github.com/Veraticus/finance-tracker/internal/config"
	"github.com/Veraticus/finance-tracker/internal/tui"
	"github.com/Veraticus/finance-tracker/internal/tui/themes"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile   string
	version   = "dev"
	appConfig *config.Config
	logFile   *os.File
	rootCmd   = &cobra.Command{
		Use:   "tracker",
		Short: "Personal income and expense tracker",
		Long: `tracker: a single-screen terminal app for recording income and expenses.

Type a label and an amount (prefix expenses with -) and press Enter. The balance,
totals, income/expense chart and history update immediately. Nothing is saved
when you quit.`,
		PersistentPreRunE: initConfig,
		RunE:              runTracker,
		SilenceUsage:      true,
	}
)

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.config/tracker/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "console", "log format (console, json)")
	rootCmd.PersistentFlags().String("log-file", "", "write logs to this file (the UI discards logs otherwise)")
	rootCmd.PersistentFlags().String("currency", config.DefaultCurrency, "currency symbol shown before amounts")
	rootCmd.PersistentFlags().String("theme", config.DefaultTheme, "color theme (default, catppuccin-mocha)")
	rootCmd.PersistentFlags().StringSlice("import", nil, "seed the session from OFX/QFX statements (repeatable)")

	// Bind flags to viper
	config.SetDefaults(viper.GetViper())
	_ = viper.BindPFlag(config.KeyLogLevel, rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag(config.KeyLogFormat, rootCmd.PersistentFlags().Lookup("log-format"))
	_ = viper.BindPFlag(config.KeyLogFile, rootCmd.PersistentFlags().Lookup("log-file"))
	_ = viper.BindPFlag(config.KeyCurrency, rootCmd.PersistentFlags().Lookup("currency"))
	_ = viper.BindPFlag(config.KeyTheme, rootCmd.PersistentFlags().Lookup("theme"))
	_ = viper.BindPFlag(config.KeyImportFiles, rootCmd.PersistentFlags().Lookup("import"))

	// Add commands
	rootCmd.AddCommand(reportCmd())
	rootCmd.AddCommand(versionCmd())
}

func main() {
	// Set up signal handling
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		slog.Info("Received interrupt signal, shutting down gracefully...")
		cancel()
	}()

	err := rootCmd.ExecuteContext(ctx)
	cancel() // Always cleanup
	closeLogFile()

	if err != nil {
		var userErr *common.UserError
		if errors.As(err, &userErr) {
			fmt.Fprintln(os.Stderr, "Error:", userErr.Error())
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func initConfig(cmd *cobra.Command, _ []string) error {
	// .env values become plain environment variables
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	// Set up config file
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}

		// Search for config in standard locations
		viper.AddConfigPath(filepath.Join(home, ".config", "tracker"))
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	// Environment variables, e.g. TRACKER_UI_CURRENCY
	viper.SetEnvPrefix("TRACKER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found is OK, we'll use defaults
	}

	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}
	appConfig = cfg

	// Set up logging
	if err := setupLogging(cfg, cmd == cmd.Root()); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	slog.Debug("Configuration loaded",
		"config_file", viper.ConfigFileUsed(),
		"theme", cfg.Theme,
		"imports", len(cfg.ImportFiles))

	return nil
}

// setupLogging installs the default logger. The full-screen UI owns the
// terminal, so interactive sessions log to the configured file or nowhere.
func setupLogging(cfg *config.Config, interactive bool) error {
	var w io.Writer = os.Stderr

	switch {
	case cfg.LogFile != "":
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		closeLogFile()
		logFile = f
		w = f
	case interactive:
		w = io.Discard
	}

	return common.SetupLogger(w, cfg.LogLevel, cfg.LogFormat)
}

func closeLogFile() {
	if logFile == nil {
		return
	}
	if err := logFile.Close(); err != nil {
		fmt.Fprintln(os.Stderr, "failed to close log file:", err)
	}
	logFile = nil
}

func runTracker(cmd *cobra.Command, _ []string) error {
	seed, err := importStatements(cmd.Context(), appConfig.ImportFiles, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	return tui.Run(cmd.Context(),
		tui.WithTheme(themes.GetTheme(appConfig.Theme)),
		tui.WithCurrency(appConfig.Currency),
		tui.WithTransactions(seed),
	)
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "tracker version %s\n", version)
		},
	}
}
