package cmd

import (
	"itemlist/internal/config"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// overrides holds flag values that take precedence over the environment.
type overrides struct {
	apiURL     string
	maxRetries int
	baseDelay  time.Duration
	maxDelay   time.Duration
}

func Run() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal().Msgf("failed to execute command, err: %v", err.Error())
	}
}

func newRootCmd() *cobra.Command {
	var (
		flags overrides
		cfg   config.Config
	)

	var command = &cobra.Command{
		Use:           "itemlist",
		Short:         "Item list API server and retrying client",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load()
			if err != nil {
				return err
			}
			cfg = *loaded
			applyOverrides(cmd, flags, &cfg)
			setupLogging(cfg.LogLevel)
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			cmd.HelpFunc()(cmd, args)
		},
	}

	pf := command.PersistentFlags()
	pf.StringVar(&flags.apiURL, "api-url", "", "Items API base URL (overrides ITEMS_API_URL)")
	pf.IntVar(&flags.maxRetries, "max-retries", 3, "Retries after the first failed attempt")
	pf.DurationVar(&flags.baseDelay, "base-delay", time.Second, "Base backoff delay")
	pf.DurationVar(&flags.maxDelay, "max-delay", 10*time.Second, "Max backoff delay")

	command.AddCommand(apiCmd(&cfg))
	command.AddCommand(listCmd(&cfg))
	command.AddCommand(addCmd(&cfg))

	return command
}

func applyOverrides(cmd *cobra.Command, flags overrides, cfg *config.Config) {
	pf := cmd.Flags()
	if pf.Changed("api-url") {
		cfg.API.BaseURL = flags.apiURL
	}
	if pf.Changed("max-retries") {
		cfg.Retry.MaxRetries = max(flags.maxRetries, 0)
	}
	if pf.Changed("base-delay") {
		cfg.Retry.BaseDelay = flags.baseDelay
	}
	if pf.Changed("max-delay") {
		cfg.Retry.MaxDelay = flags.maxDelay
	}
}

func setupLogging(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	zerolog.DefaultContextLogger = &log.Logger
}
