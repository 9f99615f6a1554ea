package cmd

import (
	"context"
	"itemlist/internal/api"
	"itemlist/internal/config"
	"itemlist/internal/infra/memstore"
	"itemlist/internal/infra/redisstore"
	"itemlist/internal/metrics"
	"itemlist/internal/ports"
	"itemlist/internal/usecase"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func apiCmd(cfg *config.Config) *cobra.Command {
	var port int
	var command = &cobra.Command{
		Use:   "api",
		Short: "Start items API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, closeStore, err := openStore(cmd.Context(), cfg.Redis)
			if err != nil {
				return err
			}
			defer closeStore()

			server := api.NewServer(usecase.Items{Store: store}, metrics.New())
			return server.Run(port)
		},
	}

	command.Flags().IntVarP(&port, "port", "p", 8000, "Port to run the server on")
	return command
}

func openStore(ctx context.Context, cfg config.Redis) (ports.ItemStore, func(), error) {
	if cfg.Addr == "" {
		log.Info().Msg("REDIS_ADDRESS not set, keeping items in memory")
		return memstore.New(), func() {}, nil
	}

	cli := redisstore.New(cfg)
	if err := cli.Connect(ctx); err != nil {
		_ = cli.Close()
		return nil, nil, err
	}
	return cli, func() { _ = cli.Close() }, nil
}
