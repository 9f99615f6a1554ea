package cmd

import (
	"fmt"
	"itemlist/internal/config"
	"itemlist/internal/infra/itemsapi"
	"itemlist/internal/usecase"
	"strings"

	"github.com/spf13/cobra"
)

func newClient(cfg *config.Config) *itemsapi.Client {
	return itemsapi.New(cfg.API, itemsapi.WithPolicy(cfg.Retry.Policy()))
}

func listCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := newClient(cfg).List(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to load items: %w", err)
			}
			for _, it := range items {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", it.ID, it.Text)
			}
			return nil
		},
	}
}

func addCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "add <text>",
		Short: "Add an item",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := usecase.NormalizeText(strings.Join(args, " "))
			if err != nil {
				return err
			}

			it, err := newClient(cfg).Create(cmd.Context(), text)
			if err != nil {
				return fmt.Errorf("failed to add item: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", it.ID, it.Text)
			return nil
		},
	}
}
