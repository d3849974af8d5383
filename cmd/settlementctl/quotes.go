package main

import (
	"context"
	"fmt"
	"strconv"
	"text/tabwriter"

	portssvc "github.com/SscSPs/fx_settlement/internal/core/ports/services"
	"github.com/SscSPs/fx_settlement/internal/core/services"
	"github.com/SscSPs/fx_settlement/internal/platform/config"
	"github.com/SscSPs/fx_settlement/internal/repositories/database/pgsql"
	"github.com/SscSPs/fx_settlement/pkg/database"
	"github.com/spf13/cobra"
)

func quotesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quotes",
		Short: "Inspect and annul exchange quotes",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the current quote of every currency pair",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd.Context(), func(svc *portssvc.ServiceContainer) error {
				listings, err := svc.Quote.ListCurrentQuotes(cmd.Context())
				if err != nil {
					return err
				}

				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "ID\tPAIR\tBUY\tSELL\tLAST UPDATED\tREGISTERED BY")
				for _, l := range listings {
					fmt.Fprintf(w, "%d\t%s/%s\t%s\t%s\t%s\t%s\n",
						l.QuoteID, l.OriginISO, l.DestinationISO, l.BuyRate, l.SellRate,
						l.LastChangedAt().Format("2006-01-02 15:04:05"), l.RegisteredByName)
				}
				return w.Flush()
			})
		},
	})

	var actor string
	annul := &cobra.Command{
		Use:   "annul [quote-id]",
		Short: "Deactivate an active quote",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			quoteID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || quoteID <= 0 {
				return fmt.Errorf("invalid quote id %q", args[0])
			}
			return withServices(cmd.Context(), func(svc *portssvc.ServiceContainer) error {
				q, err := svc.Quote.AnnulQuote(cmd.Context(), quoteID, actor)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Quote %d annulled at %s\n", q.QuoteID, q.DeactivatedAt.Format("2006-01-02 15:04:05"))
				return nil
			})
		},
	}
	annul.Flags().StringVar(&actor, "actor", "", "user id recorded as the annulling actor")
	_ = annul.MarkFlagRequired("actor")
	cmd.AddCommand(annul)

	return cmd
}

func withServices(ctx context.Context, fn func(svc *portssvc.ServiceContainer) error) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, true)
	if err != nil {
		return err
	}
	defer database.ClosePgxPool(pool)

	return fn(services.NewServiceContainer(cfg, pgsql.NewRepositoryProvider(pool)))
}
