package main

import (
	"fmt"

	portssvc "github.com/SscSPs/fx_settlement/internal/core/ports/services"
	"github.com/SscSPs/fx_settlement/internal/dto"
	"github.com/spf13/cobra"
)

func usersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage actor display details",
	}

	var (
		name  string
		email string
	)
	upsert := &cobra.Command{
		Use:   "upsert [user-id]",
		Short: "Record the display name of an actor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := dto.UpsertUserRequest{Name: name}
			if email != "" {
				req.Email = &email
			}
			return withServices(cmd.Context(), func(svc *portssvc.ServiceContainer) error {
				u, err := svc.User.UpsertUser(cmd.Context(), args[0], req)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Saved %s (%s)\n", u.UserID, u.Name)
				return nil
			})
		},
	}
	upsert.Flags().StringVar(&name, "name", "", "display name")
	upsert.Flags().StringVar(&email, "email", "", "contact email")
	_ = upsert.MarkFlagRequired("name")
	cmd.AddCommand(upsert)

	return cmd
}
