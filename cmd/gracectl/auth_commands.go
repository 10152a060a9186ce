package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gracewaylabs/graceway-admin/internal/apiclient"
)

func newLoginCommand(ctx *commandContext) *cobra.Command {
	var email string
	var password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate against the Graceway backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ctx.ensureClient(cmd.Context())
			if err != nil {
				return err
			}
			result, err := client.Login(cmd.Context(), apiclient.LoginParams{
				Email:    email,
				Password: password,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (%s)\n", result.User.Name, result.User.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Admin email")
	cmd.Flags().StringVar(&password, "password", "", "Admin password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newLogoutCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Drop the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ctx.ensureClient(cmd.Context())
			if err != nil {
				return err
			}
			client.Logout(cmd.Context())
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

func newWhoamiCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the authenticated admin profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ctx.ensureClient(cmd.Context())
			if err != nil {
				return err
			}
			user, err := client.Profile(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"ID", "Name", "Email", "Role"},
				[][]string{{user.ID, user.Name, user.Email, user.Role}},
				nil,
			))
			return nil
		},
	}
}
