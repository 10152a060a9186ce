package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var baseURLFlag string
	var storeFlag string

	ctx := newCommandContext(&baseURLFlag, &storeFlag)

	rootCmd := &cobra.Command{
		Use:           "gracectl",
		Short:         "Graceway admin CLI",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&baseURLFlag, "base-url", "", "API base URL override")
	rootCmd.PersistentFlags().StringVar(&storeFlag, "token-store", "", "Token store kind (file, memory, redis)")

	rootCmd.AddCommand(newLoginCommand(ctx))
	rootCmd.AddCommand(newLogoutCommand(ctx))
	rootCmd.AddCommand(newWhoamiCommand(ctx))
	rootCmd.AddCommand(newSermonsCommand(ctx))
	rootCmd.AddCommand(newEventsCommand(ctx))
	rootCmd.AddCommand(newOrdersCommand(ctx))
	rootCmd.AddCommand(newPrayerCommand(ctx))
	rootCmd.AddCommand(newNotificationsCommand(ctx))
	rootCmd.AddCommand(newGamesCommand(ctx))
	rootCmd.AddCommand(newMediaCommand(ctx))

	return rootCmd
}
