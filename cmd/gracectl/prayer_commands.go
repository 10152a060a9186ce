package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gracewaylabs/graceway-admin/internal/services/prayer"
	"github.com/gracewaylabs/graceway-admin/pkg/enums"
	"github.com/gracewaylabs/graceway-admin/pkg/pagination"
)

func newPrayerCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prayer",
		Short: "Moderate prayer requests",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	var page, limit int
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List prayer requests",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := prayerService(ctx, cmd)
			if err != nil {
				return err
			}
			result, err := svc.List(cmd.Context(), pagination.Params{Page: page, Limit: limit})
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(result.Data))
			for _, request := range result.Data {
				rows = append(rows, []string{
					request.ID,
					request.AuthorName,
					string(request.Status),
					strconv.Itoa(request.PrayerCount),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"ID", "Author", "Status", "Prayers"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight},
			))
			return nil
		},
	}
	listCmd.Flags().IntVar(&page, "page", 1, "Page number")
	listCmd.Flags().IntVar(&limit, "limit", 20, "Page size")

	setStatusCmd := &cobra.Command{
		Use:   "set-status <id> <status>",
		Short: "Move a prayer request to a new status (PENDING, IN_PROGRESS, ANSWERED, CLOSED)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := enums.ParsePrayerDisplayStatus(args[1])
			if err != nil {
				return err
			}
			svc, err := prayerService(ctx, cmd)
			if err != nil {
				return err
			}
			request, err := svc.UpdateStatus(cmd.Context(), args[0], status)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Request %s is now %s\n", request.ID, request.Status)
			return nil
		},
	}

	cmd.AddCommand(listCmd, setStatusCmd)
	return cmd
}

func prayerService(ctx *commandContext, cmd *cobra.Command) (prayer.Service, error) {
	client, err := ctx.ensureClient(cmd.Context())
	if err != nil {
		return nil, err
	}
	return prayer.NewService(client)
}
