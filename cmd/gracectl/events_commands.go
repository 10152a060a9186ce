package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/gracewaylabs/graceway-admin/internal/services/events"
	"github.com/gracewaylabs/graceway-admin/pkg/pagination"
)

func newEventsCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Manage the event calendar",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	var page, limit int
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List events",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ctx.ensureClient(cmd.Context())
			if err != nil {
				return err
			}
			svc, err := events.NewService(client)
			if err != nil {
				return err
			}
			result, err := svc.List(cmd.Context(), pagination.Params{Page: page, Limit: limit})
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(result.Events))
			for _, event := range result.Events {
				rows = append(rows, []string{
					event.ID,
					event.Title,
					event.Location,
					event.StartsAt.Format(time.RFC3339),
					strconv.Itoa(event.RSVPCount),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"ID", "Title", "Location", "Starts", "RSVPs"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight},
			))
			return nil
		},
	}
	listCmd.Flags().IntVar(&page, "page", 1, "Page number")
	listCmd.Flags().IntVar(&limit, "limit", 20, "Page size")

	cmd.AddCommand(listCmd)
	return cmd
}
