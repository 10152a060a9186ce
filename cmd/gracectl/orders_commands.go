package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gracewaylabs/graceway-admin/internal/services/orders"
	"github.com/gracewaylabs/graceway-admin/pkg/enums"
	"github.com/gracewaylabs/graceway-admin/pkg/pagination"
)

func newOrdersCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Manage bookstore orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	var page, limit int
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := ordersService(ctx, cmd)
			if err != nil {
				return err
			}
			result, err := svc.List(cmd.Context(), pagination.Params{Page: page, Limit: limit})
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(result.Data))
			for _, order := range result.Data {
				rows = append(rows, []string{
					order.ID,
					order.MemberName,
					order.Total.StringFixed(2),
					order.Status.String(),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"ID", "Member", "Total", "Status"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft},
			))
			return nil
		},
	}
	listCmd.Flags().IntVar(&page, "page", 1, "Page number")
	listCmd.Flags().IntVar(&limit, "limit", 20, "Page size")

	var tracking string
	setStatusCmd := &cobra.Command{
		Use:   "set-status <id> <status>",
		Short: "Move an order to a new fulfillment status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := enums.ParseOrderStatus(args[1])
			if err != nil {
				return err
			}
			svc, err := ordersService(ctx, cmd)
			if err != nil {
				return err
			}
			order, err := svc.SetStatus(cmd.Context(), args[0], orders.StatusParams{
				Status:       status,
				TrackingCode: tracking,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Order %s is now %s\n", order.ID, order.Status)
			return nil
		},
	}
	setStatusCmd.Flags().StringVar(&tracking, "tracking", "", "Tracking code to attach")

	cmd.AddCommand(listCmd, setStatusCmd)
	return cmd
}

func ordersService(ctx *commandContext, cmd *cobra.Command) (orders.Service, error) {
	client, err := ctx.ensureClient(cmd.Context())
	if err != nil {
		return nil, err
	}
	return orders.NewService(client)
}
