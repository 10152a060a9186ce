package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gracewaylabs/graceway-admin/internal/services/sermons"
	"github.com/gracewaylabs/graceway-admin/pkg/pagination"
)

func newSermonsCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sermons",
		Short: "Manage the sermon library",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	var page, limit int
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List sermons",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := sermonsService(ctx, cmd)
			if err != nil {
				return err
			}
			result, err := svc.List(cmd.Context(), pagination.Params{Page: page, Limit: limit})
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(result.Data))
			for _, sermon := range result.Data {
				rows = append(rows, []string{
					sermon.ID,
					sermon.Title,
					sermon.Speaker,
					sermon.PreachedAt,
					strconv.FormatBool(sermon.Published),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"ID", "Title", "Speaker", "Preached", "Published"},
				rows,
				nil,
			))
			return nil
		},
	}
	listCmd.Flags().IntVar(&page, "page", 1, "Page number")
	listCmd.Flags().IntVar(&limit, "limit", 20, "Page size")

	publishCmd := &cobra.Command{
		Use:   "publish <id>",
		Short: "Publish a sermon",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := sermonsService(ctx, cmd)
			if err != nil {
				return err
			}
			sermon, err := svc.Publish(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Published %q\n", sermon.Title)
			return nil
		},
	}

	unpublishCmd := &cobra.Command{
		Use:   "unpublish <id>",
		Short: "Unpublish a sermon",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := sermonsService(ctx, cmd)
			if err != nil {
				return err
			}
			sermon, err := svc.Unpublish(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Unpublished %q\n", sermon.Title)
			return nil
		},
	}

	cmd.AddCommand(listCmd, publishCmd, unpublishCmd)
	return cmd
}

func sermonsService(ctx *commandContext, cmd *cobra.Command) (sermons.Service, error) {
	client, err := ctx.ensureClient(cmd.Context())
	if err != nil {
		return nil, err
	}
	return sermons.NewService(client)
}
