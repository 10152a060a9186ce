package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gracewaylabs/graceway-admin/internal/services/media"
	"github.com/gracewaylabs/graceway-admin/pkg/pagination"
)

func newMediaCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "media",
		Short: "Manage the media library",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	var page, limit int
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List media assets",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := mediaService(ctx, cmd)
			if err != nil {
				return err
			}
			result, err := svc.List(cmd.Context(), pagination.Params{Page: page, Limit: limit})
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(result.Data))
			for _, asset := range result.Data {
				rows = append(rows, []string{
					asset.ID,
					asset.Filename,
					asset.ContentType,
					strconv.FormatInt(asset.SizeBytes, 10),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"ID", "Filename", "Type", "Bytes"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight},
			))
			return nil
		},
	}
	listCmd.Flags().IntVar(&page, "page", 1, "Page number")
	listCmd.Flags().IntVar(&limit, "limit", 20, "Page size")

	var folder string
	uploadCmd := &cobra.Command{
		Use:   "upload <path>",
		Short: "Upload a file to the media library",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer file.Close()

			svc, err := mediaService(ctx, cmd)
			if err != nil {
				return err
			}
			asset, err := svc.Upload(cmd.Context(), filepath.Base(args[0]), file, folder)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Uploaded %s as %s\n", asset.Filename, asset.ID)
			return nil
		},
	}
	uploadCmd.Flags().StringVar(&folder, "folder", "", "Destination folder")

	cmd.AddCommand(listCmd, uploadCmd)
	return cmd
}

func mediaService(ctx *commandContext, cmd *cobra.Command) (media.Service, error) {
	client, err := ctx.ensureClient(cmd.Context())
	if err != nil {
		return nil, err
	}
	return media.NewService(client)
}
