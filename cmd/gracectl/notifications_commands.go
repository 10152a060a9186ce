package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gracewaylabs/graceway-admin/internal/services/notifications"
)

func newNotificationsCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notifications",
		Short: "Manage push notifications and the delivery queue",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	queueCmd := &cobra.Command{
		Use:   "queue",
		Short: "Show the delivery queue state",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := notificationsService(ctx, cmd)
			if err != nil {
				return err
			}
			status, err := svc.Queue(cmd.Context())
			if err != nil {
				return err
			}
			printQueueStatus(cmd, status)
			return nil
		},
	}

	pauseCmd := &cobra.Command{
		Use:   "pause",
		Short: "Pause the delivery queue",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := notificationsService(ctx, cmd)
			if err != nil {
				return err
			}
			status, err := svc.PauseQueue(cmd.Context())
			if err != nil {
				return err
			}
			printQueueStatus(cmd, status)
			return nil
		},
	}

	resumeCmd := &cobra.Command{
		Use:   "resume",
		Short: "Resume the delivery queue",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := notificationsService(ctx, cmd)
			if err != nil {
				return err
			}
			status, err := svc.ResumeQueue(cmd.Context())
			if err != nil {
				return err
			}
			printQueueStatus(cmd, status)
			return nil
		},
	}
	queueCmd.AddCommand(pauseCmd, resumeCmd)

	var title, body, audience string
	sendCmd := &cobra.Command{
		Use:   "send",
		Short: "Create a push notification",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := notificationsService(ctx, cmd)
			if err != nil {
				return err
			}
			created, err := svc.Create(cmd.Context(), notifications.CreateParams{
				Title:    title,
				Body:     body,
				Audience: audience,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Queued notification %s\n", created.ID)
			return nil
		},
	}
	sendCmd.Flags().StringVar(&title, "title", "", "Notification title")
	sendCmd.Flags().StringVar(&body, "body", "", "Notification body")
	sendCmd.Flags().StringVar(&audience, "audience", "all", "Audience (all, members, leaders)")
	_ = sendCmd.MarkFlagRequired("title")
	_ = sendCmd.MarkFlagRequired("body")

	cmd.AddCommand(queueCmd, sendCmd)
	return cmd
}

func printQueueStatus(cmd *cobra.Command, status *notifications.QueueStatus) {
	fmt.Fprintln(cmd.OutOrStdout(), renderTable(
		[]string{"State", "Pending", "Sent", "Failed"},
		[][]string{{
			status.State.String(),
			strconv.Itoa(status.Pending),
			strconv.Itoa(status.Sent),
			strconv.Itoa(status.Failed),
		}},
		[]columnAlignment{alignLeft, alignRight, alignRight, alignRight},
	))
}

func notificationsService(ctx *commandContext, cmd *cobra.Command) (notifications.Service, error) {
	client, err := ctx.ensureClient(cmd.Context())
	if err != nil {
		return nil, err
	}
	return notifications.NewService(client)
}
