package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gracewaylabs/graceway-admin/internal/services/games"
	"github.com/gracewaylabs/graceway-admin/pkg/pagination"
)

func newGamesCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "games",
		Short: "Manage scripture game content",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	var page, limit int
	versesCmd := &cobra.Command{
		Use:   "verses",
		Short: "List verse scramble puzzles",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := gamesService(ctx, cmd)
			if err != nil {
				return err
			}
			result, err := svc.ListVerseScrambles(cmd.Context(), pagination.Params{Page: page, Limit: limit})
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(result.Verses))
			for _, verse := range result.Verses {
				rows = append(rows, []string{
					verse.ID,
					verse.Reference,
					verse.Difficulty,
					strconv.FormatBool(verse.Active),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"ID", "Reference", "Difficulty", "Active"},
				rows,
				nil,
			))
			return nil
		},
	}
	versesCmd.Flags().IntVar(&page, "page", 1, "Page number")
	versesCmd.Flags().IntVar(&limit, "limit", 20, "Page size")

	charactersCmd := &cobra.Command{
		Use:   "characters",
		Short: "List character guess puzzles",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := gamesService(ctx, cmd)
			if err != nil {
				return err
			}
			result, err := svc.ListCharacterGuesses(cmd.Context(), pagination.Params{Page: page, Limit: limit})
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(result.Characters))
			for _, character := range result.Characters {
				rows = append(rows, []string{
					character.ID,
					character.Name,
					strings.Join(character.Clues, "; "),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"ID", "Name", "Clues"},
				rows,
				nil,
			))
			return nil
		},
	}
	charactersCmd.Flags().IntVar(&page, "page", 1, "Page number")
	charactersCmd.Flags().IntVar(&limit, "limit", 20, "Page size")

	cmd.AddCommand(versesCmd, charactersCmd)
	return cmd
}

func gamesService(ctx *commandContext, cmd *cobra.Command) (games.Service, error) {
	client, err := ctx.ensureClient(cmd.Context())
	if err != nil {
		return nil, err
	}
	return games.NewService(client)
}
