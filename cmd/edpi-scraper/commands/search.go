package commands

import (
	"github.com/spf13/cobra"

	"github.com/jd499/valorant-pro-settings-scraper/internal/utils"
	"github.com/jd499/valorant-pro-settings-scraper/pkg/stats"
)

func newSearchCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "search [name-prefix]",
		Short: "Lists players whose name starts with the given prefix.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			players, ok, err := loadPlayers(cmd, flags)
			if err != nil || !ok {
				return err
			}

			prefix := ""
			if len(args) == 1 {
				prefix = args[0]
			}
			utils.DisplayPlayers(cmd.OutOrStdout(), stats.Search(players, prefix))
			return nil
		},
	}
}
