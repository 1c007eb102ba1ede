package commands

import (
	"github.com/spf13/cobra"

	"github.com/jd499/valorant-pro-settings-scraper/internal/utils"
	"github.com/jd499/valorant-pro-settings-scraper/pkg/stats"
)

func newReportCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Prints min/max/mean/median eDPI per team and overall.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, flags)
		},
	}
}

func runReport(cmd *cobra.Command, flags *globalFlags) error {
	players, ok, err := loadPlayers(cmd, flags)
	if err != nil || !ok {
		return err
	}
	utils.DisplayReport(cmd.OutOrStdout(), stats.Aggregate(players))
	return nil
}
