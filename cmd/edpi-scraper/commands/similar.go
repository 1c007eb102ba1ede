package commands

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/jd499/valorant-pro-settings-scraper/internal/utils"
	"github.com/jd499/valorant-pro-settings-scraper/pkg/stats"
)

func newSimilarCmd(flags *globalFlags) *cobra.Command {
	var (
		dpi   int
		sens  float64
		limit int
	)

	cmd := &cobra.Command{
		Use:   "similar --dpi <dpi> --sens <sensitivity>",
		Short: "Lists the players whose eDPI is closest to yours.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if dpi <= 0 || sens <= 0 {
				return errors.Wrapf(stats.ErrInvalidInput, "dpi %d, sensitivity %g", dpi, sens)
			}

			players, ok, err := loadPlayers(cmd, flags)
			if err != nil || !ok {
				return err
			}
			utils.DisplayPlayers(cmd.OutOrStdout(), stats.Similar(players, float64(dpi)*sens, limit))
			return nil
		},
	}

	cmd.Flags().IntVar(&dpi, "dpi", 0, "Your mouse DPI.")
	cmd.Flags().Float64Var(&sens, "sens", 0, "Your in-game sensitivity.")
	cmd.Flags().IntVar(&limit, "limit", stats.DefaultSimilarLimit, "How many players to list.")
	cobra.CheckErr(cmd.MarkFlagRequired("dpi"))
	cobra.CheckErr(cmd.MarkFlagRequired("sens"))
	return cmd
}
