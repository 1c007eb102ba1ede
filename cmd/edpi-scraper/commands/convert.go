package commands

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/jd499/valorant-pro-settings-scraper/pkg/stats"
)

func newConvertCmd(flags *globalFlags) *cobra.Command {
	var (
		dpi       int64
		sens      string
		targetDPI int64
		pro       string
	)

	cmd := &cobra.Command{
		Use:   "convert --dpi <dpi> (--sens <sensitivity> --target-dpi <dpi> | --pro <name>)",
		Short: "Converts a sensitivity to another DPI, or finds the sensitivity matching a pro's eDPI.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if pro != "" {
				if dpi <= 0 {
					return errors.Wrapf(stats.ErrInvalidInput, "dpi %d", dpi)
				}
				players, ok, err := loadPlayers(cmd, flags)
				if err != nil || !ok {
					return err
				}
				for _, p := range players {
					if p.Name != pro {
						continue
					}
					edpi, err := stats.PlayerEDPI(p)
					if err != nil {
						return err
					}
					converted, err := stats.SensitivityAt(edpi, dpi)
					if err != nil {
						return errors.Wrapf(err, "%s has eDPI %s", p.Name, edpi.String())
					}
					fmt.Fprintf(out, "To match %s (eDPI %s) at %d DPI use sensitivity %s\n",
						p.Name, edpi.String(), dpi, converted.StringFixed(3))
					return nil
				}
				return errors.Errorf("no player named %q", pro)
			}

			yourSens, err := decimal.NewFromString(sens)
			if err != nil {
				return errors.Wrapf(err, "invalid sensitivity %q", sens)
			}
			converted, err := stats.ConvertSensitivity(dpi, yourSens, targetDPI)
			if err != nil {
				return errors.Wrapf(err, "dpi %d, sensitivity %s, target dpi %d", dpi, sens, targetDPI)
			}
			fmt.Fprintf(out, "Sensitivity at %d DPI: %s\n", targetDPI, converted.StringFixed(3))
			return nil
		},
	}

	cmd.Flags().Int64Var(&dpi, "dpi", 0, "Your mouse DPI.")
	cmd.Flags().StringVar(&sens, "sens", "", "Your in-game sensitivity.")
	cmd.Flags().Int64Var(&targetDPI, "target-dpi", 0, "The DPI to convert to.")
	cmd.Flags().StringVar(&pro, "pro", "", "Match the eDPI of this player instead.")
	cobra.CheckErr(cmd.MarkFlagRequired("dpi"))
	cmd.MarkFlagsMutuallyExclusive("pro", "sens")
	cmd.MarkFlagsMutuallyExclusive("pro", "target-dpi")
	return cmd
}
