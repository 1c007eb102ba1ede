package commands

import (
	"bufio"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/jd499/valorant-pro-settings-scraper/internal/utils"
	"github.com/jd499/valorant-pro-settings-scraper/pkg/stats"
)

func newRandomCmd(flags *globalFlags) *cobra.Command {
	var seed uint64

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Interactively shows random players and the sensitivity matching their eDPI.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			players, ok, err := loadPlayers(cmd, flags)
			if err != nil || !ok {
				return err
			}

			if !cmd.Flags().Changed("seed") {
				seed = uint64(time.Now().UnixNano())
			}
			r := rand.New(rand.NewPCG(seed, seed>>1))

			out := cmd.OutOrStdout()
			in := bufio.NewScanner(cmd.InOrStdin())
			for {
				fmt.Fprintln(out, "\nPress Enter to display a random player's details or type 'exit' to quit:")
				if !in.Scan() || strings.EqualFold(strings.TrimSpace(in.Text()), "exit") {
					return in.Err()
				}

				player, ok := stats.Random(players, r)
				if !ok {
					fmt.Fprintln(out, "No players data available.")
					continue
				}

				edpi, err := stats.PlayerEDPI(player)
				if err != nil {
					fmt.Fprintf(out, "\nPlayer %s has no usable eDPI (%q).\n", player.Name, player.EDPIText)
					continue
				}
				sensByDPI := make(map[int64]decimal.Decimal, len(stats.ReferenceDPIs))
				for _, dpi := range stats.ReferenceDPIs {
					sens, err := stats.SensitivityAt(edpi, dpi)
					if err != nil {
						continue
					}
					sensByDPI[dpi] = sens
				}
				utils.DisplayPlayerDetails(out, player, edpi, sensByDPI, stats.ReferenceDPIs)
			}
		},
	}

	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for the random player picker.")
	return cmd
}
