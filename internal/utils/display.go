// Package utils provides console rendering for the edpi-scraper
package utils

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/shopspring/decimal"

	"github.com/jd499/valorant-pro-settings-scraper/pkg/models"
)

const (
	divider = "-------------------------"
	noData  = "No data available"
)

// DisplayReport prints the eight report sections in their fixed order, each
// followed by a divider line. An empty report prints "No data available" in
// every section.
func DisplayReport(w io.Writer, report models.Report) {
	writeSection(w, "Minimum eDPI by Team", extremesTable(report.MinByTeam))
	writeSection(w, "Maximum eDPI by Team", extremesTable(report.MaxByTeam))
	writeSection(w, "Mean eDPI by Team", teamValuesTable(report.MeanByTeam))
	writeSection(w, "Median eDPI by Team", teamValuesTable(report.MedianByTeam))
	writeSection(w, "Overall Highest eDPI Player", playerTable(report.Highest))
	writeSection(w, "Overall Lowest eDPI Player", playerTable(report.Lowest))
	writeSection(w, "Overall Mean eDPI", summaryValue(report.Overall, report.Overall.Mean))
	writeSection(w, "Overall Median eDPI", summaryValue(report.Overall, report.Overall.Median))
}

// DisplayPlayers prints players as a table
func DisplayPlayers(w io.Writer, players []models.PlayerRecord) {
	if len(players) == 0 {
		fmt.Fprintln(w, noData)
		return
	}
	rows := make([]table.Row, 0, len(players))
	for _, p := range players {
		rows = append(rows, table.Row{p.Team, p.Name, p.DPI, p.Sensitivity, p.EDPIText})
	}
	fmt.Fprintln(w, renderTable(table.Row{"Team", "Player", "DPI", "Sensitivity", "eDPI"}, rows))
}

// DisplayPlayerDetails prints a player together with the sensitivity needed
// to match their eDPI at each of the given DPIs
func DisplayPlayerDetails(w io.Writer, p models.PlayerRecord, edpi decimal.Decimal, sensByDPI map[int64]decimal.Decimal, dpis []int64) {
	fmt.Fprintln(w, "\nRandom Player Information:")
	fmt.Fprintf(w, "Player: %s\n", p.Name)
	fmt.Fprintf(w, "Team: %s\n", p.Team)
	fmt.Fprintf(w, "eDPI: %s\n", edpi.String())
	fmt.Fprintln(w, "\nSensitivity at Different DPIs:")
	for _, dpi := range dpis {
		sens, ok := sensByDPI[dpi]
		if !ok {
			continue
		}
		fmt.Fprintf(w, "Sensitivity at %d DPI: %s\n", dpi, sens.StringFixed(3))
	}
}

func writeSection(w io.Writer, title, body string) {
	fmt.Fprintf(w, "\n%s:\n\n%s\n\n%s\n", title, body, divider)
}

func renderTable(header table.Row, rows []table.Row) string {
	t := table.NewWriter()
	t.AppendHeader(header)
	t.AppendRows(rows)
	t.SetStyle(table.StyleRounded)
	return t.Render()
}

func extremesTable(extremes []models.TeamExtreme) string {
	if len(extremes) == 0 {
		return noData
	}
	rows := make([]table.Row, 0, len(extremes))
	for _, e := range extremes {
		rows = append(rows, table.Row{e.Team, e.Name, FormatEDPI(e.EDPI)})
	}
	return renderTable(table.Row{"Team", "Player", "eDPI"}, rows)
}

func teamValuesTable(values []models.TeamValue) string {
	if len(values) == 0 {
		return noData
	}
	rows := make([]table.Row, 0, len(values))
	for _, v := range values {
		rows = append(rows, table.Row{v.Team, FormatStat(v.Value)})
	}
	return renderTable(table.Row{"Team", "eDPI"}, rows)
}

func playerTable(p *models.PlayerRecord) string {
	if p == nil {
		return noData
	}
	return renderTable(
		table.Row{"Team", "Player", "DPI", "Sensitivity", "eDPI"},
		[]table.Row{{p.Team, p.Name, p.DPI, p.Sensitivity, p.EDPIText}},
	)
}

func summaryValue(s models.Summary, v float64) string {
	if s.Count == 0 {
		return noData
	}
	return FormatStat(v)
}

// FormatEDPI prints an eDPI without trailing zeros
func FormatEDPI(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatStat prints a mean or median with two decimals
func FormatStat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
