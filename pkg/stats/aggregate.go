// Package stats computes eDPI statistics over scraped player records
package stats

import (
	"cmp"
	"slices"

	mstats "github.com/montanaflynn/stats"

	"github.com/jd499/valorant-pro-settings-scraper/pkg/models"
)

type teamGroup struct {
	team     string
	values   mstats.Float64Data
	min, max models.TeamExtreme
}

// Aggregate groups players by team and computes per-team and overall eDPI
// statistics. Players whose eDPI is not numeric are left out of every
// computation. On ties the first player in input order wins.
func Aggregate(players []models.PlayerRecord) models.Report {
	var report models.Report

	var groups []*teamGroup
	byTeam := make(map[string]*teamGroup)
	var all mstats.Float64Data
	var highest, lowest float64

	for i, p := range players {
		v, ok := p.EDPI()
		if !ok {
			continue
		}

		g, found := byTeam[p.Team]
		if !found {
			extreme := models.TeamExtreme{Team: p.Team, Name: p.Name, EDPI: v}
			g = &teamGroup{team: p.Team, min: extreme, max: extreme}
			byTeam[p.Team] = g
			groups = append(groups, g)
		}
		if v < g.min.EDPI {
			g.min = models.TeamExtreme{Team: p.Team, Name: p.Name, EDPI: v}
		}
		if v > g.max.EDPI {
			g.max = models.TeamExtreme{Team: p.Team, Name: p.Name, EDPI: v}
		}
		g.values = append(g.values, v)

		if report.Highest == nil || v > highest {
			rec := players[i]
			report.Highest = &rec
			highest = v
		}
		if report.Lowest == nil || v < lowest {
			rec := players[i]
			report.Lowest = &rec
			lowest = v
		}
		all = append(all, v)
	}

	for _, g := range groups {
		summary := summarize(g.values)
		report.MinByTeam = append(report.MinByTeam, g.min)
		report.MaxByTeam = append(report.MaxByTeam, g.max)
		report.MeanByTeam = append(report.MeanByTeam, models.TeamValue{Team: g.team, Value: summary.Mean})
		report.MedianByTeam = append(report.MedianByTeam, models.TeamValue{Team: g.team, Value: summary.Median})
	}

	byEDPI := func(a, b models.TeamExtreme) int { return cmp.Compare(b.EDPI, a.EDPI) }
	byValue := func(a, b models.TeamValue) int { return cmp.Compare(b.Value, a.Value) }
	slices.SortStableFunc(report.MinByTeam, byEDPI)
	slices.SortStableFunc(report.MaxByTeam, byEDPI)
	slices.SortStableFunc(report.MeanByTeam, byValue)
	slices.SortStableFunc(report.MedianByTeam, byValue)

	report.Overall = summarize(all)
	return report
}

func summarize(data mstats.Float64Data) models.Summary {
	mean, err := data.Mean()
	if err != nil {
		// only EmptyInputErr is possible here
		return models.Summary{}
	}
	median, err := data.Median()
	if err != nil {
		return models.Summary{}
	}
	return models.Summary{Count: data.Len(), Mean: mean, Median: median}
}
