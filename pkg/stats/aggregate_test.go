package stats

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/jd499/valorant-pro-settings-scraper/pkg/models"
)

func player(team, name, edpi string) models.PlayerRecord {
	return models.PlayerRecord{Team: team, Name: name, DPI: "800", Sensitivity: "0.4", EDPIText: edpi}
}

func TestAggregateExample(t *testing.T) {
	players := []models.PlayerRecord{
		player("A", "X", "400"),
		player("A", "Y", "320"),
		player("B", "Z", "600"),
	}

	report := Aggregate(players)

	expectedMin := []models.TeamExtreme{
		{Team: "B", Name: "Z", EDPI: 600},
		{Team: "A", Name: "Y", EDPI: 320},
	}
	expectedMax := []models.TeamExtreme{
		{Team: "B", Name: "Z", EDPI: 600},
		{Team: "A", Name: "X", EDPI: 400},
	}
	expectedMean := []models.TeamValue{
		{Team: "B", Value: 600},
		{Team: "A", Value: 360},
	}
	if diff := cmp.Diff(expectedMin, report.MinByTeam); diff != "" {
		t.Fatalf("min by team (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(expectedMax, report.MaxByTeam); diff != "" {
		t.Fatalf("max by team (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(expectedMean, report.MeanByTeam); diff != "" {
		t.Fatalf("mean by team (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(expectedMean, report.MedianByTeam); diff != "" {
		t.Fatalf("median by team (-want +got):\n%s", diff)
	}

	require.NotNil(t, report.Highest)
	require.Equal(t, players[2], *report.Highest)
	require.NotNil(t, report.Lowest)
	require.Equal(t, players[1], *report.Lowest)

	require.Equal(t, 3, report.Overall.Count)
	require.InDelta(t, 440.0, report.Overall.Mean, 1e-9)
	require.Equal(t, 400.0, report.Overall.Median)
	require.False(t, report.Empty())
}

func TestAggregateMedianEvenGroup(t *testing.T) {
	report := Aggregate([]models.PlayerRecord{
		player("A", "p1", "200"),
		player("A", "p2", "300"),
		player("A", "p3", "500"),
		player("A", "p4", "1000"),
	})

	require.Equal(t, []models.TeamValue{{Team: "A", Value: 400}}, report.MedianByTeam)
	require.Equal(t, 400.0, report.Overall.Median)
	require.Equal(t, 500.0, report.Overall.Mean)
}

func TestAggregateTiesKeepFirst(t *testing.T) {
	report := Aggregate([]models.PlayerRecord{
		player("A", "first", "300"),
		player("A", "second", "300"),
	})

	require.Equal(t, "first", report.MinByTeam[0].Name)
	require.Equal(t, "first", report.MaxByTeam[0].Name)
	require.Equal(t, "first", report.Highest.Name)
	require.Equal(t, "first", report.Lowest.Name)
}

func TestAggregateSkipsNonNumericEDPI(t *testing.T) {
	report := Aggregate([]models.PlayerRecord{
		player("A", "X", "400"),
		player("A", "broken", "n/a"),
		player("B", "only-broken", "?"),
		player("A", "Y", "200"),
	})

	require.Len(t, report.MinByTeam, 1)
	require.Equal(t, "Y", report.MinByTeam[0].Name)
	require.Equal(t, []models.TeamValue{{Team: "A", Value: 300}}, report.MeanByTeam)
	require.Equal(t, 2, report.Overall.Count)
	require.Equal(t, "X", report.Highest.Name)
}

func TestAggregateSortsDescending(t *testing.T) {
	report := Aggregate([]models.PlayerRecord{
		player("Low", "a", "100"),
		player("High", "b", "900"),
		player("Mid", "c", "500"),
	})

	var teams []string
	for _, v := range report.MeanByTeam {
		teams = append(teams, v.Team)
	}
	require.Equal(t, []string{"High", "Mid", "Low"}, teams)
	require.Equal(t, "High", report.MinByTeam[0].Team)
	require.Equal(t, "Low", report.MaxByTeam[2].Team)
}

func TestAggregateIdempotent(t *testing.T) {
	players := []models.PlayerRecord{
		player("A", "X", "400"),
		player("B", "Z", "600"),
		player("A", "Y", "320"),
		player("C", "W", "250.5"),
	}

	first := Aggregate(players)
	second := Aggregate(players)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("aggregation is not repeatable (-first +second):\n%s", diff)
	}
}

func TestAggregateEmpty(t *testing.T) {
	for _, players := range [][]models.PlayerRecord{nil, {player("A", "X", "abc")}} {
		report := Aggregate(players)
		require.True(t, report.Empty())
		require.Nil(t, report.Highest)
		require.Nil(t, report.Lowest)
		require.Empty(t, report.MinByTeam)
		require.Empty(t, report.MeanByTeam)
		require.Equal(t, models.Summary{}, report.Overall)
	}
}
