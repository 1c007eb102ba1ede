// Package models contains data structures for pro player sensitivity settings
package models

import (
	"math"
	"strconv"
)

// PlayerRecord holds one row of the pro settings table
type PlayerRecord struct {
	Team        string
	Name        string
	DPI         string
	Sensitivity string
	EDPIText    string
}

// EDPI parses the effective DPI of the player. It reports false when the
// cell does not hold a finite number.
func (p PlayerRecord) EDPI() (float64, bool) {
	v, err := strconv.ParseFloat(p.EDPIText, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// TeamExtreme is the lowest or highest eDPI player of a team
type TeamExtreme struct {
	Team string
	Name string
	EDPI float64
}

// TeamValue is a per-team statistic such as the mean eDPI
type TeamValue struct {
	Team  string
	Value float64
}

// Summary holds the descriptive statistics of a set of eDPI values.
// Count is zero when there was nothing to summarize.
type Summary struct {
	Count  int
	Mean   float64
	Median float64
}

// Report holds the grouped and overall eDPI statistics
type Report struct {
	MinByTeam    []TeamExtreme
	MaxByTeam    []TeamExtreme
	MeanByTeam   []TeamValue
	MedianByTeam []TeamValue
	Highest      *PlayerRecord
	Lowest       *PlayerRecord
	Overall      Summary
}

// Empty reports whether no player contributed a numeric eDPI
func (r Report) Empty() bool {
	return r.Overall.Count == 0
}
