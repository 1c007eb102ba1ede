// Package parser extracts pro player settings from the prosettings.net list page
package parser

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/apex/log"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/jd499/valorant-pro-settings-scraper/pkg/models"
)

// DefaultTableID is the id of the player table on the list page
const DefaultTableID = "pro-list-table"

// Fixed column positions of the player table
const (
	minCells       = 8
	colTeam        = 1
	colName        = 2
	colDPI         = 5
	colSensitivity = 6
	colEDPI        = 7
)

var tracer = otel.Tracer("edpi-scraper/pkg/parser")

var (
	// ErrTableNotFound is returned when the page has no player table
	ErrTableNotFound = errors.New("table not found on the page")
	// ErrNoRows is returned when the player table has no rows at all, not even a header
	ErrNoRows = errors.New("table has no rows")
)

// StructuralError reports a page whose layout does not match the expected table
type StructuralError struct {
	TableID string
	Err     error
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("table #%s: %v", e.TableID, e.Err)
}

func (e *StructuralError) Unwrap() error {
	return e.Err
}

// SkipReason explains why a table row did not produce a record
type SkipReason int

const (
	// SkipShortRow marks rows with fewer cells than the player layout, e.g. section dividers
	SkipShortRow SkipReason = iota
	// SkipEmptyField marks rows where a required cell is blank
	SkipEmptyField
	// SkipInactive marks free agents, retired players and content creators
	SkipInactive
)

func (r SkipReason) String() string {
	switch r {
	case SkipShortRow:
		return "short row"
	case SkipEmptyField:
		return "empty field"
	case SkipInactive:
		return "inactive"
	}
	return fmt.Sprintf("SkipReason(%d)", int(r))
}

// SkippedRow identifies a data row (zero-based, header excluded) that was dropped
type SkippedRow struct {
	Index  int
	Reason SkipReason
}

// Options controls extraction
type Options struct {
	// TableID defaults to DefaultTableID
	TableID string
	// ExcludeInactive drops rows whose team cell marks the player as not competing
	ExcludeInactive bool
}

// Result holds the extracted players and the rows that were dropped
type Result struct {
	Players []models.PlayerRecord
	Skipped []SkippedRow
}

// ParseDocument parses an HTML page
func ParseDocument(content []byte) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(content))
	if err != nil {
		return nil, errors.Wrap(err, "error parsing HTML content")
	}
	return doc, nil
}

// Extract parses an HTML page and extracts its player table
func Extract(ctx context.Context, content []byte, opts Options) (Result, error) {
	doc, err := ParseDocument(content)
	if err != nil {
		return Result{}, err
	}
	return ExtractPlayers(ctx, doc, opts)
}

// ExtractPlayers converts the rows of the player table into records. On error
// the returned Result still carries whatever was extracted before the failure.
func ExtractPlayers(ctx context.Context, doc *goquery.Document, opts Options) (Result, error) {
	_, span := tracer.Start(ctx, "ExtractPlayers")
	defer span.End()

	tableID := opts.TableID
	if tableID == "" {
		tableID = DefaultTableID
	}

	var result Result

	table := doc.Find("table").FilterFunction(func(_ int, s *goquery.Selection) bool {
		id, _ := s.Attr("id")
		return id == tableID
	}).First()
	if table.Length() == 0 {
		err := &StructuralError{TableID: tableID, Err: ErrTableNotFound}
		span.RecordError(err)
		span.SetStatus(codes.Error, "player table missing")
		return result, err
	}

	rows := table.Find("tr")
	if rows.Length() == 0 {
		err := &StructuralError{TableID: tableID, Err: ErrNoRows}
		span.RecordError(err)
		span.SetStatus(codes.Error, "player table empty")
		return result, err
	}

	// The first row is the header
	rows.Slice(1, rows.Length()).Each(func(i int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < minCells {
			result.Skipped = append(result.Skipped, SkippedRow{Index: i, Reason: SkipShortRow})
			return
		}

		cell := func(idx int) string {
			return strings.TrimSpace(cells.Eq(idx).Text())
		}

		team := cell(colTeam)
		if opts.ExcludeInactive && IsInactive(team) {
			log.WithFields(log.Fields{"row": i, "team": team}).Debug("skipping inactive player")
			result.Skipped = append(result.Skipped, SkippedRow{Index: i, Reason: SkipInactive})
			return
		}

		player := models.PlayerRecord{
			Team:        team,
			Name:        cell(colName),
			DPI:         cell(colDPI),
			Sensitivity: cell(colSensitivity),
			EDPIText:    cell(colEDPI),
		}
		if player.Team == "" || player.Name == "" || player.DPI == "" ||
			player.Sensitivity == "" || player.EDPIText == "" {
			result.Skipped = append(result.Skipped, SkippedRow{Index: i, Reason: SkipEmptyField})
			return
		}

		result.Players = append(result.Players, player)
	})

	span.SetAttributes(
		attribute.Int("players", len(result.Players)),
		attribute.Int("skipped", len(result.Skipped)),
	)
	log.WithFields(log.Fields{
		"players": len(result.Players),
		"skipped": len(result.Skipped),
	}).Debug("extracted player table")

	return result, nil
}
