package stats

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/jd499/valorant-pro-settings-scraper/pkg/models"
)

// sensitivity values are shown with three decimals, rounded half up
const sensitivityPlaces = 3

// ReferenceDPIs are the common mouse DPI steps used for player details
var ReferenceDPIs = []int64{400, 800, 1600}

// ErrInvalidInput is returned when a DPI or sensitivity is not positive
var ErrInvalidInput = errors.New("dpi and sensitivity must be positive")

// PlayerEDPI returns the player's eDPI as an exact decimal
func PlayerEDPI(p models.PlayerRecord) (decimal.Decimal, error) {
	edpi, err := decimal.NewFromString(p.EDPIText)
	if err != nil {
		return decimal.Zero, errors.Wrapf(err, "invalid eDPI %q for %s", p.EDPIText, p.Name)
	}
	return edpi, nil
}

// SensitivityAt returns the in-game sensitivity that yields edpi at dpi
func SensitivityAt(edpi decimal.Decimal, dpi int64) (decimal.Decimal, error) {
	if dpi <= 0 || !edpi.IsPositive() {
		return decimal.Zero, ErrInvalidInput
	}
	return edpi.DivRound(decimal.NewFromInt(dpi), sensitivityPlaces), nil
}

// ConvertSensitivity returns the sensitivity that keeps the eDPI of dpi×sens
// when switching to targetDPI
func ConvertSensitivity(dpi int64, sens decimal.Decimal, targetDPI int64) (decimal.Decimal, error) {
	if dpi <= 0 || !sens.IsPositive() {
		return decimal.Zero, ErrInvalidInput
	}
	return SensitivityAt(sens.Mul(decimal.NewFromInt(dpi)), targetDPI)
}
