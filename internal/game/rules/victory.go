// Package rules holds match-end determination, kept separate from the
// sequencer so scoring policy stays testable on its own.
package rules

import "github.com/rs/zerolog"

// Winner identifies the match outcome.
type Winner string

const (
	WinnerA    Winner = "A"
	WinnerB    Winner = "B"
	WinnerDraw Winner = "DRAW"
	WinnerNone Winner = ""
)

// VictoryChecker handles match-over detection and winner determination.
type VictoryChecker struct {
	logger    zerolog.Logger
	threshold int
}

// NewVictoryChecker creates a checker for the configured point
// threshold.
func NewVictoryChecker(logger zerolog.Logger, threshold int) *VictoryChecker {
	return &VictoryChecker{
		logger:    logger.With().Str("component", "VictoryChecker").Logger(),
		threshold: threshold,
	}
}

// CheckThreshold reports whether either side has reached the victory
// score. Checked after Hold scoring and again after Conquer scoring;
// the first side to reach the threshold wins immediately.
func (vc *VictoryChecker) CheckThreshold(pointsA, pointsB int) (bool, Winner) {
	if pointsA >= vc.threshold {
		vc.logger.Info().Int("points_a", pointsA).Int("points_b", pointsB).Msg("Side A reached victory score")
		return true, WinnerA
	}
	if pointsB >= vc.threshold {
		vc.logger.Info().Int("points_a", pointsA).Int("points_b", pointsB).Msg("Side B reached victory score")
		return true, WinnerB
	}
	return false, WinnerNone
}

// DecideAtTurnCap picks the winner when the turn counter exceeds the
// maximum without a threshold win: higher points win, exact tie draws.
func (vc *VictoryChecker) DecideAtTurnCap(pointsA, pointsB int) Winner {
	switch {
	case pointsA > pointsB:
		return WinnerA
	case pointsB > pointsA:
		return WinnerB
	default:
		return WinnerDraw
	}
}
