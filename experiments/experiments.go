// Package experiments pits difficulty tiers against each other and records
// the results as CSV for offline analysis.
package experiments

import (
	"fmt"
	"time"

	"draughts/engine"
	"draughts/experiments/metrics"
	"draughts/searcher"

	"github.com/rs/zerolog/log"
)

// TierConfig names one difficulty profile entering a match-up.
type TierConfig struct {
	Name    string
	Profile searcher.Profile
}

func DefaultTiers() []TierConfig {
	return []TierConfig{
		{Name: "easy", Profile: searcher.EasyProfile()},
		{Name: "medium", Profile: searcher.MediumProfile()},
		{Name: "hard", Profile: searcher.HardProfile()},
	}
}

// RunTierExperiment plays every ordered pairing of tiers gamesPerMatch times
// and writes game and move records under outDir.
func RunTierExperiment(tiers []TierConfig, gamesPerMatch int, outDir string) error {
	writer, err := metrics.NewWriter(outDir)
	if err != nil {
		return err
	}

	var gameRecords []metrics.GameRecord
	var moveRecords []metrics.MoveRecord
	gameID := 0
	for _, white := range tiers {
		for _, black := range tiers {
			if white.Name == black.Name {
				continue
			}
			for i := 0; i < gamesPerMatch; i++ {
				gameID++
				record, moves, err := runGame(gameID, white, black)
				if err != nil {
					return fmt.Errorf("game %d (%s vs %s): %w", gameID, white.Name, black.Name, err)
				}
				gameRecords = append(gameRecords, record)
				moveRecords = append(moveRecords, moves...)
				log.Info().
					Int("game", gameID).
					Str("white", white.Name).
					Str("black", black.Name).
					Str("outcome", record.Outcome).
					Msg("experiment game finished")
			}
		}
	}

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return err
	}
	return writer.WriteMoveRecords(moveRecords)
}

func runGame(id int, white, black TierConfig) (metrics.GameRecord, []metrics.MoveRecord, error) {
	whitePlayer, err := engine.NewSearchPlayer(white.Name, white.Profile)
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}
	blackPlayer, err := engine.NewSearchPlayer(black.Name, black.Profile)
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}

	e := engine.NewLocal(whitePlayer, blackPlayer)
	start := time.Now()
	if _, err := e.Run(); err != nil {
		return metrics.GameRecord{}, nil, err
	}
	end := time.Now()

	record := metrics.GameRecord{
		ID:    id,
		White: white.Name,
		Black: black.Name,
		GameMetric: metrics.GameMetric{
			Outcome:    e.Outcome(),
			TotalMoves: len(e.State.MoveHistory),
			StartTime:  start,
			EndTime:    end,
			Duration:   end.Sub(start),
		},
	}

	moves := make([]metrics.MoveRecord, len(e.Moves))
	for i, m := range e.Moves {
		moves[i] = metrics.MoveRecord{Game: id, MoveMetric: m}
	}
	return record, moves, nil
}
