package searcher

import (
	"fmt"
	"time"
)

// Profile parameterizes one difficulty tier of the search. All weakening is
// driven from here: leaf noise during search and blunder selection at the
// root. A profile is validated once, before any search work begins.
type Profile struct {
	// MaxDepth bounds iterative deepening, in plies.
	MaxDepth int
	// TimeLimit stops deepening once elapsed time reaches it, checked
	// between (never within) depth iterations. Zero means no time limit.
	TimeLimit time.Duration
	// NoiseAmplitude adds a uniform perturbation in ±NoiseAmplitude to every
	// leaf evaluation when positive.
	NoiseAmplitude float64
	// BlunderProbability is the chance the root discards the best move for a
	// near-best alternative.
	BlunderProbability float64
	// BlunderMargin is how far below the best score an alternative may lie
	// and still be blunder-eligible.
	BlunderMargin float64
	// EvalFeatureScale scales the positional evaluation terms: 0 plays on
	// material only, 1 applies full positional weight.
	EvalFeatureScale float64

	UseTranspositionTable bool
	UseKillerMoves        bool
}

func (p Profile) Validate() error {
	if p.MaxDepth < 1 {
		return fmt.Errorf("profile: MaxDepth must be at least 1, got %d", p.MaxDepth)
	}
	if p.MaxDepth >= maxPly {
		return fmt.Errorf("profile: MaxDepth must be below %d, got %d", maxPly, p.MaxDepth)
	}
	if p.TimeLimit < 0 {
		return fmt.Errorf("profile: TimeLimit must not be negative, got %v", p.TimeLimit)
	}
	if p.NoiseAmplitude < 0 {
		return fmt.Errorf("profile: NoiseAmplitude must not be negative, got %v", p.NoiseAmplitude)
	}
	if p.BlunderProbability < 0 || p.BlunderProbability > 1 {
		return fmt.Errorf("profile: BlunderProbability must be in [0,1], got %v", p.BlunderProbability)
	}
	if p.BlunderMargin < 0 {
		return fmt.Errorf("profile: BlunderMargin must not be negative, got %v", p.BlunderMargin)
	}
	if p.EvalFeatureScale < 0 || p.EvalFeatureScale > 1 {
		return fmt.Errorf("profile: EvalFeatureScale must be in [0,1], got %v", p.EvalFeatureScale)
	}
	return nil
}

// Difficulty tier presets. All tiers share the one search core; they differ
// only in depth, noise, and blunder parameters.

func EasyProfile() Profile {
	return Profile{
		MaxDepth:           2,
		NoiseAmplitude:     60,
		BlunderProbability: 0.35,
		BlunderMargin:      120,
		EvalFeatureScale:   0.25,
	}
}

func MediumProfile() Profile {
	return Profile{
		MaxDepth:              4,
		NoiseAmplitude:        25,
		BlunderProbability:    0.15,
		BlunderMargin:         80,
		EvalFeatureScale:      0.6,
		UseTranspositionTable: true,
		UseKillerMoves:        true,
	}
}

func HardProfile() Profile {
	return Profile{
		MaxDepth:              7,
		NoiseAmplitude:        5,
		BlunderProbability:    0.05,
		BlunderMargin:         40,
		EvalFeatureScale:      1,
		UseTranspositionTable: true,
		UseKillerMoves:        true,
	}
}

func ExpertProfile() Profile {
	return Profile{
		MaxDepth:              16,
		TimeLimit:             3 * time.Second,
		EvalFeatureScale:      1,
		UseTranspositionTable: true,
		UseKillerMoves:        true,
	}
}
