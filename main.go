package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"draughts/experiments"
)

func main() {
	runTierExperiment()
}

func runTierExperiment() {
	const gamesPerMatch = 2
	tiers := experiments.DefaultTiers()
	outDir := filepath.Join("experiments", "tiers", time.Now().UTC().Format(time.RFC3339))

	fmt.Printf("Running tier experiment (%d games per match-up)...\n", gamesPerMatch)
	if err := experiments.RunTierExperiment(tiers, gamesPerMatch, outDir); err != nil {
		fmt.Fprintf(os.Stderr, "tier experiment failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Finished tier experiment. Records written to %s\n", outDir)
}
