package main

import (
	"fmt"
	"time"

	"toruslife/universe"
	"toruslife/utils"
	"toruslife/view"
)

// initializeGame sets up the initial game state
func initializeGame(cfg utils.Config) (
	*universe.Universe,
	*view.TerminalRenderer,
	*utils.Stats,
	error,
) {
	u, err := universe.NewSized(cfg.Width, cfg.Height)
	if err != nil {
		return nil, nil, nil, err
	}
	seedUniverse(u, cfg)

	renderer := &view.TerminalRenderer{}
	stats := utils.NewStats()

	return u, renderer, stats, nil
}

// seedUniverse populates the grid with random life plus a few recognizable
// patterns stamped on top
func seedUniverse(u *universe.Universe, cfg utils.Config) {
	u.Randomize(cfg.RandomDensity)

	if u.Width() >= 10 && u.Height() >= 10 {
		u.AddGlider(5, 5)
		if u.Width() >= 20 && u.Height() >= 15 {
			u.AddGlider(5, u.Width()-8)
		}

		u.AddBlinker(u.Height()/4, u.Width()/4)
		if u.Width() >= 30 {
			u.AddBlinker(3*u.Height()/4, 3*u.Width()/4)
		}
	}
}

// advance computes the next generation with the configured tick variant
func advance(u *universe.Universe, cfg utils.Config) {
	if cfg.UseParallel {
		u.TickParallel()
		return
	}
	u.Tick()
}

// displayGameInfo shows the initial game information
func displayGameInfo(cfg utils.Config, u *universe.Universe) {
	fmt.Printf("Grid: %dx%d | Initial living cells: %d | Parallel: %v\n",
		u.Width(), u.Height(), u.Population(), cfg.UseParallel)
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
	time.Sleep(2 * time.Second)
}

// updateGameState updates the game state and returns status information
func updateGameState(
	u *universe.Universe,
	generation int,
	lastFrameTime time.Time,
	stats *utils.Stats,
) (int, float64, string, bool) {
	population := u.Population()
	density := float64(population) / float64(u.Width()*u.Height()) * 100

	// Update performance stats
	stats.Update(generation, population, time.Since(lastFrameTime))

	// Stagnation is judged against previous generations, then the current
	// state joins the history
	isStagnant := u.IsStagnant()
	u.UpdateHistory()

	status := "Active"
	if isStagnant {
		status = "Stagnant"
	}
	if population == 0 {
		status = "Extinct"
	}

	return population, density, status, isStagnant
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(
	population, stagnantCount, generationsSinceRestart int,
	cfg utils.Config,
) (bool, string) {
	if population == 0 {
		return true, "extinction"
	}
	if stagnantCount >= cfg.StagnationThreshold {
		return true, "stagnation detected"
	}
	if generationsSinceRestart > 0 && generationsSinceRestart%200 == 0 {
		return true, "periodic refresh"
	}
	return false, ""
}

// restartGame wipes the grid through a same-size resize and reseeds it
func restartGame(u *universe.Universe, cfg utils.Config) error {
	if err := u.SetWidth(u.Width()); err != nil {
		return err
	}
	seedUniverse(u, cfg)

	fmt.Printf("New patterns loaded! Living cells: %d\n", u.Population())
	time.Sleep(1 * time.Second)

	return nil
}
