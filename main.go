package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/integrii/flaggy"
	"go.uber.org/zap"

	"toruslife/universe"
	"toruslife/utils"
)

const configFile = "config.json"

func main() {
	cfg := initConfig()

	if cfg.Headless {
		runHeadless(cfg)
		return
	}
	runInteractive(cfg)
}

// initConfig loads the JSON configuration (falling back to defaults when the
// file is absent) and applies command-line overrides on top
func initConfig() utils.Config {
	cfg, err := utils.LoadConfig(configFile)
	if err != nil {
		fmt.Printf("Using default configuration (%s not loaded)\n", configFile)
		cfg = utils.DefaultConfig()
	}

	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.Int(&cfg.Width, "x", "width", "Width of the simulation grid")
	flaggy.Int(&cfg.Height, "y", "height", "Height of the simulation grid")
	flaggy.Duration(&cfg.FrameRate, "i", "interval", "Interval between generations, e.g. 150ms")
	flaggy.Int(&cfg.MaxGenerations, "s", "maxGenerations", "Limit the simulation to this many generations")
	flaggy.Bool(&cfg.UseParallel, "p", "parallel", "Advance generations with one worker per CPU")
	flaggy.Bool(&cfg.Headless, "q", "headless", "Run without rendering, logging progress instead")
	flaggy.Parse()

	if err = cfg.Validate(); err != nil {
		flaggy.ShowHelpAndExit(err.Error())
	}
	return cfg
}

// runInteractive renders each generation to the terminal until interrupted
func runInteractive(cfg utils.Config) {
	u, renderer, stats, err := initializeGame(cfg)
	if err != nil {
		fmt.Println("Failed to initialize:", err)
		os.Exit(1)
	}
	displayGameInfo(cfg, u)

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	var (
		generation     = 0
		stagnantCount  = 0
		lastRestartGen = 0
		lastFrameTime  = time.Now()
	)

	for {
		select {
		case <-sigChan:
			fmt.Println("\nShutting down gracefully...")
			fmt.Printf("Final stats: %d generations in %.1f seconds\n",
				generation, stats.Runtime().Seconds())
			fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
				stats.GenerationsPerSecond, stats.AveragePopulation)
			return
		default:
			// Continue with game loop
		}

		frameStart := time.Now()
		renderer.Clear()

		population, density, status, isStagnant := updateGameState(u, generation, lastFrameTime, stats)
		lastFrameTime = frameStart

		if isStagnant {
			stagnantCount++
		} else {
			stagnantCount = 0
		}

		renderer.DisplayStatus(generation, population, density, status)
		renderer.Display(u)

		if cfg.MaxGenerations > 0 && generation >= cfg.MaxGenerations {
			fmt.Printf("\nReached maximum generations limit (%d)\n", cfg.MaxGenerations)
			return
		}

		shouldRestart, restartReason := checkRestartConditions(population, stagnantCount, generation-lastRestartGen, cfg)

		if shouldRestart && cfg.AutoRestart {
			fmt.Printf("Restarting due to %s...\n", restartReason)
			if err = restartGame(u, cfg); err != nil {
				fmt.Println("Failed to restart:", err)
				return
			}
			lastRestartGen = generation
			stagnantCount = 0
		} else if stagnantCount >= 2 && stagnantCount < cfg.StagnationThreshold {
			// Inject some life to try to break the stagnation
			u.InjectRandomLife(cfg.InjectionCount)
		}

		advance(u, cfg)
		generation++

		time.Sleep(cfg.FrameRate)
	}
}

// runHeadless advances the simulation without rendering, reporting progress
// through structured logs
func runHeadless(cfg utils.Config) {
	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Println("Failed to build logger:", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()
	universe.SetLogger(logger)

	u, _, stats, err := initializeGame(cfg)
	if err != nil {
		logger.Fatal("failed to initialize universe", zap.Error(err))
	}

	logger.Info("simulation started",
		zap.Int("width", u.Width()),
		zap.Int("height", u.Height()),
		zap.Int("population", u.Population()),
		zap.Bool("parallel", cfg.UseParallel),
	)

	for generation := 1; cfg.MaxGenerations == 0 || generation <= cfg.MaxGenerations; generation++ {
		frameStart := time.Now()
		advance(u, cfg)
		population := u.Population()
		stats.Update(generation, population, time.Since(frameStart))

		isStagnant := u.IsStagnant()
		u.UpdateHistory()

		if generation%10 == 0 {
			logger.Info("generation advanced",
				zap.Int("generation", generation),
				zap.Int("population", population),
				zap.Float64("gen_per_sec", stats.GenerationsPerSecond),
			)
		}
		if population == 0 {
			logger.Info("universe extinct", zap.Int("generation", generation))
			break
		}
		if isStagnant {
			logger.Info("universe stagnant", zap.Int("generation", generation))
			break
		}
	}

	logger.Info("simulation finished",
		zap.Int("generations", stats.TotalGenerations),
		zap.Float64("avg_population", stats.AveragePopulation),
		zap.Duration("runtime", stats.Runtime()),
	)
}
