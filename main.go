package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/iburimskiy/particle-field/internal/config"
	"github.com/iburimskiy/particle-field/internal/game"
)

func main() {
	cfgPath := flag.String("config", "", "YAML config file (watched for changes)")
	pick := flag.Bool("pick", false, "choose the config file with a dialog")
	particles := flag.Int("n", -1, "particle count (overrides config)")
	flag.Parse()

	log.SetPrefix("[field] ")

	var overrides config.Overrides
	if *particles >= 0 {
		overrides.Particles = particles
	}
	if err := run(*cfgPath, *pick, overrides); err != nil {
		log.Fatal(err)
	}
}

func run(cfgPath string, pick bool, overrides config.Overrides) error {
	if pick {
		path, err := game.PickConfig()
		if err != nil {
			return fmt.Errorf("pick config: %w", err)
		}
		if path != "" {
			cfgPath = path
		}
	}

	cfg, err := config.LoadWith(cfgPath, overrides)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("Particle Field - Space: Start/Stop, T: Theme, F1: Stats, Esc/Q: Quit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := game.New(cfg, cfgPath, overrides)
	defer g.Close()
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
