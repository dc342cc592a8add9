// Package main implements the nesium driver executable: ROM loading,
// windowing, and the host frame loop around the emulation core. None of
// the cycle-accuracy logic lives here — internal/cpu, internal/ppu, and
// internal/memory never import this package.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"nesium/internal/cartridge"
	"nesium/internal/system"
)

// cpuCyclesPerFrame approximates one NTSC frame's worth of CPU time:
// 89342 PPU dots per frame, three dots per CPU cycle.
const cpuCyclesPerFrame = 89342 / 3

func main() {
	var (
		romFile    = flag.String("rom", "", "Path to NES ROM file")
		configFile = flag.String("config", "", "Path to JSON configuration file")
		debug      = flag.Bool("debug", false, "Enable diagnostic logging")
		version    = flag.Bool("version", false, "Show version information")
	)
	flag.Parse()

	if *version {
		fmt.Println("nesium 0.1.0")
		os.Exit(0)
	}

	if *romFile == "" {
		log.Fatal("a ROM file is required: -rom path/to/game.nes")
	}

	cfg, err := system.LoadConfig(*configFile)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if *debug {
		cfg.Debug.EnableLogging = true
	}

	data, err := os.ReadFile(*romFile)
	if err != nil {
		log.Fatalf("reading ROM: %v", err)
	}
	cart, err := cartridge.LoadBytes(data)
	if err != nil {
		log.Fatalf("loading cartridge: %v", err)
	}

	display := newEbitenDisplay()

	sys, err := system.New(cart, display, cfg)
	if err != nil {
		log.Fatalf("starting system: %v", err)
	}

	game := &emulatorGame{sys: sys, display: display}

	ebiten.SetWindowTitle("nesium")
	ebiten.SetWindowSize(screenWidth*2, screenHeight*2)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatalf("run failed: %v", err)
	}
}

// emulatorGame implements ebiten.Game, driving the system one host frame's
// worth of CPU cycles per Update and presenting the PPU's last completed
// frame on Draw.
type emulatorGame struct {
	sys     *system.System
	display *ebitenDisplay
}

func (g *emulatorGame) Update() error {
	g.sys.RunCycles(cpuCyclesPerFrame)
	return nil
}

func (g *emulatorGame) Draw(screen *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	screen.DrawImage(g.display.frame, op)
}

func (g *emulatorGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}
