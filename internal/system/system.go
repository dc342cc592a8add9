// Package system wires the CPU engine, PPU engine, and Memory Fabric into
// a runnable whole: it owns cartridge installation, the CPU/PPU reset
// sequence, and the per-instruction step loop an outer driver calls.
package system

import (
	"encoding/json"
	"fmt"
	"os"

	"nesium/internal/cartridge"
	"nesium/internal/cpu"
	"nesium/internal/diag"
	"nesium/internal/mapper"
	"nesium/internal/memory"
	"nesium/internal/ppu"
)

// Config holds the emulation-affecting settings an outer driver loads
// before constructing a System. Presentation settings (window size,
// input bindings, audio) belong to the presentation layer, not here.
type Config struct {
	Emulation EmulationConfig `json:"emulation"`
	Debug     DebugConfig     `json:"debug"`
}

// EmulationConfig mirrors the handful of emulation knobs that are
// meaningful to a CPU/PPU-only core.
type EmulationConfig struct {
	Region string `json:"region"` // "NTSC" or "PAL"
}

// DebugConfig controls the non-fatal diagnostic channel.
type DebugConfig struct {
	EnableLogging bool   `json:"enable_logging"`
	LogLevel      string `json:"log_level"` // "DEBUG", "INFO", "WARN", "ERROR"
}

// DefaultConfig returns the settings a freshly installed cartridge runs
// under absent an explicit config file.
func DefaultConfig() Config {
	return Config{
		Emulation: EmulationConfig{Region: "NTSC"},
		Debug:     DebugConfig{EnableLogging: true, LogLevel: "INFO"},
	}
}

// LoadConfig reads a JSON config file, falling back to DefaultConfig
// when path is empty.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// System is the fully wired machine: one CPU, one PPU, their two memory
// buses, and the cartridge mapper bridging them.
type System struct {
	CPU *cpu.CPU
	PPU *ppu.PPU

	cpuBus *memory.CPUBus
	ppuBus *memory.PPUBus
	mapper mapper.Mapper

	diag diag.Channel
}

// New constructs a System from a parsed cartridge and a display sink,
// installing the cartridge's mapper and resetting both processors. It
// fails only if the cartridge's declared mapper id is unsupported or its
// PRG-ROM is malformed — both fatal at install time, per spec §4.4.
func New(cart *cartridge.Cartridge, display ppu.Display, cfg Config) (*System, error) {
	diagCh := diag.Discard
	if cfg.Debug.EnableLogging {
		diagCh = diag.NewLogChannel()
	}

	ppuBus := memory.NewPPUBus()
	p := ppu.New(ppuBus, display, diagCh)

	cpuBus := memory.NewCPUBus(p)

	m, err := mapper.New(cart)
	if err != nil {
		return nil, err
	}
	if err := m.Install(cpuBus, ppuBus); err != nil {
		return nil, err
	}

	c := cpu.New(cpuBus, p.NMILine, p.ClearNMILine)

	sys := &System{
		CPU:    c,
		PPU:    p,
		cpuBus: cpuBus,
		ppuBus: ppuBus,
		mapper: m,
		diag:   diagCh,
	}
	sys.Reset()
	return sys, nil
}

// Reset puts both processors back to their power-up state.
func (s *System) Reset() {
	s.PPU.Reset()
	s.CPU.Reset()
}

// Step runs one CPU step (inside cpu.CPU.Step, a pending NMI is serviced
// as a 7-cycle step of its own; otherwise one instruction runs) and
// returns the number of master-clock cycles it consumed. The PPU has already been ticked by the Memory Fabric as a
// side effect of every bus access the instruction made.
func (s *System) Step() int {
	return s.CPU.Step()
}

// RunCycles steps the CPU until at least n cycles have been consumed,
// returning the actual total (which may overshoot by the last
// instruction's length). A minimal driver loop can call this once per
// host frame tick.
func (s *System) RunCycles(n int) int {
	total := 0
	for total < n {
		total += s.Step()
	}
	return total
}
