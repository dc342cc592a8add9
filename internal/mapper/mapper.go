// Package mapper implements the cartridge bank-switch logic. Per spec
// §4.4 and the explicit Non-goal "mappers beyond the simplest
// fixed/bankless one", only iNES mapper 0 (NROM) is implemented; every
// other mapper id is a fatal UnsupportedMapper at install time, never
// during execution.
package mapper

import (
	"fmt"

	"nesium/internal/cartridge"
	"nesium/internal/memory"
)

// Mapper installs a cartridge's banks into the CPU and PPU memory maps
// and observes subsequent writes into $8000-$FFFF.
type Mapper interface {
	Install(cpuBus *memory.CPUBus, ppuBus *memory.PPUBus) error
	NotifyWrite(addr uint16, value uint8)
}

// UnsupportedMapperError reports a mapper id outside the supported set.
// It is fatal at install time.
type UnsupportedMapperError struct {
	MapperID uint8
}

func (e *UnsupportedMapperError) Error() string {
	return fmt.Sprintf("unsupported mapper id %d", e.MapperID)
}

// New selects and constructs the Mapper for a cartridge's declared
// mapper id.
func New(cart *cartridge.Cartridge) (Mapper, error) {
	switch cart.MapperID {
	case 0:
		return &NROM{cart: cart}, nil
	default:
		return nil, &UnsupportedMapperError{MapperID: cart.MapperID}
	}
}

// NROM is the fixed/bankless mapper (iNES mapper 0).
type NROM struct {
	cart *cartridge.Cartridge
}

// Install maps NROM's PRG and CHR banks per spec §4.4: a single 16KiB
// PRG bank is mirrored into both $8000 and $C000; two banks map
// consecutively; the one CHR bank maps into both $0000 and $1000 of the
// PPU address space (an 8KiB bank naturally fills both halves).
func (m *NROM) Install(cpuBus *memory.CPUBus, ppuBus *memory.PPUBus) error {
	bank0, bank1, err := m.cart.PRGBanks()
	if err != nil {
		return err
	}
	cpuBus.MapPRG(bank0, bank1)
	cpuBus.SetMapperNotifier(m)

	chr, writable := m.cart.CHRBank()
	ppuBus.MapCHR(chr, writable)

	switch m.cart.Mirror {
	case cartridge.MirrorVertical:
		ppuBus.SetMirroring(memory.MirrorVertical)
	case cartridge.MirrorFourScreen:
		ppuBus.SetMirroring(memory.MirrorFourScreen)
	default:
		ppuBus.SetMirroring(memory.MirrorHorizontal)
	}
	return nil
}

// NotifyWrite is a no-op: NROM has no bank-switch state to react to.
func (m *NROM) NotifyWrite(addr uint16, value uint8) {}
