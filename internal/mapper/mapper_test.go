package mapper

import (
	"testing"

	"nesium/internal/cartridge"
	"nesium/internal/memory"
)

func TestNewRejectsUnsupportedMapperID(t *testing.T) {
	cart := &cartridge.Cartridge{MapperID: 4, PRGROM: make([]uint8, 16*1024)}
	_, err := New(cart)
	if err == nil {
		t.Fatalf("expected UnsupportedMapperError for mapper id 4")
	}
	if _, ok := err.(*UnsupportedMapperError); !ok {
		t.Fatalf("err = %T, want *UnsupportedMapperError", err)
	}
}

func TestNROMInstallMapsPRGAndCHR(t *testing.T) {
	prg := make([]uint8, 16*1024)
	prg[0] = 0x4C
	cart := &cartridge.Cartridge{MapperID: 0, PRGROM: prg}
	m, err := New(cart)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	cpuBus := memory.NewCPUBus(&noopPPU{})
	ppuBus := memory.NewPPUBus()
	if err := m.Install(cpuBus, ppuBus); err != nil {
		t.Fatalf("Install: %v", err)
	}
	if v := cpuBus.Read(0x8000); v != 0x4C {
		t.Fatalf("Read(0x8000) = %#02x, want 0x4C", v)
	}
	if v := cpuBus.Read(0xC000); v != 0x4C {
		t.Fatalf("Read(0xC000) = %#02x, want 0x4C (mirrored bank)", v)
	}
}

type noopPPU struct{}

func (noopPPU) Tick(int)                  {}
func (noopPPU) ReadRegister(int) uint8    { return 0 }
func (noopPPU) WriteRegister(int, uint8)  {}
func (noopPPU) NMILine() bool             { return false }
func (noopPPU) ClearNMILine()             {}
func (noopPPU) OAMAddr() uint8            { return 0 }
func (noopPPU) OAMWrite(uint8, uint8)     {}
