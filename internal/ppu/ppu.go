// Package ppu implements the Picture Processing Unit's dot-clocked state
// machine: scroll-register arithmetic, the VBlank/NMI timing line, and the
// simplified background pixel pipeline. Sprite rendering is out of scope
// (spec §4.3); OAM storage and OAM DMA compatibility are kept because the
// Memory Fabric and the testable properties depend on them.
package ppu

import (
	"nesium/internal/diag"
	"nesium/internal/memory"
)

// Display is the external collaborator the PPU presents frames to. The
// core never performs palette-to-RGB conversion; it only ever hands out
// a 6-bit palette index per pixel.
type Display interface {
	SetPixel(x, y int, paletteIndex uint8)
	Present()
}

// Register bit masks for PPUCTRL, PPUMASK and PPUSTATUS.
const (
	ctrlNMIEnable     = 1 << 7
	ctrlSpriteHeight  = 1 << 5
	ctrlBGPatternAddr = 1 << 4
	ctrlVRAMIncrement = 1 << 2
	ctrlNametableMask = 0x03

	maskShowSprites    = 1 << 4
	maskShowBackground = 1 << 3

	statusVBlank         = 1 << 7
	statusSpriteOverflow = 1 << 5
	statusSprite0Hit     = 1 << 6
)

// PPU is the 2C02-style picture processing unit.
type PPU struct {
	// MMIO-visible registers.
	ctrl    uint8
	mask    uint8
	status  uint8
	oamAddr uint8

	// Internal scroll state.
	v uint16 // current VRAM address (15 bits)
	t uint16 // temporary VRAM address / latch (15 bits)
	x uint8  // fine X scroll (3 bits)
	w bool   // write toggle

	scanline  int // -21..240
	linecycle int // 0..340 (341 dots per scanline)

	nmiLine bool

	oam [256]uint8

	// lastWritten remembers the raw byte last written to each of the
	// eight registers, returned by reads of the write-only ones.
	lastWritten [8]uint8

	bus     *memory.PPUBus
	display Display
	diag    diag.Channel
}

// New constructs a PPU wired to the given PPU-side memory bus, display
// sink, and diagnostic channel. diagCh may be diag.Discard.
func New(bus *memory.PPUBus, display Display, diagCh diag.Channel) *PPU {
	if diagCh == nil {
		diagCh = diag.Discard
	}
	return &PPU{
		scanline: -21,
		bus:      bus,
		display:  display,
		diag:     diagCh,
	}
}

// Reset returns the PPU to its power-up state.
func (p *PPU) Reset() {
	p.ctrl = 0
	p.mask = 0
	p.status = 0
	p.oamAddr = 0
	p.v, p.t, p.x = 0, 0, 0
	p.w = false
	p.scanline = -21
	p.linecycle = 0
	p.nmiLine = false
}

// Tick advances the PPU by n dots. The Memory Fabric calls Tick(3) for
// every CPU memory access; OAM DMA calls it directly for its own budget.
func (p *PPU) Tick(dots int) {
	for i := 0; i < dots; i++ {
		p.step()
	}
}

// NMILine reports whether the PPU currently wants to service an NMI.
func (p *PPU) NMILine() bool { return p.nmiLine }

// ClearNMILine is called by the CPU once it has serviced a pending NMI.
func (p *PPU) ClearNMILine() { p.nmiLine = false }

// OAMAddr exposes the current OAMADDR register for OAM DMA.
func (p *PPU) OAMAddr() uint8 { return p.oamAddr }

// OAMWrite stores directly into OAM at the given wrapped index, used only
// by OAM DMA (it does not move OAMADDR or cost the write-path cycles a
// CPU-visible OAMDATA write would).
func (p *PPU) OAMWrite(index uint8, value uint8) {
	p.oam[index] = value
}

// SetSpriteOverflow and SetSprite0Hit latch the corresponding PPUSTATUS
// bits directly. With no sprite pixel pipeline, nothing in this package
// sets them on its own; they exist as plain status latches a composition
// layer or test harness can drive, readable back through PPUSTATUS like
// the real register.
func (p *PPU) SetSpriteOverflow(v bool) {
	if v {
		p.status |= statusSpriteOverflow
	} else {
		p.status &^= statusSpriteOverflow
	}
}

func (p *PPU) SetSprite0Hit(v bool) {
	if v {
		p.status |= statusSprite0Hit
	} else {
		p.status &^= statusSprite0Hit
	}
}

func (p *PPU) renderingEnabled() bool {
	return p.mask&(maskShowBackground|maskShowSprites) != 0
}

// step processes exactly one dot at the PPU's current (scanline,
// linecycle) position, then advances the clock.
func (p *PPU) step() {
	visible := p.scanline >= 0 && p.scanline < 240

	switch {
	case visible && p.linecycle < 256:
		p.renderPixel()
		if p.renderingEnabled() && p.linecycle%8 == 7 {
			p.incrementCoarseX()
		}
	case visible && p.linecycle == 256:
		if p.renderingEnabled() {
			p.restoreHorizontalScroll()
		}
	case p.scanline == -1 && p.linecycle == 304:
		if p.renderingEnabled() {
			p.v = p.t
		}
	}

	p.linecycle++
	if p.linecycle > 340 {
		p.linecycle = 0
		if p.renderingEnabled() {
			p.incrementY()
		}
		p.scanline++
		if p.scanline > 240 {
			p.scanline = -21
			p.enterVBlank()
		}
	}
}

func (p *PPU) enterVBlank() {
	p.status |= statusVBlank
	if p.ctrl&ctrlNMIEnable != 0 {
		p.nmiLine = true
	}
	p.display.Present()
}

// incrementCoarseX implements the standard NES "increment horizontal
// position in v" ripple: bump coarse X, and on its own 5-bit overflow
// wrap it and toggle the horizontal nametable select bit.
func (p *PPU) incrementCoarseX() {
	if p.v&0x001F == 31 {
		p.v &^= 0x001F
		p.v ^= 0x0400
	} else {
		p.v++
	}
}

// incrementY implements the standard NES "increment vertical position in
// v": bump fine Y, and on its own overflow bump coarse Y, wrapping the
// 30-row nametable and toggling the vertical nametable select bit.
func (p *PPU) incrementY() {
	if p.v&0x7000 != 0x7000 {
		p.v += 0x1000
		return
	}
	p.v &^= 0x7000
	coarseY := (p.v & 0x03E0) >> 5
	switch coarseY {
	case 29:
		coarseY = 0
		p.v ^= 0x0800
	case 31:
		coarseY = 0
	default:
		coarseY++
	}
	p.v = (p.v &^ 0x03E0) | (coarseY << 5)
}

// restoreHorizontalScroll copies the horizontal bits (nametable-X, coarse
// X) from t back into v, performed once per visible scanline at dot 256.
func (p *PPU) restoreHorizontalScroll() {
	p.v = (p.v &^ 0x041F) | (p.t & 0x041F)
}

// renderPixel produces one background pixel for the current dot,
// following spec §4.3 steps 1-9.
func (p *PPU) renderPixel() {
	baseNametable := uint16(0x2000) + 0x0400*uint16((p.v>>10)&0x03)

	coarseX := int(p.v & 0x001F)
	coarseY := int((p.v >> 5) & 0x001F)
	fineY := int((p.v >> 12) & 0x07)
	fineX := int(p.x)

	i := 8*coarseX + fineX
	j := 8*coarseY + fineY

	nt := p.bus.Read(baseNametable + uint16(32*(j/8)+(i/8)))
	at := p.bus.Read(baseNametable + 0x3C0 + uint16(8*(j/32)+(i/32)))

	// Spec §4.3 step 5 / original_source 2C02.c: this ORs in PPUCTRL bit 4
	// at bit 7 of the pattern address, not a 0x1000 bank switch — a
	// hardware quirk preserved as documented rather than corrected.
	patternBase := uint16(nt) * 16
	patternBase |= uint16(p.ctrl&ctrlBGPatternAddr) << 3
	row := uint16(j % 8)
	lo := p.bus.Read(patternBase + row)
	hi := p.bus.Read(patternBase + row + 8)

	bit := uint(7 - (i % 8))
	p0 := (lo >> bit) & 1
	p1 := (hi >> bit) & 1

	quadX := (i / 16) & 1
	quadY := (j / 16) & 1
	shift := uint(0)
	switch {
	case quadX == 0 && quadY == 0:
		shift = 0 // A
	case quadX == 1 && quadY == 0:
		shift = 2 // B
	case quadX == 0 && quadY == 1:
		shift = 4 // C
	default:
		shift = 6 // D
	}
	attr := (at >> shift) & 0x03

	paletteAddr := 0x3F00 | uint16(attr)<<2 | uint16(p1)<<1 | uint16(p0)
	index := p.bus.Read(paletteAddr)

	if index >= 0x40 {
		p.diag.Report("PPU", "palette index %#02x out of range at (%d,%d), substituting black", index, p.linecycle, p.scanline)
		index = 0
	}

	p.display.SetPixel(p.linecycle, p.scanline, index)
}
