package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	screenWidth  = 256
	screenHeight = 240
)

// ebitenDisplay is the ppu.Display implementation backing the emulator
// window. It receives one 6-bit palette index per pixel from the PPU core
// and is solely responsible for the palette-to-RGB conversion the core
// never performs itself.
type ebitenDisplay struct {
	frame  *ebiten.Image
	pixels []byte // RGBA, screenWidth*screenHeight*4, reused across frames
}

func newEbitenDisplay() *ebitenDisplay {
	return &ebitenDisplay{
		frame:  ebiten.NewImage(screenWidth, screenHeight),
		pixels: make([]byte, screenWidth*screenHeight*4),
	}
}

// SetPixel implements ppu.Display.
func (d *ebitenDisplay) SetPixel(x, y int, paletteIndex uint8) {
	if x < 0 || x >= screenWidth || y < 0 || y >= screenHeight {
		return
	}
	rgb := defaultPalette[paletteIndex&0x3F]
	off := (y*screenWidth + x) * 4
	d.pixels[off+0] = byte(rgb >> 16)
	d.pixels[off+1] = byte(rgb >> 8)
	d.pixels[off+2] = byte(rgb)
	d.pixels[off+3] = 0xFF
}

// Present implements ppu.Display: it is called once per VBlank entry,
// flushing the accumulated pixel buffer into the ebiten image Draw reads.
func (d *ebitenDisplay) Present() {
	d.frame.WritePixels(d.pixels)
}

func (d *ebitenDisplay) clear(c color.Color) {
	d.frame.Fill(c)
}
