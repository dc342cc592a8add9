package cartridge

import "testing"

func buildINES(prgUnits, chrUnits uint8, flags6, flags7 uint8, prg, chr []uint8) []uint8 {
	header := make([]uint8, headerSize)
	copy(header[0:4], magic[:])
	header[4] = prgUnits
	header[5] = chrUnits
	header[6] = flags6
	header[7] = flags7
	data := append([]uint8{}, header...)
	data = append(data, prg...)
	data = append(data, chr...)
	return data
}

func TestLoadBytesRejectsBadMagic(t *testing.T) {
	data := make([]uint8, headerSize+prgUnit)
	_, err := LoadBytes(data)
	if err == nil {
		t.Fatalf("expected MalformedCartridgeError for bad magic")
	}
	if _, ok := err.(*MalformedCartridgeError); !ok {
		t.Fatalf("err = %T, want *MalformedCartridgeError", err)
	}
}

func TestLoadBytesRejectsTruncatedPRG(t *testing.T) {
	data := buildINES(2, 0, 0, 0, make([]uint8, prgUnit), nil) // declares 2 banks, supplies 1
	_, err := LoadBytes(data)
	if err == nil {
		t.Fatalf("expected error for truncated PRG-ROM")
	}
}

func TestLoadBytesParsesMapperIDFromBothNibbles(t *testing.T) {
	data := buildINES(1, 1, 0x10, 0x20, make([]uint8, prgUnit), make([]uint8, chrUnit))
	cart, err := LoadBytes(data)
	if err != nil {
		t.Fatalf("LoadBytes: %v", err)
	}
	if cart.MapperID != 0x21 {
		t.Fatalf("MapperID = %#02x, want 0x21", cart.MapperID)
	}
}

func TestLoadBytesMirroringFlags(t *testing.T) {
	data := buildINES(1, 0, 0x01, 0, make([]uint8, prgUnit), nil)
	cart, err := LoadBytes(data)
	if err != nil {
		t.Fatalf("LoadBytes: %v", err)
	}
	if cart.Mirror != MirrorVertical {
		t.Fatalf("Mirror = %v, want MirrorVertical", cart.Mirror)
	}
}

func TestCHRBankSynthesizesRAMWhenAbsent(t *testing.T) {
	cart := &Cartridge{PRGROM: make([]uint8, prgUnit)}
	bank, writable := cart.CHRBank()
	if !writable {
		t.Fatalf("synthesized CHR bank must be writable RAM")
	}
	if len(bank) != chrUnit {
		t.Fatalf("len(bank) = %d, want %d", len(bank), chrUnit)
	}
}

func TestPRGBanksMirrorsSingleBankIntoBoth(t *testing.T) {
	prg := make([]uint8, prgUnit)
	prg[0] = 0x42
	cart := &Cartridge{PRGROM: prg}
	bank0, bank1, err := cart.PRGBanks()
	if err != nil {
		t.Fatalf("PRGBanks: %v", err)
	}
	if &bank0[0] != &bank1[0] {
		t.Fatalf("single-bank cartridge should alias bank0 and bank1")
	}
}

func TestPRGBanksSplitsTwoBanks(t *testing.T) {
	prg := make([]uint8, 2*prgUnit)
	prg[0] = 0x11
	prg[prgUnit] = 0x22
	cart := &Cartridge{PRGROM: prg}
	bank0, bank1, err := cart.PRGBanks()
	if err != nil {
		t.Fatalf("PRGBanks: %v", err)
	}
	if bank0[0] != 0x11 || bank1[0] != 0x22 {
		t.Fatalf("banks not split correctly: bank0[0]=%#02x bank1[0]=%#02x", bank0[0], bank1[0])
	}
}
