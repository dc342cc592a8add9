package cpu

// AddressingMode identifies one of the 6502's addressing modes. The two
// "read-only" indexed variants described in spec §4.2 (AbsoluteXRead,
// AbsoluteYRead, IndirectIndexedRead) share their address arithmetic
// with the plain indexed modes; they are distinguished on the opcode
// table by the PageCheck flag rather than by a separate enum value,
// since the two forms differ only in whether a detected page cross
// costs an extra cycle (see DESIGN.md).
type AddressingMode int

const (
	Implied AddressingMode = iota
	Accumulator
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect
	IndexedIndirect
	IndirectIndexed
	Relative
)

// resolveAddress runs the addressing-mode micro-ops for mode, depositing
// the effective address in c.P0 (or, for Immediate, PC itself) and
// advancing PC past the instruction's operand bytes. It returns whether
// the effective address differs from its un-indexed base in its high
// byte, performing the documented dummy read when it does.
func (c *CPU) resolveAddress(mode AddressingMode) bool {
	switch mode {
	case Implied, Accumulator:
		return false

	case Immediate:
		c.P0 = c.PC
		c.PC++
		return false

	case ZeroPage:
		c.P0 = uint16(c.read(c.PC))
		c.PC++
		return false

	case ZeroPageX:
		base := c.read(c.PC)
		c.PC++
		c.P0 = uint16(base + c.X)
		return false

	case ZeroPageY:
		base := c.read(c.PC)
		c.PC++
		c.P0 = uint16(base + c.Y)
		return false

	case Absolute:
		c.P0 = c.fetchWord()
		return false

	case AbsoluteX:
		base := c.fetchWord()
		addr := base + uint16(c.X)
		c.P0 = addr
		return c.checkCross(base, addr)

	case AbsoluteY:
		base := c.fetchWord()
		addr := base + uint16(c.Y)
		c.P0 = addr
		return c.checkCross(base, addr)

	case Indirect:
		ptr := c.fetchWord()
		c.P0 = c.readIndirect(ptr)
		return false

	case IndexedIndirect:
		zp := c.read(c.PC)
		c.PC++
		ptr := zp + c.X
		lo := uint16(c.read(uint16(ptr)))
		hi := uint16(c.read(uint16(ptr + 1)))
		c.P0 = hi<<8 | lo
		return false

	case IndirectIndexed:
		zp := c.read(c.PC)
		c.PC++
		lo := uint16(c.read(uint16(zp)))
		hi := uint16(c.read(uint16(zp + 1)))
		base := hi<<8 | lo
		addr := base + uint16(c.Y)
		c.P0 = addr
		return c.checkCross(base, addr)

	case Relative:
		offset := int8(c.read(c.PC))
		c.PC++
		c.P0 = uint16(int32(c.PC) + int32(offset))
		return false

	default:
		return false
	}
}

func (c *CPU) fetchWord() uint16 {
	lo := uint16(c.read(c.PC))
	hi := uint16(c.read(c.PC + 1))
	c.PC += 2
	return hi<<8 | lo
}

// checkCross reports whether base and addr differ in their high byte and,
// if so, performs the dummy read of the not-yet-corrected address.
func (c *CPU) checkCross(base, addr uint16) bool {
	if base&0xFF00 == addr&0xFF00 {
		return false
	}
	dummy := (base & 0xFF00) | (addr & 0x00FF)
	c.read(dummy)
	return true
}

// readIndirect fetches a 16-bit pointer from ptr, reproducing the
// indirect-JMP page-wrap bug: when the pointer's low byte is $FF, the
// high byte is fetched from ptr&$FF00 instead of ptr+1.
func (c *CPU) readIndirect(ptr uint16) uint16 {
	lo := uint16(c.read(ptr))
	var hiAddr uint16
	if ptr&0x00FF == 0x00FF {
		hiAddr = ptr & 0xFF00
	} else {
		hiAddr = ptr + 1
	}
	hi := uint16(c.read(hiAddr))
	return hi<<8 | lo
}
