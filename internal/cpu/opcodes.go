package cpu

// opcodeTable is populated once at package init. Every byte value is
// bound to a handler: entries left untouched by def default to the
// KIL/no-op fill, matching spec §4.2's instruction that undefined
// opcodes (including the true KIL family) never interrupt execution.
var opcodeTable [256]Instruction

func init() {
	for i := range opcodeTable {
		opcodeTable[i] = Instruction{Name: "KIL", Mode: Implied, Cycles: 2, Exec: doNothing}
	}

	def := func(op uint8, name string, mode AddressingMode, cycles int, pageCheck bool, exec func(*CPU, AddressingMode)) {
		opcodeTable[op] = Instruction{Name: name, Mode: mode, Cycles: cycles, PageCheck: pageCheck, Exec: exec}
	}

	// --- loads ---
	def(0xA9, "LDA", Immediate, 2, false, opLDA)
	def(0xA5, "LDA", ZeroPage, 3, false, opLDA)
	def(0xB5, "LDA", ZeroPageX, 4, false, opLDA)
	def(0xAD, "LDA", Absolute, 4, false, opLDA)
	def(0xBD, "LDA", AbsoluteX, 4, true, opLDA)
	def(0xB9, "LDA", AbsoluteY, 4, true, opLDA)
	def(0xA1, "LDA", IndexedIndirect, 6, false, opLDA)
	def(0xB1, "LDA", IndirectIndexed, 5, true, opLDA)

	def(0xA2, "LDX", Immediate, 2, false, opLDX)
	def(0xA6, "LDX", ZeroPage, 3, false, opLDX)
	def(0xB6, "LDX", ZeroPageY, 4, false, opLDX)
	def(0xAE, "LDX", Absolute, 4, false, opLDX)
	def(0xBE, "LDX", AbsoluteY, 4, true, opLDX)

	def(0xA0, "LDY", Immediate, 2, false, opLDY)
	def(0xA4, "LDY", ZeroPage, 3, false, opLDY)
	def(0xB4, "LDY", ZeroPageX, 4, false, opLDY)
	def(0xAC, "LDY", Absolute, 4, false, opLDY)
	def(0xBC, "LDY", AbsoluteX, 4, true, opLDY)

	// --- stores ---
	def(0x85, "STA", ZeroPage, 3, false, opSTA)
	def(0x95, "STA", ZeroPageX, 4, false, opSTA)
	def(0x8D, "STA", Absolute, 4, false, opSTA)
	def(0x9D, "STA", AbsoluteX, 5, false, opSTA)
	def(0x99, "STA", AbsoluteY, 5, false, opSTA)
	def(0x81, "STA", IndexedIndirect, 6, false, opSTA)
	def(0x91, "STA", IndirectIndexed, 6, false, opSTA)

	def(0x86, "STX", ZeroPage, 3, false, opSTX)
	def(0x96, "STX", ZeroPageY, 4, false, opSTX)
	def(0x8E, "STX", Absolute, 4, false, opSTX)

	def(0x84, "STY", ZeroPage, 3, false, opSTY)
	def(0x94, "STY", ZeroPageX, 4, false, opSTY)
	def(0x8C, "STY", Absolute, 4, false, opSTY)

	// --- transfers ---
	def(0xAA, "TAX", Implied, 2, false, opTAX)
	def(0xA8, "TAY", Implied, 2, false, opTAY)
	def(0x8A, "TXA", Implied, 2, false, opTXA)
	def(0x98, "TYA", Implied, 2, false, opTYA)
	def(0xBA, "TSX", Implied, 2, false, opTSX)
	def(0x9A, "TXS", Implied, 2, false, opTXS)

	// --- stack ---
	def(0x48, "PHA", Implied, 3, false, opPHA)
	def(0x08, "PHP", Implied, 3, false, opPHP)
	def(0x68, "PLA", Implied, 4, false, opPLA)
	def(0x28, "PLP", Implied, 4, false, opPLP)

	// --- flags ---
	def(0x18, "CLC", Implied, 2, false, opCLC)
	def(0x38, "SEC", Implied, 2, false, opSEC)
	def(0x58, "CLI", Implied, 2, false, opCLI)
	def(0x78, "SEI", Implied, 2, false, opSEI)
	def(0xB8, "CLV", Implied, 2, false, opCLV)
	def(0xD8, "CLD", Implied, 2, false, opCLD)
	def(0xF8, "SED", Implied, 2, false, opSED)

	// --- increments / decrements ---
	def(0xE8, "INX", Implied, 2, false, opINX)
	def(0xC8, "INY", Implied, 2, false, opINY)
	def(0xCA, "DEX", Implied, 2, false, opDEX)
	def(0x88, "DEY", Implied, 2, false, opDEY)

	def(0xE6, "INC", ZeroPage, 5, false, opINC)
	def(0xF6, "INC", ZeroPageX, 6, false, opINC)
	def(0xEE, "INC", Absolute, 6, false, opINC)
	def(0xFE, "INC", AbsoluteX, 7, false, opINC)

	def(0xC6, "DEC", ZeroPage, 5, false, opDEC)
	def(0xD6, "DEC", ZeroPageX, 6, false, opDEC)
	def(0xCE, "DEC", Absolute, 6, false, opDEC)
	def(0xDE, "DEC", AbsoluteX, 7, false, opDEC)

	// --- shifts / rotates ---
	def(0x0A, "ASL", Accumulator, 2, false, opASL)
	def(0x06, "ASL", ZeroPage, 5, false, opASL)
	def(0x16, "ASL", ZeroPageX, 6, false, opASL)
	def(0x0E, "ASL", Absolute, 6, false, opASL)
	def(0x1E, "ASL", AbsoluteX, 7, false, opASL)

	def(0x4A, "LSR", Accumulator, 2, false, opLSR)
	def(0x46, "LSR", ZeroPage, 5, false, opLSR)
	def(0x56, "LSR", ZeroPageX, 6, false, opLSR)
	def(0x4E, "LSR", Absolute, 6, false, opLSR)
	def(0x5E, "LSR", AbsoluteX, 7, false, opLSR)

	def(0x2A, "ROL", Accumulator, 2, false, opROL)
	def(0x26, "ROL", ZeroPage, 5, false, opROL)
	def(0x36, "ROL", ZeroPageX, 6, false, opROL)
	def(0x2E, "ROL", Absolute, 6, false, opROL)
	def(0x3E, "ROL", AbsoluteX, 7, false, opROL)

	def(0x6A, "ROR", Accumulator, 2, false, opROR)
	def(0x66, "ROR", ZeroPage, 5, false, opROR)
	def(0x76, "ROR", ZeroPageX, 6, false, opROR)
	def(0x6E, "ROR", Absolute, 6, false, opROR)
	def(0x7E, "ROR", AbsoluteX, 7, false, opROR)

	// --- logic ---
	def(0x29, "AND", Immediate, 2, false, opAND)
	def(0x25, "AND", ZeroPage, 3, false, opAND)
	def(0x35, "AND", ZeroPageX, 4, false, opAND)
	def(0x2D, "AND", Absolute, 4, false, opAND)
	def(0x3D, "AND", AbsoluteX, 4, true, opAND)
	def(0x39, "AND", AbsoluteY, 4, true, opAND)
	def(0x21, "AND", IndexedIndirect, 6, false, opAND)
	def(0x31, "AND", IndirectIndexed, 5, true, opAND)

	def(0x09, "ORA", Immediate, 2, false, opORA)
	def(0x05, "ORA", ZeroPage, 3, false, opORA)
	def(0x15, "ORA", ZeroPageX, 4, false, opORA)
	def(0x0D, "ORA", Absolute, 4, false, opORA)
	def(0x1D, "ORA", AbsoluteX, 4, true, opORA)
	def(0x19, "ORA", AbsoluteY, 4, true, opORA)
	def(0x01, "ORA", IndexedIndirect, 6, false, opORA)
	def(0x11, "ORA", IndirectIndexed, 5, true, opORA)

	def(0x49, "EOR", Immediate, 2, false, opEOR)
	def(0x45, "EOR", ZeroPage, 3, false, opEOR)
	def(0x55, "EOR", ZeroPageX, 4, false, opEOR)
	def(0x4D, "EOR", Absolute, 4, false, opEOR)
	def(0x5D, "EOR", AbsoluteX, 4, true, opEOR)
	def(0x59, "EOR", AbsoluteY, 4, true, opEOR)
	def(0x41, "EOR", IndexedIndirect, 6, false, opEOR)
	def(0x51, "EOR", IndirectIndexed, 5, true, opEOR)

	def(0x24, "BIT", ZeroPage, 3, false, opBIT)
	def(0x2C, "BIT", Absolute, 4, false, opBIT)

	// --- arithmetic ---
	def(0x69, "ADC", Immediate, 2, false, opADC)
	def(0x65, "ADC", ZeroPage, 3, false, opADC)
	def(0x75, "ADC", ZeroPageX, 4, false, opADC)
	def(0x6D, "ADC", Absolute, 4, false, opADC)
	def(0x7D, "ADC", AbsoluteX, 4, true, opADC)
	def(0x79, "ADC", AbsoluteY, 4, true, opADC)
	def(0x61, "ADC", IndexedIndirect, 6, false, opADC)
	def(0x71, "ADC", IndirectIndexed, 5, true, opADC)

	def(0xE9, "SBC", Immediate, 2, false, opSBC)
	def(0xEB, "SBC", Immediate, 2, false, opSBC) // undocumented duplicate
	def(0xE5, "SBC", ZeroPage, 3, false, opSBC)
	def(0xF5, "SBC", ZeroPageX, 4, false, opSBC)
	def(0xED, "SBC", Absolute, 4, false, opSBC)
	def(0xFD, "SBC", AbsoluteX, 4, true, opSBC)
	def(0xF9, "SBC", AbsoluteY, 4, true, opSBC)
	def(0xE1, "SBC", IndexedIndirect, 6, false, opSBC)
	def(0xF1, "SBC", IndirectIndexed, 5, true, opSBC)

	def(0xC9, "CMP", Immediate, 2, false, opCMP)
	def(0xC5, "CMP", ZeroPage, 3, false, opCMP)
	def(0xD5, "CMP", ZeroPageX, 4, false, opCMP)
	def(0xCD, "CMP", Absolute, 4, false, opCMP)
	def(0xDD, "CMP", AbsoluteX, 4, true, opCMP)
	def(0xD9, "CMP", AbsoluteY, 4, true, opCMP)
	def(0xC1, "CMP", IndexedIndirect, 6, false, opCMP)
	def(0xD1, "CMP", IndirectIndexed, 5, true, opCMP)

	def(0xE0, "CPX", Immediate, 2, false, opCPX)
	def(0xE4, "CPX", ZeroPage, 3, false, opCPX)
	def(0xEC, "CPX", Absolute, 4, false, opCPX)

	def(0xC0, "CPY", Immediate, 2, false, opCPY)
	def(0xC4, "CPY", ZeroPage, 3, false, opCPY)
	def(0xCC, "CPY", Absolute, 4, false, opCPY)

	// --- control flow ---
	def(0x4C, "JMP", Absolute, 3, false, opJMP)
	def(0x6C, "JMP", Indirect, 5, false, opJMP)
	def(0x20, "JSR", Absolute, 6, false, opJSR)
	def(0x60, "RTS", Implied, 6, false, opRTS)
	def(0x00, "BRK", Implied, 7, false, opBRK)
	def(0x40, "RTI", Implied, 6, false, opRTI)

	def(0x90, "BCC", Relative, 2, false, opBCC)
	def(0xB0, "BCS", Relative, 2, false, opBCS)
	def(0xF0, "BEQ", Relative, 2, false, opBEQ)
	def(0xD0, "BNE", Relative, 2, false, opBNE)
	def(0x30, "BMI", Relative, 2, false, opBMI)
	def(0x10, "BPL", Relative, 2, false, opBPL)
	def(0x50, "BVC", Relative, 2, false, opBVC)
	def(0x70, "BVS", Relative, 2, false, opBVS)

	// --- NOP family ---
	def(0xEA, "NOP", Implied, 2, false, opNOP)
	for _, op := range []uint8{0x1A, 0x3A, 0x5A, 0x7A, 0xDA, 0xFA} {
		def(op, "NOP", Implied, 2, false, opNOP)
	}
	for _, op := range []uint8{0x04, 0x44, 0x64} {
		def(op, "DOP", ZeroPage, 3, false, opDOP)
	}
	for _, op := range []uint8{0x14, 0x34, 0x54, 0x74, 0xD4, 0xF4} {
		def(op, "DOP", ZeroPageX, 4, false, opDOP)
	}
	for _, op := range []uint8{0x80, 0x82, 0x89, 0xC2, 0xE2} {
		def(op, "DOP", Immediate, 2, false, opDOP)
	}
	def(0x0C, "TOP", Absolute, 4, false, opTOP)
	for _, op := range []uint8{0x1C, 0x3C, 0x5C, 0x7C, 0xDC, 0xFC} {
		def(op, "TOP", AbsoluteX, 4, true, opTOP)
	}

	// --- undocumented combination opcodes ---
	def(0xA7, "LAX", ZeroPage, 3, false, opLAX)
	def(0xB7, "LAX", ZeroPageY, 4, false, opLAX)
	def(0xAF, "LAX", Absolute, 4, false, opLAX)
	def(0xBF, "LAX", AbsoluteY, 4, true, opLAX)
	def(0xA3, "LAX", IndexedIndirect, 6, false, opLAX)
	def(0xB3, "LAX", IndirectIndexed, 5, true, opLAX)

	def(0x87, "SAX", ZeroPage, 3, false, opSAX)
	def(0x97, "SAX", ZeroPageY, 4, false, opSAX)
	def(0x8F, "SAX", Absolute, 4, false, opSAX)
	def(0x83, "SAX", IndexedIndirect, 6, false, opSAX)

	def(0xC7, "DCP", ZeroPage, 5, false, opDCP)
	def(0xD7, "DCP", ZeroPageX, 6, false, opDCP)
	def(0xCF, "DCP", Absolute, 6, false, opDCP)
	def(0xDF, "DCP", AbsoluteX, 7, false, opDCP)
	def(0xDB, "DCP", AbsoluteY, 7, false, opDCP)
	def(0xC3, "DCP", IndexedIndirect, 8, false, opDCP)
	def(0xD3, "DCP", IndirectIndexed, 8, false, opDCP)

	def(0xE7, "ISB", ZeroPage, 5, false, opISB)
	def(0xF7, "ISB", ZeroPageX, 6, false, opISB)
	def(0xEF, "ISB", Absolute, 6, false, opISB)
	def(0xFF, "ISB", AbsoluteX, 7, false, opISB)
	def(0xFB, "ISB", AbsoluteY, 7, false, opISB)
	def(0xE3, "ISB", IndexedIndirect, 8, false, opISB)
	def(0xF3, "ISB", IndirectIndexed, 8, false, opISB)

	def(0x07, "SLO", ZeroPage, 5, false, opSLO)
	def(0x17, "SLO", ZeroPageX, 6, false, opSLO)
	def(0x0F, "SLO", Absolute, 6, false, opSLO)
	def(0x1F, "SLO", AbsoluteX, 7, false, opSLO)
	def(0x1B, "SLO", AbsoluteY, 7, false, opSLO)
	def(0x03, "SLO", IndexedIndirect, 8, false, opSLO)
	def(0x13, "SLO", IndirectIndexed, 8, false, opSLO)

	def(0x27, "RLA", ZeroPage, 5, false, opRLA)
	def(0x37, "RLA", ZeroPageX, 6, false, opRLA)
	def(0x2F, "RLA", Absolute, 6, false, opRLA)
	def(0x3F, "RLA", AbsoluteX, 7, false, opRLA)
	def(0x3B, "RLA", AbsoluteY, 7, false, opRLA)
	def(0x23, "RLA", IndexedIndirect, 8, false, opRLA)
	def(0x33, "RLA", IndirectIndexed, 8, false, opRLA)

	def(0x47, "SRE", ZeroPage, 5, false, opSRE)
	def(0x57, "SRE", ZeroPageX, 6, false, opSRE)
	def(0x4F, "SRE", Absolute, 6, false, opSRE)
	def(0x5F, "SRE", AbsoluteX, 7, false, opSRE)
	def(0x5B, "SRE", AbsoluteY, 7, false, opSRE)
	def(0x43, "SRE", IndexedIndirect, 8, false, opSRE)
	def(0x53, "SRE", IndirectIndexed, 8, false, opSRE)

	def(0x67, "RRA", ZeroPage, 5, false, opRRA)
	def(0x77, "RRA", ZeroPageX, 6, false, opRRA)
	def(0x6F, "RRA", Absolute, 6, false, opRRA)
	def(0x7F, "RRA", AbsoluteX, 7, false, opRRA)
	def(0x7B, "RRA", AbsoluteY, 7, false, opRRA)
	def(0x63, "RRA", IndexedIndirect, 8, false, opRRA)
	def(0x73, "RRA", IndirectIndexed, 8, false, opRRA)

	def(0x0B, "AAC", Immediate, 2, false, opAAC)
	def(0x2B, "AAC", Immediate, 2, false, opAAC)
	def(0x4B, "ASR", Immediate, 2, false, opASR)
	def(0x6B, "ARR", Immediate, 2, false, opARR)
	def(0xAB, "ATX", Immediate, 2, false, opATX)

	// 0x9C/0x9E are address-mode-only no-ops: the addressing mode still
	// runs (consuming its bus accesses), the handler stores nothing.
	def(0x9C, "SYA", AbsoluteX, 5, false, opSYA)
	def(0x9E, "SXA", AbsoluteY, 5, false, opSXA)

	// The true KIL opcodes (0x02,0x12,0x22,...) keep the default fill
	// installed above: Implied, 2 cycles, doNothing.
}
