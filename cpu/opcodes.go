package cpu

import "fmt"

// An Opcode names a decoded instruction and carries the Step that executes
// it. Unlike a byte-to-byte 6502-style table keyed purely by addressing
// mode, Cycles is not stored separately: the Step itself is the only source
// of truth for how many machine cycles an instruction takes, so a family's
// cycle count can never drift from its flag semantics.
type Opcode struct {
	Name string
	Step Step
}

// Opcodes is the primary 256-entry table. Large regular blocks (LD r,r',
// the ALU block, the 16-bit register-pair families) are generated by
// iteration; only the genuinely irregular single-purpose opcodes are
// spelled out by hand. Every byte 0x00-0xFF has an entry: 11 are undefined
// and mapped to a 1-cycle no-op, the rest are real instructions.
var Opcodes = make(map[byte]Opcode, 256)

func regName(idx byte) string {
	return [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}[idx]
}

var aluNames = [8]string{"ADD", "ADC", "SUB", "SBC", "AND", "XOR", "OR", "CP"}

var undefinedOpcodes = [11]byte{0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC, 0xFD}

func init() {
	for _, o := range undefinedOpcodes {
		Opcodes[o] = Opcode{Name: "UNDEFINED", Step: undefinedStep}
	}

	// 0x40-0x7F: uniform LD r,r' block, 0x76 carved out for HALT.
	for dst := byte(0); dst < 8; dst++ {
		for src := byte(0); src < 8; src++ {
			o := 0x40 | dst<<3 | src
			switch {
			case dst == rHL && src == rHL:
				Opcodes[o] = Opcode{Name: "HALT", Step: haltStep}
			case dst == rHL:
				Opcodes[o] = Opcode{Name: "LD (HL)," + regName(src), Step: ldHLRStep(src)}
			case src == rHL:
				Opcodes[o] = Opcode{Name: "LD " + regName(dst) + ",(HL)", Step: ldRHLStep(dst)}
			default:
				Opcodes[o] = Opcode{Name: "LD " + regName(dst) + "," + regName(src), Step: ldRRStep(dst, src)}
			}
		}
	}

	// 0x80-0xBF: eight ALU ops x eight operands.
	for op := byte(0); op < 8; op++ {
		for src := byte(0); src < 8; src++ {
			o := 0x80 | op<<3 | src
			name := aluNames[op] + " A," + regName(src)
			if src == rHL {
				Opcodes[o] = Opcode{Name: name, Step: aluHLStep(aluOp(op))}
			} else {
				Opcodes[o] = Opcode{Name: name, Step: aluRegStep(aluOp(op), src)}
			}
		}
	}

	// 0xC6,0xCE,...,0xFE: the same eight ALU ops against an immediate byte.
	for op := byte(0); op < 8; op++ {
		o := 0xC6 + op<<3
		Opcodes[o] = Opcode{Name: aluNames[op] + " A,d8", Step: aluImmStep(aluOp(op))}
	}

	// 0x04,0x0C,...,0x3C and 0x05,0x0D,...,0x3D: INC r / DEC r.
	for idx := byte(0); idx < 8; idx++ {
		incOp := 0x04 | idx<<3
		decOp := 0x05 | idx<<3
		if idx == rHL {
			Opcodes[incOp] = Opcode{Name: "INC (HL)", Step: incDecHLStep(true)}
			Opcodes[decOp] = Opcode{Name: "DEC (HL)", Step: incDecHLStep(false)}
		} else {
			Opcodes[incOp] = Opcode{Name: "INC " + regName(idx), Step: incDecRegStep(idx, true)}
			Opcodes[decOp] = Opcode{Name: "DEC " + regName(idx), Step: incDecRegStep(idx, false)}
		}
	}

	// 0x06,0x0E,...,0x3E: LD r,d8 (0x36 is LD (HL),d8).
	for idx := byte(0); idx < 8; idx++ {
		o := 0x06 | idx<<3
		if idx == rHL {
			Opcodes[o] = Opcode{Name: "LD (HL),d8", Step: ldHLImmStep()}
		} else {
			Opcodes[o] = Opcode{Name: "LD " + regName(idx) + ",d8", Step: ldRImmStep(idx)}
		}
	}

	// 16-bit register-pair families: 0x01/0x11/0x21/0x31, 0x03/.../0x33,
	// 0x09/.../0x39, 0x0B/.../0x3B.
	rpNames := [4]string{"BC", "DE", "HL", "SP"}
	for i := byte(0); i < 4; i++ {
		p := regPair(i)
		Opcodes[0x01|i<<4] = Opcode{Name: "LD " + rpNames[i] + ",d16", Step: ldRRImmStep(p)}
		Opcodes[0x03|i<<4] = Opcode{Name: "INC " + rpNames[i], Step: incDecRPStep(p, true)}
		Opcodes[0x09|i<<4] = Opcode{Name: "ADD HL," + rpNames[i], Step: addHLStep(p)}
		Opcodes[0x0B|i<<4] = Opcode{Name: "DEC " + rpNames[i], Step: incDecRPStep(p, false)}
	}

	// LD (rr),A / LD A,(rr) for BC, DE, HL+, HL-: 0x02/0x12/0x22/0x32 and
	// 0x0A/0x1A/0x2A/0x3A.
	indNames := [4]string{"BC", "DE", "HL+", "HL-"}
	for i := byte(0); i < 4; i++ {
		p := indirectPair(i)
		Opcodes[0x02|i<<4] = Opcode{Name: "LD (" + indNames[i] + "),A", Step: ldIndAStep(p)}
		Opcodes[0x0A|i<<4] = Opcode{Name: "LD A,(" + indNames[i] + ")", Step: ldAIndStep(p)}
	}

	// PUSH/POP BC,DE,HL,AF: 0xC1/0xD1/0xE1/0xF1 and 0xC5/0xD5/0xE5/0xF5.
	spNames := [4]string{"BC", "DE", "HL", "AF"}
	for i := byte(0); i < 4; i++ {
		p := stackPair(i)
		Opcodes[0xC1|i<<4] = Opcode{Name: "POP " + spNames[i], Step: popStep(p)}
		Opcodes[0xC5|i<<4] = Opcode{Name: "PUSH " + spNames[i], Step: pushStep(p)}
	}

	// RST 0x00,0x08,...,0x38: 0xC7,0xCF,0xD7,0xDF,0xE7,0xEF,0xF7,0xFF.
	for i := byte(0); i < 8; i++ {
		n := i * 0x08
		Opcodes[0xC7|i<<3] = Opcode{Name: fmt.Sprintf("RST %02XH", n), Step: rstStep(n)}
	}

	// JR/JP/CALL/RET conditionals share the NZ,Z,NC,C ordering.
	conds := [4]cond{condNZ, condZ, condNC, condC}
	condNames := [4]string{"NZ", "Z", "NC", "C"}
	for i := byte(0); i < 4; i++ {
		Opcodes[0x20|i<<3] = Opcode{Name: "JR " + condNames[i] + ",r8", Step: jrCondStep(conds[i])}
		Opcodes[0xC0|i<<3] = Opcode{Name: "RET " + condNames[i], Step: retCondStep(conds[i])}
		Opcodes[0xC2|i<<3] = Opcode{Name: "JP " + condNames[i] + ",a16", Step: jpCondStep(conds[i])}
		Opcodes[0xC4|i<<3] = Opcode{Name: "CALL " + condNames[i] + ",a16", Step: callCondStep(conds[i])}
	}

	for o, e := range map[byte]Opcode{
		0x00: {Name: "NOP", Step: nopStep},
		0x08: {Name: "LD (a16),SP", Step: ldAbsSPStep()},
		0x07: {Name: "RLCA", Step: rlcaStep},
		0x0F: {Name: "RRCA", Step: rrcaStep},
		0x10: {Name: "STOP", Step: stopStep},
		0x17: {Name: "RLA", Step: rlaStep},
		0x18: {Name: "JR r8", Step: jrStep()},
		0x1F: {Name: "RRA", Step: rraStep},
		0x27: {Name: "DAA", Step: daaStep},
		0x2F: {Name: "CPL", Step: cplStep},
		0x37: {Name: "SCF", Step: scfStep},
		0x3F: {Name: "CCF", Step: ccfStep},
		0xC3: {Name: "JP a16", Step: jpStep()},
		0xC9: {Name: "RET", Step: retStep(false)},
		0xCB: {Name: "PREFIX CB", Step: prefixStep},
		0xCD: {Name: "CALL a16", Step: callStep()},
		0xD9: {Name: "RETI", Step: retStep(true)},
		0xE0: {Name: "LDH (a8),A", Step: ldhWriteStep()},
		0xE2: {Name: "LD (C),A", Step: ldCWriteStep()},
		0xE8: {Name: "ADD SP,r8", Step: addSPStep()},
		0xE9: {Name: "JP (HL)", Step: jpHLStep()},
		0xEA: {Name: "LD (a16),A", Step: ldAbsWriteStep()},
		0xF0: {Name: "LDH A,(a8)", Step: ldhReadStep()},
		0xF2: {Name: "LD A,(C)", Step: ldCReadStep()},
		0xF3: {Name: "DI", Step: diStep},
		0xF8: {Name: "LD HL,SP+r8", Step: ldHLSPStep()},
		0xF9: {Name: "LD SP,HL", Step: spHLStep()},
		0xFA: {Name: "LD A,(a16)", Step: ldAbsReadStep()},
		0xFB: {Name: "EI", Step: eiStep},
	} {
		Opcodes[o] = e
	}
}
