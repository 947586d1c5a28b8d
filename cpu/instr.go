package cpu

import (
	"fmt"
)

// Format is an instruction encoding format.
type Format int

//go:generate go tool stringer -linecomment -type=Format
const (
	FORMAT_R = Format(0) // R
	FORMAT_I = Format(1) // I
	FORMAT_S = Format(2) // S
	FORMAT_B = Format(3) // B
	FORMAT_U = Format(4) // U
	FORMAT_J = Format(5) // J
)

// Opcode values recognized by the decoder, one per format.
// The low 7 bits of an instruction word select its format.
const (
	OPCODE_OP     = uint32(0x33) // R: register/register
	OPCODE_OP_IMM = uint32(0x13) // I: register/immediate
	OPCODE_STORE  = uint32(0x23) // S: store
	OPCODE_BRANCH = uint32(0x63) // B: conditional branch
	OPCODE_LUI    = uint32(0x37) // U: load upper immediate
	OPCODE_JAL    = uint32(0x6f) // J: jump and link
)

// Instr is a raw 32-bit instruction word, opaque until decoded.
type Instr uint32

// Decoded is a decoded instruction, tagged by Format.
// Register indexes are masked to [0,31], Funct3 to [0,7], and Funct7
// to [0,127] by construction. Imm is sign-extended for the I, S, B,
// and J formats; for U it is the raw word with the low 12 bits
// cleared; for R it is zero.
type Decoded struct {
	Format Format
	Opcode uint32
	Rd     uint32
	Rs1    uint32
	Rs2    uint32
	Funct3 uint32
	Funct7 uint32
	Imm    int32
}

// signExtend widens a raw immediate of logical width bits to a
// signed 32-bit value by replicating its sign bit.
func signExtend(value uint32, width uint) int32 {
	if (value>>(width-1))&1 != 0 {
		value |= ^uint32(0) << width
	}
	return int32(value)
}

// Opcode returns the low 7 bits of the instruction word.
func (in Instr) Opcode() uint32 {
	return uint32(in) & 0x7f
}

// Format returns the encoding format selected by the opcode.
func (in Instr) Format() (format Format, err error) {
	switch in.Opcode() {
	case OPCODE_OP:
		format = FORMAT_R
	case OPCODE_OP_IMM:
		format = FORMAT_I
	case OPCODE_STORE:
		format = FORMAT_S
	case OPCODE_BRANCH:
		format = FORMAT_B
	case OPCODE_LUI:
		format = FORMAT_U
	case OPCODE_JAL:
		format = FORMAT_J
	default:
		err = ErrOpcode(in.Opcode())
	}

	return
}

// RDecode decodes and returns the R-format register and function fields.
func (in Instr) RDecode() (rd, funct3, rs1, rs2, funct7 uint32) {
	word := uint32(in)
	rd = (word >> 7) & 0x1f
	funct3 = (word >> 12) & 0x7
	rs1 = (word >> 15) & 0x1f
	rs2 = (word >> 20) & 0x1f
	funct7 = (word >> 25) & 0x7f
	return
}

// IDecode decodes and returns the I-format fields.
// The immediate is bits [31:20], sign-extended from bit 11.
func (in Instr) IDecode() (rd, funct3, rs1 uint32, imm int32) {
	word := uint32(in)
	rd = (word >> 7) & 0x1f
	funct3 = (word >> 12) & 0x7
	rs1 = (word >> 15) & 0x1f
	imm = signExtend((word>>20)&0xfff, 12)
	return
}

// SDecode decodes and returns the S-format fields.
// The immediate is bits [11:7] | bits [31:25] << 5, sign-extended
// from bit 11.
func (in Instr) SDecode() (funct3, rs1, rs2 uint32, imm int32) {
	word := uint32(in)
	funct3 = (word >> 12) & 0x7
	rs1 = (word >> 15) & 0x1f
	rs2 = (word >> 20) & 0x1f
	raw := ((word >> 7) & 0x1f) | (((word >> 25) & 0x7f) << 5)
	imm = signExtend(raw, 12)
	return
}

// BDecode decodes and returns the B-format fields.
// The 13-bit immediate is assembled from bit 31 (imm[12]),
// bits [30:25] (imm[10:5]), bits [11:8] (imm[4:1]), and bit 7
// (imm[11]); bit 0 is always zero.
func (in Instr) BDecode() (funct3, rs1, rs2 uint32, imm int32) {
	word := uint32(in)
	funct3 = (word >> 12) & 0x7
	rs1 = (word >> 15) & 0x1f
	rs2 = (word >> 20) & 0x1f
	raw := (((word >> 31) & 0x1) << 12) |
		(((word >> 25) & 0x3f) << 5) |
		(((word >> 8) & 0xf) << 1) |
		(((word >> 7) & 0x1) << 11)
	imm = signExtend(raw, 13)
	return
}

// UDecode decodes and returns the U-format fields.
// The immediate is the raw word with its low 12 bits cleared; it is
// never sign-extended.
func (in Instr) UDecode() (rd uint32, imm int32) {
	word := uint32(in)
	rd = (word >> 7) & 0x1f
	imm = int32(word & 0xfffff000)
	return
}

// JDecode decodes and returns the J-format fields.
// The 21-bit immediate is assembled from bit 31 (imm[20]),
// bits [30:21] (imm[10:1]), bit 20 (imm[11]), and bits [19:12]
// (imm[19:12]); bit 0 is always zero.
func (in Instr) JDecode() (rd uint32, imm int32) {
	word := uint32(in)
	rd = (word >> 7) & 0x1f
	raw := (((word >> 31) & 0x1) << 20) |
		(((word >> 21) & 0x3ff) << 1) |
		(((word >> 20) & 0x1) << 11) |
		(((word >> 12) & 0xff) << 12)
	imm = signExtend(raw, 21)
	return
}

// Decode decodes the instruction word into its tagged field set.
// An opcode outside the six recognized values fails with ErrOpcode.
func (in Instr) Decode() (dec Decoded, err error) {
	format, err := in.Format()
	if err != nil {
		return
	}

	dec = Decoded{
		Format: format,
		Opcode: in.Opcode(),
	}

	switch format {
	case FORMAT_R:
		dec.Rd, dec.Funct3, dec.Rs1, dec.Rs2, dec.Funct7 = in.RDecode()
	case FORMAT_I:
		dec.Rd, dec.Funct3, dec.Rs1, dec.Imm = in.IDecode()
	case FORMAT_S:
		dec.Funct3, dec.Rs1, dec.Rs2, dec.Imm = in.SDecode()
	case FORMAT_B:
		dec.Funct3, dec.Rs1, dec.Rs2, dec.Imm = in.BDecode()
	case FORMAT_U:
		dec.Rd, dec.Imm = in.UDecode()
	case FORMAT_J:
		dec.Rd, dec.Imm = in.JDecode()
	}

	return
}

// MakeInstrR creates an R-format instruction word.
func MakeInstrR(opcode, rd, funct3, rs1, rs2, funct7 uint32) Instr {
	return Instr((opcode & 0x7f) |
		((rd & 0x1f) << 7) |
		((funct3 & 0x7) << 12) |
		((rs1 & 0x1f) << 15) |
		((rs2 & 0x1f) << 20) |
		((funct7 & 0x7f) << 25))
}

// MakeInstrI creates an I-format instruction word.
func MakeInstrI(opcode, rd, funct3, rs1 uint32, imm int32) Instr {
	return Instr((opcode & 0x7f) |
		((rd & 0x1f) << 7) |
		((funct3 & 0x7) << 12) |
		((rs1 & 0x1f) << 15) |
		((uint32(imm) & 0xfff) << 20))
}

// MakeInstrS creates an S-format instruction word.
func MakeInstrS(opcode, funct3, rs1, rs2 uint32, imm int32) Instr {
	raw := uint32(imm)
	return Instr((opcode & 0x7f) |
		((raw & 0x1f) << 7) |
		((funct3 & 0x7) << 12) |
		((rs1 & 0x1f) << 15) |
		((rs2 & 0x1f) << 20) |
		(((raw >> 5) & 0x7f) << 25))
}

// MakeInstrB creates a B-format instruction word.
// Bit 0 of the immediate is discarded.
func MakeInstrB(opcode, funct3, rs1, rs2 uint32, imm int32) Instr {
	raw := uint32(imm)
	return Instr((opcode & 0x7f) |
		(((raw >> 11) & 0x1) << 7) |
		(((raw >> 1) & 0xf) << 8) |
		((funct3 & 0x7) << 12) |
		((rs1 & 0x1f) << 15) |
		((rs2 & 0x1f) << 20) |
		(((raw >> 5) & 0x3f) << 25) |
		(((raw >> 12) & 0x1) << 31))
}

// MakeInstrU creates a U-format instruction word.
// The low 12 bits of the immediate are discarded.
func MakeInstrU(opcode, rd uint32, imm int32) Instr {
	return Instr((opcode & 0x7f) |
		((rd & 0x1f) << 7) |
		(uint32(imm) & 0xfffff000))
}

// MakeInstrJ creates a J-format instruction word.
// Bit 0 of the immediate is discarded.
func MakeInstrJ(opcode, rd uint32, imm int32) Instr {
	raw := uint32(imm)
	return Instr((opcode & 0x7f) |
		((rd & 0x1f) << 7) |
		(((raw >> 12) & 0xff) << 12) |
		(((raw >> 11) & 0x1) << 20) |
		(((raw >> 1) & 0x3ff) << 21) |
		(((raw >> 20) & 0x1) << 31))
}

// String returns a diagnostic rendering of the decoded instruction.
func (dec Decoded) String() (out string) {
	switch dec.Format {
	case FORMAT_R:
		out = fmt.Sprintf("%v op:%#02x rd:%v rs1:%v rs2:%v f3:%v f7:%#02x",
			dec.Format, dec.Opcode, dec.Rd, dec.Rs1, dec.Rs2, dec.Funct3, dec.Funct7)
	case FORMAT_I:
		out = fmt.Sprintf("%v op:%#02x rd:%v rs1:%v f3:%v imm:%v",
			dec.Format, dec.Opcode, dec.Rd, dec.Rs1, dec.Funct3, dec.Imm)
	case FORMAT_S, FORMAT_B:
		out = fmt.Sprintf("%v op:%#02x rs1:%v rs2:%v f3:%v imm:%v",
			dec.Format, dec.Opcode, dec.Rs1, dec.Rs2, dec.Funct3, dec.Imm)
	case FORMAT_U, FORMAT_J:
		out = fmt.Sprintf("%v op:%#02x rd:%v imm:%v",
			dec.Format, dec.Opcode, dec.Rd, dec.Imm)
	}

	return
}
