package cpu

import (
	"fmt"
	"iter"
	"log"
	"maps"
)

var _cpu_defines = map[string]string{
	"MEMORY_SIZE":   fmt.Sprintf("%#x", MEMORY_SIZE),
	"OPCODE_OP":     fmt.Sprintf("%#02x", OPCODE_OP),
	"OPCODE_OP_IMM": fmt.Sprintf("%#02x", OPCODE_OP_IMM),
	"OPCODE_STORE":  fmt.Sprintf("%#02x", OPCODE_STORE),
	"OPCODE_BRANCH": fmt.Sprintf("%#02x", OPCODE_BRANCH),
	"OPCODE_LUI":    fmt.Sprintf("%#02x", OPCODE_LUI),
	"OPCODE_JAL":    fmt.Sprintf("%#02x", OPCODE_JAL),
}

// Cpu is the processor context for the fetch/decode front end.
// Execution of decoded instructions belongs to a downstream stage;
// the front end only reads Mem and advances Pc.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Register [32]uint32 // Register bank x0-x31.
	Pc       uint32     // Current program counter, byte offset into Mem.
	Mem      Memory     // Memory image.
}

// NewCpu creates a new CPU with a specifically sized memory image.
func NewCpu(size uint) (cpu *Cpu) {
	cpu = &Cpu{
		Mem: NewMemory(size),
	}

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// Reset the CPU state.
// - Clears the register bank.
// - Sets the program counter to zero.
// The memory image is left intact.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	clear(cpu.Register[:])
	cpu.Pc = 0
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text = fmt.Sprintf("   pc: %04X_%04X\n", cpu.Pc>>16, cpu.Pc&0xffff)
	for n, val := range cpu.Register {
		text += fmt.Sprintf("  x%02d: %04X_%04X\n", n, val>>16, val&0xffff)
	}

	return
}

// Fetch reads the 32-bit little-endian word at Pc and advances Pc by
// exactly 4. On a bounds violation the error carries the faulting
// address and Pc is left unchanged.
func (cpu *Cpu) Fetch() (instr Instr, err error) {
	word, err := cpu.Mem.Word(cpu.Pc)
	if err != nil {
		return
	}

	if cpu.Verbose {
		log.Printf("%08x: %08x", cpu.Pc, word)
	}

	cpu.Pc += 4
	instr = Instr(word)

	return
}
