package cpu

const (
	MEMORY_SIZE = 1 << 20 // Default memory image size in bytes.
)

// Memory is a fixed-size byte-addressable memory image.
// Words are stored little-endian.
type Memory []byte

// NewMemory creates a zeroed memory image of the given size.
func NewMemory(size uint) Memory {
	return make(Memory, size)
}

// Word reads the 32-bit little-endian word at addr.
func (mem Memory) Word(addr uint32) (word uint32, err error) {
	if uint64(addr)+3 >= uint64(len(mem)) {
		err = &ErrAccess{Addr: addr, Err: ErrMemoryBounds}
		return
	}

	word = uint32(mem[addr]) |
		uint32(mem[addr+1])<<8 |
		uint32(mem[addr+2])<<16 |
		uint32(mem[addr+3])<<24
	return
}

// SetWord writes the 32-bit word at addr, little-endian.
func (mem Memory) SetWord(addr uint32, word uint32) (err error) {
	if uint64(addr)+3 >= uint64(len(mem)) {
		err = &ErrAccess{Addr: addr, Err: ErrMemoryBounds}
		return
	}

	mem[addr] = byte(word)
	mem[addr+1] = byte(word >> 8)
	mem[addr+2] = byte(word >> 16)
	mem[addr+3] = byte(word >> 24)
	return
}
