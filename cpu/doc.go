// Package cpu implements the fetch and decode front end for a 32-bit
// RISC-style processor model.
//
// The CPU consists of a program counter (Pc), thirty-two 32-bit
// registers (x0-x31), and a byte-addressable little-endian memory
// image. Fetch reads one instruction word at Pc and advances it by 4;
// Decode classifies the word by its low 7 opcode bits into one of the
// six encoding formats (R, I, S, B, U, J) and extracts its register,
// function, and sign-extended immediate fields.
//
// Executing decoded instructions is a downstream concern, as is the
// convention that x0 reads as constant zero; the front end never
// touches the register bank.
package cpu
