// Package spirv holds the in-memory representation of a SPIR-V module as the
// linker sees it: sections of instructions, typed operands, and the opcode and
// enumerant values the link passes interpret.
//
// The representation is deliberately partial. Opcodes and enumerants the
// linker does not reason about are carried through untouched; only the values
// named here are ever matched on.
package spirv
