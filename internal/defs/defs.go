// Package defs provides definition lookup over one module: the mapping from
// a result id to the instruction that declares it.
package defs

import (
	"fmt"

	"spirvlink/internal/spirv"
)

// Analyzer indexes every defining instruction of a module by result id.
// The index holds copies taken at construction time, so it stays coherent
// while a pass rewrites the module, but it must be rebuilt to observe those
// rewrites.
type Analyzer struct {
	defs map[spirv.ID]spirv.Instruction
}

// NewAnalyzer walks the whole module and indexes every instruction that
// declares a result id.
func NewAnalyzer(m *spirv.Module) *Analyzer {
	a := &Analyzer{defs: make(map[spirv.ID]spirv.Instruction)}
	m.EachInstruction(func(in *spirv.Instruction) {
		if in.ResultID != 0 {
			a.defs[in.ResultID] = *in
		}
	})
	return a
}

// Def returns the instruction defining id.
func (a *Analyzer) Def(id spirv.ID) (spirv.Instruction, bool) {
	in, ok := a.defs[id]
	return in, ok
}

// OperandDef returns the instruction defining the id that op references.
// Panics if op is not an id reference, or if the id has no definition in the
// module; within one well-formed module every reference a type instruction
// carries is defined.
func (a *Analyzer) OperandDef(op *spirv.Operand) spirv.Instruction {
	if !op.IsIDRef() {
		panic(fmt.Sprintf("defs: operand %s is not an id reference", op))
	}
	in, ok := a.defs[op.ID]
	if !ok {
		panic(fmt.Sprintf("defs: no defining instruction for %s", op.ID))
	}
	return in
}
