package spirv

import (
	"errors"
	"fmt"
)

// Module is one IR module in section order. Instruction order within a
// section is meaningful: the first occurrence of a declaration is its
// canonical form. Functions is the flat instruction stream of every function
// (OpFunction through OpFunctionEnd, in order); the linker never needs the
// per-function structure.
type Module struct {
	Capabilities      []Instruction
	Extensions        []Instruction
	ExtInstImports    []Instruction
	MemoryModel       *Instruction
	EntryPoints       []Instruction
	ExecutionModes    []Instruction
	Debug             []Instruction
	Annotations       []Instruction
	TypesGlobalValues []Instruction
	Functions         []Instruction
}

// EachInstruction calls f for every instruction in the module, in section
// order. The pointer is valid for the duration of the call and may be used
// to mutate the instruction in place.
func (m *Module) EachInstruction(f func(*Instruction)) {
	for _, sec := range [][]Instruction{
		m.Capabilities,
		m.Extensions,
		m.ExtInstImports,
	} {
		for i := range sec {
			f(&sec[i])
		}
	}
	if m.MemoryModel != nil {
		f(m.MemoryModel)
	}
	for _, sec := range [][]Instruction{
		m.EntryPoints,
		m.ExecutionModes,
		m.Debug,
		m.Annotations,
		m.TypesGlobalValues,
		m.Functions,
	} {
		for i := range sec {
			f(&sec[i])
		}
	}
}

// Compact returns insts with every no-op marker removed, preserving the
// relative order of the survivors. The input slice is reused.
func Compact(insts []Instruction) []Instruction {
	out := insts[:0]
	for i := range insts {
		if !insts[i].IsNop() {
			out = append(out, insts[i])
		}
	}
	return out
}

// Bound returns 1 + the largest id mentioned anywhere in the module, the
// value a SPIR-V header would carry. An empty module has bound 1.
func (m *Module) Bound() ID {
	var max ID
	m.EachInstruction(func(in *Instruction) {
		if in.ResultID > max {
			max = in.ResultID
		}
		if in.ResultType > max {
			max = in.ResultType
		}
		for i := range in.Operands {
			if in.Operands[i].Kind == OperandIDRef && in.Operands[i].ID > max {
				max = in.Operands[i].ID
			}
		}
	})
	return max + 1
}

// Check runs cheap structural checks: every declared result id is unique and
// every id reference resolves to some declared id. It is not a verifier;
// it exists to catch linker bugs early, not to validate producer output.
func (m *Module) Check() error {
	declared := make(map[ID]struct{})
	var errs []error
	m.EachInstruction(func(in *Instruction) {
		if in.ResultID == 0 {
			return
		}
		if _, ok := declared[in.ResultID]; ok {
			errs = append(errs, fmt.Errorf("result id %s declared twice", in.ResultID))
			return
		}
		declared[in.ResultID] = struct{}{}
	})
	m.EachInstruction(func(in *Instruction) {
		if in.ResultType != 0 {
			if _, ok := declared[in.ResultType]; !ok {
				errs = append(errs, fmt.Errorf("%s: result type %s is not declared", in.Op, in.ResultType))
			}
		}
		for i := range in.Operands {
			op := &in.Operands[i]
			if op.Kind == OperandIDRef {
				if _, ok := declared[op.ID]; !ok {
					errs = append(errs, fmt.Errorf("%s: operand %s is not declared", in.Op, op.ID))
				}
			}
		}
	})
	return errors.Join(errs...)
}
