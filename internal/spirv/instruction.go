package spirv

import (
	"fmt"
	"strings"
)

// Instruction is one SPIR-V instruction: an opcode, an optional result id,
// an optional result type reference, and its operands. A zero ResultID or
// ResultType means the slot is absent.
type Instruction struct {
	Op         Op
	ResultID   ID
	ResultType ID
	Operands   []Operand
}

// NewInstruction builds an instruction from its parts.
func NewInstruction(op Op, resultID, resultType ID, operands ...Operand) Instruction {
	return Instruction{Op: op, ResultID: resultID, ResultType: resultType, Operands: operands}
}

// Nop returns the no-op marker used to delete instructions in place.
func Nop() Instruction { return Instruction{Op: OpNop} }

// IsNop reports whether the instruction is the no-op marker.
func (in *Instruction) IsNop() bool { return in.Op == OpNop }

// MapIDs applies f to the result type and to every id-reference operand,
// in place. The instruction's own result id is left alone: rewriting what an
// instruction defines is a different operation from rewriting what it uses.
func (in *Instruction) MapIDs(f func(ID) ID) {
	if in.ResultType != 0 {
		in.ResultType = f(in.ResultType)
	}
	for i := range in.Operands {
		if in.Operands[i].Kind == OperandIDRef {
			in.Operands[i].ID = f(in.Operands[i].ID)
		}
	}
}

// String renders the instruction in assembly-like form for diagnostics.
func (in Instruction) String() string {
	var b strings.Builder
	if in.ResultID != 0 {
		fmt.Fprintf(&b, "%s = ", in.ResultID)
	}
	b.WriteString(in.Op.String())
	if in.ResultType != 0 {
		fmt.Fprintf(&b, " %s", in.ResultType)
	}
	for i := range in.Operands {
		b.WriteByte(' ')
		b.WriteString(in.Operands[i].String())
	}
	return b.String()
}
