package dedup_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spirvlink/internal/dedup"
	"spirvlink/internal/spirv"
)

func capability(c spirv.Capability) spirv.Instruction {
	return spirv.NewInstruction(spirv.OpCapability, 0, 0, spirv.CapabilityOperand(c))
}

func TestRemoveDuplicateCapabilities(t *testing.T) {
	m := &spirv.Module{
		Capabilities: []spirv.Instruction{
			capability(spirv.CapabilityShader),
			capability(spirv.CapabilityKernel),
			capability(spirv.CapabilityShader),
			capability(spirv.CapabilityShader),
			capability(spirv.CapabilityInt64),
		},
	}

	dedup.RemoveDuplicateCapabilities(m)

	require.Len(t, m.Capabilities, 3)
	assert.Equal(t, spirv.CapabilityShader, m.Capabilities[0].Operands[0].Capability())
	assert.Equal(t, spirv.CapabilityKernel, m.Capabilities[1].Operands[0].Capability())
	assert.Equal(t, spirv.CapabilityInt64, m.Capabilities[2].Operands[0].Capability())
}

func TestRemoveDuplicateCapabilities_Idempotent(t *testing.T) {
	m := &spirv.Module{
		Capabilities: []spirv.Instruction{
			capability(spirv.CapabilityShader),
			capability(spirv.CapabilityShader),
		},
	}
	dedup.RemoveDuplicateCapabilities(m)
	once := append([]spirv.Instruction{}, m.Capabilities...)
	dedup.RemoveDuplicateCapabilities(m)
	assert.Equal(t, once, m.Capabilities)
}

func TestRemoveDuplicateCapabilities_PassThrough(t *testing.T) {
	// An instruction whose first operand is not a capability value is kept,
	// even when it appears twice.
	odd := spirv.NewInstruction(spirv.OpCapability, 0, 0, spirv.LiteralInt32(1))
	m := &spirv.Module{Capabilities: []spirv.Instruction{odd, odd}}
	dedup.RemoveDuplicateCapabilities(m)
	assert.Len(t, m.Capabilities, 2)
}

func TestRemoveDuplicateExtInstImports(t *testing.T) {
	m := &spirv.Module{
		ExtInstImports: []spirv.Instruction{
			spirv.NewInstruction(spirv.OpExtInstImport, 1, 0, spirv.LiteralString("GLSL.std.450")),
			spirv.NewInstruction(spirv.OpExtInstImport, 2, 0, spirv.LiteralString("GLSL.std.450")),
			spirv.NewInstruction(spirv.OpExtInstImport, 3, 0, spirv.LiteralString("OpenCL.std")),
		},
		Functions: []spirv.Instruction{
			// %20 = OpExtInst %10 %2 <inst 5> %7 — the set operand references
			// the duplicate import and must be repointed; %7 must not move.
			spirv.NewInstruction(spirv.OpExtInst, 20, 10,
				spirv.IDRef(2), spirv.LiteralInt32(5), spirv.IDRef(7)),
			spirv.NewInstruction(spirv.OpExtInst, 21, 10,
				spirv.IDRef(3), spirv.LiteralInt32(5), spirv.IDRef(7)),
		},
	}

	dedup.RemoveDuplicateExtInstImports(m)

	require.Len(t, m.ExtInstImports, 2)
	assert.Equal(t, spirv.ID(1), m.ExtInstImports[0].ResultID)
	assert.Equal(t, "GLSL.std.450", m.ExtInstImports[0].Operands[0].Str)
	assert.Equal(t, spirv.ID(3), m.ExtInstImports[1].ResultID)
	assert.Equal(t, "OpenCL.std", m.ExtInstImports[1].Operands[0].Str)

	ext := m.Functions[0]
	assert.Equal(t, spirv.ID(1), ext.Operands[0].ID, "set operand must point at the canonical import")
	assert.Equal(t, uint32(5), ext.Operands[1].Word, "instruction literal must not change")
	assert.Equal(t, spirv.ID(7), ext.Operands[2].ID, "argument operands must not change")

	assert.Equal(t, spirv.ID(3), m.Functions[1].Operands[0].ID, "references to a surviving import stay put")
}

func TestRemoveDuplicateExtInstImports_NonLiteralName(t *testing.T) {
	m := &spirv.Module{
		ExtInstImports: []spirv.Instruction{
			spirv.NewInstruction(spirv.OpExtInstImport, 1, 0, spirv.IDRef(9)),
			spirv.NewInstruction(spirv.OpExtInstImport, 2, 0, spirv.IDRef(9)),
		},
	}
	dedup.RemoveDuplicateExtInstImports(m)
	assert.Len(t, m.ExtInstImports, 2, "imports without a literal name are not deduplicated")
}

func typeInt(id spirv.ID, width, signed uint32) spirv.Instruction {
	return spirv.NewInstruction(spirv.OpTypeInt, id, 0,
		spirv.LiteralInt32(width), spirv.LiteralInt32(signed))
}

func TestRemoveDuplicateTypes_StructuralEquality(t *testing.T) {
	m := &spirv.Module{
		TypesGlobalValues: []spirv.Instruction{
			typeInt(1, 32, 1),
			typeInt(2, 32, 1), // duplicate of %1
			typeInt(3, 32, 0), // different signedness, distinct
		},
	}

	dedup.RemoveDuplicateTypes(m)

	require.Len(t, m.TypesGlobalValues, 2)
	assert.Equal(t, spirv.ID(1), m.TypesGlobalValues[0].ResultID)
	assert.Equal(t, spirv.ID(3), m.TypesGlobalValues[1].ResultID)
}

func TestRemoveDuplicateTypes_ConstantsKeepTheirType(t *testing.T) {
	m := &spirv.Module{
		TypesGlobalValues: []spirv.Instruction{
			typeInt(1, 8, 0),
			typeInt(2, 16, 0),
			// Same literal value, different declared type: must survive both.
			spirv.NewInstruction(spirv.OpConstant, 3, 1, spirv.LiteralInt32(1)),
			spirv.NewInstruction(spirv.OpConstant, 4, 2, spirv.LiteralInt32(1)),
			// True duplicate of %3.
			spirv.NewInstruction(spirv.OpConstant, 5, 1, spirv.LiteralInt32(1)),
		},
	}

	dedup.RemoveDuplicateTypes(m)

	ids := resultIDs(m.TypesGlobalValues)
	assert.Equal(t, []spirv.ID{1, 2, 3, 4}, ids)
}

func TestRemoveDuplicateTypes_DependencyOrder(t *testing.T) {
	// Two structurally identical structs built from different, mutually
	// duplicate member declarations. The members collapse first, which is
	// what lets the structs collapse too.
	m := &spirv.Module{
		TypesGlobalValues: []spirv.Instruction{
			typeInt(1, 32, 1),
			typeInt(2, 32, 1),
			spirv.NewInstruction(spirv.OpTypeStruct, 3, 0, spirv.IDRef(1)),
			spirv.NewInstruction(spirv.OpTypeStruct, 4, 0, spirv.IDRef(2)),
		},
	}

	dedup.RemoveDuplicateTypes(m)

	require.Equal(t, []spirv.ID{1, 3}, resultIDs(m.TypesGlobalValues))
	assert.Equal(t, spirv.ID(1), m.TypesGlobalValues[1].Operands[0].ID,
		"surviving struct must reference the canonical member type")
}

func TestRemoveDuplicateTypes_ReferencePropagation(t *testing.T) {
	m := &spirv.Module{
		TypesGlobalValues: []spirv.Instruction{
			typeInt(1, 32, 0),
			typeInt(2, 32, 0),
			spirv.NewInstruction(spirv.OpConstant, 3, 2, spirv.LiteralInt32(7)),
			spirv.NewInstruction(spirv.OpTypeFunction, 9, 0, spirv.IDRef(2)),
		},
		Functions: []spirv.Instruction{
			spirv.NewInstruction(spirv.OpFunction, 10, 2, spirv.EnumOperand(0), spirv.IDRef(9)),
			spirv.NewInstruction(spirv.OpIAdd, 11, 2, spirv.IDRef(3), spirv.IDRef(3)),
		},
	}

	dedup.RemoveDuplicateTypes(m)

	deleted := map[spirv.ID]bool{2: true}
	m.EachInstruction(func(in *spirv.Instruction) {
		if in.ResultType != 0 {
			assert.False(t, deleted[in.ResultType], "result type of %s still references a deleted id", in.Op)
		}
		for i := range in.Operands {
			if in.Operands[i].Kind == spirv.OperandIDRef {
				assert.False(t, deleted[in.Operands[i].ID], "%s still references a deleted id", in.Op)
			}
		}
	})

	// The constant's declared type, the function type's return slot and the
	// function body all moved to %1.
	assert.Equal(t, spirv.ID(1), m.TypesGlobalValues[1].ResultType)
	assert.Equal(t, spirv.ID(1), m.TypesGlobalValues[2].Operands[0].ID)
	assert.Equal(t, spirv.ID(1), m.Functions[0].ResultType)
	assert.Equal(t, spirv.ID(1), m.Functions[1].ResultType)
}

func TestRemoveDuplicateTypes_ForwardPointer(t *testing.T) {
	// A forward pointer is declared, then resolved by its OpTypePointer.
	// A later structurally identical pointer deduplicates against it.
	m := &spirv.Module{
		TypesGlobalValues: []spirv.Instruction{
			spirv.NewInstruction(spirv.OpTypeForwardPointer, 0, 0,
				spirv.IDRef(3), spirv.StorageClassOperand(spirv.StorageClassWorkgroup)),
			typeInt(1, 32, 0),
			spirv.NewInstruction(spirv.OpTypeStruct, 2, 0, spirv.IDRef(1), spirv.IDRef(3)),
			spirv.NewInstruction(spirv.OpTypePointer, 3, 0,
				spirv.StorageClassOperand(spirv.StorageClassWorkgroup), spirv.IDRef(2)),
			spirv.NewInstruction(spirv.OpTypePointer, 4, 0,
				spirv.StorageClassOperand(spirv.StorageClassWorkgroup), spirv.IDRef(2)),
		},
	}

	dedup.RemoveDuplicateTypes(m)

	ids := resultIDs(m.TypesGlobalValues)
	assert.Equal(t, []spirv.ID{0, 1, 2, 3}, ids, "forward pointer decl survives, %4 collapses into %3")
}

func TestRemoveDuplicateTypes_Idempotent(t *testing.T) {
	build := func() *spirv.Module {
		return &spirv.Module{
			TypesGlobalValues: []spirv.Instruction{
				typeInt(1, 32, 1),
				typeInt(2, 32, 1),
				spirv.NewInstruction(spirv.OpTypeStruct, 3, 0, spirv.IDRef(1), spirv.IDRef(2)),
			},
		}
	}
	m := build()
	dedup.RemoveDuplicateTypes(m)
	once := append([]spirv.Instruction{}, m.TypesGlobalValues...)
	dedup.RemoveDuplicateTypes(m)
	assert.Equal(t, once, m.TypesGlobalValues)
}

func TestRemoveDuplicateTypes_DoubleRewritePanics(t *testing.T) {
	// The same result id declared twice is a producer-invariant violation;
	// recording a second rewrite for it must abort instead of silently
	// picking one of the targets.
	m := &spirv.Module{
		TypesGlobalValues: []spirv.Instruction{
			typeInt(1, 32, 1),
			typeInt(2, 32, 1),
			typeInt(2, 32, 1),
		},
	}
	defer func() {
		if recover() == nil {
			t.Error("expected a panic on the second rewrite of the same id")
		}
	}()
	dedup.RemoveDuplicateTypes(m)
}

func resultIDs(insts []spirv.Instruction) []spirv.ID {
	ids := make([]spirv.ID, 0, len(insts))
	for i := range insts {
		ids = append(ids, insts[i].ResultID)
	}
	return ids
}

func BenchmarkRemoveDuplicateTypes(b *testing.B) {
	build := func() *spirv.Module {
		m := &spirv.Module{}
		var id spirv.ID = 1
		for i := 0; i < 200; i++ {
			m.TypesGlobalValues = append(m.TypesGlobalValues,
				typeInt(id, 32, 1),
				spirv.NewInstruction(spirv.OpTypeStruct, id+1, 0, spirv.IDRef(id)),
			)
			id += 2
		}
		return m
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		m := build()
		b.StartTimer()
		dedup.RemoveDuplicateTypes(m)
	}
}
