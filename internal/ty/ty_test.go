package ty_test

import (
	"testing"

	"spirvlink/internal/defs"
	"spirvlink/internal/spirv"
	"spirvlink/internal/ty"
)

func TestTranslateScalar(t *testing.T) {
	tests := []struct {
		name string
		inst spirv.Instruction
		want ty.ScalarType
	}{
		{
			"void",
			spirv.NewInstruction(spirv.OpTypeVoid, 1, 0),
			ty.ScalarType{Kind: ty.ScalarVoid},
		},
		{
			"bool",
			spirv.NewInstruction(spirv.OpTypeBool, 1, 0),
			ty.ScalarType{Kind: ty.ScalarBool},
		},
		{
			"signed int",
			spirv.NewInstruction(spirv.OpTypeInt, 1, 0, spirv.LiteralInt32(32), spirv.LiteralInt32(1)),
			ty.ScalarType{Kind: ty.ScalarInt, Width: 32, Signed: true},
		},
		{
			"unsigned int",
			spirv.NewInstruction(spirv.OpTypeInt, 1, 0, spirv.LiteralInt32(8), spirv.LiteralInt32(0)),
			ty.ScalarType{Kind: ty.ScalarInt, Width: 8},
		},
		{
			"float",
			spirv.NewInstruction(spirv.OpTypeFloat, 1, 0, spirv.LiteralInt32(64)),
			ty.ScalarType{Kind: ty.ScalarFloat, Width: 64},
		},
		{
			"opaque",
			spirv.NewInstruction(spirv.OpTypeOpaque, 1, 0, spirv.LiteralString("handle")),
			ty.ScalarType{Kind: ty.ScalarOpaque, Name: "handle"},
		},
		{
			"forward pointer",
			spirv.NewInstruction(spirv.OpTypeForwardPointer, 0, 0,
				spirv.StorageClassOperand(spirv.StorageClassWorkgroup)),
			ty.ScalarType{Kind: ty.ScalarForwardPointer, StorageClass: spirv.StorageClassWorkgroup},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ty.TranslateScalar(&tt.inst)
			if !ok {
				t.Fatalf("TranslateScalar(%s) did not match", tt.inst.Op)
			}
			if got != tt.want {
				t.Errorf("TranslateScalar(%s) = %+v, want %+v", tt.inst.Op, got, tt.want)
			}
		})
	}
}

func TestTranslateScalar_NotAScalar(t *testing.T) {
	inst := spirv.NewInstruction(spirv.OpTypeStruct, 1, 0)
	if _, ok := ty.TranslateScalar(&inst); ok {
		t.Error("TranslateScalar matched OpTypeStruct")
	}
}

// nestedModule declares struct { ptr<Uniform> -> [i32; 8] }.
func nestedModule() *spirv.Module {
	return &spirv.Module{
		TypesGlobalValues: []spirv.Instruction{
			spirv.NewInstruction(spirv.OpTypeInt, 1, 0, spirv.LiteralInt32(32), spirv.LiteralInt32(1)),
			spirv.NewInstruction(spirv.OpConstant, 2, 1, spirv.LiteralInt32(8)),
			spirv.NewInstruction(spirv.OpTypeArray, 3, 0, spirv.IDRef(1), spirv.IDRef(2)),
			spirv.NewInstruction(spirv.OpTypePointer, 4, 0,
				spirv.StorageClassOperand(spirv.StorageClassUniform), spirv.IDRef(3)),
			spirv.NewInstruction(spirv.OpTypeStruct, 5, 0, spirv.IDRef(4)),
		},
	}
}

func TestTranslateAggregate_Nested(t *testing.T) {
	m := nestedModule()
	analyzer := defs.NewAnalyzer(m)
	structInst := &m.TypesGlobalValues[4]

	got, ok := ty.TranslateAggregate(analyzer, structInst)
	if !ok {
		t.Fatal("TranslateAggregate did not recognize OpTypeStruct")
	}
	want := "struct { *{Uniform} [i32; 8], }"
	if got.String() != want {
		t.Errorf("String() = %q, want %q", got.String(), want)
	}

	// Translating the same instruction again yields a value-equal model.
	again, ok := ty.TranslateAggregate(analyzer, structInst)
	if !ok {
		t.Fatal("second translation failed")
	}
	if !got.Equal(again) {
		t.Error("two translations of the same instruction are not Equal")
	}
	if got.String() != again.String() {
		t.Error("two translations of the same instruction render differently")
	}
}

func TestTranslateAggregate_Function(t *testing.T) {
	m := &spirv.Module{
		TypesGlobalValues: []spirv.Instruction{
			spirv.NewInstruction(spirv.OpTypeVoid, 1, 0),
			spirv.NewInstruction(spirv.OpTypeInt, 2, 0, spirv.LiteralInt32(32), spirv.LiteralInt32(0)),
			spirv.NewInstruction(spirv.OpTypeFunction, 3, 0, spirv.IDRef(1), spirv.IDRef(2), spirv.IDRef(2)),
		},
	}
	analyzer := defs.NewAnalyzer(m)
	got, ok := ty.TranslateAggregate(analyzer, &m.TypesGlobalValues[2])
	if !ok {
		t.Fatal("TranslateAggregate did not recognize OpTypeFunction")
	}
	if want := "fn( u32, u32, ) -> void"; got.String() != want {
		t.Errorf("String() = %q, want %q", got.String(), want)
	}
}

func TestTranslateAggregate_VectorCollapses(t *testing.T) {
	m := &spirv.Module{
		TypesGlobalValues: []spirv.Instruction{
			spirv.NewInstruction(spirv.OpTypeFloat, 1, 0, spirv.LiteralInt32(32)),
			spirv.NewInstruction(spirv.OpTypeVector, 2, 0, spirv.IDRef(1), spirv.LiteralInt32(4)),
			spirv.NewInstruction(spirv.OpTypeVector, 3, 0, spirv.IDRef(1), spirv.LiteralInt32(2)),
		},
	}
	analyzer := defs.NewAnalyzer(m)
	vec4, _ := ty.TranslateAggregate(analyzer, &m.TypesGlobalValues[1])
	vec2, _ := ty.TranslateAggregate(analyzer, &m.TypesGlobalValues[2])

	// Element counts are not retained, so vec4 and vec2 of the same element
	// type come out identical.
	if !vec4.Equal(vec2) {
		t.Error("vector types with different element counts should collapse to the same model")
	}
	if vec4.Kind != ty.AggregateComposite {
		t.Errorf("vector kind = %d, want AggregateComposite", vec4.Kind)
	}
}

func TestTranslateAggregate_SpecConstantLengthPanics(t *testing.T) {
	m := &spirv.Module{
		TypesGlobalValues: []spirv.Instruction{
			spirv.NewInstruction(spirv.OpTypeInt, 1, 0, spirv.LiteralInt32(32), spirv.LiteralInt32(0)),
			spirv.NewInstruction(spirv.OpSpecConstant, 2, 1, spirv.LiteralInt32(8)),
			spirv.NewInstruction(spirv.OpTypeArray, 3, 0, spirv.IDRef(1), spirv.IDRef(2)),
		},
	}
	analyzer := defs.NewAnalyzer(m)
	defer func() {
		if recover() == nil {
			t.Error("array length from a specialization constant must panic, not be approximated")
		}
	}()
	ty.TranslateAggregate(analyzer, &m.TypesGlobalValues[2])
}

func TestTranslateAggregate_ImageAccessQualifier(t *testing.T) {
	base := []spirv.Instruction{
		spirv.NewInstruction(spirv.OpTypeFloat, 1, 0, spirv.LiteralInt32(32)),
	}
	imageOperands := func(extra ...spirv.Operand) []spirv.Operand {
		ops := []spirv.Operand{
			spirv.IDRef(1),
			spirv.DimOperand(spirv.Dim2D),
			spirv.LiteralInt32(0),
			spirv.LiteralInt32(0),
			spirv.LiteralInt32(0),
			spirv.LiteralInt32(1),
			spirv.ImageFormatOperand(spirv.ImageFormatRgba8),
		}
		return append(ops, extra...)
	}

	t.Run("present", func(t *testing.T) {
		m := &spirv.Module{TypesGlobalValues: append(append([]spirv.Instruction{}, base...),
			spirv.NewInstruction(spirv.OpTypeImage, 2, 0,
				imageOperands(spirv.AccessQualifierOperand(spirv.AccessQualifierReadOnly))...))}
		got, ok := ty.TranslateAggregate(defs.NewAnalyzer(m), &m.TypesGlobalValues[1])
		if !ok {
			t.Fatal("image did not translate")
		}
		if !got.HasAccess || got.Access != spirv.AccessQualifierReadOnly {
			t.Errorf("access = (%v, %s), want (true, ReadOnly)", got.HasAccess, got.Access)
		}
	})

	t.Run("wrong kind treated as absent", func(t *testing.T) {
		m := &spirv.Module{TypesGlobalValues: append(append([]spirv.Instruction{}, base...),
			spirv.NewInstruction(spirv.OpTypeImage, 2, 0,
				imageOperands(spirv.LiteralInt32(1))...))}
		got, ok := ty.TranslateAggregate(defs.NewAnalyzer(m), &m.TypesGlobalValues[1])
		if !ok {
			t.Fatal("image did not translate")
		}
		if got.HasAccess {
			t.Error("a non-qualifier eighth operand must read as no access qualifier")
		}
	})
}

func TestTranslateAggregate_NotAType(t *testing.T) {
	m := &spirv.Module{
		TypesGlobalValues: []spirv.Instruction{
			spirv.NewInstruction(spirv.OpTypeInt, 1, 0, spirv.LiteralInt32(32), spirv.LiteralInt32(0)),
			spirv.NewInstruction(spirv.OpVariable, 2, 1,
				spirv.StorageClassOperand(spirv.StorageClassPrivate)),
		},
	}
	analyzer := defs.NewAnalyzer(m)
	if _, ok := ty.TranslateAggregate(analyzer, &m.TypesGlobalValues[1]); ok {
		t.Error("OpVariable is not a type and must not translate")
	}
}
