package ty

import (
	"fmt"

	"spirvlink/internal/defs"
	"spirvlink/internal/spirv"
)

// TranslateScalar builds the ScalarType for a non-composite type instruction.
// The second result is false when the opcode does not declare a scalar type;
// callers then try the aggregate path. An opcode that does match but whose
// operands have the wrong shape panics: the module broke its producer's
// structural guarantees and nothing downstream can be trusted.
func TranslateScalar(inst *spirv.Instruction) (ScalarType, bool) {
	switch inst.Op {
	case spirv.OpTypeVoid:
		return ScalarType{Kind: ScalarVoid}, true
	case spirv.OpTypeBool:
		return ScalarType{Kind: ScalarBool}, true
	case spirv.OpTypeEvent:
		return ScalarType{Kind: ScalarEvent}, true
	case spirv.OpTypeDeviceEvent:
		return ScalarType{Kind: ScalarDeviceEvent}, true
	case spirv.OpTypeReserveId:
		return ScalarType{Kind: ScalarReserveID}, true
	case spirv.OpTypeQueue:
		return ScalarType{Kind: ScalarQueue}, true
	case spirv.OpTypePipe:
		return ScalarType{Kind: ScalarPipe}, true
	case spirv.OpTypePipeStorage:
		return ScalarType{Kind: ScalarPipeStorage}, true
	case spirv.OpTypeNamedBarrier:
		return ScalarType{Kind: ScalarNamedBarrier}, true
	case spirv.OpTypeSampler:
		return ScalarType{Kind: ScalarSampler}, true
	case spirv.OpTypeForwardPointer:
		op := operandAt(inst, 0)
		if op.Kind != spirv.OperandStorageClass {
			panic(malformed(inst, "storage class"))
		}
		return ScalarType{Kind: ScalarForwardPointer, StorageClass: op.StorageClass()}, true
	case spirv.OpTypeInt:
		return ScalarType{
			Kind:   ScalarInt,
			Width:  operandAt(inst, 0).AsU32(),
			Signed: operandAt(inst, 1).AsU32() != 0,
		}, true
	case spirv.OpTypeFloat:
		return ScalarType{Kind: ScalarFloat, Width: operandAt(inst, 0).AsU32()}, true
	case spirv.OpTypeOpaque:
		op := operandAt(inst, 0)
		if op.Kind != spirv.OperandLiteralString {
			panic(malformed(inst, "literal string"))
		}
		return ScalarType{Kind: ScalarOpaque, Name: op.Str}, true
	default:
		return ScalarType{}, false
	}
}

// TranslateAggregate builds the AggregateType for a type instruction,
// following id references through a. The second result is false when the
// instruction does not declare a type at all. Malformed operand shapes panic,
// as does an array whose length comes from a specialization constant: that
// case is structurally valid SPIR-V the model does not support, and silently
// guessing a length would corrupt type identity.
func TranslateAggregate(a *defs.Analyzer, inst *spirv.Instruction) (*AggregateType, bool) {
	switch inst.Op {
	case spirv.OpTypeArray:
		lenDef := a.OperandDef(operandAt(inst, 1))
		if lenDef.Op != spirv.OpConstant {
			panic(fmt.Sprintf("ty: array length of %s is defined by %s, only plain OpConstant lengths are supported",
				inst.ResultID, lenDef.Op))
		}
		lenValue := lenDef.Operands[0].AsU64()
		elem := mustTranslateOperand(a, inst, 0, "OpTypeArray element")
		return &AggregateType{Kind: AggregateArray, Elem: elem, Len: lenValue}, true

	case spirv.OpTypePointer:
		op := operandAt(inst, 0)
		if op.Kind != spirv.OperandStorageClass {
			panic(malformed(inst, "storage class"))
		}
		elem := mustTranslateOperand(a, inst, 1, "OpTypePointer element")
		return &AggregateType{Kind: AggregatePointer, StorageClass: op.StorageClass(), Elem: elem}, true

	case spirv.OpTypeRuntimeArray, spirv.OpTypeVector, spirv.OpTypeMatrix, spirv.OpTypeSampledImage:
		// Element counts are intentionally dropped here; these all collapse
		// to a composite over the referenced element type.
		def := a.OperandDef(operandAt(inst, 0))
		var members []AggregateType
		if elem, ok := TranslateAggregate(a, &def); ok {
			members = []AggregateType{*elem}
		}
		return &AggregateType{Kind: AggregateComposite, Members: members}, true

	case spirv.OpTypeStruct:
		members := make([]AggregateType, 0, len(inst.Operands))
		for i := range inst.Operands {
			def := a.OperandDef(&inst.Operands[i])
			member, ok := TranslateAggregate(a, &def)
			if !ok {
				panic(fmt.Sprintf("ty: struct member %d of %s is not a type", i, inst.ResultID))
			}
			members = append(members, *member)
		}
		return &AggregateType{Kind: AggregateComposite, Members: members}, true

	case spirv.OpTypeFunction:
		ret := mustTranslateOperand(a, inst, 0, "OpTypeFunction return")
		params := make([]AggregateType, 0, len(inst.Operands)-1)
		for i := 1; i < len(inst.Operands); i++ {
			def := a.OperandDef(&inst.Operands[i])
			param, ok := TranslateAggregate(a, &def)
			if !ok {
				panic(fmt.Sprintf("ty: parameter %d of %s is not a type", i-1, inst.ResultID))
			}
			params = append(params, *param)
		}
		return &AggregateType{Kind: AggregateFunction, Params: params, Return: ret}, true

	case spirv.OpTypeImage:
		elem := mustTranslateOperand(a, inst, 0, "OpTypeImage sampled type")
		dim := operandAt(inst, 1)
		if dim.Kind != spirv.OperandDim {
			panic(malformed(inst, "dim"))
		}
		format := operandAt(inst, 6)
		if format.Kind != spirv.OperandImageFormat {
			panic(malformed(inst, "image format"))
		}
		t := &AggregateType{
			Kind:         AggregateImage,
			Elem:         elem,
			Dim:          dim.Dim(),
			Depth:        operandAt(inst, 2).AsU32(),
			Arrayed:      operandAt(inst, 3).AsU32(),
			MultiSampled: operandAt(inst, 4).AsU32(),
			Sampled:      operandAt(inst, 5).AsU32(),
			Format:       format.ImageFormat(),
		}
		// The access qualifier is optional, and an eighth operand of the
		// wrong kind is treated as absent rather than rejected.
		if len(inst.Operands) > 7 && inst.Operands[7].Kind == spirv.OperandAccessQualifier {
			t.HasAccess = true
			t.Access = inst.Operands[7].AccessQualifier()
		}
		return t, true

	default:
		if scalar, ok := TranslateScalar(inst); ok {
			return &AggregateType{Kind: AggregateScalar, Scalar: scalar}, true
		}
		return nil, false
	}
}

func mustTranslateOperand(a *defs.Analyzer, inst *spirv.Instruction, idx int, what string) *AggregateType {
	def := a.OperandDef(operandAt(inst, idx))
	t, ok := TranslateAggregate(a, &def)
	if !ok {
		panic(fmt.Sprintf("ty: expected a type for %s, got %s", what, def.Op))
	}
	return t
}

func operandAt(inst *spirv.Instruction, idx int) *spirv.Operand {
	if idx >= len(inst.Operands) {
		panic(fmt.Sprintf("ty: %s has %d operands, need at least %d", inst.Op, len(inst.Operands), idx+1))
	}
	return &inst.Operands[idx]
}

func malformed(inst *spirv.Instruction, want string) string {
	return fmt.Sprintf("ty: unexpected operand while parsing %s, want %s", inst.Op, want)
}
