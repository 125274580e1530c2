package spirv

import "strconv"

// Op is a SPIR-V opcode. Values match the SPIR-V specification.
type Op uint16

const (
	OpNop                   Op = 0
	OpUndef                 Op = 1
	OpSourceContinued       Op = 2
	OpSource                Op = 3
	OpSourceExtension       Op = 4
	OpName                  Op = 5
	OpMemberName            Op = 6
	OpString                Op = 7
	OpLine                  Op = 8
	OpExtension             Op = 10
	OpExtInstImport         Op = 11
	OpExtInst               Op = 12
	OpMemoryModel           Op = 14
	OpEntryPoint            Op = 15
	OpExecutionMode         Op = 16
	OpCapability            Op = 17
	OpTypeVoid              Op = 19
	OpTypeBool              Op = 20
	OpTypeInt               Op = 21
	OpTypeFloat             Op = 22
	OpTypeVector            Op = 23
	OpTypeMatrix            Op = 24
	OpTypeImage             Op = 25
	OpTypeSampler           Op = 26
	OpTypeSampledImage      Op = 27
	OpTypeArray             Op = 28
	OpTypeRuntimeArray      Op = 29
	OpTypeStruct            Op = 30
	OpTypeOpaque            Op = 31
	OpTypePointer           Op = 32
	OpTypeFunction          Op = 33
	OpTypeEvent             Op = 34
	OpTypeDeviceEvent       Op = 35
	OpTypeReserveId         Op = 36
	OpTypeQueue             Op = 37
	OpTypePipe              Op = 38
	OpTypeForwardPointer    Op = 39
	OpConstantTrue          Op = 41
	OpConstantFalse         Op = 42
	OpConstant              Op = 43
	OpConstantComposite     Op = 44
	OpConstantSampler       Op = 45
	OpConstantNull          Op = 46
	OpSpecConstantTrue      Op = 48
	OpSpecConstantFalse     Op = 49
	OpSpecConstant          Op = 50
	OpSpecConstantComposite Op = 51
	OpSpecConstantOp        Op = 52
	OpFunction              Op = 54
	OpFunctionParameter     Op = 55
	OpFunctionEnd           Op = 56
	OpFunctionCall          Op = 57
	OpVariable              Op = 59
	OpLoad                  Op = 61
	OpStore                 Op = 62
	OpAccessChain           Op = 65
	OpDecorate              Op = 71
	OpMemberDecorate        Op = 72
	OpIAdd                  Op = 128
	OpFAdd                  Op = 129
	OpLabel                 Op = 248
	OpBranch                Op = 249
	OpReturn                Op = 253
	OpReturnValue           Op = 254
	OpTypePipeStorage       Op = 322
	OpTypeNamedBarrier      Op = 327
)

var opNames = map[Op]string{
	OpNop:                   "OpNop",
	OpUndef:                 "OpUndef",
	OpSourceContinued:       "OpSourceContinued",
	OpSource:                "OpSource",
	OpSourceExtension:       "OpSourceExtension",
	OpName:                  "OpName",
	OpMemberName:            "OpMemberName",
	OpString:                "OpString",
	OpLine:                  "OpLine",
	OpExtension:             "OpExtension",
	OpExtInstImport:         "OpExtInstImport",
	OpExtInst:               "OpExtInst",
	OpMemoryModel:           "OpMemoryModel",
	OpEntryPoint:            "OpEntryPoint",
	OpExecutionMode:         "OpExecutionMode",
	OpCapability:            "OpCapability",
	OpTypeVoid:              "OpTypeVoid",
	OpTypeBool:              "OpTypeBool",
	OpTypeInt:               "OpTypeInt",
	OpTypeFloat:             "OpTypeFloat",
	OpTypeVector:            "OpTypeVector",
	OpTypeMatrix:            "OpTypeMatrix",
	OpTypeImage:             "OpTypeImage",
	OpTypeSampler:           "OpTypeSampler",
	OpTypeSampledImage:      "OpTypeSampledImage",
	OpTypeArray:             "OpTypeArray",
	OpTypeRuntimeArray:      "OpTypeRuntimeArray",
	OpTypeStruct:            "OpTypeStruct",
	OpTypeOpaque:            "OpTypeOpaque",
	OpTypePointer:           "OpTypePointer",
	OpTypeFunction:          "OpTypeFunction",
	OpTypeEvent:             "OpTypeEvent",
	OpTypeDeviceEvent:       "OpTypeDeviceEvent",
	OpTypeReserveId:         "OpTypeReserveId",
	OpTypeQueue:             "OpTypeQueue",
	OpTypePipe:              "OpTypePipe",
	OpTypeForwardPointer:    "OpTypeForwardPointer",
	OpConstantTrue:          "OpConstantTrue",
	OpConstantFalse:         "OpConstantFalse",
	OpConstant:              "OpConstant",
	OpConstantComposite:     "OpConstantComposite",
	OpConstantSampler:       "OpConstantSampler",
	OpConstantNull:          "OpConstantNull",
	OpSpecConstantTrue:      "OpSpecConstantTrue",
	OpSpecConstantFalse:     "OpSpecConstantFalse",
	OpSpecConstant:          "OpSpecConstant",
	OpSpecConstantComposite: "OpSpecConstantComposite",
	OpSpecConstantOp:        "OpSpecConstantOp",
	OpFunction:              "OpFunction",
	OpFunctionParameter:     "OpFunctionParameter",
	OpFunctionEnd:           "OpFunctionEnd",
	OpFunctionCall:          "OpFunctionCall",
	OpVariable:              "OpVariable",
	OpLoad:                  "OpLoad",
	OpStore:                 "OpStore",
	OpAccessChain:           "OpAccessChain",
	OpDecorate:              "OpDecorate",
	OpMemberDecorate:        "OpMemberDecorate",
	OpIAdd:                  "OpIAdd",
	OpFAdd:                  "OpFAdd",
	OpLabel:                 "OpLabel",
	OpBranch:                "OpBranch",
	OpReturn:                "OpReturn",
	OpReturnValue:           "OpReturnValue",
	OpTypePipeStorage:       "OpTypePipeStorage",
	OpTypeNamedBarrier:      "OpTypeNamedBarrier",
}

// String returns the canonical assembly name of the opcode, or a numeric
// form for opcodes the linker does not name.
func (op Op) String() string {
	if name, ok := opNames[op]; ok {
		return name
	}
	return "Op#" + strconv.FormatUint(uint64(op), 10)
}

// IsType reports whether the opcode declares a type.
func (op Op) IsType() bool {
	return (op >= OpTypeVoid && op <= OpTypeForwardPointer) ||
		op == OpTypePipeStorage || op == OpTypeNamedBarrier
}

// IsConstant reports whether the opcode declares a constant, including
// specialization constants.
func (op Op) IsConstant() bool {
	return op >= OpConstantTrue && op <= OpSpecConstantOp
}
