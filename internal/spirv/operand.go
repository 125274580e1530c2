package spirv

import (
	"fmt"
	"strconv"
)

// ID is a result identifier. Ids are assigned by the module producer and are
// opaque to the linker; 0 means "no id".
type ID uint32

func (id ID) String() string {
	return "%" + strconv.FormatUint(uint64(id), 10)
}

// OperandKind tags the payload carried by an Operand.
type OperandKind uint8

const (
	// OperandIDRef references another instruction's result id.
	OperandIDRef OperandKind = iota
	// OperandLiteralInt32 is a 32-bit literal integer.
	OperandLiteralInt32
	// OperandLiteralInt64 is a 64-bit literal integer.
	OperandLiteralInt64
	// OperandLiteralFloat32 is a 32-bit literal float, stored as raw bits.
	OperandLiteralFloat32
	// OperandLiteralFloat64 is a 64-bit literal float, stored as raw bits.
	OperandLiteralFloat64
	// OperandLiteralString is a literal UTF-8 string.
	OperandLiteralString
	// OperandCapability is a Capability enumerant.
	OperandCapability
	// OperandStorageClass is a StorageClass enumerant.
	OperandStorageClass
	// OperandDim is a Dim enumerant.
	OperandDim
	// OperandImageFormat is an ImageFormat enumerant.
	OperandImageFormat
	// OperandAccessQualifier is an AccessQualifier enumerant.
	OperandAccessQualifier
	// OperandAddressingModel is an AddressingModel enumerant.
	OperandAddressingModel
	// OperandMemoryModel is a MemoryModel enumerant.
	OperandMemoryModel
	// OperandExecutionModel is an ExecutionModel enumerant.
	OperandExecutionModel
	// OperandEnum is any other enumerant the linker carries through
	// without interpreting.
	OperandEnum
)

// Operand is one instruction operand: an id reference, a literal, or an
// enumerant. Kind selects which payload field is meaningful.
type Operand struct {
	Kind  OperandKind
	ID    ID     // OperandIDRef
	Word  uint32 // 32-bit literals and all enumerant kinds
	DWord uint64 // 64-bit literals
	Str   string // OperandLiteralString
}

// IDRef builds an id-reference operand.
func IDRef(id ID) Operand { return Operand{Kind: OperandIDRef, ID: id} }

// LiteralInt32 builds a 32-bit literal integer operand.
func LiteralInt32(v uint32) Operand { return Operand{Kind: OperandLiteralInt32, Word: v} }

// LiteralInt64 builds a 64-bit literal integer operand.
func LiteralInt64(v uint64) Operand { return Operand{Kind: OperandLiteralInt64, DWord: v} }

// LiteralString builds a literal string operand.
func LiteralString(s string) Operand { return Operand{Kind: OperandLiteralString, Str: s} }

// CapabilityOperand builds a Capability enumerant operand.
func CapabilityOperand(c Capability) Operand {
	return Operand{Kind: OperandCapability, Word: uint32(c)}
}

// StorageClassOperand builds a StorageClass enumerant operand.
func StorageClassOperand(s StorageClass) Operand {
	return Operand{Kind: OperandStorageClass, Word: uint32(s)}
}

// DimOperand builds a Dim enumerant operand.
func DimOperand(d Dim) Operand { return Operand{Kind: OperandDim, Word: uint32(d)} }

// ImageFormatOperand builds an ImageFormat enumerant operand.
func ImageFormatOperand(f ImageFormat) Operand {
	return Operand{Kind: OperandImageFormat, Word: uint32(f)}
}

// AccessQualifierOperand builds an AccessQualifier enumerant operand.
func AccessQualifierOperand(a AccessQualifier) Operand {
	return Operand{Kind: OperandAccessQualifier, Word: uint32(a)}
}

// AddressingModelOperand builds an AddressingModel enumerant operand.
func AddressingModelOperand(a AddressingModel) Operand {
	return Operand{Kind: OperandAddressingModel, Word: uint32(a)}
}

// MemoryModelOperand builds a MemoryModel enumerant operand.
func MemoryModelOperand(m MemoryModel) Operand {
	return Operand{Kind: OperandMemoryModel, Word: uint32(m)}
}

// ExecutionModelOperand builds an ExecutionModel enumerant operand.
func ExecutionModelOperand(e ExecutionModel) Operand {
	return Operand{Kind: OperandExecutionModel, Word: uint32(e)}
}

// EnumOperand builds an uninterpreted enumerant operand.
func EnumOperand(v uint32) Operand { return Operand{Kind: OperandEnum, Word: v} }

// IsIDRef reports whether the operand is an id reference.
func (o *Operand) IsIDRef() bool { return o.Kind == OperandIDRef }

// Capability returns the Capability payload.
// The operand must be of kind OperandCapability.
func (o *Operand) Capability() Capability { return Capability(o.Word) }

// StorageClass returns the StorageClass payload.
// The operand must be of kind OperandStorageClass.
func (o *Operand) StorageClass() StorageClass { return StorageClass(o.Word) }

// Dim returns the Dim payload. The operand must be of kind OperandDim.
func (o *Operand) Dim() Dim { return Dim(o.Word) }

// ImageFormat returns the ImageFormat payload.
// The operand must be of kind OperandImageFormat.
func (o *Operand) ImageFormat() ImageFormat { return ImageFormat(o.Word) }

// AccessQualifier returns the AccessQualifier payload.
// The operand must be of kind OperandAccessQualifier.
func (o *Operand) AccessQualifier() AccessQualifier { return AccessQualifier(o.Word) }

// AsU64 returns the value of a literal integer operand widened to 64 bits.
// Panics if the operand is not an integer literal: callers only reach for a
// literal when the opcode guarantees one, so a mismatch means the module
// violated its producer's structural guarantees.
func (o *Operand) AsU64() uint64 {
	switch o.Kind {
	case OperandLiteralInt32:
		return uint64(o.Word)
	case OperandLiteralInt64:
		return o.DWord
	default:
		panic(fmt.Sprintf("spirv: operand kind %d is not an integer literal", o.Kind))
	}
}

// AsU32 returns the value of a 32-bit literal integer operand.
// Panics if the operand is not a 32-bit integer literal.
func (o *Operand) AsU32() uint32 {
	if o.Kind != OperandLiteralInt32 {
		panic(fmt.Sprintf("spirv: operand kind %d is not a 32-bit integer literal", o.Kind))
	}
	return o.Word
}

// String renders the operand for diagnostics.
func (o Operand) String() string {
	switch o.Kind {
	case OperandIDRef:
		return o.ID.String()
	case OperandLiteralInt32:
		return strconv.FormatUint(uint64(o.Word), 10)
	case OperandLiteralInt64:
		return strconv.FormatUint(o.DWord, 10)
	case OperandLiteralFloat32:
		return "float32(0x" + strconv.FormatUint(uint64(o.Word), 16) + ")"
	case OperandLiteralFloat64:
		return "float64(0x" + strconv.FormatUint(o.DWord, 16) + ")"
	case OperandLiteralString:
		return strconv.Quote(o.Str)
	case OperandCapability:
		return Capability(o.Word).String()
	case OperandStorageClass:
		return StorageClass(o.Word).String()
	case OperandDim:
		return Dim(o.Word).String()
	case OperandImageFormat:
		return ImageFormat(o.Word).String()
	case OperandAccessQualifier:
		return AccessQualifier(o.Word).String()
	case OperandAddressingModel:
		return AddressingModel(o.Word).String()
	case OperandMemoryModel:
		return MemoryModel(o.Word).String()
	case OperandExecutionModel:
		return ExecutionModel(o.Word).String()
	default:
		return strconv.FormatUint(uint64(o.Word), 10)
	}
}
