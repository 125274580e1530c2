// Package ty reconstructs a structural, comparable view of type- and
// constant-declaring instructions. The linker uses it to reason about type
// identity across modules, independent of the byte-level keys the
// deduplication passes work with.
package ty

import (
	"fmt"
	"strings"

	"spirvlink/internal/spirv"
)

// ScalarKind enumerates the non-composite type shapes.
type ScalarKind uint8

const (
	ScalarVoid ScalarKind = iota
	ScalarBool
	ScalarInt
	ScalarFloat
	ScalarOpaque
	ScalarEvent
	ScalarDeviceEvent
	ScalarReserveID
	ScalarQueue
	ScalarPipe
	ScalarForwardPointer
	ScalarPipeStorage
	ScalarNamedBarrier
	ScalarSampler
)

// ScalarType is a non-composite type. All fields are comparable, so two
// ScalarType values can be compared with ==.
type ScalarType struct {
	Kind         ScalarKind
	Width        uint32             // ScalarInt, ScalarFloat
	Signed       bool               // ScalarInt
	Name         string             // ScalarOpaque
	StorageClass spirv.StorageClass // ScalarForwardPointer
}

// String renders the scalar in a compact, deterministic form.
func (t ScalarType) String() string {
	switch t.Kind {
	case ScalarVoid:
		return "void"
	case ScalarBool:
		return "bool"
	case ScalarInt:
		if t.Signed {
			return fmt.Sprintf("i%d", t.Width)
		}
		return fmt.Sprintf("u%d", t.Width)
	case ScalarFloat:
		return fmt.Sprintf("f%d", t.Width)
	case ScalarOpaque:
		return fmt.Sprintf("Opaque{%s}", t.Name)
	case ScalarEvent:
		return "Event"
	case ScalarDeviceEvent:
		return "DeviceEvent"
	case ScalarReserveID:
		return "ReserveId"
	case ScalarQueue:
		return "Queue"
	case ScalarPipe:
		return "Pipe"
	case ScalarForwardPointer:
		return fmt.Sprintf("ForwardPointer{%s}", t.StorageClass)
	case ScalarPipeStorage:
		return "PipeStorage"
	case ScalarNamedBarrier:
		return "NamedBarrier"
	case ScalarSampler:
		return "Sampler"
	default:
		return fmt.Sprintf("ScalarKind(%d)", t.Kind)
	}
}

// AggregateKind enumerates the composite type shapes.
type AggregateKind uint8

const (
	// AggregateScalar wraps a ScalarType.
	AggregateScalar AggregateKind = iota
	// AggregateArray is a sized array.
	AggregateArray
	// AggregatePointer is a pointer with a storage class.
	AggregatePointer
	// AggregateImage is an image type with its full parameter list.
	AggregateImage
	// AggregateComposite is the generic member-list wrapper covering
	// structs, vectors, matrices, runtime arrays and sampled images.
	// Vector and matrix element counts are not retained.
	AggregateComposite
	// AggregateFunction is a function type: parameters and a return type.
	AggregateFunction
)

// AggregateType is a composite (or wrapped scalar) type. Kind selects which
// fields are meaningful. Values are compared with Equal, not ==.
type AggregateType struct {
	Kind AggregateKind

	Scalar ScalarType // AggregateScalar

	Elem *AggregateType // AggregateArray, AggregatePointer, AggregateImage
	Len  uint64         // AggregateArray

	StorageClass spirv.StorageClass // AggregatePointer

	Members []AggregateType // AggregateComposite
	Params  []AggregateType // AggregateFunction
	Return  *AggregateType  // AggregateFunction

	// Image parameters, AggregateImage only.
	Dim          spirv.Dim
	Depth        uint32
	Arrayed      uint32
	MultiSampled uint32
	Sampled      uint32
	Format       spirv.ImageFormat
	HasAccess    bool
	Access       spirv.AccessQualifier
}

// Equal reports structural equality of two types.
func (t *AggregateType) Equal(o *AggregateType) bool {
	if t == nil || o == nil {
		return t == o
	}
	if t.Kind != o.Kind {
		return false
	}
	switch t.Kind {
	case AggregateScalar:
		return t.Scalar == o.Scalar
	case AggregateArray:
		return t.Len == o.Len && t.Elem.Equal(o.Elem)
	case AggregatePointer:
		return t.StorageClass == o.StorageClass && t.Elem.Equal(o.Elem)
	case AggregateImage:
		return t.Dim == o.Dim && t.Depth == o.Depth && t.Arrayed == o.Arrayed &&
			t.MultiSampled == o.MultiSampled && t.Sampled == o.Sampled &&
			t.Format == o.Format && t.HasAccess == o.HasAccess &&
			t.Access == o.Access && t.Elem.Equal(o.Elem)
	case AggregateComposite:
		return equalSlices(t.Members, o.Members)
	case AggregateFunction:
		return t.Return.Equal(o.Return) && equalSlices(t.Params, o.Params)
	default:
		return false
	}
}

func equalSlices(a, b []AggregateType) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(&b[i]) {
			return false
		}
	}
	return true
}

// String renders the type in a compact, deterministic form. The text is for
// diagnostics only and plays no role in equality or lookup.
func (t *AggregateType) String() string {
	switch t.Kind {
	case AggregateScalar:
		return t.Scalar.String()
	case AggregateArray:
		return fmt.Sprintf("[%s; %d]", t.Elem, t.Len)
	case AggregatePointer:
		return fmt.Sprintf("*{%s} %s", t.StorageClass, t.Elem)
	case AggregateImage:
		access := "none"
		if t.HasAccess {
			access = t.Access.String()
		}
		return fmt.Sprintf(
			"Image { %s, dim:%s, depth:%d, arrayed:%d, multi_sampled:%d, sampled:%d, format:%s, access:%s }",
			t.Elem, t.Dim, t.Depth, t.Arrayed, t.MultiSampled, t.Sampled, t.Format, access)
	case AggregateComposite:
		var b strings.Builder
		b.WriteString("struct {")
		for i := range t.Members {
			fmt.Fprintf(&b, " %s,", &t.Members[i])
		}
		b.WriteString(" }")
		return b.String()
	case AggregateFunction:
		var b strings.Builder
		b.WriteString("fn(")
		for i := range t.Params {
			fmt.Fprintf(&b, " %s,", &t.Params[i])
		}
		fmt.Fprintf(&b, " ) -> %s", t.Return)
		return b.String()
	default:
		return fmt.Sprintf("AggregateKind(%d)", t.Kind)
	}
}
