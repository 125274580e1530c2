package spirv

import "strconv"

// Capability is a SPIR-V capability enumerant.
type Capability uint32

const (
	CapabilityMatrix           Capability = 0
	CapabilityShader           Capability = 1
	CapabilityGeometry         Capability = 2
	CapabilityTessellation     Capability = 3
	CapabilityAddresses        Capability = 4
	CapabilityLinkage          Capability = 5
	CapabilityKernel           Capability = 6
	CapabilityVector16         Capability = 7
	CapabilityFloat16Buffer    Capability = 8
	CapabilityFloat16          Capability = 9
	CapabilityFloat64          Capability = 10
	CapabilityInt64            Capability = 11
	CapabilityInt64Atomics     Capability = 12
	CapabilityImageBasic       Capability = 13
	CapabilityPipes            Capability = 17
	CapabilityGroups           Capability = 18
	CapabilityDeviceEnqueue    Capability = 19
	CapabilityLiteralSampler   Capability = 20
	CapabilityAtomicStorage    Capability = 21
	CapabilityInt16            Capability = 22
	CapabilityInt8             Capability = 39
	CapabilityNamedBarrier     Capability = 59
	CapabilityPipeStorage      Capability = 60
	CapabilityVariablePointers Capability = 4442
)

func (c Capability) String() string {
	switch c {
	case CapabilityMatrix:
		return "Matrix"
	case CapabilityShader:
		return "Shader"
	case CapabilityGeometry:
		return "Geometry"
	case CapabilityTessellation:
		return "Tessellation"
	case CapabilityAddresses:
		return "Addresses"
	case CapabilityLinkage:
		return "Linkage"
	case CapabilityKernel:
		return "Kernel"
	case CapabilityFloat16:
		return "Float16"
	case CapabilityFloat64:
		return "Float64"
	case CapabilityInt64:
		return "Int64"
	case CapabilityInt16:
		return "Int16"
	case CapabilityInt8:
		return "Int8"
	case CapabilityVariablePointers:
		return "VariablePointers"
	default:
		return "Capability#" + strconv.FormatUint(uint64(c), 10)
	}
}

// StorageClass is a SPIR-V storage class enumerant.
type StorageClass uint32

const (
	StorageClassUniformConstant StorageClass = 0
	StorageClassInput           StorageClass = 1
	StorageClassUniform         StorageClass = 2
	StorageClassOutput          StorageClass = 3
	StorageClassWorkgroup       StorageClass = 4
	StorageClassCrossWorkgroup  StorageClass = 5
	StorageClassPrivate         StorageClass = 6
	StorageClassFunction        StorageClass = 7
	StorageClassGeneric         StorageClass = 8
	StorageClassPushConstant    StorageClass = 9
	StorageClassAtomicCounter   StorageClass = 10
	StorageClassImage           StorageClass = 11
	StorageClassStorageBuffer   StorageClass = 12
)

func (s StorageClass) String() string {
	switch s {
	case StorageClassUniformConstant:
		return "UniformConstant"
	case StorageClassInput:
		return "Input"
	case StorageClassUniform:
		return "Uniform"
	case StorageClassOutput:
		return "Output"
	case StorageClassWorkgroup:
		return "Workgroup"
	case StorageClassCrossWorkgroup:
		return "CrossWorkgroup"
	case StorageClassPrivate:
		return "Private"
	case StorageClassFunction:
		return "Function"
	case StorageClassGeneric:
		return "Generic"
	case StorageClassPushConstant:
		return "PushConstant"
	case StorageClassAtomicCounter:
		return "AtomicCounter"
	case StorageClassImage:
		return "Image"
	case StorageClassStorageBuffer:
		return "StorageBuffer"
	default:
		return "StorageClass#" + strconv.FormatUint(uint64(s), 10)
	}
}

// Dim is a SPIR-V image dimensionality enumerant.
type Dim uint32

const (
	Dim1D          Dim = 0
	Dim2D          Dim = 1
	Dim3D          Dim = 2
	DimCube        Dim = 3
	DimRect        Dim = 4
	DimBuffer      Dim = 5
	DimSubpassData Dim = 6
)

func (d Dim) String() string {
	switch d {
	case Dim1D:
		return "1D"
	case Dim2D:
		return "2D"
	case Dim3D:
		return "3D"
	case DimCube:
		return "Cube"
	case DimRect:
		return "Rect"
	case DimBuffer:
		return "Buffer"
	case DimSubpassData:
		return "SubpassData"
	default:
		return "Dim#" + strconv.FormatUint(uint64(d), 10)
	}
}

// ImageFormat is a SPIR-V image format enumerant.
type ImageFormat uint32

const (
	ImageFormatUnknown    ImageFormat = 0
	ImageFormatRgba32f    ImageFormat = 1
	ImageFormatRgba16f    ImageFormat = 2
	ImageFormatR32f       ImageFormat = 3
	ImageFormatRgba8      ImageFormat = 4
	ImageFormatRgba8Snorm ImageFormat = 5
	ImageFormatRg32f      ImageFormat = 6
	ImageFormatRg16f      ImageFormat = 7
	ImageFormatR32i       ImageFormat = 21
	ImageFormatR32ui      ImageFormat = 33
)

func (f ImageFormat) String() string {
	switch f {
	case ImageFormatUnknown:
		return "Unknown"
	case ImageFormatRgba32f:
		return "Rgba32f"
	case ImageFormatRgba16f:
		return "Rgba16f"
	case ImageFormatR32f:
		return "R32f"
	case ImageFormatRgba8:
		return "Rgba8"
	case ImageFormatRgba8Snorm:
		return "Rgba8Snorm"
	case ImageFormatRg32f:
		return "Rg32f"
	case ImageFormatRg16f:
		return "Rg16f"
	case ImageFormatR32i:
		return "R32i"
	case ImageFormatR32ui:
		return "R32ui"
	default:
		return "ImageFormat#" + strconv.FormatUint(uint64(f), 10)
	}
}

// AccessQualifier is a SPIR-V access qualifier enumerant.
type AccessQualifier uint32

const (
	AccessQualifierReadOnly  AccessQualifier = 0
	AccessQualifierWriteOnly AccessQualifier = 1
	AccessQualifierReadWrite AccessQualifier = 2
)

func (a AccessQualifier) String() string {
	switch a {
	case AccessQualifierReadOnly:
		return "ReadOnly"
	case AccessQualifierWriteOnly:
		return "WriteOnly"
	case AccessQualifierReadWrite:
		return "ReadWrite"
	default:
		return "AccessQualifier#" + strconv.FormatUint(uint64(a), 10)
	}
}

// AddressingModel is a SPIR-V addressing model enumerant.
type AddressingModel uint32

const (
	AddressingModelLogical    AddressingModel = 0
	AddressingModelPhysical32 AddressingModel = 1
	AddressingModelPhysical64 AddressingModel = 2
)

func (a AddressingModel) String() string {
	switch a {
	case AddressingModelLogical:
		return "Logical"
	case AddressingModelPhysical32:
		return "Physical32"
	case AddressingModelPhysical64:
		return "Physical64"
	default:
		return "AddressingModel#" + strconv.FormatUint(uint64(a), 10)
	}
}

// MemoryModel is a SPIR-V memory model enumerant.
type MemoryModel uint32

const (
	MemoryModelSimple  MemoryModel = 0
	MemoryModelGLSL450 MemoryModel = 1
	MemoryModelOpenCL  MemoryModel = 2
	MemoryModelVulkan  MemoryModel = 3
)

func (m MemoryModel) String() string {
	switch m {
	case MemoryModelSimple:
		return "Simple"
	case MemoryModelGLSL450:
		return "GLSL450"
	case MemoryModelOpenCL:
		return "OpenCL"
	case MemoryModelVulkan:
		return "Vulkan"
	default:
		return "MemoryModel#" + strconv.FormatUint(uint64(m), 10)
	}
}

// ExecutionModel is a SPIR-V execution model enumerant.
type ExecutionModel uint32

const (
	ExecutionModelVertex    ExecutionModel = 0
	ExecutionModelFragment  ExecutionModel = 4
	ExecutionModelGLCompute ExecutionModel = 5
	ExecutionModelKernel    ExecutionModel = 6
)

func (e ExecutionModel) String() string {
	switch e {
	case ExecutionModelVertex:
		return "Vertex"
	case ExecutionModelFragment:
		return "Fragment"
	case ExecutionModelGLCompute:
		return "GLCompute"
	case ExecutionModelKernel:
		return "Kernel"
	default:
		return "ExecutionModel#" + strconv.FormatUint(uint64(e), 10)
	}
}
