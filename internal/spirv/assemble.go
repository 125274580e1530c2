package spirv

// AssembleInto appends the operand's binary SPIR-V words to data and returns
// the extended slice. The encoding matches the SPIR-V binary form: one word
// per 32-bit value, low word then high word for 64-bit values, and strings
// packed little-endian with a NUL terminator, padded to a word boundary.
//
// The linker uses this encoding only to build structural keys; the words are
// never written out or parsed back.
func (o *Operand) AssembleInto(data []uint32) []uint32 {
	switch o.Kind {
	case OperandIDRef:
		return append(data, uint32(o.ID))
	case OperandLiteralInt64, OperandLiteralFloat64:
		return append(data, uint32(o.DWord), uint32(o.DWord>>32))
	case OperandLiteralString:
		return appendPackedString(data, o.Str)
	default:
		return append(data, o.Word)
	}
}

func appendPackedString(data []uint32, s string) []uint32 {
	var word uint32
	shift := uint(0)
	for i := 0; i < len(s); i++ {
		word |= uint32(s[i]) << shift
		shift += 8
		if shift == 32 {
			data = append(data, word)
			word, shift = 0, 0
		}
	}
	// The NUL terminator lands in the current word; if the string filled the
	// word exactly, it occupies a fresh all-zero word.
	return append(data, word)
}
