// Package linker merges independently produced IR modules into one and runs
// the deduplication passes over the result.
package linker

import (
	"errors"
	"fmt"

	"spirvlink/internal/dedup"
	"spirvlink/internal/observ"
	"spirvlink/internal/spirv"
)

// Options controls which passes run over the merged module.
type Options struct {
	DedupCapabilities   bool
	DedupExtInstImports bool
	DedupTypes          bool

	// Timer, when non-nil, records per-phase durations.
	Timer *observ.Timer
}

// DefaultOptions enables every pass.
func DefaultOptions() Options {
	return Options{
		DedupCapabilities:   true,
		DedupExtInstImports: true,
		DedupTypes:          true,
	}
}

// Link merges the modules in input order and deduplicates the result.
// It takes ownership of the inputs: their ids are re-based in place so the
// merged module has a single id space, and their instruction slices end up
// shared with the output. The caller must not use the inputs afterwards.
func Link(modules []*spirv.Module, opts Options) (*spirv.Module, error) {
	if len(modules) == 0 {
		return nil, errors.New("linker: no input modules")
	}

	if err := checkMemoryModels(modules); err != nil {
		return nil, err
	}

	stop := opts.Timer.Start("merge")
	out := merge(modules)
	stop()

	if opts.DedupCapabilities {
		stop = opts.Timer.Start("dedup capabilities")
		dedup.RemoveDuplicateCapabilities(out)
		stop()
	}
	if opts.DedupExtInstImports {
		stop = opts.Timer.Start("dedup ext imports")
		dedup.RemoveDuplicateExtInstImports(out)
		stop()
	}
	if opts.DedupTypes {
		stop = opts.Timer.Start("dedup types")
		dedup.RemoveDuplicateTypes(out)
		stop()
	}

	return out, nil
}

// checkMemoryModels verifies that every module that declares a memory model
// declares the same one. Linking a Logical/GLSL450 module into a
// Physical64/OpenCL one cannot produce a meaningful result.
func checkMemoryModels(modules []*spirv.Module) error {
	var first *spirv.Instruction
	for _, m := range modules {
		if m.MemoryModel == nil {
			continue
		}
		if first == nil {
			first = m.MemoryModel
			continue
		}
		if !sameOperands(first, m.MemoryModel) {
			return fmt.Errorf("linker: memory model mismatch: %s vs %s", first, m.MemoryModel)
		}
	}
	return nil
}

func sameOperands(a, b *spirv.Instruction) bool {
	if a.Op != b.Op || len(a.Operands) != len(b.Operands) {
		return false
	}
	for i := range a.Operands {
		if a.Operands[i] != b.Operands[i] {
			return false
		}
	}
	return true
}

// merge re-bases each module's ids past the previous module's bound and
// concatenates the sections in input order, so the first module's
// declarations come first and stay canonical under deduplication.
func merge(modules []*spirv.Module) *spirv.Module {
	out := &spirv.Module{}
	var offset spirv.ID
	for _, m := range modules {
		bound := m.Bound()
		if offset != 0 {
			rebase(m, offset)
		}
		offset += bound - 1

		out.Capabilities = append(out.Capabilities, m.Capabilities...)
		out.Extensions = append(out.Extensions, m.Extensions...)
		out.ExtInstImports = append(out.ExtInstImports, m.ExtInstImports...)
		if out.MemoryModel == nil {
			out.MemoryModel = m.MemoryModel
		}
		out.EntryPoints = append(out.EntryPoints, m.EntryPoints...)
		out.ExecutionModes = append(out.ExecutionModes, m.ExecutionModes...)
		out.Debug = append(out.Debug, m.Debug...)
		out.Annotations = append(out.Annotations, m.Annotations...)
		out.TypesGlobalValues = append(out.TypesGlobalValues, m.TypesGlobalValues...)
		out.Functions = append(out.Functions, m.Functions...)
	}
	return out
}

func rebase(m *spirv.Module, offset spirv.ID) {
	shift := func(id spirv.ID) spirv.ID { return id + offset }
	m.EachInstruction(func(in *spirv.Instruction) {
		if in.ResultID != 0 {
			in.ResultID += offset
		}
		in.MapIDs(shift)
	})
}
