package spirv

import (
	"fmt"
	"io"
)

// DumpModule writes a human-readable listing of the module, section by
// section, in module order. Output is deterministic for a given module.
func DumpModule(w io.Writer, m *Module) error {
	sections := []struct {
		name  string
		insts []Instruction
	}{
		{"capabilities", m.Capabilities},
		{"extensions", m.Extensions},
		{"ext_inst_imports", m.ExtInstImports},
		{"entry_points", m.EntryPoints},
		{"execution_modes", m.ExecutionModes},
		{"debug", m.Debug},
		{"annotations", m.Annotations},
		{"types_global_values", m.TypesGlobalValues},
		{"functions", m.Functions},
	}

	if m.MemoryModel != nil {
		if _, err := fmt.Fprintf(w, "memory_model: %s\n", m.MemoryModel); err != nil {
			return err
		}
	}
	for _, sec := range sections {
		if len(sec.insts) == 0 {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s=%d\n", sec.name, len(sec.insts)); err != nil {
			return err
		}
		for i := range sec.insts {
			if _, err := fmt.Fprintf(w, "  %s\n", sec.insts[i]); err != nil {
				return err
			}
		}
	}
	return nil
}
