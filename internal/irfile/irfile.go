// Package irfile reads and writes IR modules in the .spvm interchange
// format: a msgpack-encoded snapshot of a module as produced by an upstream
// frontend. It is the linker's file boundary; nothing in here is specific to
// any link pass.
package irfile

import (
	"fmt"
	"os"
	"path/filepath"

	"fortio.org/safecast"
	"github.com/vmihailenco/msgpack/v5"

	"spirvlink/internal/spirv"
)

// Ext is the conventional file extension of module files.
const Ext = ".spvm"

// Schema is the current payload version. Increment when the payload layout
// changes; Load rejects files written under a different version.
const Schema uint16 = 1

type payload struct {
	Schema uint16
	Bound  uint32
	Count  uint32
	Module spirv.Module
}

// Save writes the module to path. The file is written to a temporary sibling
// first and renamed into place, so a crashed write never leaves a truncated
// module behind.
func Save(path string, m *spirv.Module) error {
	count := 0
	m.EachInstruction(func(*spirv.Instruction) { count++ })
	count32, err := safecast.Conv[uint32](count)
	if err != nil {
		return fmt.Errorf("module too large to save: %w", err)
	}

	p := payload{
		Schema: Schema,
		Bound:  uint32(m.Bound()),
		Count:  count32,
		Module: *m,
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(path), "tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() {
		if tmp != "" {
			_ = os.Remove(tmp)
		}
	}()

	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(&p); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		return err
	}
	tmp = ""
	return nil
}

// Load reads a module from path.
func Load(path string) (*spirv.Module, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var p payload
	dec := msgpack.NewDecoder(f)
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if p.Schema != Schema {
		return nil, fmt.Errorf("%s: schema version %d, this build reads %d", path, p.Schema, Schema)
	}
	return &p.Module, nil
}
