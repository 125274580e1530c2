package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"spirvlink/internal/defs"
	"spirvlink/internal/irfile"
	"spirvlink/internal/spirv"
	"spirvlink/internal/ty"
	"spirvlink/internal/ui"
)

var dumpShowTypes bool

func init() {
	dumpCmd.Flags().BoolVar(&dumpShowTypes, "types", false, "render reconstructed types next to type declarations")
}

var dumpCmd = &cobra.Command{
	Use:   "dump [flags] module.spvm",
	Short: "Print a module listing",
	Long:  "Dump prints a human-readable listing of a module, section by section.",
	Args:  cobra.ExactArgs(1),
	RunE:  runDump,
}

func runDump(cmd *cobra.Command, args []string) error {
	m, err := irfile.Load(args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, ui.SectionStyle.Render(args[0]))
	if dumpShowTypes {
		return dumpWithTypes(out, m)
	}
	return spirv.DumpModule(out, m)
}

// dumpWithTypes prints the reconstructed type for each declaration in the
// types/global-values section, followed by the full plain listing.
func dumpWithTypes(out io.Writer, m *spirv.Module) error {
	analyzer := defs.NewAnalyzer(m)
	fmt.Fprintln(out, ui.SectionStyle.Render("types_global_values"))
	for i := range m.TypesGlobalValues {
		in := &m.TypesGlobalValues[i]
		if t, ok := ty.TranslateAggregate(analyzer, in); ok {
			fmt.Fprintf(out, "  %s = %s\n", ui.IDStyle.Render(in.ResultID.String()), ui.TypeStyle.Render(t.String()))
			continue
		}
		fmt.Fprintf(out, "  %s\n", in)
	}
	fmt.Fprintln(out)
	return spirv.DumpModule(out, m)
}
