package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"spirvlink/internal/irfile"
	"spirvlink/internal/linker"
	"spirvlink/internal/observ"
	"spirvlink/internal/spirv"
	"spirvlink/internal/ui"
)

var (
	linkOutput       string
	linkNoDedupCaps  bool
	linkNoDedupExt   bool
	linkNoDedupTypes bool
	linkSkipCheck    bool
)

func init() {
	linkCmd.Flags().StringVarP(&linkOutput, "output", "o", "", "output module path (default from link.toml, else a.spvm)")
	linkCmd.Flags().BoolVar(&linkNoDedupCaps, "no-dedup-capabilities", false, "keep duplicate capability declarations")
	linkCmd.Flags().BoolVar(&linkNoDedupExt, "no-dedup-imports", false, "keep duplicate extended instruction set imports")
	linkCmd.Flags().BoolVar(&linkNoDedupTypes, "no-dedup-types", false, "keep duplicate type and constant declarations")
	linkCmd.Flags().BoolVar(&linkSkipCheck, "skip-check", false, "skip the structural check of the linked module")
}

var linkCmd = &cobra.Command{
	Use:   "link [flags] [input.spvm ...]",
	Short: "Link IR modules into one",
	Long:  "Link merges the input modules in order and removes duplicate capabilities, imports, types and constants.\nWith no inputs on the command line, inputs are taken from link.toml.",
	RunE:  runLink,
}

func runLink(cmd *cobra.Command, args []string) error {
	quiet, _ := cmd.Flags().GetBool("quiet")
	showTimings, _ := cmd.Flags().GetBool("timings")

	opts := linker.DefaultOptions()

	inputs := args
	output := linkOutput
	if len(inputs) == 0 {
		manifest, found, err := loadLinkManifest(".")
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("no input modules and no link.toml found")
		}
		inputs = manifest.InputPaths()
		if len(inputs) == 0 {
			return fmt.Errorf("%s lists no inputs", manifest.Path)
		}
		if output == "" {
			output = manifest.Config.Output.Path
		}
		manifest.ApplyDedup(&opts)
	}
	if output == "" {
		output = "a" + irfile.Ext
	}

	// The --no-* flags always win over link.toml.
	if linkNoDedupCaps {
		opts.DedupCapabilities = false
	}
	if linkNoDedupExt {
		opts.DedupExtInstImports = false
	}
	if linkNoDedupTypes {
		opts.DedupTypes = false
	}
	if showTimings {
		opts.Timer = observ.NewTimer()
	}

	modules, err := loadModules(inputs, opts.Timer)
	if err != nil {
		return err
	}

	linked, err := linker.Link(modules, opts)
	if err != nil {
		return err
	}

	if !linkSkipCheck {
		stop := opts.Timer.Start("check")
		err := linked.Check()
		stop()
		if err != nil {
			return fmt.Errorf("linked module failed its structural check: %w", err)
		}
	}

	stop := opts.Timer.Start("write")
	err = irfile.Save(output, linked)
	stop()
	if err != nil {
		return err
	}

	if showTimings {
		fmt.Fprint(cmd.OutOrStdout(), opts.Timer.Summary())
	}
	if !quiet {
		fmt.Fprintln(cmd.OutOrStdout(), ui.Successf("linked %d module(s) into %s (bound %d)", len(modules), output, linked.Bound()))
	}
	return nil
}

// loadModules reads every input concurrently. Order of the result matches
// the order of paths: link semantics depend on input order, only the I/O is
// parallel.
func loadModules(paths []string, timer *observ.Timer) ([]*spirv.Module, error) {
	stop := timer.Start("read")
	defer stop()

	modules := make([]*spirv.Module, len(paths))
	var g errgroup.Group
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			m, err := irfile.Load(path)
			if err != nil {
				return err
			}
			modules[i] = m
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return modules, nil
}
