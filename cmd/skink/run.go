package main

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/skink-lang/skink/builtins"
	"github.com/skink-lang/skink/bytecode"
	"github.com/skink-lang/skink/dis"
	"github.com/skink-lang/skink/parser"
	"github.com/skink-lang/skink/vm"
)

func newVM() *vm.VirtualMachine {
	var options []vm.Option
	options = append(options, vm.WithLogger(newLogger()))
	if viper.GetBool("trace") {
		options = append(options, vm.WithTracing())
	}
	machine := vm.New(vm.Config{Input: os.Stdin, Output: os.Stdout}, options...)
	for name, fn := range builtins.Defaults() {
		machine.SetVar(name, fn)
	}
	return machine
}

// runFiles executes each script in order on a single machine, so globals
// defined by one file are visible to the next. Failures are aggregated;
// a failing script does not stop the ones after it.
func runFiles(paths []string) error {
	machine := newVM()
	var result *multierror.Error
	for _, path := range paths {
		source, err := os.ReadFile(path)
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}
		if err := machine.RunScript(string(source)); err != nil {
			result = multierror.Append(result, fmt.Errorf("%s: %w", path, err))
		}
	}
	return result.ErrorOrNil()
}

func runStdin() error {
	source, err := io.ReadAll(os.Stdin)
	if err != nil {
		return err
	}
	machine := newVM()
	return machine.RunScript(string(source))
}

func newDisCommand() *cobra.Command {
	return &cobra.Command{
		Use:           "dis <file>",
		Short:         "Disassemble compiled skink bytecode",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			chunk := bytecode.NewChunk()
			if err := parser.Compile(string(source), chunk); err != nil {
				return err
			}
			dis.Print(dis.Disassemble(chunk), os.Stdout)
			return nil
		},
	}
}
