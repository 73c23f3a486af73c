// Package skink provides a convenience entry point for embedding the
// skink scripting language in a Go program.
//
// For example:
//
//	err := skink.Run(`print "hello";`, vm.Config{Output: &buf})
//
// Hosts that need to install native functions or reuse globals across
// scripts should construct a vm.VirtualMachine directly.
package skink

import (
	"github.com/skink-lang/skink/builtins"
	"github.com/skink-lang/skink/vm"
)

// Run compiles and executes one script with the default builtins
// installed.
func Run(source string, conf vm.Config, options ...vm.Option) error {
	machine := vm.New(conf, options...)
	for name, fn := range builtins.Defaults() {
		machine.SetVar(name, fn)
	}
	return machine.RunScript(source)
}
