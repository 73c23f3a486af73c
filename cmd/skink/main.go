package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "dev"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fatal(err)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "skink [file...]",
		Short:         "A small scripting language with a bytecode virtual machine",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configureColor()
			configureLogging()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				if isatty.IsTerminal(os.Stdin.Fd()) {
					return runRepl()
				}
				return runStdin()
			}
			return runFiles(args)
		},
	}

	root.PersistentFlags().Bool("trace", false, "log every executed instruction")
	root.PersistentFlags().Bool("no-color", false, "disable colored output")
	viper.BindPFlag("trace", root.PersistentFlags().Lookup("trace"))
	viper.BindPFlag("no-color", root.PersistentFlags().Lookup("no-color"))
	viper.SetEnvPrefix("SKINK")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	root.AddCommand(newDisCommand())
	root.AddCommand(newVersionCommand())
	return root
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}
}

func configureColor() {
	if viper.GetBool("no-color") || os.Getenv("NO_COLOR") != "" {
		color.NoColor = true
	}
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}
}

func configureLogging() {
	level := zerolog.WarnLevel
	if viper.GetBool("trace") {
		level = zerolog.TraceLevel
	}
	zerolog.SetGlobalLevel(level)
}

func newLogger() zerolog.Logger {
	writer := zerolog.ConsoleWriter{Out: os.Stderr}
	return zerolog.New(writer).With().Timestamp().Logger()
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, color.RedString("%s", err))
	os.Exit(1)
}
