package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	homedir "github.com/mitchellh/go-homedir"
)

const historyFileName = ".skink_history"

// runRepl reads one statement per line and executes each against a single
// machine, so globals persist for the whole session.
func runRepl() error {
	machine := newVM()

	prompt := color.New(color.FgCyan).Sprint(">> ")
	errPrint := color.New(color.FgRed)

	fmt.Printf("skink %s (type \"exit\" to quit)\n", version)

	history := openHistory()
	if history != nil {
		defer history.Close()
	}

	in := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(prompt)
		if !in.Scan() {
			fmt.Println()
			return in.Err()
		}
		line := strings.TrimSpace(in.Text())
		if line == "" {
			continue
		}
		if line == "exit" {
			return nil
		}
		if history != nil {
			fmt.Fprintln(history, line)
		}
		if err := machine.RunScript(line); err != nil {
			errPrint.Fprintln(os.Stderr, err)
		}
	}
}

// openHistory opens the session history file for appending. History is
// best-effort: a failure disables it silently.
func openHistory() *os.File {
	home, err := homedir.Dir()
	if err != nil {
		return nil
	}
	path := filepath.Join(home, historyFileName)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return nil
	}
	return f
}
