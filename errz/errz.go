// Package errz defines the error types surfaced by the skink scanner,
// parser, and virtual machine.
package errz

import "fmt"

// CompileError is raised by the scanner or parser. It carries the source
// position of the offending token or character.
type CompileError struct {
	Line    int
	Column  int
	Message string
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	return fmt.Sprintf("%d:%d -> %s", e.Line, e.Column, e.Message)
}

// CompileErrorf creates a CompileError with a formatted message.
func CompileErrorf(line, column int, format string, args ...interface{}) *CompileError {
	return &CompileError{
		Line:    line,
		Column:  column,
		Message: fmt.Sprintf(format, args...),
	}
}

// RuntimeError is raised by the virtual machine or by value operations. The
// source line is attached by the VM when it is known; operations raised
// outside of bytecode execution carry no line.
type RuntimeError struct {
	Message string
	Line    int
	HasLine bool
}

// Error implements the error interface.
func (e *RuntimeError) Error() string {
	if e.HasLine {
		return fmt.Sprintf("[line %d] %s", e.Line, e.Message)
	}
	return e.Message
}

// RuntimeErrorf creates a RuntimeError with a formatted message and no
// source line.
func RuntimeErrorf(format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Message: fmt.Sprintf(format, args...)}
}

// WithLine returns a copy of the error annotated with a source line.
func (e *RuntimeError) WithLine(line int) *RuntimeError {
	return &RuntimeError{Message: e.Message, Line: line, HasLine: true}
}
