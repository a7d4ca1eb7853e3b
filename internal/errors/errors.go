// Package errors provides sentinel errors and custom error types for the seqpipes application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	// ErrGenomeNotFound indicates that no organism configuration could be resolved
	ErrGenomeNotFound = errors.New("genome configuration not found")

	// ErrWorkdirFailed indicates that a working directory could not be provisioned
	ErrWorkdirFailed = errors.New("failed to create working directory")

	// ErrModeConflict indicates that mutually exclusive mapping modes were requested
	ErrModeConflict = errors.New("allelic-mapping and mapping are mutually exclusive")

	// ErrBadMetrics indicates a file that is not bamPEFragmentSize output
	ErrBadMetrics = errors.New("not a bamPEFragmentSize metrics file")

	// ErrBadSampleSheet indicates a sample sheet missing required columns
	ErrBadSampleSheet = errors.New("sample sheet is missing required columns")
)

// GenomeNotFoundError represents an error when an organism configuration cannot be resolved
type GenomeNotFoundError struct {
	Genome string
}

func (e *GenomeNotFoundError) Error() string {
	return fmt.Sprintf("genome configuration file not found for: %s", e.Genome)
}

// Is returns true if the target error is ErrGenomeNotFound
func (e *GenomeNotFoundError) Is(target error) bool {
	return target == ErrGenomeNotFound
}

// NewGenomeNotFoundError creates a new GenomeNotFoundError
func NewGenomeNotFoundError(genome string) *GenomeNotFoundError {
	return &GenomeNotFoundError{Genome: genome}
}

// WorkdirError represents a failure to provision a working directory under
// both the preferred and the fallback prefix
type WorkdirError struct {
	Preferred string
	Fallback  string
	Err       error
}

func (e *WorkdirError) Error() string {
	msg := fmt.Sprintf("could not create a working directory under %s or %s", e.Preferred, e.Fallback)
	if e.Err != nil {
		msg += fmt.Sprintf(": %v", e.Err)
	}
	return msg
}

// Is returns true if the target error is ErrWorkdirFailed
func (e *WorkdirError) Is(target error) bool {
	return target == ErrWorkdirFailed
}

func (e *WorkdirError) Unwrap() error {
	return e.Err
}

// NewWorkdirError creates a new WorkdirError
func NewWorkdirError(preferred, fallback string, err error) *WorkdirError {
	return &WorkdirError{
		Preferred: preferred,
		Fallback:  fallback,
		Err:       err,
	}
}

// CommandError represents an error from an external command execution
type CommandError struct {
	Command string
	Args    []string
	Output  string
	Err     error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
	if e.Output != "" {
		msg += fmt.Sprintf("\noutput: %s", e.Output)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// NewCommandError creates a new CommandError
func NewCommandError(command string, args []string, output string, err error) *CommandError {
	return &CommandError{
		Command: command,
		Args:    args,
		Output:  output,
		Err:     err,
	}
}
