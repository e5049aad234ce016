// SPDX-License-Identifier: MPL-2.0

package coreutil

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateCommand is the sentinel error wrapped by DuplicateCommandError.
	ErrDuplicateCommand = errors.New("duplicate command registration")
	// ErrEmptyCommandName is the sentinel error wrapped by EmptyCommandNameError.
	ErrEmptyCommandName = errors.New("empty command name")
)

type (
	// DuplicateCommandError is returned by Registry.Register when a command
	// name is already taken. Registration collisions are programming errors
	// and surface as a startup failure rather than silent replacement.
	DuplicateCommandError struct {
		Name string
	}

	// EmptyCommandNameError is returned by Registry.Register when a command
	// is nil or reports an empty name.
	EmptyCommandNameError struct{}
)

// Error implements the error interface.
func (e *DuplicateCommandError) Error() string {
	return fmt.Sprintf("command %q is already registered", e.Name)
}

// Unwrap returns ErrDuplicateCommand for errors.Is() compatibility.
func (e *DuplicateCommandError) Unwrap() error { return ErrDuplicateCommand }

// Error implements the error interface.
func (e *EmptyCommandNameError) Error() string {
	return "cannot register a command with an empty name"
}

// Unwrap returns ErrEmptyCommandName for errors.Is() compatibility.
func (e *EmptyCommandNameError) Unwrap() error { return ErrEmptyCommandName }
