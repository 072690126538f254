/*
Copyright 2025 The PGRouter Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package pgerrors provides the error construction used across the router.
// Every error carries a canonical code so callers can branch on the class
// of failure without matching message text. Wrapping preserves the code of
// the innermost coded error.
package pgerrors

import (
	"errors"
	"fmt"
)

// Code classifies an error. The values mirror the canonical gRPC codes the
// router uses on its RPC surfaces.
type Code int

const (
	// OK is the code of a nil error.
	OK Code = iota
	// Unknown is the code for errors that carry no code of their own.
	Unknown
	// InvalidArgument indicates the caller supplied a malformed value.
	InvalidArgument
	// NotFound indicates a catalog lookup found no entry.
	NotFound
	// AlreadyExists indicates a catalog entry was registered twice.
	AlreadyExists
	// FailedPrecondition indicates a caller-contract violation.
	FailedPrecondition
	// Internal indicates a bug in the router itself.
	Internal
)

func (c Code) String() string {
	switch c {
	case OK:
		return "OK"
	case InvalidArgument:
		return "INVALID_ARGUMENT"
	case NotFound:
		return "NOT_FOUND"
	case AlreadyExists:
		return "ALREADY_EXISTS"
	case FailedPrecondition:
		return "FAILED_PRECONDITION"
	case Internal:
		return "INTERNAL"
	default:
		return "UNKNOWN"
	}
}

type codedError struct {
	code Code
	err  error
}

func (e *codedError) Error() string { return e.err.Error() }
func (e *codedError) Unwrap() error { return e.err }

// New returns an error with the given code and message.
func New(code Code, msg string) error {
	return &codedError{code: code, err: errors.New(msg)}
}

// Errorf returns an error with the given code and a formatted message.
func Errorf(code Code, format string, args ...any) error {
	return &codedError{code: code, err: fmt.Errorf(format, args...)}
}

// Wrap annotates err with a message, keeping its code.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &codedError{code: CodeOf(err), err: fmt.Errorf("%s: %w", msg, err)}
}

// Wrapf annotates err with a formatted message, keeping its code.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	msg := fmt.Sprintf(format, args...)
	return &codedError{code: CodeOf(err), err: fmt.Errorf("%s: %w", msg, err)}
}

// CodeOf returns the code of the innermost coded error in err's chain, or
// Unknown when no error in the chain carries one. A nil error is OK.
func CodeOf(err error) Code {
	if err == nil {
		return OK
	}
	var coded *codedError
	if errors.As(err, &coded) {
		return coded.code
	}
	return Unknown
}
