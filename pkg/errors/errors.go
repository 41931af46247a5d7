// Unified error handling for tedjust
//
// Copyright (C) 2026  Go Migration Team
//
// This file may be distributed under the terms of the GNU GPLv3 license.

package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode represents the category of error
type ErrorCode string

const (
	// Command line errors
	ErrUsage ErrorCode = "USAGE"

	// Tweak configuration errors
	ErrLayerSpec ErrorCode = "LAYER_SPEC"
	ErrRulesFile ErrorCode = "RULES_FILE"

	// G-code parsing errors
	ErrGCodeParse ErrorCode = "GCODE_PARSE"

	// Stream errors
	ErrIO ErrorCode = "IO"
)

// HostError is the unified error type for the tool
type HostError struct {
	// Code is the error category
	Code ErrorCode

	// Message is a human-readable error description
	Message string

	// Line is the input line number (if available)
	Line int

	// Option is the offending token or option name (if applicable)
	Option string

	// Err wraps the underlying error
	Err error

	// Context provides additional context
	Context map[string]interface{}
}

// Error implements the error interface
func (e *HostError) Error() string {
	msg := fmt.Sprintf("[%s] %s", e.Code, e.Message)
	if e.Line > 0 {
		msg = fmt.Sprintf("[%s] line %d: %s", e.Code, e.Line, e.Message)
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying error
func (e *HostError) Unwrap() error {
	return e.Err
}

// SetLine sets the line number
func (e *HostError) SetLine(line int) *HostError {
	e.Line = line
	return e
}

// SetOption sets the offending token or option
func (e *HostError) SetOption(option string) *HostError {
	e.Option = option
	return e
}

// SetContext adds additional context
func (e *HostError) SetContext(key string, value interface{}) *HostError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// Wrap wraps an existing error with additional context
func Wrap(err error, code ErrorCode, message string) *HostError {
	return &HostError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// New creates a new HostError
func New(code ErrorCode, message string) *HostError {
	return &HostError{
		Code:    code,
		Message: message,
	}
}

// UsageError reports missing or unusable command line input.
func UsageError(reason string) *HostError {
	return New(ErrUsage, reason)
}

// LayerSpecError reports a layer selector whose bounds could not be parsed.
// The rule under construction keeps its previous bounds.
func LayerSpecError(token string, err error) *HostError {
	return Wrap(err, ErrLayerSpec, fmt.Sprintf("bad layer selector %q, keeping previous bounds", token)).
		SetOption(token)
}

// TweakValueError reports a flow or speed token with an unparsable value.
func TweakValueError(token string, err error) *HostError {
	return Wrap(err, ErrLayerSpec, fmt.Sprintf("bad tweak value %q, ignored", token)).
		SetOption(token)
}

// GCodeParseError reports a numeric word that failed to parse.
func GCodeParseError(line int, word string) *HostError {
	return New(ErrGCodeParse, fmt.Sprintf("malformed word %q, keeping previous value", word)).
		SetLine(line).
		SetOption(word)
}

// RulesFileError wraps a failure to read or interpret a rules file.
func RulesFileError(path string, err error) *HostError {
	return Wrap(err, ErrRulesFile, fmt.Sprintf("rules file %s", path)).
		SetContext("path", path)
}

// IOError wraps a fatal input or output failure.
func IOError(op string, err error) *HostError {
	return Wrap(err, ErrIO, op)
}

// CodeOf returns the ErrorCode of the first HostError in err's chain,
// or an empty code when there is none.
func CodeOf(err error) ErrorCode {
	var he *HostError
	if stderrors.As(err, &he) {
		return he.Code
	}
	return ""
}

// Is reports whether err carries the given code anywhere in its chain.
func Is(err error, code ErrorCode) bool {
	for err != nil {
		var he *HostError
		if !stderrors.As(err, &he) {
			return false
		}
		if he.Code == code {
			return true
		}
		err = he.Err
	}
	return false
}
