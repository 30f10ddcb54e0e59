// Copyright 2021-present The Atlas Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

package parser

import (
	"fmt"

	"github.com/TarsilaSamille/rt3/paramset"
)

// Level is the severity of a log Entry.
type Level int

// List of log levels.
const (
	LevelDebug Level = iota
	LevelWarn
)

// String implements fmt.Stringer.
func (l Level) String() string {
	if l == LevelWarn {
		return "warn"
	}
	return "debug"
}

type (
	// Entry is a structured log entry emitted while parsing.
	Entry interface {
		fmt.Stringer
		Level() Level
	}

	// Logger receives the entries emitted while parsing.
	Logger interface {
		Log(Entry)
	}

	// LoggerFunc allows using a function as a Logger.
	LoggerFunc func(Entry)

	// NopLogger is a Logger that drops all entries.
	NopLogger struct{}

	// Visit is emitted for every element the walker visits.
	Visit struct {
		Tag   string
		Depth int
	}

	// ParamAdded is emitted when an attribute is stored in a parameter set.
	ParamAdded struct {
		Tag, Name string
		Value     paramset.Value
	}

	// UnknownTag is emitted for elements that match no registered tag.
	UnknownTag struct {
		Tag   string
		Depth int
	}

	// UnknownKind is emitted for declared attributes whose kind
	// has no text conversion.
	UnknownKind struct {
		Tag, Name string
		Kind      paramset.Kind
	}

	// BadValue is emitted in lenient mode for attributes whose
	// text cannot be converted to their declared kind.
	BadValue struct {
		Tag, Name string
		Kind      paramset.Kind
		Text      string
	}
)

// Log calls f(e).
func (f LoggerFunc) Log(e Entry) { f(e) }

// Log implements Logger.
func (NopLogger) Log(Entry) {}

// Level implements Entry.
func (Visit) Level() Level { return LevelDebug }

// Level implements Entry.
func (ParamAdded) Level() Level { return LevelDebug }

// Level implements Entry.
func (UnknownTag) Level() Level { return LevelWarn }

// Level implements Entry.
func (UnknownKind) Level() Level { return LevelWarn }

// Level implements Entry.
func (BadValue) Level() Level { return LevelWarn }

func (e Visit) String() string {
	return fmt.Sprintf("tag `%s` at level %d", e.Tag, e.Depth)
}

func (e ParamAdded) String() string {
	return fmt.Sprintf("added attribute %s.%s (%s: %q)", e.Tag, e.Name, e.Value.Kind, e.Value)
}

func (e UnknownTag) String() string {
	return fmt.Sprintf("undefined tag `%s` found at level %d", e.Tag, e.Depth)
}

func (e UnknownKind) String() string {
	return fmt.Sprintf("unknown param type %s for attribute %s.%s", e.Kind, e.Tag, e.Name)
}

func (e BadValue) String() string {
	return fmt.Sprintf("cannot read attribute %s.%s value %q as %s", e.Tag, e.Name, e.Text, e.Kind)
}
