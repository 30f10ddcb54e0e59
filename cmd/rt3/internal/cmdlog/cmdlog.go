// Copyright 2021-present The Atlas Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

package cmdlog

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"text/template"

	"github.com/TarsilaSamille/rt3/parser"

	"github.com/fatih/color"
	"github.com/go-openapi/inflect"
)

var (
	// ColorTemplateFuncs are globally available functions to color strings in a report template.
	ColorTemplateFuncs = template.FuncMap{
		"cyan":   color.CyanString,
		"green":  color.HiGreenString,
		"red":    color.HiRedString,
		"yellow": color.YellowString,
	}

	// ReportTemplateFuncs are global functions available in parse report templates.
	ReportTemplateFuncs = merge(template.FuncMap{
		"json":   jsonEncode,
		"plural": plural,
	}, ColorTemplateFuncs)

	// EntryTemplate holds the template used for rendering parser entries.
	EntryTemplate = template.Must(template.New("entry").
			Funcs(ReportTemplateFuncs).
			Parse(`{{ if eq .Level.String "warn" }}{{ yellow "warning:" }}{{ else }}{{ cyan "debug:" }}{{ end }} {{ .String }}
`))

	// ParseTemplate holds the default template of the 'parse' command report.
	// Fatal errors are reported by the command itself.
	ParseTemplate = template.Must(template.New("report").
			Funcs(ReportTemplateFuncs).
			Parse(`{{- if not .Error -}}
Parsed {{ cyan .File }}: {{ plural .Tags "tag" }}
{{- with .Warnings }}, {{ yellow (plural (len .) "warning") }}{{ end }}
{{ end -}}
`))
)

// ParseReport summarizes the parsing of a scene file.
type ParseReport struct {
	File     string   `json:"File,omitempty"`     // Path to the scene file.
	Tags     int      `json:"Tags"`               // Number of visited tags.
	Calls    int      `json:"Calls"`              // Number of API calls.
	Warnings []string `json:"Warnings,omitempty"` // Warnings emitted while parsing.
	Error    string   `json:"Error,omitempty"`    // Fatal error, if any.
}

// Logger is a parser.Logger rendering entries with EntryTemplate
// and collecting them into a ParseReport.
type Logger struct {
	mu      sync.Mutex
	w       io.Writer
	verbose bool
	report  *ParseReport
}

var _ parser.Logger = (*Logger)(nil)

// NewLogger returns a Logger writing warnings to w, and debug entries too
// if verbose is set. The given report is updated as entries are logged.
func NewLogger(w io.Writer, verbose bool, report *ParseReport) *Logger {
	return &Logger{w: w, verbose: verbose, report: report}
}

// Log implements parser.Logger.
func (l *Logger) Log(e parser.Entry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := e.(parser.Visit); ok {
		l.report.Tags++
	}
	if e.Level() == parser.LevelWarn {
		l.report.Warnings = append(l.report.Warnings, e.String())
	} else if !l.verbose {
		return
	}
	// Rendering errors are not reported, as the entry is kept in the report.
	_ = EntryTemplate.Execute(l.w, e)
}

// plural returns the count followed by the word, pluralized if needed.
func plural(n int, word string) string {
	if n != 1 {
		word = inflect.Pluralize(word)
	}
	return fmt.Sprintf("%d %s", n, word)
}

func merge(maps ...template.FuncMap) template.FuncMap {
	switch len(maps) {
	case 0:
		return nil
	case 1:
		return maps[0]
	default:
		m := maps[0]
		for _, e := range maps[1:] {
			for k, v := range e {
				m[k] = v
			}
		}
		return m
	}
}

func jsonEncode(v any, args ...string) (string, error) {
	var (
		b   []byte
		err error
	)
	switch len(args) {
	case 0:
		b, err = json.Marshal(v)
	case 1:
		b, err = json.MarshalIndent(v, "", args[0])
	default:
		b, err = json.MarshalIndent(v, args[0], args[1])
	}
	return string(b), err
}
