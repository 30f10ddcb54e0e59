// Copyright 2021-present The Atlas Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

// Package api defines the rendering API driven by the scene parser, and
// implementations that record or print the calls it receives.
package api

import (
	"fmt"
	"io"
	"strings"

	"github.com/TarsilaSamille/rt3/paramset"

	"github.com/olekukonko/tablewriter"
)

type (
	// API is the rendering API invoked by the parser, in document order,
	// once for every recognized tag.
	API interface {
		Background(*paramset.ParamSet) error
		Film(*paramset.ParamSet) error
		WorldBegin() error
		WorldEnd() error
	}

	// Directive is implemented by APIs that accept tags registered at
	// runtime, in addition to the built-in ones.
	Directive interface {
		Directive(tag string, ps *paramset.ParamSet) error
	}

	// Call is a single invocation of the API.
	Call struct {
		Name   string             `json:"Name"`
		Params *paramset.ParamSet `json:"Params,omitempty"`
	}

	// Recorder is an API that records the calls it receives.
	Recorder struct {
		Calls []Call `json:"Calls"`
	}

	// Printer is an API that prints the calls it receives as tables.
	Printer struct {
		w io.Writer
	}
)

var (
	_ API       = (*Recorder)(nil)
	_ Directive = (*Recorder)(nil)
	_ API       = (*Printer)(nil)
	_ Directive = (*Printer)(nil)
)

// Background implements API.
func (r *Recorder) Background(ps *paramset.ParamSet) error {
	return r.Directive("background", ps)
}

// Film implements API.
func (r *Recorder) Film(ps *paramset.ParamSet) error {
	return r.Directive("film", ps)
}

// WorldBegin implements API.
func (r *Recorder) WorldBegin() error {
	return r.Directive("world_begin", nil)
}

// WorldEnd implements API.
func (r *Recorder) WorldEnd() error {
	return r.Directive("world_end", nil)
}

// Directive implements Directive.
func (r *Recorder) Directive(tag string, ps *paramset.ParamSet) error {
	r.Calls = append(r.Calls, Call{Name: tag, Params: ps})
	return nil
}

// Names returns the names of the recorded calls.
func (r *Recorder) Names() []string {
	names := make([]string, len(r.Calls))
	for i := range r.Calls {
		names[i] = r.Calls[i].Name
	}
	return names
}

// NewPrinter returns a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Background implements API.
func (p *Printer) Background(ps *paramset.ParamSet) error {
	return p.Directive("background", ps)
}

// Film implements API.
func (p *Printer) Film(ps *paramset.ParamSet) error {
	return p.Directive("film", ps)
}

// WorldBegin implements API.
func (p *Printer) WorldBegin() error {
	return p.Directive("world_begin", nil)
}

// WorldEnd implements API.
func (p *Printer) WorldEnd() error {
	return p.Directive("world_end", nil)
}

// Directive implements Directive.
func (p *Printer) Directive(tag string, ps *paramset.ParamSet) error {
	if _, err := fmt.Fprintln(p.w, strings.ToUpper(tag)); err != nil {
		return err
	}
	if ps.Len() == 0 {
		return nil
	}
	tbl := tablewriter.NewWriter(p.w)
	tbl.SetAutoWrapText(false)
	tbl.SetHeader([]string{"Name", "Kind", "Value"})
	for _, prm := range ps.Params() {
		tbl.Append([]string{prm.Name, prm.Value.Kind.String(), prm.Value.String()})
	}
	tbl.Render()
	return nil
}
