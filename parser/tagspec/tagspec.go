// Copyright 2021-present The Atlas Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

// Package tagspec loads tag schemas from HCL files. For example:
//
//	tag "camera" {
//	  nested = true
//	  param "fovy" {
//	    kind = "REAL"
//	  }
//	  param "screen_window" {
//	    kind = "ARR_REAL"
//	  }
//	}
//
// Tags named after a built-in tag replace its declared attribute list,
// and keep its API call.
package tagspec

import (
	"fmt"

	"github.com/TarsilaSamille/rt3/paramset"
	"github.com/TarsilaSamille/rt3/parser"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

type (
	file struct {
		Tags []*tagBlock `hcl:"tag,block"`
	}

	tagBlock struct {
		Name   string        `hcl:"name,label"`
		Nested bool          `hcl:"nested,optional"`
		Params []*paramBlock `hcl:"param,block"`
	}

	paramBlock struct {
		Name string `hcl:"name,label"`
		Kind string `hcl:"kind"`
	}
)

// Load reads the tag schema file at path.
func Load(path string) ([]parser.TagSpec, error) {
	f, diags := hclparse.NewParser().ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, diags
	}
	return decode(f)
}

// Decode reads a tag schema from b. The filename is used in diagnostics.
func Decode(b []byte, filename string) ([]parser.TagSpec, error) {
	f, diags := hclparse.NewParser().ParseHCL(b, filename)
	if diags.HasErrors() {
		return nil, diags
	}
	return decode(f)
}

// Option returns a parser option registering the tags of the schema
// file at path.
func Option(path string) (parser.Option, error) {
	specs, err := Load(path)
	if err != nil {
		return nil, err
	}
	return parser.WithTag(specs...), nil
}

func decode(f *hcl.File) ([]parser.TagSpec, error) {
	var doc file
	if diags := gohcl.DecodeBody(f.Body, nil, &doc); diags.HasErrors() {
		return nil, diags
	}
	specs := make([]parser.TagSpec, 0, len(doc.Tags))
	seen := make(map[string]bool, len(doc.Tags))
	for _, t := range doc.Tags {
		name := parser.NormalizeTag(t.Name)
		switch {
		case name == "":
			return nil, fmt.Errorf("tagspec: empty tag name")
		case seen[name]:
			return nil, fmt.Errorf("tagspec: tag %q is defined more than once", name)
		}
		seen[name] = true
		spec := parser.TagSpec{Name: name, Nested: t.Nested}
		for _, p := range t.Params {
			k, err := paramset.ParseKind(p.Kind)
			if err != nil {
				return nil, fmt.Errorf("tagspec: tag %q param %q: %w", name, p.Name, err)
			}
			spec.Params = append(spec.Params, parser.Param{Kind: k, Name: p.Name})
		}
		specs = append(specs, spec)
	}
	return specs, nil
}
