// Copyright 2021-present The Atlas Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

// Package hclmarkup implements markup documents written in HCL. Blocks are
// elements, the block type is the tag, and attributes are evaluated to
// their text form. For example:
//
//	film {
//	  type        = "image"
//	  x_res       = 800
//	  crop_window = [0, 1, 0, 1]
//	}
//	world_begin {}
//
// Top-level "locals" blocks are not elements. Their attributes can be
// referenced by other expressions as "local.<name>".
//
// Importing the package registers its loader for ".hcl" files.
package hclmarkup

import (
	"fmt"
	"sort"
	"strings"

	"github.com/TarsilaSamille/rt3/markup"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

func init() {
	markup.Register(".hcl", markup.LoaderFunc(Load))
}

// RootTag is the tag of the element representing the file body.
const RootTag = "scene"

const (
	localsBlock = "locals"
	localRef    = "local"
)

type (
	// Document is a parsed HCL file.
	Document struct {
		root *Element
	}

	// Element is an HCL block, or the file body for the root element.
	Element struct {
		tag         string
		src         []byte
		ctx         *hcl.EvalContext
		body        *hclsyntax.Body
		first, next *Element
	}
)

// Load parses the HCL file at path.
func Load(path string) (markup.Document, error) {
	f, diags := hclparse.NewParser().ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, diags
	}
	return newDocument(f)
}

// Parse parses an HCL document from b. The filename is used in diagnostics.
func Parse(b []byte, filename string) (markup.Document, error) {
	f, diags := hclparse.NewParser().ParseHCL(b, filename)
	if diags.HasErrors() {
		return nil, diags
	}
	return newDocument(f)
}

func newDocument(f *hcl.File) (*Document, error) {
	body, ok := f.Body.(*hclsyntax.Body)
	if !ok {
		return nil, fmt.Errorf("hclmarkup: expected body to be of type *hclsyntax.Body, got %T", f.Body)
	}
	ctx := evalContext()
	if err := evalLocals(ctx, body); err != nil {
		return nil, err
	}
	return &Document{root: build(RootTag, f.Bytes, ctx, body)}, nil
}

// evalLocals evaluates the attributes of the top-level "locals" blocks and
// exposes them to the rest of the file as "local.<name>". Locals may refer
// to each other, regardless of their order in the file.
func evalLocals(ctx *hcl.EvalContext, body *hclsyntax.Body) error {
	var pending []*hclsyntax.Attribute
	for _, b := range body.Blocks {
		if b.Type != localsBlock {
			continue
		}
		for _, a := range b.Body.Attributes {
			pending = append(pending, a)
		}
	}
	sort.Slice(pending, func(i, j int) bool {
		return pending[i].SrcRange.Start.Byte < pending[j].SrcRange.Start.Byte
	})
	locals := make(map[string]cty.Value, len(pending))
	for len(pending) > 0 {
		var (
			next  []*hclsyntax.Attribute
			diags hcl.Diagnostics
		)
		for _, a := range pending {
			if _, ok := locals[a.Name]; ok {
				return fmt.Errorf("hclmarkup: %s: duplicate local %q", a.NameRange, a.Name)
			}
			v, d := a.Expr.Value(ctx)
			if d.HasErrors() {
				next, diags = append(next, a), append(diags, d...)
				continue
			}
			locals[a.Name] = v
			ctx.Variables[localRef] = cty.ObjectVal(locals)
		}
		// No local was resolved in this pass.
		if len(next) == len(pending) {
			return diags
		}
		pending = next
	}
	return nil
}

// build links the blocks of body as the children of a new element.
func build(tag string, src []byte, ctx *hcl.EvalContext, body *hclsyntax.Body) *Element {
	e := &Element{tag: tag, src: src, ctx: ctx, body: body}
	var prev *Element
	for _, b := range body.Blocks {
		if tag == RootTag && b.Type == localsBlock {
			continue
		}
		c := build(b.Type, src, ctx, b.Body)
		if prev == nil {
			e.first = c
		} else {
			prev.next = c
		}
		prev = c
	}
	return e
}

// Root implements markup.Document.
func (d *Document) Root() markup.Element {
	return d.root
}

// Tag implements markup.Element.
func (e *Element) Tag() string {
	return e.tag
}

// Attr implements markup.Element. Attribute values are evaluated with the
// file locals and the standard functions in scope. Lists and tuples are
// flattened to whitespace separated text. Expressions that cannot be
// evaluated or flattened are returned as written in the source.
func (e *Element) Attr(name string) (string, bool) {
	a, ok := e.body.Attributes[name]
	if !ok {
		return "", false
	}
	if v, diags := a.Expr.Value(e.ctx); !diags.HasErrors() {
		if s, ok := text(v); ok {
			return s, true
		}
	}
	r := a.Expr.Range()
	if r.End.Byte > len(e.src) || r.Start.Byte > r.End.Byte {
		return "", true
	}
	return string(e.src[r.Start.Byte:r.End.Byte]), true
}

// FirstChild implements markup.Element.
func (e *Element) FirstChild() markup.Element {
	if e.first == nil {
		return nil
	}
	return e.first
}

// NextSibling implements markup.Element.
func (e *Element) NextSibling() markup.Element {
	if e.next == nil {
		return nil
	}
	return e.next
}

func text(v cty.Value) (string, bool) {
	if !v.IsWhollyKnown() || v.IsNull() {
		return "", false
	}
	if t := v.Type(); t.IsListType() || t.IsTupleType() || t.IsSetType() {
		parts := make([]string, 0, v.LengthInt())
		for it := v.ElementIterator(); it.Next(); {
			_, ev := it.Element()
			s, ok := text(ev)
			if !ok {
				return "", false
			}
			if s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, " "), true
	}
	s, err := convert.Convert(v, cty.String)
	if err != nil {
		return "", false
	}
	return s.AsString(), true
}
