// Copyright 2021-present The Atlas Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

// Package xmlmarkup implements markup documents backed by etree.
// Importing the package registers its loader for ".xml" files.
package xmlmarkup

import (
	"github.com/TarsilaSamille/rt3/markup"

	"github.com/beevik/etree"
)

func init() {
	markup.Register(".xml", markup.LoaderFunc(Load))
}

type (
	// Document wraps an etree document.
	Document struct {
		doc *etree.Document
	}

	// Element wraps an etree element.
	Element struct {
		e *etree.Element
	}
)

// Load reads the XML file at path.
func Load(path string) (markup.Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, err
	}
	return &Document{doc: doc}, nil
}

// Parse reads an XML document from b.
func Parse(b []byte) (markup.Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(b); err != nil {
		return nil, err
	}
	return &Document{doc: doc}, nil
}

// Root implements markup.Document.
func (d *Document) Root() markup.Element {
	return wrap(d.doc.Root())
}

// Tag implements markup.Element.
func (e *Element) Tag() string {
	return e.e.Tag
}

// Attr implements markup.Element.
func (e *Element) Attr(name string) (string, bool) {
	a := e.e.SelectAttr(name)
	if a == nil {
		return "", false
	}
	return a.Value, true
}

// FirstChild implements markup.Element.
func (e *Element) FirstChild() markup.Element {
	if cs := e.e.ChildElements(); len(cs) > 0 {
		return wrap(cs[0])
	}
	return nil
}

// NextSibling implements markup.Element.
func (e *Element) NextSibling() markup.Element {
	return wrap(e.e.NextSibling())
}

// wrap returns a nil interface for nil elements.
func wrap(e *etree.Element) markup.Element {
	if e == nil {
		return nil
	}
	return &Element{e: e}
}
