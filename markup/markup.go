// Copyright 2021-present The Atlas Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

// Package markup defines the read-only tree view that scene files are
// parsed into, and a registry of loaders keyed by file extension.
package markup

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
)

type (
	// Element is a named node of a markup tree, holding raw-text
	// attributes and linked to its first child and next sibling.
	Element interface {
		// Tag returns the element name as written in the document.
		Tag() string
		// Attr returns the raw text of the named attribute and
		// reports whether the attribute exists.
		Attr(name string) (string, bool)
		// FirstChild returns the first child element, or nil.
		FirstChild() Element
		// NextSibling returns the next element at the same depth, or nil.
		NextSibling() Element
	}

	// Document is a loaded markup document.
	Document interface {
		// Root returns the root element of the document, or nil
		// if the document holds no elements at all.
		Root() Element
	}

	// Loader loads a Document from the given source.
	Loader interface {
		Load(source string) (Document, error)
	}

	// LoaderFunc allows using a function as a Loader.
	LoaderFunc func(string) (Document, error)
)

// Load calls f(source).
func (f LoaderFunc) Load(source string) (Document, error) {
	return f(source)
}

// DefaultExt is the extension of the loader used for sources
// without a registered extension.
const DefaultExt = ".xml"

var loaders sync.Map

// Register registers a Loader for the given file extension, e.g. ".xml".
func Register(ext string, l Loader) {
	if l == nil {
		panic("markup: Register loader is nil")
	}
	ext = strings.ToLower(ext)
	if _, ok := loaders.Load(ext); ok {
		panic("markup: Register called twice for " + ext)
	}
	loaders.Store(ext, l)
}

// Open loads the document at source using the loader registered for its
// extension. Sources with an unknown extension are loaded by the DefaultExt loader.
func Open(source string) (Document, error) {
	v, ok := loaders.Load(strings.ToLower(filepath.Ext(source)))
	if !ok {
		if v, ok = loaders.Load(DefaultExt); !ok {
			return nil, fmt.Errorf("markup: no loader was registered for %q", source)
		}
	}
	doc, err := v.(Loader).Load(source)
	if err != nil {
		return nil, fmt.Errorf("markup: load %q: %w", source, err)
	}
	return doc, nil
}

// Children returns the child elements of e in document order.
func Children(e Element) []Element {
	var children []Element
	for c := e.FirstChild(); c != nil; c = c.NextSibling() {
		children = append(children, c)
	}
	return children
}
