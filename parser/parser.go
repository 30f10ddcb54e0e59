// Copyright 2021-present The Atlas Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

// Package parser reads scene files into typed parameter sets and hands
// them to the rendering API, one call per recognized tag.
package parser

import (
	"errors"
	"fmt"

	"github.com/TarsilaSamille/rt3/api"
	"github.com/TarsilaSamille/rt3/markup"
	_ "github.com/TarsilaSamille/rt3/markup/hclmarkup"
	_ "github.com/TarsilaSamille/rt3/markup/xmlmarkup"
)

var (
	// ErrNoRoot is returned for documents without a root element.
	ErrNoRoot = errors.New("parser: no root tag found in the scene file")
	// ErrEmptyScene is returned when the root element has no children.
	ErrEmptyScene = errors.New("parser: no children tags found inside the root tag, empty scene file?")
	// ErrMalformed is returned in strict mode for attribute values
	// that cannot be converted to their declared kind.
	ErrMalformed = errors.New("parser: malformed attribute value")
)

type (
	// Config configures a Parser.
	Config struct {
		strict bool
		logger Logger
		tags   map[string]*TagSpec
	}

	// Option configures a Config.
	Option func(*Config)

	// Parser walks scene documents and drives an API.
	Parser struct {
		api    api.API
		config *Config
	}
)

// New returns a Parser driving a, configured with options.
func New(a api.API, opts ...Option) *Parser {
	cfg := &Config{
		logger: NopLogger{},
		tags:   make(map[string]*TagSpec),
	}
	WithTag(builtinTags()...)(cfg)
	for _, opt := range opts {
		opt(cfg)
	}
	return &Parser{api: a, config: cfg}
}

// WithStrict makes attribute values that cannot be converted to their
// declared kind fail the parse, instead of being logged and skipped.
func WithStrict() Option {
	return func(c *Config) {
		c.strict = true
	}
}

// WithLogger sets the Logger receiving the parsing entries.
func WithLogger(l Logger) Option {
	return func(c *Config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithTag registers the given tags. A tag replaces an existing tag with
// the same name and, if it has no Call, keeps the Call of the replaced one.
// For example, the following option extends the built-in "film" tag:
//
//	WithTag(TagSpec{
//		Name:   "film",
//		Params: append(FilmParams, Param{paramset.KindReal, "aspect"}),
//	})
func WithTag(specs ...TagSpec) Option {
	return func(c *Config) {
		for _, s := range specs {
			s := s
			s.Name = NormalizeTag(s.Name)
			if prev, ok := c.tags[s.Name]; ok && s.Call == nil {
				s.Call = prev.Call
			}
			c.tags[s.Name] = &s
		}
	}
}

// Parse parses the scene file at source and drives a with its content.
func Parse(source string, a api.API, opts ...Option) error {
	return New(a, opts...).Parse(source)
}

// Parse loads the scene file at source and walks its content.
func (p *Parser) Parse(source string) error {
	doc, err := markup.Open(source)
	if err != nil {
		return fmt.Errorf("parser: the file %q either is not available or contains an invalid scene: %w", source, err)
	}
	return p.ParseDocument(doc)
}

// ParseDocument walks the content of a loaded document, starting
// with the first child of its root at level 0.
func (p *Parser) ParseDocument(doc markup.Document) error {
	root := doc.Root()
	if root == nil {
		return ErrNoRoot
	}
	first := root.FirstChild()
	if first == nil {
		return ErrEmptyScene
	}
	return p.Walk(first, 0)
}

// Tag returns the registered tag with the given name.
func (p *Parser) Tag(name string) (*TagSpec, bool) {
	s, ok := p.config.tags[NormalizeTag(name)]
	return s, ok
}

func (p *Parser) log(e Entry) {
	p.config.logger.Log(e)
}
