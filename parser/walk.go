// Copyright 2021-present The Atlas Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

package parser

import (
	"fmt"

	"github.com/TarsilaSamille/rt3/markup"
	"github.com/TarsilaSamille/rt3/paramset"
)

// Walk handles e and all its following siblings, in document order.
// Elements matching no registered tag are logged and skipped. Nested
// tags are walked recursively at depth+1.
func (p *Parser) Walk(e markup.Element, depth int) error {
	for ; e != nil; e = e.NextSibling() {
		tag := NormalizeTag(e.Tag())
		p.log(Visit{Tag: tag, Depth: depth})
		spec, ok := p.config.tags[tag]
		if !ok {
			p.log(UnknownTag{Tag: tag, Depth: depth})
			continue
		}
		ps, err := p.populate(tag, e, spec.Params)
		if err != nil {
			return err
		}
		if err := spec.call(p.api, ps); err != nil {
			return fmt.Errorf("parser: tag %q: %w", tag, err)
		}
		if spec.Nested {
			if err := p.Walk(e.FirstChild(), depth+1); err != nil {
				return err
			}
		}
	}
	return nil
}

// Populate reads the declared params of e into a new parameter set. Missing
// attributes are skipped. Attributes that cannot be converted to their kind are
// logged and skipped, or fail with ErrMalformed if the parser is strict.
func (p *Parser) Populate(e markup.Element, params []Param) (*paramset.ParamSet, error) {
	return p.populate(NormalizeTag(e.Tag()), e, params)
}

func (p *Parser) populate(tag string, e markup.Element, params []Param) (*paramset.ParamSet, error) {
	ps := paramset.New()
	for _, prm := range params {
		text, ok := e.Attr(prm.Name)
		if !ok {
			continue
		}
		read := reader(prm.Kind)
		if read == nil {
			p.log(UnknownKind{Tag: tag, Name: prm.Name, Kind: prm.Kind})
			continue
		}
		v, ok := read(text)
		if !ok {
			if p.config.strict {
				return nil, fmt.Errorf("%w: cannot read attribute %s.%s value %q as %s", ErrMalformed, tag, prm.Name, text, prm.Kind)
			}
			p.log(BadValue{Tag: tag, Name: prm.Name, Kind: prm.Kind, Text: text})
			continue
		}
		ps.Set(prm.Name, v)
		p.log(ParamAdded{Tag: tag, Name: prm.Name, Value: v})
	}
	return ps, nil
}
